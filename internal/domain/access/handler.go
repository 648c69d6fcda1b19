package access

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crediario/crediario-api/internal/domain/user"
	"github.com/crediario/crediario-api/internal/middleware"
	"github.com/crediario/crediario-api/internal/pkg/response"
)

// ResolutionResponse describes the route decision for the current actor
type ResolutionResponse struct {
	State     string `json:"state"`
	Route     string `json:"route,omitempty"`
	Dashboard string `json:"dashboard"`
}

// Handler serves route-resolution decisions to the UI shell
type Handler struct {
	userRepo user.Repository
}

// NewHandler creates access handler
func NewHandler(userRepo user.Repository) *Handler {
	return &Handler{userRepo: userRepo}
}

// Resolution handles GET /access/resolution?route=/admin
//
// The session is already authenticated by the time this handler runs; the
// loading and unauthenticated states surface as the absence or rejection
// of the bearer token before we get here.
func (h *Handler) Resolution(w http.ResponseWriter, r *http.Request) {
	actor, err := h.userRepo.GetByID(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		response.Unauthorized(w, "User not found")
		return
	}

	sess := Session{Resolved: true, Actor: actor}

	route := Route(r.URL.Query().Get("route"))
	var res Resolution
	if route == "" {
		res = ResolveDashboard(sess)
	} else {
		res = Resolve(sess, route)
	}

	response.OK(w, ResolutionResponse{
		State:     string(res.State),
		Route:     string(res.Route),
		Dashboard: string(DashboardFor(actor.Role)),
	})
}

// Routes returns access router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)
	r.Get("/resolution", h.Resolution)
	return r
}
