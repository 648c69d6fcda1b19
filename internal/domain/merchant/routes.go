package merchant

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crediario/crediario-api/internal/domain/access"
)

// Routes returns merchant router. All routes are super-admin scoped.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Group(func(r chi.Router) {
		r.Use(access.RequirePermission(access.PermViewMerchants))
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
	})

	r.Group(func(r chi.Router) {
		r.Use(access.RequirePermission(access.PermManageMerchants))
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
	})

	r.Group(func(r chi.Router) {
		r.Use(access.RequirePermission(access.PermDeleteMerchants))
		r.Delete("/{id}", h.Delete)
	})

	return r
}
