package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crediario/crediario-api/internal/domain/access"
	"github.com/crediario/crediario-api/internal/middleware"
	"github.com/crediario/crediario-api/internal/pkg/response"
)

// Handler handles dashboard HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates dashboard handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Admin handles GET /admin
func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.service.AdminStats(r.Context()))
}

// Merchant handles GET /merchant
func (h *Handler) Merchant(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.service.MerchantStats(r.Context(), middleware.GetMerchantID(r.Context())))
}

// Cashier handles GET /cashier
func (h *Handler) Cashier(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.service.CashierStats(r.Context(), middleware.GetMerchantID(r.Context())))
}

// Routes returns dashboard router, one landing endpoint per role
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.With(access.RequirePermission(access.PermViewAdminDashboard)).Get("/admin", h.Admin)
	r.With(access.RequirePermission(access.PermViewMerchantDashboard)).Get("/merchant", h.Merchant)
	r.With(access.RequirePermission(access.PermViewCashierDashboard)).Get("/cashier", h.Cashier)

	return r
}
