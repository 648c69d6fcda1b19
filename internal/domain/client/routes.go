package client

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crediario/crediario-api/internal/domain/access"
)

// Routes returns client directory router. All routes are merchant scoped.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Group(func(r chi.Router) {
		r.Use(access.RequirePermission(access.PermViewClients))
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
	})

	r.Group(func(r chi.Router) {
		r.Use(access.RequirePermission(access.PermManageClients))
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
	})

	r.Group(func(r chi.Router) {
		r.Use(access.RequirePermission(access.PermRemindClients))
		r.Post("/{id}/reminders", h.SendReminder)
	})

	return r
}
