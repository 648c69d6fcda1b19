package ledger

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crediario/crediario-api/internal/domain/access"
)

// Routes returns the point-of-sale router. All routes are merchant scoped.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Group(func(r chi.Router) {
		r.Use(access.RequirePermission(access.PermLookupClients))
		r.Get("/clients/lookup", h.Lookup)
	})

	r.Group(func(r chi.Router) {
		r.Use(access.RequirePermission(access.PermViewLedger))
		r.Get("/clients/{id}/records", h.ListRecords)
	})

	r.Group(func(r chi.Router) {
		r.Use(access.RequirePermission(access.PermRecordPayments))
		r.Post("/clients/{id}/payments", h.RecordPayment)
	})

	r.Group(func(r chi.Router) {
		r.Use(access.RequirePermission(access.PermGrantCredits))
		r.Post("/clients/{id}/credits", h.GrantCredit)
	})

	return r
}
