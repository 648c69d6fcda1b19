package ledger

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/crediario/crediario-api/internal/domain/client"
	"github.com/crediario/crediario-api/internal/middleware"
	"github.com/crediario/crediario-api/internal/pkg/response"
	"github.com/crediario/crediario-api/internal/pkg/validator"
)

// Handler handles point-of-sale HTTP requests
type Handler struct {
	service *Service
	clients *client.Service
}

// NewHandler creates ledger handler
func NewHandler(service *Service, clients *client.Service) *Handler {
	return &Handler{service: service, clients: clients}
}

// Lookup handles GET /clients/lookup?q=
// It returns the first client matching the query by CPF digits or name.
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	c, err := h.clients.Lookup(r.Context(), middleware.GetMerchantID(r.Context()), query)
	if err != nil {
		response.NotFound(w, "Client not found")
		return
	}

	response.OK(w, client.NewClientResponse(c))
}

// ListRecords handles GET /clients/{id}/records
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid client id")
		return
	}

	recs, err := h.service.ListRecords(r.Context(), middleware.GetMerchantID(r.Context()), id)
	if err != nil {
		response.NotFound(w, "Client not found")
		return
	}

	response.OK(w, NewRecordListResponse(recs))
}

// RecordPayment handles POST /clients/{id}/payments
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid client id")
		return
	}

	var req PaymentRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	c, err := h.service.RecordPayment(r.Context(), middleware.GetMerchantID(r.Context()), id, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrNotFound):
			response.NotFound(w, "Client not found")
		case errors.Is(err, ErrInvalidAmount):
			response.UnprocessableEntity(w, "INVALID_AMOUNT", "Amount must be greater than zero")
		case errors.Is(err, ErrExceedsDebt):
			response.UnprocessableEntity(w, "EXCEEDS_DEBT", "Payment exceeds the client's current debt")
		default:
			log.Error().Err(err).Str("client_id", id.String()).Msg("failed to record payment")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, client.NewClientResponse(c))
}

// GrantCredit handles POST /clients/{id}/credits
func (h *Handler) GrantCredit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid client id")
		return
	}

	var req CreditRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	c, err := h.service.GrantCredit(r.Context(), middleware.GetMerchantID(r.Context()), id, req.Amount, req.Description, req.DueDate)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrNotFound):
			response.NotFound(w, "Client not found")
		case errors.Is(err, ErrInvalidAmount):
			response.UnprocessableEntity(w, "INVALID_AMOUNT", "Amount must be greater than zero")
		case errors.Is(err, ErrMissingDescription):
			response.UnprocessableEntity(w, "MISSING_DESCRIPTION", "Description is required")
		case errors.Is(err, ErrExceedsAvailableCredit):
			response.UnprocessableEntity(w, "EXCEEDS_AVAILABLE_CREDIT", "Credit exceeds the client's available limit")
		default:
			log.Error().Err(err).Str("client_id", id.String()).Msg("failed to grant credit")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, client.NewClientResponse(c))
}
