package client

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/crediario/crediario-api/internal/middleware"
	"github.com/crediario/crediario-api/internal/pkg/response"
	"github.com/crediario/crediario-api/internal/pkg/validator"
)

// Handler handles client directory HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates client handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /clients?query=&status=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	merchantID := middleware.GetMerchantID(r.Context())

	status := r.URL.Query().Get("status")
	if status == "all" {
		status = ""
	}
	if status != "" && !IsValidPaymentStatus(status) {
		response.BadRequest(w, "Invalid payment status filter")
		return
	}

	clients, err := h.service.Search(r.Context(), Filter{
		MerchantID: merchantID,
		Query:      r.URL.Query().Get("query"),
		Status:     PaymentStatus(status),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list clients")
		response.InternalError(w)
		return
	}

	response.OK(w, NewClientListResponse(clients))
}

// Get handles GET /clients/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid client id")
		return
	}

	c, err := h.service.Get(r.Context(), middleware.GetMerchantID(r.Context()), id)
	if err != nil {
		response.NotFound(w, "Client not found")
		return
	}

	response.OK(w, NewClientResponse(c))
}

// Create handles POST /clients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	c, err := h.service.Create(r.Context(), middleware.GetMerchantID(r.Context()), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidBalance):
			response.UnprocessableEntity(w, "INVALID_BALANCE", "Debt and limit must be non-negative and debt must not exceed limit")
		default:
			log.Error().Err(err).Str("name", req.Name).Msg("failed to create client")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, NewClientResponse(c))
}

// Update handles PUT /clients/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid client id")
		return
	}

	var req UpsertRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	c, err := h.service.Update(r.Context(), middleware.GetMerchantID(r.Context()), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Client not found")
		case errors.Is(err, ErrInvalidBalance):
			response.UnprocessableEntity(w, "INVALID_BALANCE", "Debt and limit must be non-negative and debt must not exceed limit")
		default:
			log.Error().Err(err).Str("client_id", id.String()).Msg("failed to update client")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, NewClientResponse(c))
}

// SendReminder handles POST /clients/{id}/reminders
func (h *Handler) SendReminder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid client id")
		return
	}

	var req ReminderRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.SendReminder(r.Context(), middleware.GetMerchantID(r.Context()), id, req.Kind)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Client not found")
		case errors.Is(err, ErrReminderNotApplicable):
			response.UnprocessableEntity(w, "REMINDER_NOT_APPLICABLE", "Reminder kind does not match client status")
		case errors.Is(err, ErrInvalidReminderKind):
			response.BadRequest(w, "Invalid reminder kind")
		default:
			log.Error().Err(err).Str("client_id", id.String()).Msg("failed to send reminder")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, result)
}
