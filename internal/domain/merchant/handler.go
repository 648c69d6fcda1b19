package merchant

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/crediario/crediario-api/internal/pkg/response"
	"github.com/crediario/crediario-api/internal/pkg/validator"
)

// Handler handles merchant HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates merchant handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /merchants?query=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	merchants, err := h.service.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		log.Error().Err(err).Msg("failed to list merchants")
		response.InternalError(w)
		return
	}

	response.OK(w, NewMerchantListResponse(merchants))
}

// Get handles GET /merchants/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid merchant id")
		return
	}

	m, err := h.service.Get(r.Context(), id)
	if err != nil {
		response.NotFound(w, "Merchant not found")
		return
	}

	response.OK(w, NewMerchantResponse(m))
}

// Create handles POST /merchants
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	m, err := h.service.Create(r.Context(), &req)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to create merchant")
		response.InternalError(w)
		return
	}

	response.Created(w, NewMerchantResponse(m))
}

// Update handles PUT /merchants/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid merchant id")
		return
	}

	var req UpdateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	m, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Merchant not found")
		default:
			log.Error().Err(err).Str("merchant_id", id.String()).Msg("failed to update merchant")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, NewMerchantResponse(m))
}

// Delete handles DELETE /merchants/{id}?confirm=true
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid merchant id")
		return
	}

	confirmed := r.URL.Query().Get("confirm") == "true"

	if err := h.service.Delete(r.Context(), id, confirmed); err != nil {
		switch {
		case errors.Is(err, ErrConfirmationRequired):
			response.Error(w, http.StatusBadRequest, "CONFIRMATION_REQUIRED", "Deletion is irreversible and requires confirm=true")
		case errors.Is(err, ErrNotFound):
			response.NotFound(w, "Merchant not found")
		default:
			log.Error().Err(err).Str("merchant_id", id.String()).Msg("failed to delete merchant")
			response.InternalError(w)
		}
		return
	}

	response.NoContent(w)
}
