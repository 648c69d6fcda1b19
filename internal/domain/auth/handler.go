package auth

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/crediario/crediario-api/internal/middleware"
	"github.com/crediario/crediario-api/internal/pkg/response"
	"github.com/crediario/crediario-api/internal/pkg/validator"
)

// Handler handles auth HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates auth handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid email or password")
		default:
			log.Error().Err(err).Str("email", req.Email).Msg("failed to login user")
			response.InternalError(w)
		}
		return
	}

	log.Info().Str("email", req.Email).Str("role", result.User.Role).Msg("user logged in")
	response.OK(w, result)
}

// Me handles GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	actor, err := h.service.GetCurrentUser(r.Context(), userID)
	if err != nil {
		response.Unauthorized(w, "User not found")
		return
	}

	response.OK(w, actor)
}
