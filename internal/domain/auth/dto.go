package auth

import (
	"time"

	"github.com/google/uuid"
)

// LoginRequest for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse returned after login
type AuthResponse struct {
	User  ActorResponse `json:"user"`
	Token TokenResponse `json:"token"`
}

// ActorResponse represents the authenticated actor in API responses
type ActorResponse struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	MerchantID *uuid.UUID `json:"merchant_id,omitempty"`
	CreatedAt  string     `json:"created_at"`
}

// TokenResponse represents the access token in API responses
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"` // seconds until access token expires
	TokenType   string `json:"token_type"`
}

// NewActorResponse creates ActorResponse from user data
func NewActorResponse(id uuid.UUID, email, name, role string, merchantID *uuid.UUID, createdAt time.Time) ActorResponse {
	return ActorResponse{
		ID:         id,
		Email:      email,
		Name:       name,
		Role:       role,
		MerchantID: merchantID,
		CreatedAt:  createdAt.Format(time.RFC3339),
	}
}
