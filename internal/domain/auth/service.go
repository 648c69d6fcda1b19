package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/crediario/crediario-api/internal/domain/user"
	"github.com/crediario/crediario-api/internal/pkg/jwt"
	"github.com/crediario/crediario-api/internal/pkg/password"
)

// Service handles authentication business logic
type Service struct {
	userRepo   user.Repository
	jwtService *jwt.Service
}

// NewService creates auth service
func NewService(userRepo user.Repository, jwtService *jwt.Service) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login authenticates an operator against the seeded user store
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)

	// 1. Find user
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Verify password
	if !password.Verify(req.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// 3. Generate token
	accessToken, err := s.jwtService.GenerateAccessToken(u.ID, string(u.Role), u.MerchantID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User: NewActorResponse(u.ID, u.Email, u.Name, string(u.Role), u.MerchantID, u.CreatedAt),
		Token: TokenResponse{
			AccessToken: accessToken,
			ExpiresIn:   int(s.jwtService.GetAccessTTL().Seconds()),
			TokenType:   "Bearer",
		},
	}, nil
}

// GetCurrentUser returns the authenticated actor by ID
func (s *Service) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*ActorResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}

	resp := NewActorResponse(u.ID, u.Email, u.Name, string(u.Role), u.MerchantID, u.CreatedAt)
	return &resp, nil
}
