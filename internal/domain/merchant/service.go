package merchant

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Service handles merchant management business logic
type Service struct {
	repo Repository
}

// NewService creates merchant service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new merchant
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Merchant, error) {
	status := Status(req.Status)
	if status == "" {
		status = StatusActive
	}

	m := &Merchant{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Status:       status,
		CreatedAt:    time.Now(),
		TotalClients: 0,
		TotalDebt:    decimal.Zero,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	log.Info().Str("merchant_id", m.ID.String()).Str("name", m.Name).Msg("merchant created")
	return m, nil
}

// Get returns one merchant by id
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Merchant, error) {
	return s.repo.GetByID(ctx, id)
}

// Search lists merchants matching the query by name or email
func (s *Service) Search(ctx context.Context, query string) ([]Merchant, error) {
	return s.repo.Search(ctx, query)
}

// Update edits an existing merchant in full
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Merchant, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.Status = Status(req.Status)
	existing.TotalClients = req.TotalClients
	existing.TotalDebt = req.TotalDebt

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	log.Info().Str("merchant_id", id.String()).Msg("merchant updated")
	return existing, nil
}

// Delete removes a merchant permanently. The caller must pass confirmed
// explicitly; without it the operation is rejected and nothing changes.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("merchant_id", id.String()).Msg("merchant deleted")
	return nil
}
