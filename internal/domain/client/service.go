package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Reminder kinds a merchant may send
const (
	ReminderOverdue   = "overdue"
	ReminderUpcoming  = "upcoming"
	ReminderPromotion = "promotion"
)

// Service handles client directory business logic
type Service struct {
	repo Repository
}

// NewService creates client service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new client for the merchant with a fresh id
func (s *Service) Create(ctx context.Context, merchantID uuid.UUID, req *UpsertRequest) (*Client, error) {
	if err := validateBalance(req); err != nil {
		return nil, err
	}

	status := PaymentStatus(req.PaymentStatus)
	if status == "" {
		status = StatusCurrent
	}

	now := time.Now()
	c := &Client{
		ID:            uuid.New(),
		Name:          req.Name,
		CPF:           req.CPF,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		CreditLimit:   req.CreditLimit,
		CurrentDebt:   req.CurrentDebt,
		PaymentStatus: status,
		LastPayment:   now,
		CreatedAt:     now,
		MerchantID:    merchantID,
	}

	if err := s.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}

	log.Info().Str("client_id", c.ID.String()).Str("merchant_id", merchantID.String()).Msg("client created")
	return c, nil
}

// Update replaces an existing client of the merchant in place
func (s *Service) Update(ctx context.Context, merchantID, id uuid.UUID, req *UpsertRequest) (*Client, error) {
	if err := validateBalance(req); err != nil {
		return nil, err
	}

	existing, err := s.getScoped(ctx, merchantID, id)
	if err != nil {
		return nil, err
	}

	status := PaymentStatus(req.PaymentStatus)
	if status == "" {
		status = existing.PaymentStatus
	}

	updated := &Client{
		ID:            existing.ID,
		Name:          req.Name,
		CPF:           req.CPF,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		CreditLimit:   req.CreditLimit,
		CurrentDebt:   req.CurrentDebt,
		PaymentStatus: status,
		LastPayment:   existing.LastPayment,
		CreatedAt:     existing.CreatedAt,
		MerchantID:    existing.MerchantID,
	}

	if err := s.repo.Upsert(ctx, updated); err != nil {
		return nil, err
	}

	log.Info().Str("client_id", id.String()).Msg("client updated")
	return updated, nil
}

// Get returns one client of the merchant
func (s *Service) Get(ctx context.Context, merchantID, id uuid.UUID) (*Client, error) {
	return s.getScoped(ctx, merchantID, id)
}

// Search lists the merchant's clients matching query and status filter
func (s *Service) Search(ctx context.Context, f Filter) ([]Client, error) {
	if f.Status != "" && !IsValidPaymentStatus(string(f.Status)) {
		f.Status = ""
	}
	return s.repo.Search(ctx, f)
}

// Lookup finds the first client matching a point-of-sale query
func (s *Service) Lookup(ctx context.Context, merchantID uuid.UUID, query string) (*Client, error) {
	return s.repo.FindFirst(ctx, merchantID, query)
}

// SendReminder composes a payment reminder or promotion for one client.
// The message is returned to the caller and logged; delivery is a UI
// collaborator concern. Each kind only applies to the matching status.
func (s *Service) SendReminder(ctx context.Context, merchantID, id uuid.UUID, kind string) (*ReminderResponse, error) {
	c, err := s.getScoped(ctx, merchantID, id)
	if err != nil {
		return nil, err
	}

	var message string
	switch kind {
	case ReminderOverdue:
		if c.PaymentStatus != StatusOverdue {
			return nil, ErrReminderNotApplicable
		}
		message = fmt.Sprintf("Olá %s, você possui pagamentos em atraso. Por favor, regularize sua situação.", c.Name)
	case ReminderUpcoming:
		if c.PaymentStatus != StatusDueSoon {
			return nil, ErrReminderNotApplicable
		}
		message = fmt.Sprintf("Olá %s, você possui pagamentos próximos do vencimento.", c.Name)
	case ReminderPromotion:
		if c.PaymentStatus != StatusCurrent {
			return nil, ErrReminderNotApplicable
		}
		message = fmt.Sprintf("Olá %s, oferta especial para clientes com bom histórico!", c.Name)
	default:
		return nil, ErrInvalidReminderKind
	}

	log.Info().
		Str("client_id", c.ID.String()).
		Str("kind", kind).
		Msg("reminder sent")

	return &ReminderResponse{ClientID: c.ID, Kind: kind, Message: message}, nil
}

// validateBalance guards the directory invariant: 0 <= debt <= limit.
// The ledger maintains it on payments and grants; admin edits must not be
// able to break it either.
func validateBalance(req *UpsertRequest) error {
	if req.CreditLimit.IsNegative() || req.CurrentDebt.IsNegative() {
		return ErrInvalidBalance
	}
	if req.CurrentDebt.GreaterThan(req.CreditLimit) {
		return ErrInvalidBalance
	}
	return nil
}

// getScoped loads a client and hides other merchants' clients behind
// ErrNotFound rather than a permission error.
func (s *Service) getScoped(ctx context.Context, merchantID, id uuid.UUID) (*Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.MerchantID != merchantID {
		return nil, ErrNotFound
	}
	return c, nil
}
