package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/crediario/crediario-api/internal/domain/client"
)

// Service handles point-of-sale ledger operations. Every mutation is
// all-or-nothing: a rejected operation leaves both the client balance and
// the credit records untouched.
type Service struct {
	records Repository
	clients client.Repository
	now     func() time.Time
}

// NewService creates ledger service
func NewService(records Repository, clients client.Repository) *Service {
	return &Service{
		records: records,
		clients: clients,
		now:     time.Now,
	}
}

// WithClock overrides the service clock. Used by tests and the sweeper.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// RecordPayment pays amount off the client's debt and settles the
// client's open credit records oldest-due-first with the paid amount.
func (s *Service) RecordPayment(ctx context.Context, merchantID, clientID uuid.UUID, amount decimal.Decimal) (*client.Client, error) {
	now := s.now()

	updated, err := s.clients.Update(ctx, clientID, func(c *client.Client) error {
		if c.MerchantID != merchantID {
			return client.ErrNotFound
		}
		next, err := ApplyPayment(*c, amount, now)
		if err != nil {
			return err
		}
		*c = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.settleRecords(ctx, clientID, amount, now)

	log.Info().
		Str("client_id", clientID.String()).
		Str("amount", amount.String()).
		Str("debt", updated.CurrentDebt.String()).
		Msg("payment recorded")

	return updated, nil
}

// GrantCredit adds a new crediário purchase to the client's debt and
// appends the matching pending credit record. dueDate nil means the
// default term of DefaultTermDays from now.
func (s *Service) GrantCredit(ctx context.Context, merchantID, clientID uuid.UUID, amount decimal.Decimal, description string, dueDate *time.Time) (*client.Client, error) {
	now := s.now()

	due := now.AddDate(0, 0, DefaultTermDays)
	if dueDate != nil {
		due = *dueDate
	}

	updated, err := s.clients.Update(ctx, clientID, func(c *client.Client) error {
		if c.MerchantID != merchantID {
			return client.ErrNotFound
		}
		next, err := ApplyCredit(*c, amount, description)
		if err != nil {
			return err
		}
		*c = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	rec := &CreditRecord{
		ID:          uuid.New(),
		ClientID:    clientID,
		Amount:      amount,
		Description: description,
		DueDate:     due,
		Status:      RecordPending,
		CreatedAt:   now,
	}
	if err := s.records.Append(ctx, rec); err != nil {
		return nil, err
	}

	log.Info().
		Str("client_id", clientID.String()).
		Str("amount", amount.String()).
		Str("due_date", due.Format(time.RFC3339)).
		Msg("credit granted")

	return updated, nil
}

// ListRecords returns the client's ledger entries in grant order
func (s *Service) ListRecords(ctx context.Context, merchantID, clientID uuid.UUID) ([]CreditRecord, error) {
	c, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if c.MerchantID != merchantID {
		return nil, client.ErrNotFound
	}
	return s.records.ByClient(ctx, clientID), nil
}

// SweepOverdue applies the overdue rule: an unpaid record whose due date
// has passed becomes overdue, and a client holding any such record with
// nonzero debt becomes vencido. Returns the number of clients flipped.
func (s *Service) SweepOverdue(ctx context.Context, now time.Time) int {
	affected := s.records.SweepOverdue(ctx, func(rec *CreditRecord) bool {
		return rec.IsPastDue(now)
	})

	flipped := 0
	for _, clientID := range affected {
		_, err := s.clients.Update(ctx, clientID, func(c *client.Client) error {
			if !c.HasDebt() || c.PaymentStatus == client.StatusOverdue {
				return errNoChange
			}
			c.PaymentStatus = client.StatusOverdue
			return nil
		})
		if err == nil {
			flipped++
		}
	}

	if len(affected) > 0 {
		log.Info().
			Int("records_overdue", len(affected)).
			Int("clients_flipped", flipped).
			Msg("overdue sweep completed")
	}

	return flipped
}

// settleRecords walks the client's unsettled records oldest-due-first and
// marks each fully covered by the remaining payment as paid. A partially
// covered record stays open.
func (s *Service) settleRecords(ctx context.Context, clientID uuid.UUID, paid decimal.Decimal, now time.Time) {
	remaining := paid
	for _, rec := range s.records.UnpaidByClient(ctx, clientID) {
		if remaining.LessThan(rec.Amount) {
			break
		}
		remaining = remaining.Sub(rec.Amount)
		paidAt := now
		if err := s.records.Settle(ctx, rec.ID, func(r *CreditRecord) error {
			r.Status = RecordPaid
			r.PaidAt = &paidAt
			return nil
		}); err != nil {
			log.Error().Err(err).Str("record_id", rec.ID.String()).Msg("failed to settle credit record")
		}
	}
}
