package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordStatus tracks one ledger entry's lifecycle
type RecordStatus string

const (
	RecordPending RecordStatus = "pending"
	RecordPaid    RecordStatus = "paid"
	RecordOverdue RecordStatus = "overdue"
)

// DefaultTermDays is the due-date policy when the caller supplies none.
const DefaultTermDays = 30

// CreditRecord is one credit grant in a client's ledger. Records are
// appended on grants and settled oldest-due-first by payments.
type CreditRecord struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	Amount      decimal.Decimal
	Description string
	DueDate     time.Time
	Status      RecordStatus
	CreatedAt   time.Time
	PaidAt      *time.Time
}

// IsSettled returns true once the record has been paid off
func (r *CreditRecord) IsSettled() bool {
	return r.Status == RecordPaid
}

// IsPastDue returns true when an unpaid record's due date has passed
func (r *CreditRecord) IsPastDue(now time.Time) bool {
	return r.Status != RecordPaid && r.DueDate.Before(now)
}
