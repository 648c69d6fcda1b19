package merchant

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents merchant standing
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Merchant represents a store enrolled in the crediário program.
// TotalClients and TotalDebt are aggregate counters maintained through
// admin edits, mirroring the directory they summarize.
type Merchant struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string
	Address      string
	Status       Status
	CreatedAt    time.Time
	TotalClients int
	TotalDebt    decimal.Decimal
}

// IsActive returns true when the merchant may operate
func (m *Merchant) IsActive() bool {
	return m.Status == StatusActive
}
