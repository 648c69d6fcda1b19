package client

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents a client's standing in the crediário
type PaymentStatus string

const (
	StatusCurrent PaymentStatus = "em_dia"
	StatusDueSoon PaymentStatus = "a_vencer"
	StatusOverdue PaymentStatus = "vencido"
)

// Client represents a crediário customer of one merchant.
// Invariant: 0 <= CurrentDebt <= CreditLimit after every mutation.
type Client struct {
	ID            uuid.UUID
	Name          string
	CPF           string
	Email         string
	Phone         string
	Address       string
	CreditLimit   decimal.Decimal
	CurrentDebt   decimal.Decimal
	PaymentStatus PaymentStatus
	LastPayment   time.Time
	CreatedAt     time.Time
	MerchantID    uuid.UUID
}

// AvailableCredit returns the headroom for new grants
func (c *Client) AvailableCredit() decimal.Decimal {
	return c.CreditLimit.Sub(c.CurrentDebt)
}

// HasDebt returns true when the client owes anything
func (c *Client) HasDebt() bool {
	return c.CurrentDebt.IsPositive()
}

// NormalizeCPF strips every non-digit character from a CPF or query so
// "123.456.789-00" and "12345678900" compare equal.
func NormalizeCPF(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPaymentStatus checks if status is one of the closed set
func IsValidPaymentStatus(status string) bool {
	switch PaymentStatus(status) {
	case StatusCurrent, StatusDueSoon, StatusOverdue:
		return true
	}
	return false
}
