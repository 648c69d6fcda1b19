// Package ledger implements the crediário debt arithmetic and the
// point-of-sale operations over it: recording payments and granting new
// credit. ApplyPayment and ApplyCredit are pure; they take a client
// snapshot and return a new snapshot or a rejection, never clamping
// out-of-range input.
package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crediario/crediario-api/internal/domain/client"
)

// ApplyPayment returns the client after paying amount off its debt.
//
// Constraints: amount > 0 and amount <= CurrentDebt. On success the debt
// shrinks by amount and LastPayment is stamped; PaymentStatus is forced
// to em_dia only when the debt reaches exactly zero, otherwise it is left
// as-is rather than recomputed.
func ApplyPayment(c client.Client, amount decimal.Decimal, now time.Time) (client.Client, error) {
	if !amount.IsPositive() {
		return client.Client{}, ErrInvalidAmount
	}
	if amount.GreaterThan(c.CurrentDebt) {
		return client.Client{}, ErrExceedsDebt
	}

	c.CurrentDebt = c.CurrentDebt.Sub(amount)
	c.LastPayment = now
	if c.CurrentDebt.IsZero() {
		c.PaymentStatus = client.StatusCurrent
	}
	return c, nil
}

// ApplyCredit returns the client after granting amount of new credit.
//
// Constraints: amount > 0, description non-empty, amount <=
// AvailableCredit. On success the debt grows by amount and PaymentStatus
// is forced to a_vencer regardless of its prior value.
func ApplyCredit(c client.Client, amount decimal.Decimal, description string) (client.Client, error) {
	if !amount.IsPositive() {
		return client.Client{}, ErrInvalidAmount
	}
	if strings.TrimSpace(description) == "" {
		return client.Client{}, ErrMissingDescription
	}
	if amount.GreaterThan(c.AvailableCredit()) {
		return client.Client{}, ErrExceedsAvailableCredit
	}

	c.CurrentDebt = c.CurrentDebt.Add(amount)
	c.PaymentStatus = client.StatusDueSoon
	return c, nil
}
