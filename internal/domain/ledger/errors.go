package ledger

import "errors"

var (
	// ErrInvalidAmount is returned when amount is <= 0
	ErrInvalidAmount = errors.New("invalid amount: must be greater than 0")

	// ErrExceedsDebt is returned when a payment is larger than the debt
	ErrExceedsDebt = errors.New("payment exceeds current debt")

	// ErrExceedsAvailableCredit is returned when a grant is larger than the headroom
	ErrExceedsAvailableCredit = errors.New("credit exceeds available limit")

	// ErrMissingDescription is returned when a grant has no description
	ErrMissingDescription = errors.New("description is required")
)

// errNoChange aborts an Update without treating it as a failure
var errNoChange = errors.New("no change")
