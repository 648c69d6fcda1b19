package client

import "errors"

var (
	ErrNotFound              = errors.New("client not found")
	ErrInvalidBalance        = errors.New("debt and limit must be non-negative and debt must not exceed limit")
	ErrReminderNotApplicable = errors.New("reminder does not apply to client status")
	ErrInvalidReminderKind   = errors.New("invalid reminder kind")
)
