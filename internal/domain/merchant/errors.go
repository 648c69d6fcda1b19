package merchant

import "errors"

var (
	ErrNotFound             = errors.New("merchant not found")
	ErrConfirmationRequired = errors.New("deletion requires explicit confirmation")
)
