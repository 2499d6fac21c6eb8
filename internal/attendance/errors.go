package attendance

import "errors"

// Domain-specific errors for the attendance package.
var (
	ErrInvalidDate   = errors.New("regularization date is not a valid YYYY-MM-DD date")
	ErrMissingReason = errors.New("regularization reason is missing")
)
