package leave

import "errors"

// Domain-specific errors for the leave package.
var (
	ErrMissingField = errors.New("leave application is missing a required field")
)
