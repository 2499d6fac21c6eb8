package holiday

import "errors"

// Domain-specific errors for the holiday package.
var (
	ErrInvalidMonth = errors.New("month must be between January and December")
)
