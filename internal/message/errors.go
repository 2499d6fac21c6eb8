package message

import "errors"

// Domain-specific errors for the message package.
var (
	ErrEmptyContents = errors.New("contents is empty")
	ErrMissingUserID = errors.New("user id is empty")
)
