package datemath

import "errors"

var (
	ErrUnrecognized = errors.New("unrecognized date expression")
	ErrInvalidDate  = errors.New("invalid calendar date")
)
