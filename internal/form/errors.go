package form

import "errors"

var ErrUnknownFlow = errors.New("unknown flow")
