package conversation

import "errors"

var (
	ErrNoActiveState = errors.New("no active conversation state")
	ErrEmptyUserID   = errors.New("user id is empty")
)
