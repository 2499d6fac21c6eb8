package conversation

import (
	"time"
)

// Flow names a multi-turn procedure.
type Flow string

const (
	FlowRegularization   Flow = "regularization"
	FlowLeaveApplication Flow = "leaveApplication"
)

// DefaultTTL is how long an untouched state survives.
const DefaultTTL = 30 * time.Minute

// State is the in-progress flow of one user.
type State struct {
	UserID          string            `json:"userId"`
	Flow            Flow              `json:"flow"`
	CollectedFields map[string]string `json:"collectedFields"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// NewState starts an empty state for flow.
func NewState(userID string, flow Flow) State {
	return State{
		UserID:          userID,
		Flow:            flow,
		CollectedFields: map[string]string{},
	}
}

// Merge overwrites collected fields with every key in fields. Last write wins,
// including fields confirmed in earlier turns.
func (s State) Merge(fields map[string]string) State {
	merged := make(map[string]string, len(s.CollectedFields)+len(fields))
	for k, v := range s.CollectedFields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	s.CollectedFields = merged
	return s
}
