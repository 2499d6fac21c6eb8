package flow

import (
	"context"
	"time"

	"hr-assistant/internal/conversation"
	"hr-assistant/internal/model"
)

// Submitter performs a flow's terminal action with the collected fields.
type Submitter func(ctx context.Context, userID string, fields map[string]string) (model.AgentResponse, error)

// Observer is told about every status change. Used for metrics.
type Observer interface {
	ObserveTransition(flow conversation.Flow, from, to Status)
}

// DateResolver turns user date input such as "yesterday" into YYYY-MM-DD.
type DateResolver interface {
	Resolve(expr string, base time.Time) (string, bool)
}
