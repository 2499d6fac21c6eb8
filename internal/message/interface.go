package message

import "context"

// UseCase answers one conversational turn.
type UseCase interface {
	// Process routes the latest user turn and returns the agent's answer.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
}

// IntentRecorder is told about every routing decision. Used for metrics.
type IntentRecorder interface {
	ObserveIntent(intent, source string)
}
