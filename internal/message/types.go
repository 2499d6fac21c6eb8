package message

import (
	"hr-assistant/internal/model"
	"hr-assistant/internal/router"
)

// ProcessInput is one inbound conversation.
type ProcessInput struct {
	UserID   string
	Contents []model.Turn
}

// ProcessOutput is the answer plus how it was routed.
type ProcessOutput struct {
	Response model.AgentResponse
	Route    router.RouterOutput
}
