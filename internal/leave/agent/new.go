package agent

import (
	hragent "hr-assistant/internal/agent"
	"hr-assistant/internal/flow"
	"hr-assistant/internal/leave"
	pkgLog "hr-assistant/pkg/log"
)

// Agent answers leave questions and runs the leave application flow.
type Agent struct {
	l      pkgLog.Logger
	uc     leave.UseCase
	engine *flow.Engine
	aug    *hragent.Augmenter
}

// New creates the leave agent. aug may be nil.
func New(l pkgLog.Logger, uc leave.UseCase, engine *flow.Engine, aug *hragent.Augmenter) *Agent {
	return &Agent{
		l:      l,
		uc:     uc,
		engine: engine,
		aug:    aug,
	}
}
