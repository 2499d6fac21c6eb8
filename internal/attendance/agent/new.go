package agent

import (
	hragent "hr-assistant/internal/agent"
	"hr-assistant/internal/attendance"
	"hr-assistant/internal/flow"
	pkgLog "hr-assistant/pkg/log"
)

// Agent answers attendance questions and runs the regularization flow.
type Agent struct {
	l      pkgLog.Logger
	uc     attendance.UseCase
	engine *flow.Engine
	aug    *hragent.Augmenter
}

// New creates the attendance agent. aug may be nil.
func New(l pkgLog.Logger, uc attendance.UseCase, engine *flow.Engine, aug *hragent.Augmenter) *Agent {
	return &Agent{
		l:      l,
		uc:     uc,
		engine: engine,
		aug:    aug,
	}
}
