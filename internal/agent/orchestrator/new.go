package orchestrator

import (
	"hr-assistant/internal/agent"
	pkgLog "hr-assistant/pkg/log"
)

// Orchestrator dispatches a classified query to its domain agent.
type Orchestrator struct {
	registry  *agent.Registry
	augmenter *agent.Augmenter
	l         pkgLog.Logger
}

// New creates an Orchestrator. augmenter may be nil.
func New(registry *agent.Registry, augmenter *agent.Augmenter, l pkgLog.Logger) *Orchestrator {
	if registry == nil {
		registry = agent.NewRegistry()
	}
	return &Orchestrator{
		registry:  registry,
		augmenter: augmenter,
		l:         l,
	}
}
