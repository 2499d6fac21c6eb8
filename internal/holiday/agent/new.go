package agent

import (
	hragent "hr-assistant/internal/agent"
	"hr-assistant/internal/holiday"
	pkgLog "hr-assistant/pkg/log"
)

// Agent answers holiday questions.
type Agent struct {
	l   pkgLog.Logger
	uc  holiday.UseCase
	aug *hragent.Augmenter
}

// New creates the holiday agent. aug may be nil.
func New(l pkgLog.Logger, uc holiday.UseCase, aug *hragent.Augmenter) *Agent {
	return &Agent{l: l, uc: uc, aug: aug}
}
