package usecase

import (
	"hr-assistant/internal/agent/orchestrator"
	"hr-assistant/internal/conversation"
	"hr-assistant/internal/message"
	"hr-assistant/internal/router"
	pkgLog "hr-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	router   router.Router
	orch     *orchestrator.Orchestrator
	store    conversation.Store
	recorder message.IntentRecorder
}

// New creates a new message UseCase instance. recorder may be nil.
func New(l pkgLog.Logger, r router.Router, orch *orchestrator.Orchestrator, store conversation.Store, recorder message.IntentRecorder) message.UseCase {
	return &implUseCase{
		l:        l,
		router:   r,
		orch:     orch,
		store:    store,
		recorder: recorder,
	}
}
