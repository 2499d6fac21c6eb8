package usecase

import (
	"time"

	"hr-assistant/internal/holiday/repository"
	"hr-assistant/pkg/datemath"
	pkgLog "hr-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new holiday UseCase instance. dateMath decides what "today" is.
func New(l pkgLog.Logger, repo repository.Repository, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		now:      time.Now,
	}
}
