package usecase

import (
	"time"

	"hr-assistant/internal/attendance/repository"
	"hr-assistant/pkg/datemath"
	pkgLog "hr-assistant/pkg/log"
	"hr-assistant/pkg/teams"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	teams    *teams.Client
	now      func() time.Time
}

// New creates a new attendance UseCase instance. dateMath is required,
// teamsClient may be nil.
func New(l pkgLog.Logger, repo repository.Repository, dateMath *datemath.Parser, teamsClient *teams.Client) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		teams:    teamsClient,
		now:      time.Now,
	}
}
