package usecase

import (
	"time"

	"hr-assistant/internal/leave/repository"
	pkgLog "hr-assistant/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	loc  *time.Location
	now  func() time.Time
}

// New creates a new leave UseCase instance. loc decides the applied date.
func New(l pkgLog.Logger, repo repository.Repository, loc *time.Location) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:    l,
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}
