package memory

import (
	"context"
	"sync"

	"hr-assistant/internal/attendance"
	"hr-assistant/internal/attendance/repository"
)

type implRepository struct {
	mu              sync.RWMutex
	regularizations map[string]attendance.Regularization
}

// New creates an in-memory attendance repository. Every user sees the demo month.
func New() repository.Repository {
	return &implRepository{regularizations: make(map[string]attendance.Regularization)}
}

func (r *implRepository) Status(_ context.Context, userID string) (attendance.Summary, error) {
	s := seedSummary
	s.UserID = userID
	s.Irregularities = append([]attendance.Irregularity(nil), seedSummary.Irregularities...)
	s.Records = append([]attendance.Record(nil), seedSummary.Records...)
	return s, nil
}

func (r *implRepository) SaveRegularization(_ context.Context, reg attendance.Regularization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.regularizations[reg.ID] = reg
	return nil
}
