package memory

import (
	"context"
	"sync"

	"hr-assistant/internal/leave"
	"hr-assistant/internal/leave/repository"
)

type implRepository struct {
	mu      sync.RWMutex
	applied map[string][]leave.Application
}

// New creates an in-memory leave repository seeded with demo data.
func New() repository.Repository {
	return &implRepository{applied: make(map[string][]leave.Application)}
}

func (r *implRepository) Balances(_ context.Context, _ string) ([]leave.Balance, error) {
	out := make([]leave.Balance, len(seedBalances))
	copy(out, seedBalances)
	return out, nil
}

// Pending returns the seeded applications followed by the user's own, oldest first.
func (r *implRepository) Pending(_ context.Context, userID string) ([]leave.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	own := r.applied[userID]
	out := make([]leave.Application, 0, len(seedPending)+len(own))
	out = append(out, seedPending...)
	out = append(out, own...)
	return out, nil
}

func (r *implRepository) Save(_ context.Context, userID string, app leave.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applied[userID] = append(r.applied[userID], app)
	return nil
}
