package memory

import (
	"context"
	"fmt"

	"hr-assistant/internal/holiday"
	"hr-assistant/internal/holiday/repository"
)

type implRepository struct {
	holidays []holiday.Holiday
}

// New creates an in-memory holiday calendar for year.
func New(year int) repository.Repository {
	holidays := make([]holiday.Holiday, len(seed))
	for i, h := range seed {
		h.Date = fmt.Sprintf("%04d-%s", year, h.Date)
		holidays[i] = h
	}
	return &implRepository{holidays: holidays}
}

func (r *implRepository) List(_ context.Context) ([]holiday.Holiday, error) {
	out := make([]holiday.Holiday, len(r.holidays))
	copy(out, r.holidays)
	return out, nil
}
