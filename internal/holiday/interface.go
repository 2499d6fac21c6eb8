package holiday

import (
	"context"
	"time"
)

// UseCase defines the business logic interface for the holiday domain.
type UseCase interface {
	// All returns every holiday of the calendar year, by date.
	All(ctx context.Context) ([]Holiday, error)

	// Upcoming returns up to limit holidays from today on. limit <= 0 means no limit.
	Upcoming(ctx context.Context, limit int) ([]Upcoming, error)

	// ByMonth returns the holidays falling in month.
	ByMonth(ctx context.Context, month time.Month) ([]Holiday, error)
}
