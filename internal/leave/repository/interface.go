package repository

import (
	"context"

	"hr-assistant/internal/leave"
)

// Repository is the data access interface of the leave domain.
type Repository interface {
	Balances(ctx context.Context, userID string) ([]leave.Balance, error)
	Pending(ctx context.Context, userID string) ([]leave.Application, error)
	Save(ctx context.Context, userID string, app leave.Application) error
}
