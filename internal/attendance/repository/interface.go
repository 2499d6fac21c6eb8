package repository

import (
	"context"

	"hr-assistant/internal/attendance"
)

// Repository is the data access interface of the attendance domain.
type Repository interface {
	Status(ctx context.Context, userID string) (attendance.Summary, error)
	SaveRegularization(ctx context.Context, reg attendance.Regularization) error
}
