package repository

import (
	"context"

	"hr-assistant/internal/holiday"
)

// Repository lists the holidays of the configured calendar year.
type Repository interface {
	List(ctx context.Context) ([]holiday.Holiday, error)
}
