package leave

import "context"

// UseCase defines the business logic interface for the leave domain.
type UseCase interface {
	// Summary returns the user's balance and pending applications.
	Summary(ctx context.Context, userID string) (Summary, error)

	// Apply records a pending application.
	Apply(ctx context.Context, userID string, input ApplyInput) (Application, error)
}
