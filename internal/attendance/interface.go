package attendance

import "context"

// UseCase defines the business logic interface for the attendance domain.
type UseCase interface {
	// Status returns the user's attendance summary.
	Status(ctx context.Context, userID string) (Summary, error)

	// Regularize submits a correction request for one day and notifies the approver.
	Regularize(ctx context.Context, userID string, input RegularizeInput) (RegularizeOutput, error)
}
