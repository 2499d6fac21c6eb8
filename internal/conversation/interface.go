package conversation

import "context"

// Store keeps at most one State per user id. Every write restarts the
// expiry timer; expiry happens regardless of flow progress.
//
// Concurrent requests for the same user id are last-write-wins.
type Store interface {
	Get(ctx context.Context, userID string) (State, bool, error)
	Set(ctx context.Context, userID string, state State) error
	// Update shallow-merges fields into the user's state and returns the result.
	// It returns ErrNoActiveState when the user has no state.
	Update(ctx context.Context, userID string, fields map[string]string) (State, error)
	Clear(ctx context.Context, userID string) error
}
