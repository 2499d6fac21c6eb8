package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-assistant/internal/leave"
)

func TestRepository_SeedAndSave(t *testing.T) {
	ctx := context.Background()
	repo := New()

	balances, err := repo.Balances(ctx, "user123")
	require.NoError(t, err)
	require.Len(t, balances, 4)
	assert.Equal(t, leave.Balance{Type: "Casual Leave (CL)", Total: 12, Used: 3, Available: 9}, balances[0])

	balances[0].Available = 0
	again, _ := repo.Balances(ctx, "user123")
	assert.Equal(t, 9, again[0].Available, "callers must not mutate the seed")

	pending, err := repo.Pending(ctx, "user123")
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "leave_001", pending[0].ID)

	require.NoError(t, repo.Save(ctx, "user123", leave.Application{ID: "leave_x", Type: "Sick Leave (SL)"}))

	pending, _ = repo.Pending(ctx, "user123")
	require.Len(t, pending, 3)
	assert.Equal(t, "leave_x", pending[2].ID)

	other, _ := repo.Pending(ctx, "someone-else")
	assert.Len(t, other, 2)
}
