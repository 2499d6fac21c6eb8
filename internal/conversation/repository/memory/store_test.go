package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-assistant/internal/conversation"
	pkgLog "hr-assistant/pkg/log"
)

func newTestStore(ttl time.Duration) conversation.Store {
	return New(Config{TTL: ttl}, pkgLog.NewNop())
}

func TestStore_SetGetClear(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(time.Minute)

	_, ok, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "u1", conversation.NewState("u1", conversation.FlowRegularization)))

	got, ok, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, conversation.FlowRegularization, got.Flow)
	assert.Empty(t, got.CollectedFields)
	assert.False(t, got.UpdatedAt.IsZero())

	require.NoError(t, s.Clear(ctx, "u1"))
	_, ok, _ = s.Get(ctx, "u1")
	assert.False(t, ok)
}

func TestStore_SetReplacesPriorFlow(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(time.Minute)

	require.NoError(t, s.Set(ctx, "u1", conversation.NewState("u1", conversation.FlowRegularization)))
	_, err := s.Update(ctx, "u1", map[string]string{"date": "2024-01-15"})
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "u1", conversation.NewState("u1", conversation.FlowLeaveApplication)))

	got, ok, _ := s.Get(ctx, "u1")
	require.True(t, ok)
	assert.Equal(t, conversation.FlowLeaveApplication, got.Flow)
	assert.Empty(t, got.CollectedFields)
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("last write wins", func(t *testing.T) {
		s := newTestStore(time.Minute)
		require.NoError(t, s.Set(ctx, "u1", conversation.NewState("u1", conversation.FlowRegularization)))

		_, err := s.Update(ctx, "u1", map[string]string{"date": "2024-01-15", "reason": "late_arrival"})
		require.NoError(t, err)
		got, err := s.Update(ctx, "u1", map[string]string{"date": "2024-01-16"})
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"date": "2024-01-16", "reason": "late_arrival"}, got.CollectedFields)
	})

	t.Run("no state", func(t *testing.T) {
		s := newTestStore(time.Minute)
		_, err := s.Update(ctx, "ghost", map[string]string{"date": "2024-01-15"})
		assert.ErrorIs(t, err, conversation.ErrNoActiveState)
	})

	t.Run("empty user id", func(t *testing.T) {
		s := newTestStore(time.Minute)
		_, err := s.Update(ctx, "", nil)
		assert.ErrorIs(t, err, conversation.ErrEmptyUserID)
	})
}

func TestStore_Expiry(t *testing.T) {
	ctx := context.Background()
	ttl := 50 * time.Millisecond
	s := newTestStore(ttl)

	require.NoError(t, s.Set(ctx, "u1", conversation.NewState("u1", conversation.FlowRegularization)))
	_, err := s.Update(ctx, "u1", map[string]string{"date": "2024-01-15"})
	require.NoError(t, err)

	time.Sleep(3 * ttl)

	_, ok, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok, "state must expire regardless of progress")

	_, err = s.Update(ctx, "u1", map[string]string{"reason": "other"})
	assert.ErrorIs(t, err, conversation.ErrNoActiveState)
}

func TestStore_WriteRestartsTTL(t *testing.T) {
	ctx := context.Background()
	ttl := 200 * time.Millisecond
	s := newTestStore(ttl)

	require.NoError(t, s.Set(ctx, "u1", conversation.NewState("u1", conversation.FlowRegularization)))
	time.Sleep(ttl / 2)
	_, err := s.Update(ctx, "u1", map[string]string{"date": "2024-01-15"})
	require.NoError(t, err)
	time.Sleep(ttl / 2)

	_, ok, _ := s.Get(ctx, "u1")
	assert.True(t, ok, "update should have restarted the timer")
}

func TestStore_ConcurrentUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("user-%d", i)
			_ = s.Set(ctx, id, conversation.NewState(id, conversation.FlowLeaveApplication))
			_, _ = s.Update(ctx, id, map[string]string{"leaveType": "sick_leave"})
			_, _, _ = s.Get(ctx, id)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		got, ok, err := s.Get(ctx, fmt.Sprintf("user-%d", i))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "sick_leave", got.CollectedFields["leaveType"])
	}
}
