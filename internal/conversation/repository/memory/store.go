package memory

import (
	"context"

	"hr-assistant/internal/conversation"
)

func (s *implStore) Get(ctx context.Context, userID string) (conversation.State, bool, error) {
	if userID == "" {
		return conversation.State{}, false, conversation.ErrEmptyUserID
	}
	state, ok := s.states.Get(userID)
	return state, ok, nil
}

// Set replaces the user's state. Re-adding the key restarts its TTL.
func (s *implStore) Set(ctx context.Context, userID string, state conversation.State) error {
	if userID == "" {
		return conversation.ErrEmptyUserID
	}
	state.UserID = userID
	state.UpdatedAt = s.now()
	if state.CollectedFields == nil {
		state.CollectedFields = map[string]string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.states.Add(userID, state)
	return nil
}

func (s *implStore) Update(ctx context.Context, userID string, fields map[string]string) (conversation.State, error) {
	if userID == "" {
		return conversation.State{}, conversation.ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.states.Get(userID)
	if !ok {
		return conversation.State{}, conversation.ErrNoActiveState
	}
	merged := current.Merge(fields)
	merged.UpdatedAt = s.now()
	s.states.Add(userID, merged)
	return merged, nil
}

func (s *implStore) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return conversation.ErrEmptyUserID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.states.Remove(userID) {
		s.l.Debugf(ctx, "conversation.memory.Clear: removed state for %s", userID)
	}
	return nil
}
