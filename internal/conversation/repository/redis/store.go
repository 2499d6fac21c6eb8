package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"hr-assistant/internal/conversation"
)

func (s *implStore) Get(ctx context.Context, userID string) (conversation.State, bool, error) {
	if userID == "" {
		return conversation.State{}, false, conversation.ErrEmptyUserID
	}
	data, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return conversation.State{}, false, nil
		}
		return conversation.State{}, false, fmt.Errorf("redis get: %w", err)
	}

	var state conversation.State
	if err := json.Unmarshal(data, &state); err != nil {
		return conversation.State{}, false, fmt.Errorf("decode state: %w", err)
	}
	if state.CollectedFields == nil {
		state.CollectedFields = map[string]string{}
	}
	return state, true, nil
}

func (s *implStore) Set(ctx context.Context, userID string, state conversation.State) error {
	if userID == "" {
		return conversation.ErrEmptyUserID
	}
	state.UserID = userID
	state.UpdatedAt = time.Now().UTC()
	return s.write(ctx, state)
}

// Update is read-merge-write without a transaction. Two instances writing the
// same user concurrently resolve as last write wins.
func (s *implStore) Update(ctx context.Context, userID string, fields map[string]string) (conversation.State, error) {
	current, ok, err := s.Get(ctx, userID)
	if err != nil {
		return conversation.State{}, err
	}
	if !ok {
		return conversation.State{}, conversation.ErrNoActiveState
	}
	merged := current.Merge(fields)
	merged.UpdatedAt = time.Now().UTC()
	if err := s.write(ctx, merged); err != nil {
		return conversation.State{}, err
	}
	return merged, nil
}

func (s *implStore) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return conversation.ErrEmptyUserID
	}
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *implStore) write(ctx context.Context, state conversation.State) error {
	if state.CollectedFields == nil {
		state.CollectedFields = map[string]string{}
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.client.Set(ctx, s.key(state.UserID), data, s.ttl).Err(); err != nil {
		s.l.Errorf(ctx, "conversation.redis.write: %v", err)
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
