package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"hr-assistant/internal/conversation"
	pkgLog "hr-assistant/pkg/log"
)

const defaultKeyPrefix = "hr:"

// Config configures the shared redis-backed store.
type Config struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
	TTL       time.Duration
}

type implStore struct {
	client    *goredis.Client
	keyPrefix string
	ttl       time.Duration
	l         pkgLog.Logger
}

// New connects to redis and returns a Store shared by every instance.
func New(ctx context.Context, cfg Config, l pkgLog.Logger) (conversation.Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return NewFromClient(client, cfg, l), nil
}

// NewFromClient wraps an existing client.
func NewFromClient(client *goredis.Client, cfg Config, l pkgLog.Logger) conversation.Store {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = conversation.DefaultTTL
	}
	return &implStore{
		client:    client,
		keyPrefix: prefix,
		ttl:       ttl,
		l:         l,
	}
}

func (s *implStore) key(userID string) string {
	return s.keyPrefix + "conversation:" + userID
}
