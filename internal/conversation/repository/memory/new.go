package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"hr-assistant/internal/conversation"
	pkgLog "hr-assistant/pkg/log"
)

// DefaultCapacity bounds how many users may hold a state at once.
const DefaultCapacity = 10000

type implStore struct {
	mu     sync.Mutex
	states *expirable.LRU[string, conversation.State]
	now    func() time.Time
	l      pkgLog.Logger
}

// Config configures the in-process store.
type Config struct {
	TTL      time.Duration
	Capacity int
}

// New creates an in-process state store for a single instance deployment.
func New(cfg Config, l pkgLog.Logger) conversation.Store {
	if cfg.TTL <= 0 {
		cfg.TTL = conversation.DefaultTTL
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	return &implStore{
		states: expirable.NewLRU[string, conversation.State](cfg.Capacity, nil, cfg.TTL),
		now:    time.Now,
		l:      l,
	}
}
