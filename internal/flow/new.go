package flow

import (
	"time"

	"hr-assistant/internal/conversation"
	"hr-assistant/internal/extractor"
	pkgLog "hr-assistant/pkg/log"
)

// Engine drives a flow turn by turn: extract, merge, derive, prompt or submit.
type Engine struct {
	store     conversation.Store
	extractor *extractor.Extractor
	dates     DateResolver
	observer  Observer
	now       func() time.Time
	l         pkgLog.Logger
}

// Option customises an Engine.
type Option func(*Engine)

// WithObserver reports transitions to o.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithDateResolver lets awaited date fields accept relative dates.
func WithDateResolver(r DateResolver) Option {
	return func(e *Engine) { e.dates = r }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New builds an Engine.
func New(store conversation.Store, ex *extractor.Extractor, l pkgLog.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:     store,
		extractor: ex,
		now:       time.Now,
		l:         l,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
