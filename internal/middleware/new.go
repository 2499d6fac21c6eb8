package middleware

import (
	"time"

	"hr-assistant/config"
	"hr-assistant/pkg/log"
)

// HTTPObserver receives one observation per served request.
type HTTPObserver interface {
	ObserveHTTPRequest(method, path string, status int, elapsed time.Duration)
	ObserveRateLimited()
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	metrics HTTPObserver
}

// New builds the shared middleware set. metrics may be nil; a disabled
// rate limit config leaves RateLimit as a pass-through.
func New(l log.Logger, rl config.RateLimitConfig, metrics HTTPObserver) Middleware {
	m := Middleware{
		l:       l,
		metrics: metrics,
	}
	if rl.Enabled {
		m.limiter = newRateLimiter(rl.RequestsPerMinute, rl.Burst, rl.Capacity)
	}
	return m
}
