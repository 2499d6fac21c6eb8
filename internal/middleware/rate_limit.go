package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"hr-assistant/pkg/response"
)

const (
	headerUserID       = "X-User-ID"
	limiterTTL         = 5 * time.Minute
	defaultLimiterSize = 10000
)

// RateLimit allows RequestsPerMinute per caller. The caller is the
// X-User-ID header, or the client IP when it is absent.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := c.GetHeader(headerUserID)
		if key == "" {
			key = c.ClientIP()
		}
		if !m.limiter.Allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			if m.metrics != nil {
				m.metrics.ObserveRateLimited()
			}
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per caller. Idle buckets expire so the
// map stays bounded.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, burst, capacity int) *rateLimiter {
	if capacity <= 0 {
		capacity = defaultLimiterSize
	}
	if burst <= 0 {
		burst = max(requestsPerMin/10, 1)
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](capacity, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0), // per second
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	return rl.bucket(key).Allow()
}

// bucket returns the caller's limiter, creating it at most once per key.
func (rl *rateLimiter) bucket(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}
