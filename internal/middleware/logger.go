package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request after it is served.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		elapsed := time.Since(start)
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "http: %s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, elapsed)
		case status >= 400:
			m.l.Warnf(ctx, "http: %s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, elapsed)
		default:
			m.l.Infof(ctx, "http: %s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, elapsed)
		}
	}
}
