package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hr-assistant/pkg/log"
)

// HeaderRequestID is echoed back on every response.
const HeaderRequestID = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or mints one, and stores it in
// the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
