package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "HR assistant is up"
	HealthVersion = "1.0.0"
	ServiceName   = "hr-assistant"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports ready once every registered dependency answers.
// @Summary Readiness Check
// @Description Check if the API and its conversation store are ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "A dependency is unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil {
		if err := srv.ready(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %v", err)
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "not ready",
			})
			return
		}
	}
	response.OK(c, srv.status("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}

func (srv HTTPServer) status(s string) gin.H {
	return gin.H{
		"status":  s,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}
