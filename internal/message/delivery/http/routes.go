package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps message routes to the given router group.
func RegisterRoutes(r *gin.RouterGroup, h Handler, mw ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, mw...), h.Message)
	r.POST("/message", handlers...)
}
