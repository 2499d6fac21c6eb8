package http

import (
	"github.com/gin-gonic/gin"

	"hr-assistant/internal/message"
	"hr-assistant/pkg/log"
)

// Handler is the public interface for the message HTTP delivery layer.
type Handler interface {
	Message(c *gin.Context)
}

type handler struct {
	l             log.Logger
	uc            message.UseCase
	defaultUserID string
}

// New creates a new HTTP handler for conversation messages. defaultUserID
// is used when neither the body nor the X-User-ID header names a user.
func New(l log.Logger, uc message.UseCase, defaultUserID string) Handler {
	return &handler{
		l:             l,
		uc:            uc,
		defaultUserID: defaultUserID,
	}
}
