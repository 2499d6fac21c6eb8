package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	messageHTTP "hr-assistant/internal/message/delivery/http"
	"hr-assistant/internal/middleware"
	"hr-assistant/pkg/log"
)

// ReadyFunc reports whether a dependency can serve traffic.
type ReadyFunc func(ctx context.Context) error

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Shared middleware
	middleware middleware.Middleware

	// Observability
	metricsPath    string
	metricsHandler http.Handler
	ready          ReadyFunc

	// Message domain
	messageHandler messageHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Middleware middleware.Middleware

	// MetricsHandler is mounted at MetricsPath when both are set.
	MetricsPath    string
	MetricsHandler http.Handler
	// Ready backs /ready; nil means always ready.
	Ready ReadyFunc

	MessageHandler messageHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		middleware:      cfg.Middleware,
		metricsPath:     cfg.MetricsPath,
		metricsHandler:  cfg.MetricsHandler,
		ready:           cfg.Ready,
		messageHandler:  cfg.MessageHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.messageHandler == nil {
		return errors.New("message handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
