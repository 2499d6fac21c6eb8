package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-assistant/config"
	"hr-assistant/internal/middleware"
	"hr-assistant/pkg/log"
)

type stubMessageHandler struct {
	calls int
}

func (s *stubMessageHandler) Message(c *gin.Context) {
	s.calls++
	c.JSON(http.StatusOK, gin.H{"completed": false})
}

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	cfg.Logger = l
	cfg.Port = 8080
	cfg.Mode = gin.TestMode
	if cfg.MessageHandler == nil {
		cfg.MessageHandler = &stubMessageHandler{}
	}
	if cfg.Middleware == (middleware.Middleware{}) {
		cfg.Middleware = middleware.New(l, config.RateLimitConfig{}, nil)
	}
	srv, err := New(l, cfg)
	require.NoError(t, err)
	return srv
}

func get(h http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(`{}`)))
	return w
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	_, err := New(l, Config{Logger: l, Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err)

	_, err = New(l, Config{Logger: l, Port: 8080, MessageHandler: &stubMessageHandler{}})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, Config{})
	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(srv.Handler(), http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName)
	}
	assert.NotEmpty(t, get(srv.Handler(), http.MethodGet, "/health").Header().Get(middleware.HeaderRequestID))
}

func TestReadyCheck_DependencyDown(t *testing.T) {
	srv := newTestServer(t, Config{Ready: func(context.Context) error { return errors.New("redis down") }})
	w := get(srv.Handler(), http.MethodGet, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "redis down")
}

func TestMetricsRoute(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("metric 1"))
	})
	srv := newTestServer(t, Config{MetricsPath: "/metrics", MetricsHandler: metrics})
	w := get(srv.Handler(), http.MethodGet, "/metrics")
	assert.Equal(t, "metric 1", w.Body.String())

	srv = newTestServer(t, Config{})
	assert.Equal(t, http.StatusNotFound, get(srv.Handler(), http.MethodGet, "/metrics").Code)
}

func TestMessageRoute_RateLimited(t *testing.T) {
	h := &stubMessageHandler{}
	mw := middleware.New(log.NewNop(), config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1, Capacity: 10}, nil)
	srv := newTestServer(t, Config{Middleware: mw, MessageHandler: h})

	assert.Equal(t, http.StatusOK, get(srv.Handler(), http.MethodPost, "/api/v1/message").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(srv.Handler(), http.MethodPost, "/api/v1/message").Code)
	assert.Equal(t, 1, h.calls)

	// System routes are not limited.
	assert.Equal(t, http.StatusOK, get(srv.Handler(), http.MethodGet, "/health").Code)
}

func TestRun_StopsOnCancel(t *testing.T) {
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:          l,
		Port:            18089,
		Mode:            gin.TestMode,
		ShutdownTimeout: time.Second,
		Middleware:      middleware.New(l, config.RateLimitConfig{}, nil),
		MessageHandler:  &stubMessageHandler{},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
