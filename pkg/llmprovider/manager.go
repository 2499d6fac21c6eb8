package llmprovider

import (
	"context"
	"fmt"
	"time"

	"hr-assistant/pkg/log"
)

// Recorder receives one observation per provider attempt chain.
type Recorder interface {
	ObserveLLMCall(provider string, success bool, elapsed time.Duration)
}

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
	recorder  Recorder
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithRecorder attaches a metrics recorder.
func WithRecorder(r Recorder) ManagerOption {
	return func(m *Manager) {
		m.recorder = r
	}
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger, opts ...ManagerOption) *Manager {
	if config == nil {
		config = &Config{FallbackEnabled: true, RetryAttempts: 1}
	}
	m := &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Available reports whether at least one provider is configured.
func (m *Manager) Available() bool {
	return m != nil && len(m.providers) > 0
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if !m.Available() {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	// Create context with global timeout for entire fallback chain
	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), ctx.Err())
		default:
		}

		start := time.Now()
		resp, err := m.generateWithRetry(ctx, provider, req)
		m.observe(provider, err == nil, time.Since(start))
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		// If fallback is disabled, stop after first provider
		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry implements retry mechanism with linear backoff
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) observe(provider Provider, success bool, elapsed time.Duration) {
	if m.recorder != nil {
		m.recorder.ObserveLLMCall(provider.Name(), success, elapsed)
	}
}

// logSuccess logs successful LLM generation with token usage
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", in,
		"output_tokens", out,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
