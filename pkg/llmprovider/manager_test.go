package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	// Setup
	expectedResponse := &Response{
		Content:      "Hello from primary provider",
		ProviderName: "primary",
		ModelName:    "primary-model",
		Usage: &Usage{
			InputTokens:  100,
			OutputTokens: 50,
			TotalTokens:  150,
		},
	}

	primary := &mockProvider{
		name:       "primary",
		model:      "primary-model",
		shouldFail: false,
		response:   expectedResponse,
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      100 * time.Millisecond,
	}

	manager := NewManager([]Provider{primary}, config, logger)

	// Execute
	req := &Request{
		Messages: []Message{{Role: RoleUser, Content: "Hello"}},
	}

	resp, err := manager.GenerateContent(context.Background(), req)

	// Verify
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}

	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}

	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}

	if len(logger.warnMessages) != 0 {
		t.Errorf("Expected 0 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	// Setup
	expectedResponse := &Response{
		Content:      "Hello from secondary provider",
		ProviderName: "secondary",
		ModelName:    "secondary-model",
		Usage: &Usage{
			InputTokens:  100,
			OutputTokens: 50,
			TotalTokens:  150,
		},
	}

	primary := &mockProvider{
		name:       "primary",
		model:      "primary-model",
		shouldFail: true,
	}

	secondary := &mockProvider{
		name:       "secondary",
		model:      "secondary-model",
		shouldFail: false,
		response:   expectedResponse,
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, logger)

	// Execute
	req := &Request{
		Messages: []Message{{Role: RoleUser, Content: "Hello"}},
	}

	resp, err := manager.GenerateContent(context.Background(), req)

	// Verify
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}

	// Primary should be called RetryAttempts times (2)
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}

	// Secondary should be called once
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}

	// Should have 1 info (success) and 1 warn (primary failure)
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 info log message, got: %d", len(logger.infoMessages))
	}

	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	// Setup
	primary := &mockProvider{
		name:       "primary",
		model:      "primary-model",
		shouldFail: true,
	}

	secondary := &mockProvider{
		name:       "secondary",
		model:      "secondary-model",
		shouldFail: true,
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, logger)

	// Execute
	req := &Request{
		Messages: []Message{{Role: RoleUser, Content: "Hello"}},
	}

	resp, err := manager.GenerateContent(context.Background(), req)

	// Verify
	if err == nil {
		t.Fatal("Expected error when all providers fail, got nil")
	}

	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Expected ErrAllProvidersFailed, got: %v", err)
	}

	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}

	// Both providers should be called RetryAttempts times (2)
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}

	if secondary.callCount != 2 {
		t.Errorf("Expected secondary provider to be called 2 times, got: %d", secondary.callCount)
	}

	// Should have 2 warn messages (one for each provider failure)
	if len(logger.warnMessages) != 2 {
		t.Errorf("Expected 2 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	// Setup
	primary := &mockProvider{
		name:       "primary",
		model:      "primary-model",
		shouldFail: true,
	}

	secondary := &mockProvider{
		name:       "secondary",
		model:      "secondary-model",
		shouldFail: false,
		response: &Response{
			ProviderName: "secondary",
			ModelName:    "secondary-model",
			Usage:        &Usage{},
		},
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: false, // Fallback disabled
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, logger)

	// Execute
	req := &Request{
		Messages: []Message{{Role: RoleUser, Content: "Hello"}},
	}

	resp, err := manager.GenerateContent(context.Background(), req)

	// Verify
	if err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled, got nil")
	}

	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}

	// Primary should be called RetryAttempts times (2)
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}

	// Secondary should NOT be called
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider to NOT be called, got: %d calls", secondary.callCount)
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	// Setup
	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      100 * time.Millisecond,
	}

	manager := NewManager([]Provider{}, config, logger)

	// Execute
	req := &Request{
		Messages: []Message{{Role: RoleUser, Content: "Hello"}},
	}

	resp, err := manager.GenerateContent(context.Background(), req)

	// Verify
	if err == nil {
		t.Fatal("Expected error when no providers configured, got nil")
	}

	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}

	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
}

type recordedCall struct {
	provider string
	success  bool
}

type fakeRecorder struct {
	calls []recordedCall
}

func (r *fakeRecorder) ObserveLLMCall(provider string, success bool, elapsed time.Duration) {
	r.calls = append(r.calls, recordedCall{provider: provider, success: success})
}

func TestGenerateContent_RecorderAndNilUsage(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "m2",
		response: &Response{Content: "ok", ProviderName: "secondary"},
	}

	rec := &fakeRecorder{}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 1}, &mockLogger{}, WithRecorder(rec))

	resp, err := manager.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: RoleUser, Content: "Hello"}},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Content != "ok" {
		t.Errorf("Expected content 'ok', got: %s", resp.Content)
	}

	want := []recordedCall{{"primary", false}, {"secondary", true}}
	if len(rec.calls) != len(want) {
		t.Fatalf("Expected %d recorded calls, got: %d", len(want), len(rec.calls))
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Errorf("call %d: expected %+v, got %+v", i, want[i], rec.calls[i])
		}
	}
}

func TestGenerateContent_EmptyRequest(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1"}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{System: "only a system prompt"})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got: %v", err)
	}
	if primary.callCount != 0 {
		t.Errorf("Expected provider not to be called, got: %d", primary.callCount)
	}
}

func TestAvailable(t *testing.T) {
	var nilManager *Manager
	if nilManager.Available() {
		t.Error("nil manager must not be available")
	}
	if NewManager(nil, nil, &mockLogger{}).Available() {
		t.Error("manager without providers must not be available")
	}
	if !NewManager([]Provider{&mockProvider{}}, nil, &mockLogger{}).Available() {
		t.Error("manager with a provider must be available")
	}
}
