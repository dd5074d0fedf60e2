package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockProvider struct {
	name       string
	model      string
	failTimes  int // fail this many calls, then succeed
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail || m.callCount <= m.failTimes {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func okResponse(provider, text string) *Response {
	return &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: text}}},
		ProviderName: provider,
		Usage:        &Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: okResponse("primary", "Hola")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary}, &Config{FallbackEnabled: true, RetryAttempts: 3}, logger)

	resp, err := manager.GenerateContent(context.Background(), UserText("Hola", 0.7))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text() != "Hola" {
		t.Errorf("Expected text 'Hola', got %q", resp.Text())
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 0 {
		t.Errorf("Expected 1 info and 0 warn logs, got %d/%d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_SingleAttemptByDefault(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}

	manager := NewManager([]Provider{primary}, &Config{}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), UserText("x", 0.7)); err == nil {
		t.Fatal("Expected error")
	}
	if primary.callCount != 1 {
		t.Errorf("Expected exactly one attempt, got %d", primary.callCount)
	}
}

func TestGenerateContent_RetryThenSuccess(t *testing.T) {
	primary := &mockProvider{name: "primary", failTimes: 1, response: okResponse("primary", "ok")}

	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), UserText("x", 0.7))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text() != "ok" || primary.callCount != 2 {
		t.Errorf("unexpected result %q after %d calls", resp.Text(), primary.callCount)
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", response: okResponse("secondary", "from secondary")}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      10 * time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), UserText("Hello", 0.7))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 2 || secondary.callCount != 1 {
		t.Errorf("unexpected call counts primary=%d secondary=%d", primary.callCount, secondary.callCount)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 info and 1 warn logs, got %d/%d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", shouldFail: true}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), UserText("Hello", 0.7))
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	var pErr *ProviderError
	if !errors.As(err, &pErr) || pErr.Provider != "secondary" {
		t.Errorf("Expected ProviderError for secondary, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", response: okResponse("secondary", "x")}

	manager := NewManager([]Provider{primary, secondary}, &Config{RetryAttempts: 2}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), UserText("Hello", 0.7)); err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled")
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider to NOT be called, got: %d calls", secondary.callCount)
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, nil, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), UserText("Hello", 0.7))
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}
