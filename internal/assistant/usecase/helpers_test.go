package usecase

import (
	"context"
	"sync"

	"campus-assistant/internal/conversation"
	"campus-assistant/internal/model"
	"campus-assistant/pkg/llmprovider"
)

type mockLogger struct {
	mu     sync.Mutex
	errors []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, template)
}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// mockProvider records the prompt it was given and returns a fixed answer.
type mockProvider struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range req.Messages {
		for _, p := range msg.Parts {
			m.prompts = append(m.prompts, p.Text)
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: m.text}}},
		ProviderName: "mock",
		ModelName:    "mock-model",
	}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-model" }

func (m *mockProvider) lastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

// newManager wraps a provider the way the API wires the real ones.
func newManager(p llmprovider.Provider, l *mockLogger) *llmprovider.Manager {
	return llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{RetryAttempts: 1}, l)
}

type fixedDetector string

func (d fixedDetector) Detect(string) string { return string(d) }

type stubFetcher struct {
	text string
	ok   bool
	urls []string
}

func (f *stubFetcher) Fetch(ctx context.Context, url string) (string, bool) {
	f.urls = append(f.urls, url)
	return f.text, f.ok
}

// memoryRepo is an in-memory conversation.Repository.
type memoryRepo struct {
	mu        sync.Mutex
	entries   []model.ConversationLogEntry
	appendErr error
}

func (r *memoryRepo) Append(ctx context.Context, e model.ConversationLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *memoryRepo) Export(ctx context.Context, userID string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := conversation.Key(userID)
	var out string
	for _, e := range r.entries {
		if conversation.Key(e.UserID) == key {
			out += conversation.FormatEntry(e)
		}
	}
	if out == "" {
		return nil, conversation.ErrNotFound
	}
	return []byte(out), nil
}

func (r *memoryRepo) Exists(ctx context.Context, userID string) (bool, error) {
	_, err := r.Export(ctx, userID)
	return err == nil, nil
}
