// Package app wires configuration into a ready assistant use case for the
// API server and the desktop chat.
package app

import (
	"context"
	"fmt"

	"campus-assistant/config"
	"campus-assistant/internal/assistant"
	"campus-assistant/internal/assistant/usecase"
	"campus-assistant/internal/conversation"
	convFile "campus-assistant/internal/conversation/repository/file"
	convSQLite "campus-assistant/internal/conversation/repository/sqlite"
	"campus-assistant/internal/model"
	"campus-assistant/internal/topic"
	"campus-assistant/pkg/langdetect"
	"campus-assistant/pkg/llmprovider"
	"campus-assistant/pkg/log"
	"campus-assistant/pkg/webfetch"
)

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// NewLogger builds the zap logger from configuration.
func NewLogger(cfg config.LoggerConfig) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Level,
		Mode:         cfg.Mode,
		Encoding:     cfg.Encoding,
		ColorEnabled: cfg.ColorEnabled,
	})
}

// NewAssistant assembles the reply pipeline. The returned close function
// releases the conversation store.
func NewAssistant(ctx context.Context, l log.Logger, cfg *config.Config, publicURL string) (assistant.UseCase, func() error, error) {
	providers, providerErrs, err := llmprovider.InitializeProviders(&cfg.LLM)
	for _, perr := range providerErrs {
		l.Warnf(ctx, "LLM provider skipped: %v", perr)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("app: initialize llm providers: %w", err)
	}
	for _, p := range providers {
		l.Infof(ctx, "LLM provider enabled: %s (%s)", p.Name(), p.Model())
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelay,
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeout,
	}, l)

	repo, closeRepo, err := NewConversationRepository(ctx, l, cfg.Conversation)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]model.TopicEntry, 0, len(cfg.Topics))
	for _, t := range cfg.Topics {
		entries = append(entries, model.TopicEntry{Keyword: t.Keyword, URL: t.URL})
	}

	uc := usecase.New(
		l,
		langdetect.New(cfg.Assistant.DefaultLanguage, cfg.Assistant.MinConfidence, cfg.Assistant.Languages...),
		topic.New(entries, cfg.Assistant.WebSearchKeywords),
		webfetch.New(l, webfetch.Config{
			Timeout:   cfg.Fetcher.Timeout,
			MaxChars:  cfg.Fetcher.MaxChars,
			UserAgent: cfg.Fetcher.UserAgent,
		}),
		manager,
		repo,
		usecase.Options{
			Persona:            cfg.Assistant.Persona,
			Temperature:        cfg.Assistant.Temperature,
			FallbackText:       cfg.Assistant.FallbackText,
			SeeMoreTemplate:    cfg.Assistant.SeeMoreTemplate,
			ErrorReplyTemplate: cfg.Assistant.ErrorReplyTemplate,
			UncertaintyMarkers: cfg.Assistant.UncertaintyMarkers,
			PublicURL:          publicURL,
		},
	)
	return uc, closeRepo, nil
}

// NewConversationRepository opens the configured conversation store.
func NewConversationRepository(ctx context.Context, l log.Logger, cfg config.ConversationConfig) (conversation.Repository, func() error, error) {
	switch cfg.Driver {
	case "", DriverFile:
		repo, err := convFile.New(l, cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		l.Infof(ctx, "Conversation logs stored in directory %s", cfg.Dir)
		return repo, func() error { return nil }, nil
	case DriverSQLite:
		repo, closeFn, err := convSQLite.Open(ctx, l, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		l.Infof(ctx, "Conversation logs stored in sqlite database %s", cfg.SQLitePath)
		return repo, closeFn, nil
	default:
		return nil, nil, fmt.Errorf("app: unknown conversation driver %q", cfg.Driver)
	}
}
