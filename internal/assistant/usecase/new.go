package usecase

import (
	"context"
	"time"

	"campus-assistant/internal/assistant"
	"campus-assistant/internal/conversation"
	"campus-assistant/internal/topic"
	"campus-assistant/pkg/llmprovider"
	pkgLog "campus-assistant/pkg/log"
)

// LanguageDetector guesses the language of a message.
type LanguageDetector interface {
	Detect(text string) string
}

// PageFetcher returns the visible text of a page, or ok=false.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, bool)
}

// Generator produces a completion for a request.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options holds the reply policy taken from configuration.
type Options struct {
	Persona            string
	Temperature        float64
	FallbackText       string
	SeeMoreTemplate    string
	ErrorReplyTemplate string
	UncertaintyMarkers []string
	// PublicURL prefixes history download links; may be empty.
	PublicURL string
}

type implUseCase struct {
	l        pkgLog.Logger
	detector LanguageDetector
	matcher  *topic.Matcher
	fetcher  PageFetcher
	llm      Generator
	repo     conversation.Repository
	enricher *Enricher
	opts     Options
	now      func() time.Time
}

// New creates the assistant use case.
func New(
	l pkgLog.Logger,
	detector LanguageDetector,
	matcher *topic.Matcher,
	fetcher PageFetcher,
	llm Generator,
	repo conversation.Repository,
	opts Options,
) assistant.UseCase {
	return &implUseCase{
		l:        l,
		detector: detector,
		matcher:  matcher,
		fetcher:  fetcher,
		llm:      llm,
		repo:     repo,
		enricher: NewEnricher(opts.FallbackText, opts.SeeMoreTemplate, opts.UncertaintyMarkers),
		opts:     opts,
		now:      time.Now,
	}
}
