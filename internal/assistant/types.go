package assistant

import "time"

// ReplyKind tells the front end what kind of reply it is delivering.
type ReplyKind string

const (
	ReplyKindAnswer   ReplyKind = "answer"   // LLM answer, possibly enriched
	ReplyKindError    ReplyKind = "error"    // LLM failed; Text carries the failure message
	ReplyKindDownload ReplyKind = "download" // Reply to a history download request
)

// ReplyInput is one inbound message.
type ReplyInput struct {
	MessageID string
	Text      string
	// AllowDownload enables the "download chat" command for channels that
	// can serve the history link.
	AllowDownload bool
}

// ReplyOutput is what the front end sends back to the user.
type ReplyOutput struct {
	Text       string
	Kind       ReplyKind
	Language   string
	MatchedURL string // empty when no topic matched
	Persisted  bool   // false when the exchange could not be logged
}

// HistoryOutput is a downloadable conversation log.
type HistoryOutput struct {
	FileName string
	Content  []byte
}

// WebExcerpt is the text scraped from a matched topic page.
type WebExcerpt struct {
	SourceURL string
	Text      string
	FetchedAt time.Time
	Available bool // false when the page could not be fetched
}

// Prompt holds everything the prompt builder needs.
type Prompt struct {
	Persona  string
	Language string
	Excerpt  *WebExcerpt // nil when no topic matched
	UserText string
}

// Reply keeps the model output next to its post-processed form.
type Reply struct {
	RawText      string
	EnrichedText string
}
