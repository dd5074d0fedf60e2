package webfetch

import (
	"net/http"
	"time"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultMaxChars  = 1500
	DefaultUserAgent = "Mozilla/5.0"

	// MaxBodyBytes caps how much of a page is read before parsing.
	MaxBodyBytes = 2 << 20
)

// removedSelectors are stripped from the page before text extraction.
const removedSelectors = "script, style, noscript, header, footer, nav"

// Config configures a Fetcher. Zero values take the package defaults.
type Config struct {
	Timeout    time.Duration
	MaxChars   int
	UserAgent  string
	HTTPClient *http.Client
}
