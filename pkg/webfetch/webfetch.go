// Package webfetch downloads a page and reduces it to plain visible text.
package webfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	pkgLog "campus-assistant/pkg/log"
)

// Fetcher retrieves page text. It keeps no state between calls.
type Fetcher struct {
	l         pkgLog.Logger
	client    *http.Client
	maxChars  int
	userAgent string
}

// New creates a Fetcher.
func New(l pkgLog.Logger, cfg Config) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = DefaultMaxChars
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Fetcher{
		l:         l,
		client:    client,
		maxChars:  cfg.MaxChars,
		userAgent: cfg.UserAgent,
	}
}

// Fetch returns at most maxChars characters of visible text from url.
// Any failure is logged and reported as ok=false; callers just go without.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, bool) {
	text, err := f.fetch(ctx, url)
	if err != nil {
		f.l.Warnf(ctx, "webfetch: %s: %v", url, err)
		return "", false
	}
	return text, true
}

func (f *Fetcher) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, MaxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	return Truncate(ExtractText(doc), f.maxChars), nil
}

// ExtractText drops non-content elements and joins the remaining trimmed
// text nodes with a single space, in document order.
func ExtractText(doc *goquery.Document) string {
	doc.Find(removedSelectors).Remove()

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}

	return strings.Join(parts, " ")
}

// Truncate cuts s to at most max characters without splitting a rune.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
