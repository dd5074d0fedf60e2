// Package topic maps user questions to institutional pages by keyword.
package topic

import (
	"strings"

	"campus-assistant/internal/model"
)

// Matcher holds the ordered keyword table. It is read-only after New
// and safe for concurrent use.
type Matcher struct {
	entries     []model.TopicEntry
	webKeywords []string
}

// New builds a Matcher. Table order is match priority.
func New(entries []model.TopicEntry, webKeywords []string) *Matcher {
	m := &Matcher{
		entries:     make([]model.TopicEntry, 0, len(entries)),
		webKeywords: make([]string, 0, len(webKeywords)),
	}
	for _, e := range entries {
		kw := strings.ToLower(strings.TrimSpace(e.Keyword))
		if kw == "" || e.URL == "" {
			continue
		}
		m.entries = append(m.entries, model.TopicEntry{Keyword: kw, URL: e.URL})
	}
	for _, kw := range webKeywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			m.webKeywords = append(m.webKeywords, kw)
		}
	}
	return m
}

// Match returns the URL of the first entry whose keyword occurs in text,
// ignoring case. Keywords match inside longer words ("becario" hits "beca").
func (m *Matcher) Match(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, e := range m.entries {
		if strings.Contains(lower, e.Keyword) {
			return e.URL, true
		}
	}
	return "", false
}

// SuggestsWebSearch reports whether text looks like it asks for current
// institutional data (dates, costs, places).
func (m *Matcher) SuggestsWebSearch(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range m.webKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
