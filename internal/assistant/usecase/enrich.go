package usecase

import (
	"fmt"
	"strings"
)

// Enricher appends follow-up links to model replies.
//
// Uncertainty is detected by plain substring match on marker phrases, so a
// legitimate answer that happens to contain "no sé" also gets the fallback link.
type Enricher struct {
	fallback string
	seeMore  string
	markers  []string
}

// NewEnricher lowercases markers once; empty markers are ignored.
func NewEnricher(fallback, seeMoreTemplate string, markers []string) *Enricher {
	e := &Enricher{fallback: fallback, seeMore: seeMoreTemplate}
	for _, m := range markers {
		if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
			e.markers = append(e.markers, m)
		}
	}
	return e
}

// Enrich applies the first matching rule: fallback link for empty or
// uncertain replies, a "see more" link when a topic matched, else nothing.
func (e *Enricher) Enrich(raw, matchedURL string) string {
	if e.uncertain(raw) {
		return raw + "\n\n" + e.fallback
	}
	if matchedURL != "" {
		return raw + "\n\n" + fmt.Sprintf(e.seeMore, matchedURL)
	}
	return raw
}

func (e *Enricher) uncertain(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return true
	}
	lower := strings.ToLower(raw)
	for _, m := range e.markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
