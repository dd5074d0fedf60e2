package usecase

import (
	"strings"
	"testing"
)

const testFallback = "More at https://uni.example/"

func newTestEnricher() *Enricher {
	return NewEnricher(testFallback, "See more: %s", []string{"I don't know", "no sé", "  "})
}

func TestEnrich(t *testing.T) {
	e := newTestEnricher()

	tests := []struct {
		name       string
		raw        string
		matchedURL string
		want       string
	}{
		{"uncertain reply", "I don't know", "", "I don't know\n\n" + testFallback},
		{"uncertain wins over match", "Lo siento, NO SÉ la fecha", "https://uni.example/a", "Lo siento, NO SÉ la fecha\n\n" + testFallback},
		{"empty reply", "", "", "\n\n" + testFallback},
		{"matched topic", "Classes start in August", "https://example/admissions", "Classes start in August\n\nSee more: https://example/admissions"},
		{"plain", "Hello", "", "Hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Enrich(tt.raw, tt.matchedURL); got != tt.want {
				t.Errorf("Enrich(%q, %q) = %q, want %q", tt.raw, tt.matchedURL, got, tt.want)
			}
		})
	}
}

func TestEnrich_FallbackEndsOutput(t *testing.T) {
	got := newTestEnricher().Enrich("I don't know", "")
	if !strings.HasSuffix(got, "https://uni.example/") {
		t.Errorf("expected output to end with fallback link, got %q", got)
	}
}
