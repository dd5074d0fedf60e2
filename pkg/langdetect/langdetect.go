// Package langdetect guesses the ISO 639-1 language of a short message.
package langdetect

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
)

const (
	// DefaultLanguage is used when no better guess is available.
	DefaultLanguage = "en"
	// DefaultMinConfidence discards guesses whatlanggo is unsure about.
	DefaultMinConfidence = 0.5
	// minLetters is the shortest input worth classifying; greetings like
	// "hi" or "hola" carry too few trigrams.
	minLetters = 10
)

// DefaultLanguages are the ISO 639-3 codes considered when none are configured.
var DefaultLanguages = []string{"spa", "eng"}

// Detector wraps whatlanggo with a language whitelist and a fallback.
type Detector struct {
	fallback      string
	minConfidence float64
	options       whatlanggo.Options
}

// New returns a Detector restricted to languages (ISO 639-3 codes, e.g. "spa").
// An empty fallback becomes DefaultLanguage, a non-positive minConfidence
// becomes DefaultMinConfidence, and no languages means DefaultLanguages.
// Unknown codes are ignored.
func New(fallback string, minConfidence float64, languages ...string) *Detector {
	if fallback == "" {
		fallback = DefaultLanguage
	}
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}
	if len(languages) == 0 {
		languages = DefaultLanguages
	}

	whitelist := make(map[whatlanggo.Lang]bool, len(languages))
	for _, code := range languages {
		code = strings.ToLower(strings.TrimSpace(code))
		if lang := whatlanggo.CodeToLang(code); lang.Iso6393() == code {
			whitelist[lang] = true
		}
	}

	return &Detector{
		fallback:      fallback,
		minConfidence: minConfidence,
		options:       whatlanggo.Options{Whitelist: whitelist},
	}
}

// Detect never fails: short, garbled or unreadable input yields the fallback language.
func (d *Detector) Detect(text string) (lang string) {
	text = strings.TrimSpace(text)
	if countLetters(text) < minLetters {
		return d.fallback
	}

	defer func() {
		if r := recover(); r != nil {
			lang = d.fallback
		}
	}()

	info := whatlanggo.DetectWithOptions(text, d.options)
	if info.Confidence < d.minConfidence {
		return d.fallback
	}

	code := info.Lang.Iso6391()
	if code == "" {
		return d.fallback
	}
	return code
}

func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
