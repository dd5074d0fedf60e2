package usecase

import (
	"fmt"
	"strings"

	"campus-assistant/internal/assistant"
)

// BuildPrompt assembles the single-turn prompt sent to the model:
// persona, language directive, optional web excerpt, user text, "Bot:" cue.
func BuildPrompt(p assistant.Prompt) (string, error) {
	if strings.TrimSpace(p.Persona) == "" {
		return "", assistant.ErrEmptyPersona
	}

	var b strings.Builder
	b.WriteString(p.Persona)
	b.WriteString("\n")
	fmt.Fprintf(&b, languageDirective, p.Language)

	if ex := p.Excerpt; ex != nil {
		if ex.Available {
			b.WriteString("\n\n")
			fmt.Fprintf(&b, excerptHeader, ex.SourceURL)
			b.WriteString("\n")
			b.WriteString(ex.Text)
			b.WriteString("\n")
			b.WriteString(excerptFooter)
			b.WriteString("\n")
		} else {
			b.WriteString("\n")
			fmt.Fprintf(&b, excerptMissing, ex.SourceURL)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(userPrefix)
	b.WriteString(p.UserText)
	b.WriteString("\n")
	b.WriteString(botCue)
	return b.String(), nil
}
