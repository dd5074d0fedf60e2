package console

import (
	"fmt"
	"os"
	"strings"
)

const transcriptTitle = "IA conversation"

// transcript is the in-memory plain text history. Only the UI goroutine
// touches it.
type transcript struct {
	lines []string
}

func (t *transcript) user(text string) { t.lines = append(t.lines, "User: "+text) }
func (t *transcript) bot(text string)  { t.lines = append(t.lines, "Bot: "+text) }

// Render returns the saved-file form of the transcript.
func (t *transcript) Render() string {
	var b strings.Builder
	b.WriteString(transcriptTitle)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 35))
	b.WriteString("\n\n")
	for _, line := range t.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (t *transcript) Save(path string) error {
	if err := os.WriteFile(path, []byte(t.Render()), 0o644); err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	return nil
}
