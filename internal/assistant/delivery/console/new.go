// Package console is a line-oriented chat window for a local terminal.
//
// One goroutine owns the screen and the transcript. Every submitted message
// is answered on its own goroutine and the answer is handed back to the
// owner over a channel, so input stays responsive while the model works.
package console

import (
	"io"

	"campus-assistant/internal/assistant"
	pkgLog "campus-assistant/pkg/log"
)

const (
	DefaultBotName = "Inteligencia Azteca"
	DefaultUserID  = "desktop"
)

// Config configures a Chat.
type Config struct {
	UserID  string // conversation log key for this desktop user
	BotName string // label printed before bot replies
}

// Chat runs an interactive session over in/out.
type Chat struct {
	l       pkgLog.Logger
	uc      assistant.UseCase
	in      io.Reader
	out     io.Writer
	userID  string
	botName string
}

// New creates a Chat.
func New(l pkgLog.Logger, uc assistant.UseCase, in io.Reader, out io.Writer, cfg Config) *Chat {
	if cfg.UserID == "" {
		cfg.UserID = DefaultUserID
	}
	if cfg.BotName == "" {
		cfg.BotName = DefaultBotName
	}
	return &Chat{
		l:       l,
		uc:      uc,
		in:      in,
		out:     out,
		userID:  cfg.UserID,
		botName: cfg.BotName,
	}
}
