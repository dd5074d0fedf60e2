package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"campus-assistant/internal/assistant"
	pkgLog "campus-assistant/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the subset of the Bot API the handler needs.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendChatAction(ctx context.Context, chatID int64, action string) error
}

type handler struct {
	l   pkgLog.Logger
	uc  assistant.UseCase
	bot Sender
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc assistant.UseCase, bot Sender) Handler {
	return &handler{l: l, uc: uc, bot: bot}
}
