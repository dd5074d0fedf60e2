package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"campus-assistant/internal/assistant"
	"campus-assistant/internal/model"
	pkgLog "campus-assistant/pkg/log"
	pkgResponse "campus-assistant/pkg/response"
	pkgTelegram "campus-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and answers in a background goroutine,
// since an LLM round trip can outlast Telegram's webhook timeout.
// @Summary Telegram webhook
// @Description Receives Telegram updates and answers asynchronously through the Bot API.
// @Tags Telegram
// @Accept json
// @Produce json
// @Param update body object true "Telegram update"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /webhook/telegram [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := pkgLog.WithRequestID(context.Background(), pkgLog.RequestID(ctx))

	go func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, failReply)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	switch msg.Text {
	case "/start":
		return h.bot.SendMessage(ctx, msg.Chat.ID, startReply)
	case "/help":
		return h.bot.SendMessage(ctx, msg.Chat.ID, helpReply)
	}

	sc := model.Scope{
		UserID:  fmt.Sprintf("telegram:%d", msg.Chat.ID),
		Channel: model.ChannelTelegram,
	}
	if msg.From != nil {
		sc.Username = msg.From.Username
	}

	if err := h.bot.SendChatAction(ctx, msg.Chat.ID, pkgTelegram.ActionTyping); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send typing action: %v", err)
	}

	out, err := h.uc.Reply(ctx, sc, assistant.ReplyInput{
		MessageID:     fmt.Sprintf("%d", msg.MessageID),
		Text:          msg.Text,
		AllowDownload: true,
	})
	if err != nil {
		return fmt.Errorf("reply: %w", err)
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, out.Text)
}
