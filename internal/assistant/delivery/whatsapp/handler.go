package whatsapp

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-assistant/internal/assistant"
	"campus-assistant/internal/model"
	"campus-assistant/pkg/response"
)

// HandleMessage answers one inbound WhatsApp message with TwiML.
// @Summary WhatsApp webhook
// @Description Twilio posts each inbound WhatsApp message here; the reply is returned as TwiML.
// @Tags WhatsApp
// @Accept x-www-form-urlencoded
// @Produce xml
// @Param From formData string true "Sender, e.g. whatsapp:+5215550001111"
// @Param Body formData string true "Message text"
// @Success 200 {string} string "TwiML response"
// @Failure 400 {object} response.Resp
// @Router /whatsapp [post]
func (h *handler) HandleMessage(c *gin.Context) {
	ctx := c.Request.Context()

	msg := model.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID(c.PostForm("From")),
		Text:       strings.TrimSpace(c.PostForm("Body")),
		ReceivedAt: time.Now(),
	}
	if msg.Text == "" {
		response.Error(c, errNoMessage, nil)
		return
	}

	h.l.Infof(ctx, "whatsapp: %s -> %s", msg.SenderID, msg.Text)

	sc := model.Scope{UserID: msg.SenderID, Channel: model.ChannelWhatsApp}
	out, err := h.uc.Reply(ctx, sc, assistant.ReplyInput{
		MessageID:     msg.ID,
		Text:          msg.Text,
		AllowDownload: true,
	})
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyInput) {
			response.Error(c, errNoMessage, nil)
			return
		}
		h.l.Errorf(ctx, "whatsapp: reply failed for %s: %v", msg.SenderID, err)
		response.InternalError(c, err)
		return
	}

	body, err := messageTwiML(out.Text)
	if err != nil {
		h.l.Errorf(ctx, "whatsapp: render twiml: %v", err)
		response.InternalError(c, err)
		return
	}
	c.Data(http.StatusOK, contentTypeXML, []byte(body))
}

// HandleDownload serves a user's conversation log as a text attachment.
// @Summary Download conversation
// @Description Returns the stored conversation log for a user key.
// @Tags WhatsApp
// @Produce plain
// @Param user_id path string true "User key from the download link"
// @Success 200 {file} file "Conversation log"
// @Failure 404 {object} response.Resp
// @Router /descargar/{user_id} [get]
func (h *handler) HandleDownload(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.History(ctx, c.Param("user_id"))
	if err != nil {
		if errors.Is(err, assistant.ErrHistoryNotFound) {
			response.NotFound(c, fileNotFoundMessage)
			return
		}
		h.l.Errorf(ctx, "whatsapp: history for %s: %v", c.Param("user_id"), err)
		response.InternalError(c, err)
		return
	}

	response.Attachment(c, out.FileName, contentTypeTXT, out.Content)
}
