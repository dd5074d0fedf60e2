package whatsapp

import (
	"github.com/gin-gonic/gin"

	"campus-assistant/internal/assistant"
	pkgLog "campus-assistant/pkg/log"
)

// Handler serves the Twilio WhatsApp webhook and history downloads.
type Handler interface {
	HandleMessage(c *gin.Context)
	HandleDownload(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc assistant.UseCase
}

// New creates a WhatsApp delivery handler.
func New(l pkgLog.Logger, uc assistant.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
