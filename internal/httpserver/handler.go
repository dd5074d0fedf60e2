package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"campus-assistant/internal/model"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	if srv.environment != model.EnvironmentProduction {
		srv.gin.Use(gin.Logger())
	}

	srv.l.Infof(context.Background(), "HTTP middlewares registered for environment %s", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the channel webhooks.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.whatsAppHandler != nil {
		srv.gin.POST("/whatsapp",
			srv.mw.TwilioSignature(),
			srv.mw.RateLimit(),
			srv.whatsAppHandler.HandleMessage,
		)
		srv.gin.GET("/descargar/:user_id", srv.whatsAppHandler.HandleDownload)
		srv.gin.GET("/download/:user_id", srv.whatsAppHandler.HandleDownload)
		srv.l.Infof(ctx, "WhatsApp routes registered at POST /whatsapp, GET /descargar/:user_id")
	} else {
		srv.l.Infof(ctx, "WhatsApp handler not configured, skipping webhook route")
	}

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.mw.RateLimit(), srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
