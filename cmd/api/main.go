package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campus-assistant/config"
	_ "campus-assistant/docs" // Swagger docs
	"campus-assistant/internal/app"
	tgDelivery "campus-assistant/internal/assistant/delivery/telegram"
	waDelivery "campus-assistant/internal/assistant/delivery/whatsapp"
	"campus-assistant/internal/httpserver"
	"campus-assistant/internal/middleware"
	"campus-assistant/pkg/log"
	"campus-assistant/pkg/telegram"
)

// @title       Campus Assistant API
// @description University Q&A assistant over WhatsApp and Telegram, backed by an LLM and institutional web pages.
// @version     1
// @host        localhost:5000
// @schemes     http https
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := app.NewLogger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Campus Assistant API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Public URL for download links and webhook registration
	publicURL := cfg.PublicURL
	if publicURL == "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, cfg.Ngrok.APIURL, ngrokAttempts, ngrokInterval)
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL, download links will be relative: %v", ngrokErr)
		} else {
			publicURL = ngrokURL
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", publicURL)
		}
	}

	// 4. Assistant pipeline
	uc, closeStore, err := app.NewAssistant(ctx, logger, cfg, publicURL)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize assistant: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warnf(ctx, "Failed to close conversation store: %v", err)
		}
	}()

	// 5. Channels
	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.WhatsApp.RateLimitPerMin,
		TwilioAuthToken: twilioToken(ctx, logger, cfg.WhatsApp),
		PublicURL:       publicURL,
	})

	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, uc, bot)
		registerTelegramWebhook(ctx, logger, bot, cfg.Telegram.WebhookURL, publicURL)
	} else {
		logger.Info(ctx, "Telegram disabled: telegram.bot_token is empty")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		WhatsAppHandler: waDelivery.New(logger, uc),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func twilioToken(ctx context.Context, l log.Logger, cfg config.WhatsAppConfig) string {
	if !cfg.ValidateSignature {
		return ""
	}
	if cfg.AuthToken == "" {
		l.Warn(ctx, "whatsapp.validate_signature is set but no Twilio auth token is configured; signatures are not checked")
	}
	return cfg.AuthToken
}

func registerTelegramWebhook(ctx context.Context, l log.Logger, bot *telegram.Bot, webhookURL, publicURL string) {
	if webhookURL == "" && publicURL != "" {
		webhookURL = publicURL + "/webhook/telegram"
	}
	if webhookURL == "" {
		l.Warn(ctx, "Telegram webhook URL unknown; set telegram.webhook_url or public_url")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		l.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	l.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
