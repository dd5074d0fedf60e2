// Command chat runs the assistant as an interactive terminal chat.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campus-assistant/config"
	"campus-assistant/internal/app"
	"campus-assistant/internal/assistant/delivery/console"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// Logs share stdout with the conversation; keep only warnings and above.
	logCfg := cfg.Logger
	if logCfg.Level == "debug" || logCfg.Level == "info" {
		logCfg.Level = "warn"
	}
	logger := app.NewLogger(logCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	uc, closeStore, err := app.NewAssistant(ctx, logger, cfg, cfg.PublicURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize assistant:", err)
		os.Exit(1)
	}
	defer closeStore()

	chat := console.New(logger, uc, os.Stdin, os.Stdout, console.Config{UserID: cfg.Desktop.UserID})
	if err := chat.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "chat:", err)
		os.Exit(1)
	}
}
