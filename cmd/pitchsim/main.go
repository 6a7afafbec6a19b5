package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"mlb-pitch-sim/internal/app"
	"mlb-pitch-sim/internal/config"
	"mlb-pitch-sim/internal/logging"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SESSION_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "mlb-pitch-sim",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := app.New(app.Options{Config: cfg, Logger: logger})
	if err != nil {
		logging.Error(logger, "startup failed", err)
		os.Exit(1)
	}

	if err := session.Run(ctx); err != nil {
		logging.Error(logger, "session ended early", err)
		os.Exit(1)
	}
}
