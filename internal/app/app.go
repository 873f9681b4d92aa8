package app

import (
	"context"
	"log/slog"

	"github.com/glucosegurus/glucosegurus-backend/internal/config"
)

// Run is the API entry point. It loads configuration from CONFIG_PATH and
// the environment, initializes the logger, and serves until ctx is done.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Database.Driver),
	)

	return Serve(ctx, cfg, logger)
}
