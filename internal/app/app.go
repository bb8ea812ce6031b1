package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/adcopy-backend/internal/config"
)

// Run loads configuration, connects the database and serves HTTP until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Any("providers", cfg.AI.ConfiguredProviders()),
		slog.Bool("redis", cfg.Redis.RedisEnabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	locks, err := NewLocks(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer locks.Close()

	c := newContainer(cfg, pool, locks, logger)
	defer c.Close()

	return serve(ctx, cfg.Server, c.Handler(), logger)
}
