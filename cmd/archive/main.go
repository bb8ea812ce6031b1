// Command archive moves history entries beyond the newest N per user out of
// the live set. It is intended to be invoked by an external cron job.
//
// Usage:
//
//	archive [-keep=50] [-dry-run]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/adcopy-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/adcopy-backend/internal/app"
	"github.com/heartmarshall/adcopy-backend/internal/config"
	"github.com/heartmarshall/adcopy-backend/internal/service/history"
)

func main() {
	keep := flag.Int("keep", -1, "live entries to keep per user (default from GENERATION_HISTORY_KEEP_LAST)")
	dryRun := flag.Bool("dry-run", false, "report affected users without archiving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	keepLast := *keep
	if keepLast < 0 {
		keepLast = cfg.Generation.HistoryKeepLast
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	locks, err := app.NewLocks(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Error("init locks", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer locks.Close()

	svc := history.NewService(logger, historyrepo.New(pool), locks)

	res, err := svc.ArchiveAll(ctx, keepLast, *dryRun)
	if err != nil {
		logger.Error("archive failed",
			slog.String("error", err.Error()),
			slog.Int("keep_last", keepLast),
		)
		os.Exit(1)
	}

	logger.Info("archive completed",
		slog.Int("users", res.Users),
		slog.Int64("archived", res.Archived),
		slog.Int("keep_last", keepLast),
		slog.Bool("dry_run", *dryRun),
	)
}
