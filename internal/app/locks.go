package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adcopy-backend/internal/adapter/lock"
	"github.com/heartmarshall/adcopy-backend/internal/config"
)

// Locker hands out non-blocking named locks.
type Locker interface {
	TryLock(ctx context.Context, key string) (release func(), acquired bool, err error)
}

// Locks is the archival lock backend: Redis when configured, in-process otherwise.
type Locks struct {
	Locker
	// Redis is nil when Redis is disabled.
	Redis *lock.Redis
}

// NewLocks connects to Redis when cfg has an address and falls back to an
// in-process lock when it does not.
func NewLocks(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*Locks, error) {
	if !cfg.RedisEnabled() {
		logger.Info("redis disabled, using in-process locks")
		return &Locks{Locker: lock.NewLocal()}, nil
	}

	r, err := lock.NewRedis(ctx, cfg.Addr, cfg.Password, cfg.DB, cfg.LockTTL, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &Locks{Locker: r, Redis: r}, nil
}

// Close releases the Redis connection, if any.
func (l *Locks) Close() {
	if l.Redis != nil {
		_ = l.Redis.Close()
	}
}
