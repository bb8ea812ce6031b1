package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "adcopy:lock:"

// Redis is a keyed lock shared by every replica, backed by redsync.
type Redis struct {
	client *redis.Client
	rs     *redsync.Redsync
	ttl    time.Duration
	log    *slog.Logger
}

// NewRedis connects to addr and verifies the connection with a ping.
func NewRedis(ctx context.Context, addr, password string, db int, ttl time.Duration, logger *slog.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return &Redis{
		client: client,
		rs:     redsync.New(goredis.NewPool(client)),
		ttl:    ttl,
		log:    logger.With("adapter", "redis_lock"),
	}, nil
}

// TryLock makes a single acquisition attempt. The lock expires after the
// configured TTL even if release is never called.
func (r *Redis) TryLock(ctx context.Context, key string) (release func(), acquired bool, err error) {
	mutex := r.rs.NewMutex(keyPrefix+key, redsync.WithExpiry(r.ttl), redsync.WithTries(1))

	if err := mutex.TryLockContext(ctx); err != nil {
		var taken *redsync.ErrTaken
		if errors.Is(err, redsync.ErrFailed) || errors.As(err, &taken) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("acquire lock %s: %w", key, err)
	}

	return func() {
		if _, err := mutex.UnlockContext(context.WithoutCancel(ctx)); err != nil {
			r.log.Warn("release lock failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}, true, nil
}

// Ping reports whether Redis is reachable.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
