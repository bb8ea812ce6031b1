// Package history maintains the per-user content history: few-shot context
// for new generations, bounded by archival.
package history

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
	DefaultKeepLast  = 50
)

type historyRepo interface {
	ListRecent(ctx context.Context, userID uuid.UUID, channel *domain.Channel, limit int) ([]domain.HistoryEntry, error)
	ArchiveBeyond(ctx context.Context, userID uuid.UUID, keepLast int) (int64, error)
	ChannelStats(ctx context.Context, userID uuid.UUID) (map[domain.Channel]int, error)
	UsersAbove(ctx context.Context, limit int) ([]uuid.UUID, error)
}

type locker interface {
	TryLock(ctx context.Context, key string) (release func(), acquired bool, err error)
}

// Service provides history rendering, listing and archival.
type Service struct {
	history historyRepo
	locks   locker
	log     *slog.Logger
}

// NewService creates a new history service.
func NewService(
	log *slog.Logger,
	history historyRepo,
	locks locker,
) *Service {
	return &Service{
		history: history,
		locks:   locks,
		log:     log.With("service", "history"),
	}
}
