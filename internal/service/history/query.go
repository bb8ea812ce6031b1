package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
	"github.com/heartmarshall/adcopy-backend/pkg/ctxutil"
)

// ListHistory returns the caller's live history, newest first.
func (s *Service) ListHistory(ctx context.Context, input ListInput) ([]domain.HistoryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	var channel *domain.Channel
	if ch, ok := domain.ParseChannel(strings.TrimSpace(input.Channel)); ok {
		channel = &ch
	}

	entries, err := s.history.ListRecent(ctx, userID, channel, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

// ChannelStats counts the caller's live history entries per channel.
func (s *Service) ChannelStats(ctx context.Context) (map[domain.Channel]int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stats, err := s.history.ChannelStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("channel stats: %w", err)
	}
	return stats, nil
}
