package history

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/adcopy-backend/internal/metrics"
)

// sweepParallelism bounds concurrent per-user archival in ArchiveAll.
const sweepParallelism = 4

func archiveLockKey(userID uuid.UUID) string {
	return "archive:" + userID.String()
}

// ArchiveBeyond archives all but the keepLast newest live entries of the
// user. Runs for the same user never overlap: when another run holds the
// user's lock this one is skipped and reports 0.
func (s *Service) ArchiveBeyond(ctx context.Context, userID uuid.UUID, keepLast int) (int64, error) {
	if keepLast < 0 {
		keepLast = DefaultKeepLast
	}

	release, acquired, err := s.locks.TryLock(ctx, archiveLockKey(userID))
	if err != nil {
		return 0, fmt.Errorf("lock archival: %w", err)
	}
	if !acquired {
		s.log.DebugContext(ctx, "archival already running, skipped",
			slog.String("user_id", userID.String()),
		)
		return 0, nil
	}
	defer release()

	n, err := s.history.ArchiveBeyond(ctx, userID, keepLast)
	if err != nil {
		return 0, fmt.Errorf("archive history: %w", err)
	}

	metrics.RecordArchived(n)
	if n > 0 {
		s.log.InfoContext(ctx, "history archived",
			slog.String("user_id", userID.String()),
			slog.Int64("archived", n),
			slog.Int("keep_last", keepLast),
		)
	}

	return n, nil
}

// SweepResult summarizes an ArchiveAll run.
type SweepResult struct {
	Users    int
	Archived int64
}

// ArchiveAll archives history beyond keepLast for every user above the
// bound. With dryRun it only reports the affected users.
func (s *Service) ArchiveAll(ctx context.Context, keepLast int, dryRun bool) (SweepResult, error) {
	if keepLast < 0 {
		keepLast = DefaultKeepLast
	}

	users, err := s.history.UsersAbove(ctx, keepLast)
	if err != nil {
		return SweepResult{}, fmt.Errorf("find users above limit: %w", err)
	}

	result := SweepResult{Users: len(users)}
	if dryRun || len(users) == 0 {
		return result, nil
	}

	var archived atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sweepParallelism)

	for _, userID := range users {
		g.Go(func() error {
			n, err := s.ArchiveBeyond(gctx, userID, keepLast)
			if err != nil {
				return fmt.Errorf("user %s: %w", userID, err)
			}
			archived.Add(n)
			return nil
		})
	}

	err = g.Wait()
	result.Archived = archived.Load()
	if err != nil {
		return result, err
	}

	s.log.InfoContext(ctx, "history sweep finished",
		slog.Int("users", result.Users),
		slog.Int64("archived", result.Archived),
	)
	return result, nil
}
