package generation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
	"github.com/heartmarshall/adcopy-backend/pkg/ctxutil"
)

// Publish marks an artifact of the caller as published. Publishing twice
// keeps the first timestamp.
func (s *Service) Publish(ctx context.Context, input PublishInput) (*domain.ChannelContent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.artifacts.MarkPublished(ctx, input.ArtifactID, userID, s.now())
	if err != nil {
		return nil, fmt.Errorf("publish artifact: %w", err)
	}

	s.log.InfoContext(ctx, "artifact published",
		slog.String("artifact_id", a.ID.String()),
		slog.String("request_id", a.RequestID.String()),
	)

	cc := domain.NewChannelContent(*a)
	return &cc, nil
}
