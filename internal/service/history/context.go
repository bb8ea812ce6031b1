package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

// RecentContext renders the user's n newest live entries, newest first, as
// prompt examples.
func (s *Service) RecentContext(ctx context.Context, userID uuid.UUID, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}

	entries, err := s.history.ListRecent(ctx, userID, nil, n)
	if err != nil {
		return nil, fmt.Errorf("list recent history: %w", err)
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, Render(e))
	}
	return out, nil
}

// Render formats one history entry as a prompt example.
func Render(e domain.HistoryEntry) string {
	return "Title: " + e.Content.Title +
		"\nContent: " + e.Content.Body +
		"\nCTA: " + e.Content.CTA +
		"\nHashtags: " + strings.Join(e.Content.Meta.Hashtags, " ")
}
