// Package artifact implements the generated content repository using PostgreSQL.
package artifact

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/adcopy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

const table = "generated_contents"

var columns = []string{
	"id", "request_id", "user_id", "channel", "position",
	"language", "tone", "title", "body", "cta", "hashtags", "emojis",
	"model", "content_type", "status", "version",
	"is_published", "published_at", "raw_response", "created_at",
}

// Repo provides artifact persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new artifact repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type artifactRow struct {
	ID          uuid.UUID  `db:"id"`
	RequestID   uuid.UUID  `db:"request_id"`
	UserID      uuid.UUID  `db:"user_id"`
	Channel     string     `db:"channel"`
	Position    int        `db:"position"`
	Language    string     `db:"language"`
	Tone        string     `db:"tone"`
	Title       string     `db:"title"`
	Body        string     `db:"body"`
	CTA         string     `db:"cta"`
	Hashtags    []string   `db:"hashtags"`
	Emojis      []string   `db:"emojis"`
	Model       string     `db:"model"`
	ContentType string     `db:"content_type"`
	Status      string     `db:"status"`
	Version     int        `db:"version"`
	IsPublished bool       `db:"is_published"`
	PublishedAt *time.Time `db:"published_at"`
	RawResponse string     `db:"raw_response"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (r artifactRow) toDomain() domain.Artifact {
	hashtags, emojis := r.Hashtags, r.Emojis
	if hashtags == nil {
		hashtags = []string{}
	}
	if emojis == nil {
		emojis = []string{}
	}
	return domain.Artifact{
		ID:        r.ID,
		RequestID: r.RequestID,
		UserID:    r.UserID,
		Channel:   domain.Channel(r.Channel),
		Position:  r.Position,
		Content: domain.ContentBlock{
			Channel:  domain.Channel(r.Channel),
			Language: r.Language,
			Tone:     domain.Tone(r.Tone),
			Title:    r.Title,
			Body:     r.Body,
			CTA:      r.CTA,
			Meta:     domain.ContentMeta{Hashtags: hashtags, Emojis: emojis},
		},
		Model:       r.Model,
		ContentType: r.ContentType,
		Status:      r.Status,
		Version:     r.Version,
		IsPublished: r.IsPublished,
		PublishedAt: utcPtr(r.PublishedAt),
		RawResponse: r.RawResponse,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an artifact.
func (r *Repo) Create(ctx context.Context, a domain.Artifact) error {
	hashtags, emojis := a.Content.Meta.Hashtags, a.Content.Meta.Emojis
	if hashtags == nil {
		hashtags = []string{}
	}
	if emojis == nil {
		emojis = []string{}
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			a.ID, a.RequestID, a.UserID, string(a.Channel), a.Position,
			a.Content.Language, string(a.Content.Tone), a.Content.Title, a.Content.Body, a.Content.CTA,
			hashtags, emojis,
			a.Model, a.ContentType, a.Status, a.Version,
			a.IsPublished, a.PublishedAt, a.RawResponse, a.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("artifact build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "artifact", a.ID)
	}
	return nil
}

// MarkPublished flags the artifact as published by its owner. The first
// publish timestamp is kept on repeated calls.
func (r *Repo) MarkPublished(ctx context.Context, id, userID uuid.UUID, at time.Time) (*domain.Artifact, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("is_published", true).
		Set("published_at", sq.Expr("COALESCE(published_at, ?)", at)).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("artifact build query: %w", err)
	}

	var row artifactRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "artifact", id)
	}

	a := row.toDomain()
	return &a, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByRequest returns the artifacts of a request in channel order.
func (r *Repo) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.Artifact, error) {
	byRequest, err := r.ListByRequests(ctx, []uuid.UUID{requestID})
	if err != nil {
		return nil, err
	}
	return byRequest[requestID], nil
}

// ListByRequests returns artifacts grouped by request id, each group in
// channel order. Requests without artifacts are absent from the map.
func (r *Repo) ListByRequests(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]domain.Artifact, error) {
	out := make(map[uuid.UUID][]domain.Artifact, len(requestIDs))
	if len(requestIDs) == 0 {
		return out, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"request_id": requestIDs}).
		OrderBy("request_id", "position", "version DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("artifact build query: %w", err)
	}

	var rows []artifactRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "artifact", uuid.Nil)
	}

	for _, row := range rows {
		out[row.RequestID] = append(out[row.RequestID], row.toDomain())
	}
	return out, nil
}
