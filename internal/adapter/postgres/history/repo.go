// Package history implements the per-user content history store using PostgreSQL.
// Entries are append-only; archival flips is_archived and never deletes.
package history

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/adcopy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

const table = "content_history"

var columns = []string{
	"id", "user_id", "request_id", "channel", "product_name", "key_benefits", "tone",
	"language", "title", "body", "cta", "hashtags", "emojis", "model", "is_archived", "created_at",
}

// newestFirst is the total order of a user's history: created_at breaks most
// ties and the identity column breaks the rest.
var newestFirst = []string{"created_at DESC", "seq DESC"}

// Repo provides history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type entryRow struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	RequestID   uuid.UUID `db:"request_id"`
	Channel     string    `db:"channel"`
	ProductName string    `db:"product_name"`
	KeyBenefits []string  `db:"key_benefits"`
	Tone        string    `db:"tone"`
	Language    string    `db:"language"`
	Title       string    `db:"title"`
	Body        string    `db:"body"`
	CTA         string    `db:"cta"`
	Hashtags    []string  `db:"hashtags"`
	Emojis      []string  `db:"emojis"`
	Model       string    `db:"model"`
	IsArchived  bool      `db:"is_archived"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r entryRow) toDomain() domain.HistoryEntry {
	hashtags, emojis := r.Hashtags, r.Emojis
	if hashtags == nil {
		hashtags = []string{}
	}
	if emojis == nil {
		emojis = []string{}
	}
	return domain.HistoryEntry{
		ID:          r.ID,
		UserID:      r.UserID,
		RequestID:   r.RequestID,
		Channel:     domain.Channel(r.Channel),
		ProductName: r.ProductName,
		KeyBenefits: r.KeyBenefits,
		Tone:        domain.Tone(r.Tone),
		Content: domain.ContentBlock{
			Channel:  domain.Channel(r.Channel),
			Language: r.Language,
			Tone:     domain.Tone(r.Tone),
			Title:    r.Title,
			Body:     r.Body,
			CTA:      r.CTA,
			Meta:     domain.ContentMeta{Hashtags: hashtags, Emojis: emojis},
		},
		Model:      r.Model,
		IsArchived: r.IsArchived,
		CreatedAt:  r.CreatedAt.UTC(),
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts a history entry. It joins the caller's transaction when
// the context carries one.
func (r *Repo) Append(ctx context.Context, e domain.HistoryEntry) error {
	benefits, hashtags, emojis := e.KeyBenefits, e.Content.Meta.Hashtags, e.Content.Meta.Emojis
	if benefits == nil {
		benefits = []string{}
	}
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
			e.ID, e.UserID, e.RequestID, string(e.Channel), e.ProductName, benefits, string(e.Tone),
			e.Content.Language, e.Content.Title, e.Content.Body, e.Content.CTA, hashtags, emojis,
			e.Model, false, e.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("history_entry build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "history_entry", e.ID)
	}
	return nil
}

// ArchiveBeyond archives every live entry of the user except the keepLast
// newest ones and returns how many rows it archived. Re-running it without
// new appends archives nothing.
func (r *Repo) ArchiveBeyond(ctx context.Context, userID uuid.UUID, keepLast int) (int64, error) {
	if keepLast < 0 {
		keepLast = 0
	}

	query, args, err := postgres.Builder().
		Update(table).
		Set("is_archived", true).
		Where(sq.Expr(
			"id IN (SELECT id FROM "+table+" WHERE user_id = ? AND NOT is_archived ORDER BY created_at DESC, seq DESC OFFSET ?)",
			userID, keepLast,
		)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("history_entry build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "history_entry", userID)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListRecent returns up to limit live entries of the user, newest first,
// optionally restricted to one channel.
func (r *Repo) ListRecent(ctx context.Context, userID uuid.UUID, channel *domain.Channel, limit int) ([]domain.HistoryEntry, error) {
	where := sq.Eq{"user_id": userID, "is_archived": false}
	if channel != nil {
		where["channel"] = string(*channel)
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy(newestFirst...).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("history_entry build query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "history_entry", userID)
	}

	out := make([]domain.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ChannelStats counts live entries per channel for the user.
func (r *Repo) ChannelStats(ctx context.Context, userID uuid.UUID) (map[domain.Channel]int, error) {
	query, args, err := postgres.Builder().
		Select("channel", "count(*) AS count").
		From(table).
		Where(sq.Eq{"user_id": userID, "is_archived": false}).
		GroupBy("channel").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("history_entry build query: %w", err)
	}

	var rows []struct {
		Channel string `db:"channel"`
		Count   int    `db:"count"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "history_entry", userID)
	}

	out := make(map[domain.Channel]int, len(rows))
	for _, row := range rows {
		out[domain.Channel(row.Channel)] = row.Count
	}
	return out, nil
}

// UsersAbove returns users whose live entry count exceeds limit.
func (r *Repo) UsersAbove(ctx context.Context, limit int) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Select("user_id").
		From(table).
		Where(sq.Eq{"is_archived": false}).
		GroupBy("user_id").
		Having("count(*) > ?", limit).
		OrderBy("user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("history_entry build query: %w", err)
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, query, args...); err != nil {
		return nil, postgres.MapError(err, "history_entry", uuid.Nil)
	}
	return ids, nil
}
