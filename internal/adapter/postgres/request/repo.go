// Package request implements the content request repository using PostgreSQL.
package request

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

const table = "content_requests"

var columns = []string{
	"id", "user_id", "product_name", "key_benefits", "target_audience",
	"tone", "channels", "model", "status", "created_at", "updated_at",
}

// Repo provides content request persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new request repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type requestRow struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	ProductName    string    `db:"product_name"`
	KeyBenefits    []string  `db:"key_benefits"`
	TargetAudience string    `db:"target_audience"`
	Tone           string    `db:"tone"`
	Channels       []string  `db:"channels"`
	Model          string    `db:"model"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r requestRow) toDomain() domain.GenerationRequest {
	channels := make([]domain.Channel, len(r.Channels))
	for i, c := range r.Channels {
		channels[i] = domain.Channel(c)
	}
	return domain.GenerationRequest{
		ID:             r.ID,
		UserID:         r.UserID,
		ProductName:    r.ProductName,
		KeyBenefits:    r.KeyBenefits,
		TargetAudience: r.TargetAudience,
		Tone:           domain.Tone(r.Tone),
		Channels:       channels,
		Model:          r.Model,
		Status:         domain.RequestStatus(r.Status),
		CreatedAt:      r.CreatedAt.UTC(),
		UpdatedAt:      r.UpdatedAt.UTC(),
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a request row. Call inside TxManager.RunInTx so the row
// disappears with the rest of the batch on failure.
func (r *Repo) Create(ctx context.Context, req domain.GenerationRequest) error {
	channels := make([]string, len(req.Channels))
	for i, c := range req.Channels {
		channels[i] = string(c)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			req.ID, req.UserID, req.ProductName, req.KeyBenefits, req.TargetAudience,
			string(req.Tone), channels, req.Model, string(req.Status), req.CreatedAt, req.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("content_request build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "content_request", req.ID)
	}
	return nil
}

// UpdateStatus sets the lifecycle status of a request.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus, at time.Time) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("content_request build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "content_request", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("content_request %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a request by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.GenerationRequest, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("content_request build query: %w", err)
	}

	var row requestRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "content_request", id)
	}

	req := row.toDomain()
	return &req, nil
}

// ListByUser returns a page of the user's requests, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.GenerationRequest, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("content_request build query: %w", err)
	}

	var rows []requestRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "content_request", userID)
	}

	out := make([]domain.GenerationRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// CountByUser returns how many requests the user has submitted.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("content_request build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "content_request", userID)
	}
	return n, nil
}
