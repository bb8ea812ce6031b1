// Package audit implements the generation audit trail using PostgreSQL.
// It provides append-only operations for message history records.
package audit

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

const table = "message_history"

var columns = []string{"id", "request_id", "role", "message", "prompt", "response", "created_at"}

// Repo provides audit persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type auditRow struct {
	ID        uuid.UUID `db:"id"`
	RequestID uuid.UUID `db:"request_id"`
	Role      string    `db:"role"`
	Message   string    `db:"message"`
	Prompt    string    `db:"prompt"`
	Response  string    `db:"response"`
	CreatedAt time.Time `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends an audit entry.
func (r *Repo) Create(ctx context.Context, e domain.AuditEntry) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(e.ID, e.RequestID, string(e.Role), e.Message, e.Prompt, e.Response, e.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("audit_entry build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "audit_entry", e.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByRequest returns the audit trail of a request, oldest first.
func (r *Repo) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.AuditEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"request_id": requestID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("audit_entry build query: %w", err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "audit_entry", requestID)
	}

	out := make([]domain.AuditEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.AuditEntry{
			ID:        row.ID,
			RequestID: row.RequestID,
			Role:      domain.MessageRole(row.Role),
			Message:   row.Message,
			Prompt:    row.Prompt,
			Response:  row.Response,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}
