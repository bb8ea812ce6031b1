// Package user implements the read side of the User repository using PostgreSQL.
// Account management lives elsewhere; Upsert exists for development tooling.
package user

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

const table = "users"

var columns = []string{"id", "email", "name", "generated_brand_context", "is_active", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID                    uuid.UUID `db:"id"`
	Email                 string    `db:"email"`
	Name                  string    `db:"name"`
	GeneratedBrandContext *string   `db:"generated_brand_context"`
	IsActive              bool      `db:"is_active"`
	CreatedAt             time.Time `db:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:                    r.ID,
		Email:                 r.Email,
		Name:                  r.Name,
		GeneratedBrandContext: r.GeneratedBrandContext,
		IsActive:              r.IsActive,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an active user by primary key. Inactive users are reported
// as not found.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("user build query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := row.toDomain()
	return &u, nil
}

// GetByEmail returns a user by email, active or not.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("user build query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	u := row.toDomain()
	return &u, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts a user or, when the email already exists, updates its name
// and brand context. The stored row is returned.
func (r *Repo) Upsert(ctx context.Context, u domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.Name, u.GeneratedBrandContext, true, u.CreatedAt, u.UpdatedAt).
		Suffix(`ON CONFLICT (email) DO UPDATE
			SET name = EXCLUDED.name,
			    generated_brand_context = COALESCE(EXCLUDED.generated_brand_context, users.generated_brand_context),
			    is_active = TRUE,
			    updated_at = EXCLUDED.updated_at
			RETURNING id, email, name, generated_brand_context, is_active, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("user build query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	res := row.toDomain()
	return &res, nil
}
