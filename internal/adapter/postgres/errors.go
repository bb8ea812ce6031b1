package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/adcopy-backend/internal/domain"
)

// SQLSTATE codes mapped onto domain errors. Anything else passes through.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"22001": domain.ErrValidation,    // string_data_right_truncation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"22003": domain.ErrValidation,    // numeric_value_out_of_range
}

// MapError wraps err with the entity and its id, translating missing rows and
// known constraint failures into domain errors. Context errors are left as is
// so callers can tell a timeout from a bad row.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", entity, id, classify(err))
}

func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
			return mapped
		}
	}
	return err
}
