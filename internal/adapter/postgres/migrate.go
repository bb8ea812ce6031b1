package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/adcopy-backend/migrations"
)

// MigrationCommand selects what Migrate does.
type MigrationCommand string

const (
	MigrateUp     MigrationCommand = "up"
	MigrateDown   MigrationCommand = "down"
	MigrateStatus MigrationCommand = "status"
)

// MigrationResult describes one applied, rolled back or pending migration.
type MigrationResult struct {
	Version int64
	Source  string
	Applied bool
}

// Migrate runs the embedded goose migrations against dsn.
// goose requires *sql.DB, so a short-lived database/sql handle is opened.
func Migrate(ctx context.Context, dsn string, cmd MigrationCommand) ([]MigrationResult, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return MigrateDB(ctx, db, cmd)
}

// MigrateDB runs the embedded goose migrations on an open *sql.DB.
func MigrateDB(ctx context.Context, db *sql.DB, cmd MigrationCommand) ([]MigrationResult, error) {
	// goose.NewProvider handles $$-delimited PL/pgSQL bodies, unlike the
	// legacy goose.Up which splits on semicolons.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	switch cmd {
	case MigrateUp:
		res, err := provider.Up(ctx)
		if err != nil {
			return nil, fmt.Errorf("goose up: %w", err)
		}
		out := make([]MigrationResult, 0, len(res))
		for _, r := range res {
			out = append(out, MigrationResult{Version: r.Source.Version, Source: r.Source.Path, Applied: true})
		}
		return out, nil

	case MigrateDown:
		r, err := provider.Down(ctx)
		if err != nil {
			return nil, fmt.Errorf("goose down: %w", err)
		}
		return []MigrationResult{{Version: r.Source.Version, Source: r.Source.Path, Applied: false}}, nil

	case MigrateStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return nil, fmt.Errorf("goose status: %w", err)
		}
		out := make([]MigrationResult, 0, len(statuses))
		for _, s := range statuses {
			out = append(out, MigrationResult{
				Version: s.Source.Version,
				Source:  s.Source.Path,
				Applied: s.State == goose.StateApplied,
			})
		}
		return out, nil
	}

	return nil, fmt.Errorf("unknown migration command %q", cmd)
}
