package migrations

import (
	"context"
	"embed"
	"log/slog"
	"sort"
	"strings"

	"sportsbook/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
)

//go:embed *.sql
var files embed.FS

type Runner interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// Up applies every embedded migration not yet recorded in schema_migrations.
// Each file runs in its own transaction together with its version row.
func Up(ctx context.Context, db Runner, logger *slog.Logger) ([]string, error) {
	names, err := Files()
	if err != nil {
		return nil, err
	}

	err = db.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMPTZ NOT NULL DEFAULT now())`)
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "create schema_migrations")
	}

	var applied []string
	for _, name := range names {
		ran := false
		err := db.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
			var done bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, name).Scan(&done); err != nil {
				return err
			}
			if done {
				return nil
			}

			sql, err := files.ReadFile(name)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, string(sql)); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
				return err
			}
			ran = true
			return nil
		})
		if err != nil {
			return applied, errs.Wrapf(err, "apply %s", name)
		}
		if ran {
			logger.Info("migration applied", "version", name)
			applied = append(applied, name)
		}
	}
	return applied, nil
}

// Files lists the embedded migrations in apply order.
func Files() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
