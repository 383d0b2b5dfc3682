package postgres

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"sort"

	"emergencyAPI/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded schema files in name order. Every statement
// is idempotent, so running it twice is harmless.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	const op = "postgres.Migrate"

	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return e.Wrap(op, err)
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := migrationsFS.ReadFile(name)
		if err != nil {
			return e.Wrap(op, err)
		}
		if _, err := pool.Exec(ctx, string(body)); err != nil {
			logger.Error("migration failed", slog.String("op", op), slog.String("file", name), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
		logger.Info("migration applied", slog.String("file", name))
	}
	return nil
}
