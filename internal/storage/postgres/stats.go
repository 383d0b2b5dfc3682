package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"emergencyAPI/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) CountCreatedSince(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.Stats.CountCreatedSince"

	if minutes <= 0 || minutes > 1440 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT COUNT(*)
		FROM reports
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute')
	`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, minutes).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.Int("minutes", minutes),
		)
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}

// CountPendingDeletion counts reports with at least one delete vote.
func (p *StatsRepo) CountPendingDeletion(ctx context.Context) (int64, error) {
	const op = "postgres.Stats.CountPendingDeletion"

	var cnt int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reports WHERE delete_request_count > 0`).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}
