package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"emergencyAPI/internal/domain"
	"emergencyAPI/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCategoryRepo(pool *pgxpool.Pool, logger *slog.Logger) *CategoryRepo {
	return &CategoryRepo{pool: pool, logger: logger}
}

func (p *CategoryRepo) GetCategoryByID(ctx context.Context, id int64) (*domain.ReportCategory, error) {
	const op = "postgres.Category.GetByID"

	const query = `
		SELECT id, category_name, description
		FROM category_reports
		WHERE id = $1
	`

	var c domain.ReportCategory
	if err := p.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return nil, e.WrapError(ctx, op, err)
	}
	return &c, nil
}

func (p *CategoryRepo) ListCategories(ctx context.Context) ([]domain.ReportCategory, error) {
	const op = "postgres.Category.List"

	rows, err := p.pool.Query(ctx, `SELECT id, category_name, description FROM category_reports ORDER BY id`)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.ReportCategory, 0)
	for rows.Next() {
		var c domain.ReportCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}
