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

type FacilityRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewFacilityRepo(pool *pgxpool.Pool, logger *slog.Logger) *FacilityRepo {
	return &FacilityRepo{pool: pool, logger: logger}
}

const facilityColumns = `
	s.id,
	s.name_site,
	s.phone,
	s.address,
	s.description,
	s.category_id,
	c.category,
	ST_X(s.location) AS lng,
	ST_Y(s.location) AS lat
FROM emergency_sites s
JOIN emergency_site_categories c ON c.id = s.category_id`

func (p *FacilityRepo) Create(ctx context.Context, f *domain.Facility) error {
	const op = "postgres.Facility.Create"

	if f == nil || !f.Location.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrPrecondition)
	}

	const query = `
		INSERT INTO emergency_sites (name_site, phone, address, description, category_id, location)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326))
		RETURNING id
	`

	err := p.pool.QueryRow(ctx, query,
		f.Name,
		f.Phone,
		f.Address,
		f.Description,
		f.CategoryID,
		f.Location.Lng(),
		f.Location.Lat(),
	).Scan(&f.ID)
	if err != nil {
		p.logger.Error("db insert failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *FacilityRepo) List(ctx context.Context, page, limit int) ([]domain.Facility, int64, error) {
	const op = "postgres.Facility.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM emergency_sites`).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	rows, err := p.pool.Query(ctx, `SELECT `+facilityColumns+` ORDER BY s.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	items, err := p.collect(ctx, op, rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (p *FacilityRepo) ListAll(ctx context.Context) ([]domain.Facility, error) {
	const op = "postgres.Facility.ListAll"

	rows, err := p.pool.Query(ctx, `SELECT `+facilityColumns+` ORDER BY s.id`)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return p.collect(ctx, op, rows)
}

func (p *FacilityRepo) Get(ctx context.Context, id int64) (*domain.Facility, error) {
	const op = "postgres.Facility.Get"

	f, err := scanFacility(p.pool.QueryRow(ctx, `SELECT `+facilityColumns+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return nil, wrapScan(ctx, op, err)
	}
	return &f, nil
}

func (p *FacilityRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgres.Facility.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM emergency_sites WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *FacilityRepo) collect(ctx context.Context, op string, rows pgx.Rows) ([]domain.Facility, error) {
	defer rows.Close()

	out := make([]domain.Facility, 0)
	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, wrapScan(ctx, op, err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

func scanFacility(row pgx.Row) (domain.Facility, error) {
	var (
		f        domain.Facility
		lng, lat float64
	)
	if err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Phone,
		&f.Address,
		&f.Description,
		&f.CategoryID,
		&f.CategoryLabel,
		&lng,
		&lat,
	); err != nil {
		return domain.Facility{}, err
	}

	loc, err := domain.NewPoint(lng, lat)
	if err != nil {
		return domain.Facility{}, fmt.Errorf("facility %d location: %v: %w", f.ID, err, errCorruptRow)
	}
	f.Location = loc
	return f, nil
}
