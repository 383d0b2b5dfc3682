package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"emergencyAPI/internal/domain"
	"emergencyAPI/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

const reportColumns = `
	r.id,
	r.title,
	r.description,
	r.reported_at,
	r.emergency_level,
	r.author_id,
	r.category_id,
	c.category_name,
	ST_X(r.location) AS lng,
	ST_Y(r.location) AS lat,
	r.address,
	r.created_at,
	r.updated_at,
	r.delete_request_user_ids::text[],
	r.delete_request_count,
	r.version,
	(SELECT p.url FROM photos_reports p WHERE p.report_id = r.id ORDER BY p.created_at LIMIT 1)
FROM reports r
JOIN category_reports c ON c.id = r.category_id`

// Create inserts the report and its photo in one transaction.
func (p *ReportRepo) Create(ctx context.Context, report *domain.Report) error {
	const op = "postgres.Report.Create"

	if report == nil || !report.Location.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrPrecondition)
	}
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const insertReport = `
		INSERT INTO reports (
			id, title, description, reported_at, emergency_level, author_id, category_id,
			location, address, created_at, delete_request_user_ids, delete_request_count, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, ST_SetSRID(ST_MakePoint($8, $9), 4326), $10, $11, '{}', 0, 0)
	`
	_, err = tx.Exec(ctx, insertReport,
		report.ID,
		report.Title,
		report.Description,
		report.ReportedAt,
		string(report.EmergencyLevel),
		report.AuthorID,
		report.CategoryID,
		report.Location.Lng(),
		report.Location.Lat(),
		report.Address,
		report.CreatedAt,
	)
	if err != nil {
		p.logger.Error("insert report failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if report.PhotoURL != nil {
		const insertPhoto = `
			INSERT INTO photos_reports (id, report_id, url, created_at)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.Exec(ctx, insertPhoto, uuid.New(), report.ID, *report.PhotoURL, report.CreatedAt); err != nil {
			p.logger.Error("insert photo failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	report.DeleteRequestUserIDs = nil
	report.DeleteRequestCount = 0
	report.Version = 0
	return nil
}

func (p *ReportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	const op = "postgres.Report.Get"

	r, err := scanReport(p.pool.QueryRow(ctx, `SELECT `+reportColumns+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, wrapScan(ctx, op, err)
	}
	return r, nil
}

func (p *ReportRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Report, error) {
	const op = "postgres.Report.ListByAuthor"

	rows, err := p.pool.Query(ctx, `SELECT `+reportColumns+` WHERE r.author_id = $1 ORDER BY r.created_at DESC, r.id`, authorID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return p.collect(ctx, op, rows)
}

// FindWithin uses the sphere (use_spheroid = false) so the store agrees with
// geo.Distance on the boundary.
func (p *ReportRepo) FindWithin(ctx context.Context, origin domain.Point, radiusMeters float64) ([]*domain.Report, error) {
	const op = "postgres.Report.FindWithin"

	if !origin.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrPrecondition)
	}
	if radiusMeters < 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidArgument)
	}

	const where = `
		WHERE ST_DWithin(
			r.location::geography,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3,
			false
		)`

	rows, err := p.pool.Query(ctx, `SELECT `+reportColumns+where, origin.Lng(), origin.Lat(), radiusMeters)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return p.collect(ctx, op, rows)
}

// Modify runs fn on the row-locked report and applies its decision before
// commit. Concurrent callers on the same id queue on the lock, so every
// read-modify-write sees the previous one.
func (p *ReportRepo) Modify(ctx context.Context, id uuid.UUID, fn func(r *domain.Report) (domain.WriteOp, error)) error {
	const op = "postgres.Report.Modify"

	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		p.logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	r, err := scanReport(tx.QueryRow(ctx, `SELECT `+reportColumns+` WHERE r.id = $1 FOR UPDATE OF r`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("lock report failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return wrapScan(ctx, op, err)
	}

	writeOp, err := fn(r)
	if err != nil {
		return err
	}

	switch writeOp {
	case domain.WriteNone:
		return nil
	case domain.WriteSave:
		if err := p.save(ctx, tx, r); err != nil {
			return err
		}
	case domain.WriteDelete:
		if _, err := tx.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id); err != nil {
			p.logger.Error("delete report failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
	default:
		return fmt.Errorf("%s: unknown write op %d: %w", op, writeOp, e.ErrPrecondition)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ReportRepo) save(ctx context.Context, tx pgx.Tx, r *domain.Report) error {
	const op = "postgres.Report.save"

	voters := make([]string, 0, len(r.DeleteRequestUserIDs))
	for _, id := range r.DeleteRequestUserIDs {
		voters = append(voters, id.String())
	}

	const query = `
		UPDATE reports
		SET title                   = $3,
			description             = $4,
			emergency_level         = $5,
			updated_at              = $6,
			delete_request_user_ids = $7::uuid[],
			delete_request_count    = $8,
			version                 = version + 1
		WHERE id = $1 AND version = $2
	`

	cmd, err := tx.Exec(ctx, query,
		r.ID,
		r.Version,
		r.Title,
		r.Description,
		string(r.EmergencyLevel),
		r.UpdatedAt,
		voters,
		r.DeleteRequestCount,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", r.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: version %d changed under lock: %w", op, r.Version, e.ErrConflict)
	}
	r.Version++
	return nil
}

func (p *ReportRepo) collect(ctx context.Context, op string, rows pgx.Rows) ([]*domain.Report, error) {
	defer rows.Close()

	reports := make([]*domain.Report, 0)
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, wrapScan(ctx, op, err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return reports, nil
}

// errCorruptRow marks rows that scanned fine but do not form a valid report.
var errCorruptRow = errors.New("corrupt row")

func scanReport(row pgx.Row) (*domain.Report, error) {
	var (
		r        domain.Report
		level    string
		lng, lat float64
		voters   []string
		photo    *string
	)

	err := row.Scan(
		&r.ID,
		&r.Title,
		&r.Description,
		&r.ReportedAt,
		&level,
		&r.AuthorID,
		&r.CategoryID,
		&r.CategoryName,
		&lng,
		&lat,
		&r.Address,
		&r.CreatedAt,
		&r.UpdatedAt,
		&voters,
		&r.DeleteRequestCount,
		&r.Version,
		&photo,
	)
	if err != nil {
		return nil, err
	}

	r.Location, err = domain.NewPoint(lng, lat)
	if err != nil {
		return nil, fmt.Errorf("report %s location: %v: %w", r.ID, err, errCorruptRow)
	}
	r.EmergencyLevel = domain.EmergencyLevel(level)
	r.PhotoURL = photo

	if len(voters) > 0 {
		r.DeleteRequestUserIDs = make([]uuid.UUID, 0, len(voters))
		for _, v := range voters {
			id, err := uuid.Parse(v)
			if err != nil {
				return nil, fmt.Errorf("report %s voter %q: %w", r.ID, v, errCorruptRow)
			}
			r.DeleteRequestUserIDs = append(r.DeleteRequestUserIDs, id)
		}
	}
	return &r, nil
}

// wrapScan keeps corrupt rows away from the caller-facing error classes.
func wrapScan(ctx context.Context, op string, err error) error {
	if errors.Is(err, errCorruptRow) {
		return fmt.Errorf("%s: %v: %w", op, err, e.ErrInternal)
	}
	return e.WrapError(ctx, op, err)
}
