package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"emergencyAPI/internal/domain"
	"emergencyAPI/internal/metrics"
	"emergencyAPI/pkg/e"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ReportRepository persists reports. Modify loads the report under a row
// lock, hands it to fn and applies the returned WriteOp in the same
// transaction; an error from fn rolls everything back and is returned as is.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Report, error)
	FindWithin(ctx context.Context, origin domain.Point, radiusMeters float64) ([]*domain.Report, error)
	Modify(ctx context.Context, id uuid.UUID, fn func(r *domain.Report) (domain.WriteOp, error)) error
}

type CategoryLookup interface {
	GetCategoryByID(ctx context.Context, id int64) (*domain.ReportCategory, error)
	ListCategories(ctx context.Context) ([]domain.ReportCategory, error)
}

type FacilityRepository interface {
	Create(ctx context.Context, facility *domain.Facility) error
	List(ctx context.Context, page, limit int) ([]domain.Facility, int64, error)
	Get(ctx context.Context, id int64) (*domain.Facility, error)
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]domain.Facility, error)
}

// DirectoryCache holds the facility snapshot shared between instances.
// GetFacilities returns nil, nil on a miss.
type DirectoryCache interface {
	GetFacilities(ctx context.Context) ([]domain.CachedFacility, error)
	SetFacilities(ctx context.Context, facilities []domain.CachedFacility, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type EventQueue interface {
	Enqueue(ctx context.Context, event domain.ReportEvent) error
}

type ImageUploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

type StatsRepository interface {
	CountCreatedSince(ctx context.Context, minutes int) (int64, error)
	CountPendingDeletion(ctx context.Context) (int64, error)
}

// Report use-cases
type ReportUseCases interface {
	Register(ctx context.Context, req domain.RegisterReportRequest, authorID uuid.UUID) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateReportRequest, requesterID uuid.UUID) error
	DeleteDirectly(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error
	RequestDeletion(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (domain.DeletionOutcome, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Report, error)
	FindNearby(ctx context.Context, req domain.LocationRequest, radiusMeters float64) ([]*domain.Report, error)
	Categories(ctx context.Context) ([]domain.ReportCategory, error)
}

// Directory use-cases
type DirectoryUseCases interface {
	Nearest(ctx context.Context, req domain.LocationRequest) ([]domain.FacilityView, error)
	Within(ctx context.Context, req domain.LocationRequest, radiusMeters float64) ([]domain.FacilityView, error)
	Reload(ctx context.Context) error
	Invalidate(ctx context.Context) error
}

type FacilityAdminUseCases interface {
	Create(ctx context.Context, req domain.CreateFacilityRequest) (int64, error)
	List(ctx context.Context, page, limit int) ([]domain.Facility, int64, error)
	Get(ctx context.Context, id int64) (*domain.Facility, error)
	Delete(ctx context.Context, id int64) error
}

type StatsUseCases interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ReportStats, error)
}

type UploadUseCases interface {
	UploadImage(ctx context.Context, filename string, size int64, r io.Reader) (string, error)
}

type Service struct {
	Reports   ReportUseCases
	Directory DirectoryUseCases
	Admin     FacilityAdminUseCases
	Stats     StatsUseCases
	Uploads   UploadUseCases
}

func NewService(
	reports ReportUseCases,
	directory DirectoryUseCases,
	admin FacilityAdminUseCases,
	stats StatsUseCases,
	uploads UploadUseCases,
) *Service {
	return &Service{
		Reports:   reports,
		Directory: directory,
		Admin:     admin,
		Stats:     stats,
		Uploads:   uploads,
	}
}

// opaque keeps domain errors as they are and replaces anything else by
// ErrUnexpected after logging the detail.
func opaque(ctx context.Context, logger *slog.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	if e.IsDomain(err) {
		return err
	}
	msg := "unexpected error"
	if errors.Is(err, e.ErrPrecondition) {
		msg = "precondition violated"
	}
	logger.ErrorContext(ctx, msg, slog.String("op", op), slog.Any("error", err))
	metrics.UnexpectedErrorsTotal.WithLabelValues(op).Inc()
	return e.ErrUnexpected
}
