package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"emergencyAPI/internal/domain"
	"emergencyAPI/internal/geo"
	"emergencyAPI/internal/metrics"
	"emergencyAPI/internal/quorum"
	"emergencyAPI/pkg/e"

	"github.com/google/uuid"
)

type ReportService struct {
	repo       ReportRepository
	categories CategoryLookup
	tracker    *quorum.Tracker
	events     EventQueue
	logger     *slog.Logger
}

// NewReportService wires the report lifecycle. events may be nil when
// webhook delivery is disabled.
func NewReportService(
	repo ReportRepository,
	categories CategoryLookup,
	tracker *quorum.Tracker,
	events EventQueue,
	logger *slog.Logger,
) *ReportService {
	if tracker == nil {
		tracker = quorum.NewTracker(quorum.DefaultThreshold)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		repo:       repo,
		categories: categories,
		tracker:    tracker,
		events:     events,
		logger:     logger,
	}
}

func (s *ReportService) Register(ctx context.Context, req domain.RegisterReportRequest, authorID uuid.UUID) (uuid.UUID, error) {
	const op = "service.ReportService.Register"

	if authorID == uuid.Nil {
		return uuid.Nil, e.ErrUnauthorized
	}

	title, description, err := requireText(req.Title, req.Description)
	if err != nil {
		return uuid.Nil, err
	}

	level, err := domain.ParseEmergencyLevel(req.EmergencyLevel)
	if err != nil {
		return uuid.Nil, err
	}

	location, err := domain.ParsePoint(req.Latitude, req.Longitude)
	if err != nil {
		return uuid.Nil, err
	}

	category, err := s.categories.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return uuid.Nil, fmt.Errorf("category %d: %w", req.CategoryID, e.ErrInvalidCategory)
		}
		return uuid.Nil, opaque(ctx, s.logger, op, err)
	}
	if category == nil {
		return uuid.Nil, fmt.Errorf("category %d: %w", req.CategoryID, e.ErrInvalidCategory)
	}

	var photo *string
	if req.PhotoURL != nil && strings.TrimSpace(*req.PhotoURL) != "" {
		url := strings.TrimSpace(*req.PhotoURL)
		photo = &url
	}

	now := time.Now().UTC()
	report := &domain.Report{
		ID:             uuid.New(),
		Title:          title,
		Description:    description,
		Location:       location,
		Address:        strings.TrimSpace(req.Address),
		EmergencyLevel: level,
		CategoryID:     category.ID,
		CategoryName:   category.Name,
		AuthorID:       authorID,
		ReportedAt:     req.ReportedAt.UTC(),
		CreatedAt:      now,
		PhotoURL:       photo,
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return uuid.Nil, opaque(ctx, s.logger, op, err)
	}

	metrics.ReportsRegisteredTotal.Inc()
	s.logger.InfoContext(ctx, "report registered",
		slog.String("report_id", report.ID.String()),
		slog.String("author_id", authorID.String()),
		slog.Int64("category_id", report.CategoryID),
	)
	s.publish(ctx, domain.EventReportCreated, report)

	return report.ID, nil
}

func (s *ReportService) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	const op = "service.ReportService.Get"

	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, opaque(ctx, s.logger, op, err)
	}
	return r, nil
}

func (s *ReportService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateReportRequest, requesterID uuid.UUID) error {
	const op = "service.ReportService.Update"

	if requesterID == uuid.Nil {
		return e.ErrUnauthorized
	}

	title, description, err := requireText(req.Title, req.Description)
	if err != nil {
		return err
	}

	var level *domain.EmergencyLevel
	if req.EmergencyLevel != nil {
		l, err := domain.ParseEmergencyLevel(*req.EmergencyLevel)
		if err != nil {
			return err
		}
		level = &l
	}

	err = s.repo.Modify(ctx, id, func(r *domain.Report) (domain.WriteOp, error) {
		if r.AuthorID != requesterID {
			return domain.WriteNone, e.ErrUnauthorized
		}
		r.Title = title
		r.Description = description
		if level != nil {
			r.EmergencyLevel = *level
		}
		now := time.Now().UTC()
		r.UpdatedAt = &now
		return domain.WriteSave, nil
	})
	if err != nil {
		return opaque(ctx, s.logger, op, err)
	}

	s.logger.InfoContext(ctx, "report updated", slog.String("report_id", id.String()))
	return nil
}

func (s *ReportService) DeleteDirectly(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error {
	const op = "service.ReportService.DeleteDirectly"

	if requesterID == uuid.Nil {
		return e.ErrUnauthorized
	}

	var removed domain.Report
	err := s.repo.Modify(ctx, id, func(r *domain.Report) (domain.WriteOp, error) {
		if r.AuthorID != requesterID {
			return domain.WriteNone, e.ErrUnauthorized
		}
		removed = *r
		return domain.WriteDelete, nil
	})
	if err != nil {
		return opaque(ctx, s.logger, op, err)
	}

	metrics.ReportsDeletedTotal.WithLabelValues("author").Inc()
	s.logger.InfoContext(ctx, "report deleted by author", slog.String("report_id", id.String()))
	s.publish(ctx, domain.EventReportDeleted, &removed)
	return nil
}

// RequestDeletion records requesterID's vote. The report is removed in the
// same transaction as the vote that reaches the quorum.
func (s *ReportService) RequestDeletion(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (domain.DeletionOutcome, error) {
	const op = "service.ReportService.RequestDeletion"

	if requesterID == uuid.Nil {
		return domain.DeletionOutcome{}, e.ErrUnauthorized
	}

	outcome := domain.DeletionOutcome{ReportID: id}
	var removed domain.Report
	err := s.repo.Modify(ctx, id, func(r *domain.Report) (domain.WriteOp, error) {
		reached, err := s.tracker.Request(r, requesterID)
		if err != nil {
			return domain.WriteNone, err
		}
		outcome.Count = r.DeleteRequestCount
		if reached {
			outcome.Deleted = true
			removed = *r
			return domain.WriteDelete, nil
		}
		return domain.WriteSave, nil
	})
	if err != nil {
		if errors.Is(err, e.ErrAlreadyRequested) {
			metrics.DeleteVotesTotal.WithLabelValues("duplicate").Inc()
		}
		return domain.DeletionOutcome{}, opaque(ctx, s.logger, op, err)
	}

	if outcome.Deleted {
		metrics.DeleteVotesTotal.WithLabelValues("quorum").Inc()
		metrics.ReportsDeletedTotal.WithLabelValues("quorum").Inc()
		s.logger.InfoContext(ctx, "report deleted by quorum",
			slog.String("report_id", id.String()),
			slog.Int("votes", outcome.Count),
		)
		s.publish(ctx, domain.EventReportDeletedByQuorum, &removed)
		return outcome, nil
	}

	metrics.DeleteVotesTotal.WithLabelValues("pending").Inc()
	s.logger.InfoContext(ctx, "delete request recorded",
		slog.String("report_id", id.String()),
		slog.Int("votes", outcome.Count),
		slog.Int("threshold", s.tracker.Threshold()),
	)
	return outcome, nil
}

func (s *ReportService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Report, error) {
	const op = "service.ReportService.ListByAuthor"

	if authorID == uuid.Nil {
		return nil, e.ErrUnauthorized
	}

	reports, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, opaque(ctx, s.logger, op, err)
	}
	return reports, nil
}

// FindNearby returns the reports at most radiusMeters away from the
// requested location. The store prefilters with its spatial index and the
// result is checked again with geo.Distance.
func (s *ReportService) FindNearby(ctx context.Context, req domain.LocationRequest, radiusMeters float64) ([]*domain.Report, error) {
	const op = "service.ReportService.FindNearby"

	origin, err := domain.ParsePoint(req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}
	if err := geo.CheckRadius(radiusMeters); err != nil {
		return nil, err
	}

	start := time.Now()
	candidates, err := s.repo.FindWithin(ctx, origin, radiusMeters)
	if err != nil {
		return nil, opaque(ctx, s.logger, op, err)
	}

	reports, err := geo.FindWithin(origin, radiusMeters, candidates, geo.Distance)
	if err != nil {
		return nil, opaque(ctx, s.logger, op, err)
	}
	metrics.QueryDurationMs.WithLabelValues("reports_within").Observe(float64(time.Since(start).Milliseconds()))

	return reports, nil
}

func (s *ReportService) Categories(ctx context.Context) ([]domain.ReportCategory, error) {
	const op = "service.ReportService.Categories"

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, opaque(ctx, s.logger, op, err)
	}
	return categories, nil
}

// requireText trims title and description and rejects blank values.
func requireText(title, description string) (string, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", fmt.Errorf("title must not be blank: %w", e.ErrInvalidInput)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return "", "", fmt.Errorf("description must not be blank: %w", e.ErrInvalidInput)
	}
	return title, description, nil
}

func (s *ReportService) publish(ctx context.Context, t domain.ReportEventType, r *domain.Report) {
	if s.events == nil {
		return
	}
	if err := s.events.Enqueue(ctx, domain.NewReportEvent(t, r)); err != nil {
		s.logger.ErrorContext(ctx, "enqueue report event failed",
			slog.String("type", string(t)),
			slog.String("report_id", r.ID.String()),
			slog.Any("error", err),
		)
	}
}
