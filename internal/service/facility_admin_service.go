package service

import (
	"context"
	"log/slog"
	"strings"

	"emergencyAPI/internal/domain"
)

type FacilityAdminService struct {
	repo      FacilityRepository
	directory DirectoryUseCases
	logger    *slog.Logger
}

func NewFacilityAdminService(repo FacilityRepository, directory DirectoryUseCases, logger *slog.Logger) *FacilityAdminService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FacilityAdminService{repo: repo, directory: directory, logger: logger}
}

func (s *FacilityAdminService) Create(ctx context.Context, req domain.CreateFacilityRequest) (int64, error) {
	const op = "service.FacilityAdminService.Create"

	location, err := domain.NewPoint(req.Lng, req.Lat)
	if err != nil {
		return 0, err
	}

	f := &domain.Facility{
		Name:        strings.TrimSpace(req.Name),
		Phone:       strings.TrimSpace(req.Phone),
		Location:    location,
		Address:     strings.TrimSpace(req.Address),
		Description: strings.TrimSpace(req.Description),
		CategoryID:  req.CategoryID,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return 0, opaque(ctx, s.logger, op, err)
	}

	s.refresh(ctx)
	return f.ID, nil
}

func (s *FacilityAdminService) List(ctx context.Context, page, limit int) ([]domain.Facility, int64, error) {
	const op = "service.FacilityAdminService.List"

	items, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, opaque(ctx, s.logger, op, err)
	}
	return items, total, nil
}

func (s *FacilityAdminService) Get(ctx context.Context, id int64) (*domain.Facility, error) {
	const op = "service.FacilityAdminService.Get"

	f, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, opaque(ctx, s.logger, op, err)
	}
	return f, nil
}

func (s *FacilityAdminService) Delete(ctx context.Context, id int64) error {
	const op = "service.FacilityAdminService.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		return opaque(ctx, s.logger, op, err)
	}

	s.refresh(ctx)
	return nil
}

// refresh drops the directory snapshot after a write. A failure only delays
// visibility until the refresher runs, so it is logged and not returned.
func (s *FacilityAdminService) refresh(ctx context.Context) {
	if s.directory == nil {
		return
	}
	if err := s.directory.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "directory invalidate failed", slog.Any("error", err))
	}
}
