package service

import (
	"context"
	"log/slog"

	"emergencyAPI/internal/domain"
)

const defaultStatsWindowMinutes = 60

type StatsService struct {
	repo   StatsRepository
	logger *slog.Logger
}

func NewStatsService(repo StatsRepository, logger *slog.Logger) *StatsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsService{repo: repo, logger: logger}
}

func (s *StatsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.ReportStats, error) {
	const op = "service.StatsService.GetStats"

	minutes := req.Minutes
	if minutes == 0 {
		minutes = defaultStatsWindowMinutes
	}

	created, err := s.repo.CountCreatedSince(ctx, minutes)
	if err != nil {
		return nil, opaque(ctx, s.logger, op, err)
	}

	pending, err := s.repo.CountPendingDeletion(ctx)
	if err != nil {
		return nil, opaque(ctx, s.logger, op, err)
	}

	return &domain.ReportStats{
		CreatedCount:    created,
		PendingDeletion: pending,
		Minutes:         minutes,
	}, nil
}
