package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"emergencyAPI/internal/domain"
	"emergencyAPI/internal/geo"
	"emergencyAPI/internal/metrics"
)

const defaultDirectoryTTL = 10 * time.Minute

// DirectoryService answers facility lookups from an in-memory index built
// from the redis snapshot, falling back to postgres on a miss.
type DirectoryService struct {
	repo   FacilityRepository
	cache  DirectoryCache
	ttl    time.Duration
	logger *slog.Logger

	index  atomic.Pointer[geo.FacilityIndex]
	loadMu sync.Mutex
}

func NewDirectoryService(repo FacilityRepository, cache DirectoryCache, ttl time.Duration, logger *slog.Logger) *DirectoryService {
	if ttl <= 0 {
		ttl = defaultDirectoryTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DirectoryService{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Nearest returns the closest facility of every category, ordered by
// category ID.
func (s *DirectoryService) Nearest(ctx context.Context, req domain.LocationRequest) ([]domain.FacilityView, error) {
	const op = "service.DirectoryService.Nearest"

	user, err := domain.ParsePoint(req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}

	ix, err := s.current(ctx)
	if err != nil {
		return nil, opaque(ctx, s.logger, op, err)
	}

	start := time.Now()
	matches, err := ix.Nearest(user)
	if err != nil {
		return nil, opaque(ctx, s.logger, op, err)
	}
	metrics.QueryDurationMs.WithLabelValues("facilities_nearest").Observe(float64(time.Since(start).Milliseconds()))

	return toFacilityViews(matches), nil
}

// Within returns every facility at most radiusMeters away, closest first.
func (s *DirectoryService) Within(ctx context.Context, req domain.LocationRequest, radiusMeters float64) ([]domain.FacilityView, error) {
	const op = "service.DirectoryService.Within"

	origin, err := domain.ParsePoint(req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}
	if err := geo.CheckRadius(radiusMeters); err != nil {
		return nil, err
	}

	ix, err := s.current(ctx)
	if err != nil {
		return nil, opaque(ctx, s.logger, op, err)
	}

	start := time.Now()
	matches, err := ix.Within(origin, radiusMeters)
	if err != nil {
		return nil, opaque(ctx, s.logger, op, err)
	}
	metrics.QueryDurationMs.WithLabelValues("facilities_within").Observe(float64(time.Since(start).Milliseconds()))

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Meters != matches[j].Meters {
			return matches[i].Meters < matches[j].Meters
		}
		return matches[i].Facility.ID < matches[j].Facility.ID
	})
	return toFacilityViews(matches), nil
}

// Reload rebuilds the index from postgres and refreshes the shared cache.
func (s *DirectoryService) Reload(ctx context.Context) error {
	const op = "service.DirectoryService.Reload"

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if _, err := s.loadFromStore(ctx); err != nil {
		return opaque(ctx, s.logger, op, err)
	}
	return nil
}

// Invalidate drops the shared cache and the local index; the next lookup
// loads a fresh snapshot. It waits for an in-flight load so that load cannot
// install or cache a snapshot read before the change.
func (s *DirectoryService) Invalidate(ctx context.Context) error {
	const op = "service.DirectoryService.Invalidate"

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.index.Store(nil)
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		return opaque(ctx, s.logger, op, err)
	}
	s.logger.InfoContext(ctx, "directory cache invalidated")
	return nil
}

func (s *DirectoryService) current(ctx context.Context) (*geo.FacilityIndex, error) {
	if ix := s.index.Load(); ix != nil {
		return ix, nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if ix := s.index.Load(); ix != nil {
		return ix, nil
	}

	if s.cache != nil {
		cached, err := s.cache.GetFacilities(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "directory cache read failed", slog.Any("error", err))
		}
		if err == nil && cached != nil {
			metrics.DirectoryCacheHitsTotal.Inc()
			return s.buildFromCache(cached)
		}
		metrics.DirectoryCacheMissesTotal.Inc()
	}

	return s.loadFromStore(ctx)
}

func (s *DirectoryService) buildFromCache(cached []domain.CachedFacility) (*geo.FacilityIndex, error) {
	facilities := make([]domain.Facility, 0, len(cached))
	for _, c := range cached {
		f, err := c.Facility()
		if err != nil {
			return nil, err
		}
		facilities = append(facilities, f)
	}
	return s.install(facilities)
}

func (s *DirectoryService) loadFromStore(ctx context.Context) (*geo.FacilityIndex, error) {
	facilities, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	ix, err := s.install(facilities)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached := make([]domain.CachedFacility, 0, len(facilities))
		for _, f := range facilities {
			cached = append(cached, f.Cached())
		}
		if err := s.cache.SetFacilities(ctx, cached, s.ttl); err != nil {
			s.logger.WarnContext(ctx, "directory cache write failed", slog.Any("error", err))
		}
	}

	s.logger.InfoContext(ctx, "directory loaded", slog.Int("facilities", len(facilities)))
	return ix, nil
}

func (s *DirectoryService) install(facilities []domain.Facility) (*geo.FacilityIndex, error) {
	ix, err := geo.NewFacilityIndex(facilities, geo.Distance)
	if err != nil {
		return nil, err
	}
	s.index.Store(ix)
	metrics.DirectoryFacilities.Set(float64(ix.Size()))
	return ix, nil
}

func toFacilityViews(matches []geo.Match) []domain.FacilityView {
	out := make([]domain.FacilityView, 0, len(matches))
	for _, m := range matches {
		v := domain.NewFacilityView(m.Facility)
		d := m.Meters
		v.DistanceM = &d
		out = append(out, v)
	}
	return out
}
