package geo

import (
	"fmt"
	"sort"

	"emergencyAPI/internal/domain"
	"emergencyAPI/pkg/e"
)

// TieToleranceMeters is the distance difference under which two facilities
// count as equidistant. Ties go to the lowest facility ID.
const TieToleranceMeters = 1e-6

// Match is a facility together with its distance to the query point.
type Match struct {
	Facility domain.Facility
	Meters   float64
}

// NearestPerCategory returns, for every category that has at least one
// facility, the facility closest to user.
func NearestPerCategory(user domain.Point, facilities []domain.Facility, dist DistanceFunc) (map[int64]domain.Facility, error) {
	matches, err := nearestMatches(user, facilities, dist)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]domain.Facility, len(matches))
	for cat, m := range matches {
		out[cat] = m.Facility
	}
	return out, nil
}

// NearestList is NearestPerCategory flattened into a slice ordered by
// category ID, with distances.
func NearestList(user domain.Point, facilities []domain.Facility, dist DistanceFunc) ([]Match, error) {
	matches, err := nearestMatches(user, facilities, dist)
	if err != nil {
		return nil, err
	}
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Facility.CategoryID < out[j].Facility.CategoryID
	})
	return out, nil
}

func nearestMatches(user domain.Point, facilities []domain.Facility, dist DistanceFunc) (map[int64]Match, error) {
	const op = "geo.NearestPerCategory"

	if !user.Valid() {
		return nil, fmt.Errorf("%s: user location not set: %w", op, e.ErrPrecondition)
	}
	if dist == nil {
		dist = Distance
	}

	type scored struct {
		f domain.Facility
		d float64
	}
	scoredAll := make([]scored, 0, len(facilities))
	minDist := make(map[int64]float64)
	for _, f := range facilities {
		if !f.Location.Valid() {
			return nil, fmt.Errorf("%s: facility %d has no location: %w", op, f.ID, e.ErrPrecondition)
		}
		d := dist(f.Location, user)
		scoredAll = append(scoredAll, scored{f: f, d: d})
		if m, ok := minDist[f.CategoryID]; !ok || d < m {
			minDist[f.CategoryID] = d
		}
	}

	// Ties are measured against the category minimum, not the running best.
	best := make(map[int64]Match, len(minDist))
	for _, s := range scoredAll {
		if s.d-minDist[s.f.CategoryID] > TieToleranceMeters {
			continue
		}
		cur, ok := best[s.f.CategoryID]
		if !ok || s.f.ID < cur.Facility.ID {
			best[s.f.CategoryID] = Match{Facility: s.f, Meters: s.d}
		}
	}
	return best, nil
}
