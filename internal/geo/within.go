package geo

import (
	"fmt"
	"math"

	"emergencyAPI/internal/domain"
	"emergencyAPI/pkg/e"
)

// Located is anything with a position.
type Located interface {
	Point() domain.Point
}

// FindWithin returns the items whose distance to origin is at most
// radiusMeters. The boundary is inclusive and input order is kept.
func FindWithin[T Located](origin domain.Point, radiusMeters float64, items []T, dist DistanceFunc) ([]T, error) {
	const op = "geo.FindWithin"

	if err := CheckRadius(radiusMeters); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !origin.Valid() {
		return nil, fmt.Errorf("%s: origin not set: %w", op, e.ErrPrecondition)
	}
	if dist == nil {
		dist = Distance
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		p := it.Point()
		if !p.Valid() {
			return nil, fmt.Errorf("%s: item without location: %w", op, e.ErrPrecondition)
		}
		if dist(p, origin) <= radiusMeters {
			out = append(out, it)
		}
	}
	return out, nil
}

// CheckRadius rejects negative, NaN and infinite radii.
func CheckRadius(radiusMeters float64) error {
	if math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) || radiusMeters < 0 {
		return fmt.Errorf("radius %v must be a finite number >= 0: %w", radiusMeters, e.ErrInvalidArgument)
	}
	return nil
}
