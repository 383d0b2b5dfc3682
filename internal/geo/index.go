package geo

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"

	"emergencyAPI/internal/domain"
)

const (
	dimensions   = 2
	minChildren  = 25
	maxChildren  = 50
	pointEpsilon = 1e-9
	boxPadding   = 1e-6
)

type facilityItem struct {
	facility domain.Facility
	rect     *rtreego.Rect
}

func (fi *facilityItem) Bounds() *rtreego.Rect {
	return fi.rect
}

// FacilityIndex is an immutable R-Tree over a snapshot of the facility
// directory. Rebuild it to pick up changes; it is safe for concurrent reads.
type FacilityIndex struct {
	tree       *rtreego.Rtree
	facilities []domain.Facility
	dist       DistanceFunc
}

func NewFacilityIndex(facilities []domain.Facility, dist DistanceFunc) (*FacilityIndex, error) {
	if dist == nil {
		dist = Distance
	}

	items := make([]rtreego.Spatial, 0, len(facilities))
	kept := make([]domain.Facility, 0, len(facilities))
	for _, f := range facilities {
		if !f.Location.Valid() {
			return nil, fmt.Errorf("geo.NewFacilityIndex: facility %d has no location", f.ID)
		}
		p := rtreego.Point{f.Location.Lng(), f.Location.Lat()}
		items = append(items, &facilityItem{facility: f, rect: p.ToRect(pointEpsilon)})
		kept = append(kept, f)
	}

	tree := rtreego.NewTree(dimensions, minChildren, maxChildren)
	for _, it := range items {
		tree.Insert(it)
	}

	return &FacilityIndex{
		tree:       tree,
		facilities: kept,
		dist:       dist,
	}, nil
}

func (ix *FacilityIndex) Size() int { return len(ix.facilities) }

// Facilities returns the indexed snapshot. Callers must not modify it.
func (ix *FacilityIndex) Facilities() []domain.Facility { return ix.facilities }

// Nearest resolves the closest facility per category.
func (ix *FacilityIndex) Nearest(user domain.Point) ([]Match, error) {
	return NearestList(user, ix.facilities, ix.dist)
}

// Within returns the facilities at most radiusMeters away from origin. The
// tree narrows the search to a bounding box that always contains the circle;
// the exact filter is FindWithin with the index metric.
func (ix *FacilityIndex) Within(origin domain.Point, radiusMeters float64) ([]Match, error) {
	if err := CheckRadius(radiusMeters); err != nil {
		return nil, err
	}

	box, err := searchBox(origin, radiusMeters)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Facility, 0)
	for _, s := range ix.tree.SearchIntersect(box) {
		item, ok := s.(*facilityItem)
		if !ok {
			continue
		}
		candidates = append(candidates, item.facility)
	}

	hits, err := FindWithin(origin, radiusMeters, candidates, ix.dist)
	if err != nil {
		return nil, err
	}

	out := make([]Match, 0, len(hits))
	for _, f := range hits {
		out = append(out, Match{Facility: f, Meters: ix.dist(f.Location, origin)})
	}
	return out, nil
}

func searchBox(origin domain.Point, radiusMeters float64) (*rtreego.Rect, error) {
	latDelta := radiusMeters/metersPerDegree + boxPadding

	minLat := math.Max(origin.Lat()-latDelta, -90)
	maxLat := math.Min(origin.Lat()+latDelta, 90)

	minLng, maxLng := -180.0, 180.0
	farthest := math.Max(math.Abs(minLat), math.Abs(maxLat))
	if farthest < 89 {
		lngDelta := latDelta / math.Cos(deg2rad(farthest))
		// Boxes crossing the antimeridian fall back to the full longitude range.
		if origin.Lng()-lngDelta >= -180 && origin.Lng()+lngDelta <= 180 {
			minLng = origin.Lng() - lngDelta
			maxLng = origin.Lng() + lngDelta
		}
	}

	return rtreego.NewRect(
		rtreego.Point{minLng - boxPadding, minLat - boxPadding},
		[]float64{maxLng - minLng + 2*boxPadding, maxLat - minLat + 2*boxPadding},
	)
}
