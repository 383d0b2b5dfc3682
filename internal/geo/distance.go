// Package geo holds the spatial logic of the service: the distance metric,
// the nearest facility per category resolver, the radius filter and a small
// in-memory index over the facility directory.
package geo

import (
	"math"

	"emergencyAPI/internal/domain"
)

// EarthRadiusMeters is the mean radius PostGIS uses for sphere
// calculations on geography (use_spheroid = false). Keeping the same value
// makes in-memory results agree with ST_DWithin in the store.
const EarthRadiusMeters = 6371008.7714

// metersPerDegree is the length of one degree of latitude.
const metersPerDegree = EarthRadiusMeters * math.Pi / 180

// DistanceFunc returns the distance between two points in meters. Every
// caller that orders or thresholds by distance must use the same function.
type DistanceFunc func(a, b domain.Point) float64

// Distance is the great-circle (haversine) distance in meters.
func Distance(a, b domain.Point) float64 {
	lat1 := deg2rad(a.Lat())
	lat2 := deg2rad(b.Lat())
	dLat := lat2 - lat1
	dLng := deg2rad(b.Lng() - a.Lng())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	if h > 1 {
		h = 1
	}

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
