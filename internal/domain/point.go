package domain

import (
	"fmt"
	"strconv"
	"strings"

	"emergencyAPI/pkg/e"
)

const SRIDWGS84 = 4326

// Point is a geographic coordinate. X is the longitude and Y the latitude.
// The zero value is not a valid point; use NewPoint.
type Point struct {
	x, y  float64
	srid  int
	valid bool
}

func NewPoint(lng, lat float64) (Point, error) {
	return NewPointSRID(lng, lat, SRIDWGS84)
}

func NewPointSRID(lng, lat float64, srid int) (Point, error) {
	// NaN fails both comparisons, so it is rejected here too.
	if !(lat >= -90 && lat <= 90) {
		return Point{}, fmt.Errorf("latitude %v out of range [-90, 90]: %w", lat, e.ErrInvalidCoordinates)
	}
	if !(lng >= -180 && lng <= 180) {
		return Point{}, fmt.Errorf("longitude %v out of range [-180, 180]: %w", lng, e.ErrInvalidCoordinates)
	}
	if srid == 0 {
		srid = SRIDWGS84
	}
	return Point{x: lng, y: lat, srid: srid, valid: true}, nil
}

// MustPoint is NewPoint for literals known to be in range.
func MustPoint(lng, lat float64) Point {
	p, err := NewPoint(lng, lat)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePoint parses latitude and longitude given as decimal strings.
func ParsePoint(lat, lng string) (Point, error) {
	latV, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return Point{}, fmt.Errorf("latitude must be a valid number: %w", e.ErrInvalidCoordinates)
	}
	lngV, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil {
		return Point{}, fmt.Errorf("longitude must be a valid number: %w", e.ErrInvalidCoordinates)
	}
	return NewPoint(lngV, latV)
}

func (p Point) X() float64   { return p.x }
func (p Point) Y() float64   { return p.y }
func (p Point) Lng() float64 { return p.x }
func (p Point) Lat() float64 { return p.y }
func (p Point) SRID() int    { return p.srid }

// Valid is false for the zero value.
func (p Point) Valid() bool { return p.valid }

func (p Point) Equal(o Point) bool {
	return p.x == o.x && p.y == o.y && p.srid == o.srid
}

func (p Point) String() string {
	return fmt.Sprintf("POINT(%g %g)", p.x, p.y)
}

// Coordinates is the wire form of a Point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Point) Coordinates() Coordinates {
	return Coordinates{Lat: p.y, Lng: p.x}
}
