package domain_test

import (
	"errors"
	"math"
	"testing"

	"emergencyAPI/internal/domain"
	"emergencyAPI/pkg/e"
)

func TestNewPoint_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		lng, lat float64
		wantErr  bool
	}{
		{"origin", 0, 0, false},
		{"min_corner", -180, -90, false},
		{"max_corner", 180, 90, false},
		{"lat_above", 0, 90.0001, true},
		{"lat_below", 0, -90.0001, true},
		{"lng_above", 180.0001, 0, true},
		{"lng_below", -180.0001, 0, true},
		{"nan_lat", 0, math.NaN(), true},
		{"nan_lng", math.NaN(), 0, true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			p, err := domain.NewPoint(c.lng, c.lat)
			if c.wantErr {
				if !errors.Is(err, e.ErrInvalidCoordinates) {
					t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
				}
				if !errors.Is(err, e.ErrInvalidInput) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if p.Lng() != c.lng || p.Lat() != c.lat || p.SRID() != domain.SRIDWGS84 || !p.Valid() {
				t.Fatalf("unexpected point: %+v", p)
			}
		})
	}
}

func TestParsePoint(t *testing.T) {
	t.Parallel()

	p, err := domain.ParsePoint(" 4.60971 ", "-74.08175")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Lat() != 4.60971 || p.Lng() != -74.08175 {
		t.Fatalf("unexpected point: %s", p)
	}

	if _, err := domain.ParsePoint("abc", "0"); !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
	if _, err := domain.ParsePoint("0", ""); !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
	if _, err := domain.ParsePoint("91", "0"); !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
}

func TestPoint_ZeroValueInvalid(t *testing.T) {
	t.Parallel()

	var p domain.Point
	if p.Valid() {
		t.Fatalf("zero point must not be valid")
	}
}

func TestParseEmergencyLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]domain.EmergencyLevel{
		"low":      domain.EmergencyLow,
		" MEDIUM ": domain.EmergencyMedium,
		"Alta":     domain.EmergencyHigh,
		"crítica":  domain.EmergencyCritical,
		"critical": domain.EmergencyCritical,
		"BAJA":     domain.EmergencyLow,
	}
	for in, want := range cases {
		got, err := domain.ParseEmergencyLevel(in)
		if err != nil {
			t.Fatalf("%q: unexpected err: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: got=%q want=%q", in, got, want)
		}
	}

	// "i" followed by a combining acute accent.
	if got, err := domain.ParseEmergencyLevel("Cri\u0301tica"); err != nil || got != domain.EmergencyCritical {
		t.Fatalf("decomposed input: got=%q err=%v", got, err)
	}

	if _, err := domain.ParseEmergencyLevel("apocalyptic"); !errors.Is(err, e.ErrInvalidEmergencyLevel) {
		t.Fatalf("expected ErrInvalidEmergencyLevel, got %v", err)
	}
}
