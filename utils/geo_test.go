package utils

import (
	"math"
	"testing"

	"localpro/models"
)

func TestHaversineMeters(t *testing.T) {
	tests := []struct {
		name string
		a, b models.GeoPoint
		want float64
	}{
		{"one degree of latitude", models.NewGeoPoint(0, 0), models.NewGeoPoint(0, 1), EarthRadiusMeters * math.Pi / 180},
		{"quarter of the equator", models.NewGeoPoint(0, 0), models.NewGeoPoint(90, 0), EarthRadiusMeters * math.Pi / 2},
		{"pole to pole", models.NewGeoPoint(0, 90), models.NewGeoPoint(0, -90), EarthRadiusMeters * math.Pi},
		{"Paris to London", models.NewGeoPoint(2.3522, 48.8566), models.NewGeoPoint(-0.1278, 51.5074), 343_560},
		{"same point", models.NewGeoPoint(77, 28), models.NewGeoPoint(77, 28), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineMeters(tt.a, tt.b)
			if tt.want == 0 {
				if got > 1e-6 {
					t.Fatalf("expected 0, got %f", got)
				}
				return
			}
			if rel := math.Abs(got-tt.want) / tt.want; rel > 0.001 {
				t.Fatalf("expected %f within 0.1%%, got %f (off by %.4f%%)", tt.want, got, rel*100)
			}
		})
	}
}

func TestHaversineIsSymmetric(t *testing.T) {
	a := models.NewGeoPoint(77.0, 28.0)
	b := models.NewGeoPoint(77.01, 28.01)
	if d1, d2 := HaversineMeters(a, b), HaversineMeters(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Fatalf("expected symmetric distances, got %f and %f", d1, d2)
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(1.484999, 2); got != 1.48 {
		t.Errorf("expected 1.48, got %v", got)
	}
	if got := RoundTo(1.485001, 2); got != 1.49 {
		t.Errorf("expected 1.49, got %v", got)
	}
	if got := RoundTo(4.25, 1); got != 4.3 {
		t.Errorf("expected 4.3, got %v", got)
	}
}
