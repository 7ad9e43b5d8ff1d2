package utils

import (
	"math"
	"testing"
)

func TestCalculateHaversineDistance(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64 // meters
		tolerance              float64
	}{
		{"same point", -6.2, 106.8, -6.2, 106.8, 0, 0.01},
		{"jakarta to surabaya", -6.2088, 106.8456, -7.2575, 112.7521, 663000, 5000},
		{"one degree latitude", 0, 0, 1, 0, 111195, 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CalculateHaversineDistance(c.lat1, c.lon1, c.lat2, c.lon2)
			if math.Abs(got-c.want) > c.tolerance {
				t.Errorf("distance = %.1f, want %.1f (±%.1f)", got, c.want, c.tolerance)
			}
		})
	}
}
