package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
		tolerance              float64
	}{
		{
			name: "Same point",
			lat1: 48.8566, lon1: 2.3522,
			lat2: 48.8566, lon2: 2.3522,
			expected:  0,
			tolerance: 0.000001,
		},
		{
			name: "Paris to London",
			lat1: 48.8566, lon1: 2.3522,
			lat2: 51.5074, lon2: -0.1278,
			expected:  343.5,
			tolerance: 1.0,
		},
		{
			name: "Eiffel Tower to Louvre",
			lat1: 48.8584, lon1: 2.2945,
			lat2: 48.8606, lon2: 2.3376,
			expected:  3.17,
			tolerance: 0.05,
		},
		{
			name: "Across the equator",
			lat1: 1.0, lon1: 0.0,
			lat2: -1.0, lon2: 0.0,
			expected:  222.4,
			tolerance: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
		})
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	forward := DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
	backward := DistanceKm(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, forward, backward, 0.000001)
}

func TestDistanceKmNonNegative(t *testing.T) {
	points := [][4]float64{
		{0, 0, 0, 0},
		{90, 0, -90, 0},
		{-45.5, 170.2, 60.1, -120.9},
	}
	for _, p := range points {
		got := DistanceKm(p[0], p[1], p[2], p[3])
		assert.False(t, math.IsNaN(got))
		assert.GreaterOrEqual(t, got, 0.0)
	}
}
