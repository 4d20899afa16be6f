package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/business-locator/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance", func(t *testing.T) {
		d := utils.HaversineDistance(53.35, -6.26, 53.35, -6.26)
		assert.Equal(t, 0.0, d)
	})

	t.Run("short hop in Dublin", func(t *testing.T) {
		// City centre to a point ~400m southwest.
		d := utils.HaversineDistance(53.35, -6.26, 53.348, -6.265)
		assert.InDelta(t, 400, d, 20)
	})

	t.Run("Dublin to London", func(t *testing.T) {
		d := utils.HaversineDistance(53.3498, -6.2603, 51.5074, -0.1278)
		assert.InDelta(t, 463000, d, 3000)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := utils.HaversineDistance(53.35, -6.26, 53.30, -6.18)
		b := utils.HaversineDistance(53.30, -6.18, 53.35, -6.26)
		assert.InDelta(t, a, b, 1e-9)
	})
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"valid", 53.35, -6.26, true},
		{"lat at north pole", 90, 0, true},
		{"lat at south pole", -90, 0, true},
		{"lon at antimeridian", 0, 180, true},
		{"lat too large", 90.0001, 0, false},
		{"lat too small", -90.0001, 0, false},
		{"lon too large", 0, 180.0001, false},
		{"lon too small", 0, -180.0001, false},
		{"nan lat", math.NaN(), 0, false},
		{"inf lon", 0, math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ValidateCoordinates(tt.lat, tt.lon))
		})
	}
}

func TestValidateRadius(t *testing.T) {
	assert.True(t, utils.ValidateRadius(0))
	assert.True(t, utils.ValidateRadius(1000))
	assert.True(t, utils.ValidateRadius(utils.MaxRadiusMeters))
	assert.False(t, utils.ValidateRadius(utils.MaxRadiusMeters+1))
	assert.False(t, utils.ValidateRadius(-1))
	assert.False(t, utils.ValidateRadius(math.NaN()))
	assert.False(t, utils.ValidateRadius(math.Inf(1)))
}

func TestValidateLimit(t *testing.T) {
	assert.True(t, utils.ValidateLimit(1))
	assert.True(t, utils.ValidateLimit(utils.MaxNearestLimit))
	assert.False(t, utils.ValidateLimit(0))
	assert.False(t, utils.ValidateLimit(-1))
	assert.False(t, utils.ValidateLimit(utils.MaxNearestLimit+1))
}
