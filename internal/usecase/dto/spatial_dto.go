package dto

import (
	"encoding/json"

	"github.com/business-locator/internal/domain"
)

const (
	// DefaultRadiusMeters applies when a nearby search omits radius.
	DefaultRadiusMeters = 1000.0

	// DefaultNearestLimit applies when a nearest search omits limit.
	DefaultNearestLimit = 5
)

// NearbyQuery is a parsed proximity search: center plus radius in meters.
type NearbyQuery struct {
	Center       domain.Point
	RadiusMeters float64
	Filter       domain.BusinessFilter
}

// NearestQuery is a parsed k-nearest-neighbor search.
type NearestQuery struct {
	Center domain.Point
	Limit  int
	Filter domain.BusinessFilter
}

// WithinAreaQuery is a parsed containment search over a named area.
type WithinAreaQuery struct {
	AreaName string
	Filter   domain.BusinessFilter
}

func unmarshalInt64(data []byte, v *int64) error {
	return json.Unmarshal(data, v)
}
