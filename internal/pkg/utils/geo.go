package utils

import "math"

const earthRadiusMeters = 6371000.0

const (
	// MaxRadiusMeters caps proximity searches at 100 km. An uncapped
	// radius would let a single request scan the whole table.
	MaxRadiusMeters = 100000.0

	// MaxNearestLimit caps k-nearest-neighbor result counts.
	MaxNearestLimit = 100
)

// HaversineDistance returns the great-circle distance between two points
// in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// ValidateCoordinates checks that lat/lon are finite and within WGS84 range.
func ValidateCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadius checks that a search radius in meters is finite,
// non-negative and within the service cap.
func ValidateRadius(radiusMeters float64) bool {
	if math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) {
		return false
	}
	return radiusMeters >= 0 && radiusMeters <= MaxRadiusMeters
}

// ValidateLimit checks a k-nearest result count.
func ValidateLimit(limit int) bool {
	return limit > 0 && limit <= MaxNearestLimit
}
