package domain

import "math"

// Point is a single WGS84 coordinate pair, longitude first to match the
// GeoJSON axis order. Callers working in lat/lon order must swap at the
// boundary.
type Point struct {
	Lon float64 `json:"lon" db:"lon"`
	Lat float64 `json:"lat" db:"lat"`
}

// Polygon is one or more closed rings of WGS84 points. The first ring is
// the exterior boundary; degenerate or self-intersecting rings are stored
// as given, no repair is attempted.
type Polygon struct {
	Rings [][]Point `json:"rings"`
}

func (p Point) Validate() bool {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Validate checks ring structure: at least one ring, each ring at least
// 4 points with first == last.
func (pg Polygon) Validate() bool {
	if len(pg.Rings) == 0 {
		return false
	}
	for _, ring := range pg.Rings {
		if len(ring) < 4 {
			return false
		}
		if ring[0] != ring[len(ring)-1] {
			return false
		}
		for _, pt := range ring {
			if !pt.Validate() {
				return false
			}
		}
	}
	return true
}

// Contains reports whether p lies inside the polygon, holes excluded.
// A point exactly on a ring edge counts as inside; this mirrors the
// ST_Covers semantics used by the storage layer.
func (pg Polygon) Contains(p Point) bool {
	if len(pg.Rings) == 0 {
		return false
	}
	if !ringContains(pg.Rings[0], p) {
		return false
	}
	for _, hole := range pg.Rings[1:] {
		if ringContains(hole, p) && !onRing(hole, p) {
			return false
		}
	}
	return true
}

func ringContains(ring []Point, p Point) bool {
	if onRing(ring, p) {
		return true
	}

	// Ray casting on raw coordinates. Precision matches the planar
	// containment model; geodesic edge cases are owned by PostGIS.
	inside := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Lat > p.Lat) != (b.Lat > p.Lat) {
			x := (b.Lon-a.Lon)*(p.Lat-a.Lat)/(b.Lat-a.Lat) + a.Lon
			if p.Lon < x {
				inside = !inside
			}
		}
	}
	return inside
}

func onRing(ring []Point, p Point) bool {
	const eps = 1e-12
	for i := 0; i < len(ring)-1; i++ {
		a, b := ring[i], ring[i+1]
		cross := (b.Lon-a.Lon)*(p.Lat-a.Lat) - (b.Lat-a.Lat)*(p.Lon-a.Lon)
		if math.Abs(cross) > eps {
			continue
		}
		if p.Lon < math.Min(a.Lon, b.Lon)-eps || p.Lon > math.Max(a.Lon, b.Lon)+eps {
			continue
		}
		if p.Lat < math.Min(a.Lat, b.Lat)-eps || p.Lat > math.Max(a.Lat, b.Lat)+eps {
			continue
		}
		return true
	}
	return false
}
