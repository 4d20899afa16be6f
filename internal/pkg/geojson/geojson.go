// Package geojson converts between the domain geometry types and the
// GeoJSON geometry objects used on the wire and by PostGIS.
package geojson

import (
	"encoding/json"
	"fmt"

	"github.com/business-locator/internal/domain"
)

const (
	TypePoint   = "Point"
	TypePolygon = "Polygon"
)

// Object is a GeoJSON geometry object: {"type": ..., "coordinates": ...}.
// Coordinates stay raw so a Point and a Polygon share one wire type.
type Object struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

func EncodePoint(p domain.Point) (*Object, error) {
	coords, err := json.Marshal([2]float64{p.Lon, p.Lat})
	if err != nil {
		return nil, err
	}
	return &Object{Type: TypePoint, Coordinates: coords}, nil
}

func EncodePolygon(pg domain.Polygon) (*Object, error) {
	rings := make([][][2]float64, 0, len(pg.Rings))
	for _, ring := range pg.Rings {
		coords := make([][2]float64, 0, len(ring))
		for _, pt := range ring {
			coords = append(coords, [2]float64{pt.Lon, pt.Lat})
		}
		rings = append(rings, coords)
	}
	coords, err := json.Marshal(rings)
	if err != nil {
		return nil, err
	}
	return &Object{Type: TypePolygon, Coordinates: coords}, nil
}

// DecodePoint rejects anything but exactly two finite numbers.
func DecodePoint(o *Object) (domain.Point, error) {
	if o == nil {
		return domain.Point{}, fmt.Errorf("geometry is required")
	}
	if o.Type != TypePoint {
		return domain.Point{}, fmt.Errorf("expected geometry type %q, got %q", TypePoint, o.Type)
	}

	var coords []float64
	if err := json.Unmarshal(o.Coordinates, &coords); err != nil {
		return domain.Point{}, fmt.Errorf("invalid point coordinates: %w", err)
	}
	if len(coords) != 2 {
		return domain.Point{}, fmt.Errorf("point coordinates must hold exactly 2 numbers, got %d", len(coords))
	}

	p := domain.Point{Lon: coords[0], Lat: coords[1]}
	if !p.Validate() {
		return domain.Point{}, fmt.Errorf("point coordinates out of range: lon=%v lat=%v", p.Lon, p.Lat)
	}
	return p, nil
}

// DecodePolygon rejects empty ring lists, rings shorter than 4 points and
// unclosed rings.
func DecodePolygon(o *Object) (domain.Polygon, error) {
	if o == nil {
		return domain.Polygon{}, fmt.Errorf("geometry is required")
	}
	if o.Type != TypePolygon {
		return domain.Polygon{}, fmt.Errorf("expected geometry type %q, got %q", TypePolygon, o.Type)
	}

	var rings [][][]float64
	if err := json.Unmarshal(o.Coordinates, &rings); err != nil {
		return domain.Polygon{}, fmt.Errorf("invalid polygon coordinates: %w", err)
	}
	if len(rings) == 0 {
		return domain.Polygon{}, fmt.Errorf("polygon must have at least one ring")
	}

	pg := domain.Polygon{Rings: make([][]domain.Point, 0, len(rings))}
	for i, ring := range rings {
		if len(ring) < 4 {
			return domain.Polygon{}, fmt.Errorf("polygon ring %d must hold at least 4 points, got %d", i, len(ring))
		}
		points := make([]domain.Point, 0, len(ring))
		for j, pair := range ring {
			if len(pair) != 2 {
				return domain.Polygon{}, fmt.Errorf("polygon ring %d point %d must hold exactly 2 numbers, got %d", i, j, len(pair))
			}
			pt := domain.Point{Lon: pair[0], Lat: pair[1]}
			if !pt.Validate() {
				return domain.Polygon{}, fmt.Errorf("polygon ring %d point %d out of range", i, j)
			}
			points = append(points, pt)
		}
		if points[0] != points[len(points)-1] {
			return domain.Polygon{}, fmt.Errorf("polygon ring %d is not closed", i)
		}
		pg.Rings = append(pg.Rings, points)
	}
	return pg, nil
}
