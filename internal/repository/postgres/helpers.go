package postgres

import (
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/business-locator/internal/domain"
	"github.com/business-locator/internal/pkg/errors"
	"github.com/business-locator/internal/pkg/geojson"
)

// mapWriteError converts constraint violations into client errors so the
// delivery layer can answer 400/409 instead of 500. Both the pgx and the
// lib/pq drivers are handled; the test helpers connect through the latter.
func mapWriteError(err error) error {
	var code string

	var pgxErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case stderrors.As(err, &pgxErr):
		code = pgxErr.Code
	case stderrors.As(err, &pqErr):
		code = string(pqErr.Code)
	}

	switch code {
	case pgForeignKeyViolation:
		return errors.ErrInvalidReference
	case pgUniqueViolation:
		return errors.ErrDuplicateName
	}
	return errors.ErrDatabaseError
}

// encodeBoundary renders a polygon as a GeoJSON document for
// ST_GeomFromGeoJSON.
func encodeBoundary(pg domain.Polygon) (string, error) {
	obj, err := geojson.EncodePolygon(pg)
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// decodeBoundary parses the ST_AsGeoJSON output back into a polygon.
func decodeBoundary(raw string) (domain.Polygon, error) {
	var obj geojson.Object
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return domain.Polygon{}, fmt.Errorf("invalid boundary geojson: %w", err)
	}
	return geojson.DecodePolygon(&obj)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBusiness reads one row of the shared businessColumns projection,
// including the joined category and the left-joined service area.
func scanBusiness(row rowScanner, extra ...interface{}) (*domain.Business, error) {
	var (
		b            domain.Business
		cat          domain.Category
		areaID       sql.NullInt64
		areaName     sql.NullString
		areaBoundary sql.NullString
		areaCreated  sql.NullTime
	)

	dest := []interface{}{
		&b.ID, &b.Name, &b.Description, &b.Phone, &b.Email, &b.Website,
		&b.Location.Lon, &b.Location.Lat,
		&b.CategoryID, &b.AreaID, &b.CreatedAt, &b.UpdatedAt,
		&cat.ID, &cat.Name, &cat.Slug, &cat.Description,
		&areaID, &areaName, &areaBoundary, &areaCreated,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	b.Category = &cat

	if areaID.Valid {
		area := &domain.ServiceArea{
			ID:        areaID.Int64,
			Name:      areaName.String,
			CreatedAt: areaCreated.Time,
		}
		if areaBoundary.Valid {
			boundary, err := decodeBoundary(areaBoundary.String)
			if err != nil {
				return nil, err
			}
			area.Boundary = boundary
		}
		b.Area = area
	}

	return &b, nil
}
