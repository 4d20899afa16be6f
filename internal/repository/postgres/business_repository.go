package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/business-locator/internal/domain"
	"github.com/business-locator/internal/domain/repository"
	"github.com/business-locator/internal/pkg/errors"
)

type businessRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewBusinessRepository(db *DB) repository.BusinessRepository {
	return &businessRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// filterClauses renders the shared non-spatial modifiers (category slug,
// area name, free-text search) as AND fragments, appending their args.
func filterClauses(filter domain.BusinessFilter, args *[]interface{}) string {
	var sb strings.Builder

	if len(filter.CategorySlugs) > 0 {
		*args = append(*args, pq.Array(filter.CategorySlugs))
		fmt.Fprintf(&sb, " AND c.slug = ANY($%d)", len(*args))
	}
	if filter.AreaName != "" {
		*args = append(*args, filter.AreaName)
		fmt.Fprintf(&sb, " AND lower(sa.name) = lower($%d)", len(*args))
	}
	if filter.Search != "" {
		*args = append(*args, "%"+filter.Search+"%")
		fmt.Fprintf(&sb, " AND (b.name ILIKE $%d OR b.description ILIKE $%d)", len(*args), len(*args))
	}

	return sb.String()
}

func (r *businessRepository) List(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, error) {
	args := []interface{}{}
	query := `SELECT ` + businessColumns + businessFrom + `
		WHERE TRUE` + filterClauses(filter, &args) + `
		ORDER BY b.name, b.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list businesses", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var businesses []*domain.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			r.logger.Error("Failed to scan business", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		businesses = append(businesses, b)
	}

	return businesses, rows.Err()
}

func (r *businessRepository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + businessFrom + `
		WHERE b.id = $1`

	b, err := scanBusiness(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrBusinessNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get business by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return b, nil
}

func (r *businessRepository) Create(ctx context.Context, business *domain.Business) error {
	query := `
		INSERT INTO businesses
			(name, description, phone, email, website, location, category_id, service_area_id)
		VALUES
			($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326), $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		business.Name, business.Description, business.Phone,
		business.Email, business.Website,
		business.Location.Lon, business.Location.Lat,
		business.CategoryID, business.AreaID,
	).Scan(&business.ID, &business.CreatedAt, &business.UpdatedAt)

	if err != nil {
		r.logger.Error("Failed to create business", zap.String("name", business.Name), zap.Error(err))
		return mapWriteError(err)
	}

	return nil
}

func (r *businessRepository) Update(ctx context.Context, business *domain.Business) error {
	query := `
		UPDATE businesses SET
			name = $1, description = $2, phone = $3, email = $4, website = $5,
			location = ST_SetSRID(ST_MakePoint($6, $7), 4326),
			category_id = $8, service_area_id = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		business.Name, business.Description, business.Phone,
		business.Email, business.Website,
		business.Location.Lon, business.Location.Lat,
		business.CategoryID, business.AreaID,
		business.ID,
	).Scan(&business.UpdatedAt)

	if err == sql.ErrNoRows {
		return errors.ErrBusinessNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update business", zap.Int64("id", business.ID), zap.Error(err))
		return mapWriteError(err)
	}

	return nil
}

func (r *businessRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete business", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrBusinessNotFound
	}

	return nil
}

// SearchNearby selects every business within radiusMeters of center.
// ST_DWithin on geography keeps the GiST index usable; the geodesic
// distance is annotated per row and drives the ordering, name breaking
// ties.
func (r *businessRepository) SearchNearby(
	ctx context.Context,
	center domain.Point,
	radiusMeters float64,
	filter domain.BusinessFilter,
) ([]*domain.Business, error) {
	args := []interface{}{center.Lon, center.Lat, radiusMeters}
	query := `
		WITH search_point AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS geom
		)
		SELECT ` + businessColumns + `,
			ST_Distance(b.location::geography, search_point.geom) AS distance
		` + businessFrom + `, search_point
		WHERE ST_DWithin(b.location::geography, search_point.geom, $3)` +
		filterClauses(filter, &args) + `
		ORDER BY distance, b.name`

	return r.queryWithDistance(ctx, query, args)
}

// SearchNearest orders every business by geodesic distance to center and
// keeps the first limit rows. No radius cutoff.
func (r *businessRepository) SearchNearest(
	ctx context.Context,
	center domain.Point,
	limit int,
	filter domain.BusinessFilter,
) ([]*domain.Business, error) {
	args := []interface{}{center.Lon, center.Lat}
	clauses := filterClauses(filter, &args)

	args = append(args, limit)
	query := fmt.Sprintf(`
		WITH search_point AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography AS geom
		)
		SELECT `+businessColumns+`,
			ST_Distance(b.location::geography, search_point.geom) AS distance
		`+businessFrom+`, search_point
		WHERE TRUE%s
		ORDER BY distance, b.name
		LIMIT $%d`, clauses, len(args))

	return r.queryWithDistance(ctx, query, args)
}

// SearchWithinArea selects businesses covered by the area's boundary.
// ST_Covers rather than ST_Contains so a point exactly on the boundary is
// included.
func (r *businessRepository) SearchWithinArea(
	ctx context.Context,
	areaID int64,
	filter domain.BusinessFilter,
) ([]*domain.Business, error) {
	args := []interface{}{areaID}
	query := `SELECT ` + businessColumns + businessFrom + `
		WHERE ST_Covers(
			(SELECT boundary FROM service_areas WHERE id = $1),
			b.location
		)` + filterClauses(filter, &args) + `
		ORDER BY b.name, b.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to search businesses within area",
			zap.Int64("area_id", areaID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var businesses []*domain.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			r.logger.Error("Failed to scan business", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		businesses = append(businesses, b)
	}

	return businesses, rows.Err()
}

func (r *businessRepository) queryWithDistance(ctx context.Context, query string, args []interface{}) ([]*domain.Business, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to run spatial business query", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var businesses []*domain.Business
	for rows.Next() {
		var distance float64
		b, err := scanBusiness(rows, &distance)
		if err != nil {
			r.logger.Error("Failed to scan business", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		b.Distance = &distance
		businesses = append(businesses, b)
	}

	return businesses, rows.Err()
}
