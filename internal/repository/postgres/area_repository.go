package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/business-locator/internal/domain"
	"github.com/business-locator/internal/domain/repository"
	"github.com/business-locator/internal/pkg/errors"
)

type areaRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAreaRepository(db *DB) repository.AreaRepository {
	return &areaRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *areaRepository) scanArea(row rowScanner) (*domain.ServiceArea, error) {
	var (
		area     domain.ServiceArea
		boundary string
	)

	if err := row.Scan(&area.ID, &area.Name, &boundary, &area.CreatedAt); err != nil {
		return nil, err
	}

	pg, err := decodeBoundary(boundary)
	if err != nil {
		return nil, err
	}
	area.Boundary = pg

	return &area, nil
}

func (r *areaRepository) List(ctx context.Context) ([]*domain.ServiceArea, error) {
	query := `
		SELECT id, name, ST_AsGeoJSON(boundary), created_at
		FROM service_areas
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list service areas", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var areas []*domain.ServiceArea
	for rows.Next() {
		area, err := r.scanArea(rows)
		if err != nil {
			r.logger.Error("Failed to scan service area", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		areas = append(areas, area)
	}

	return areas, rows.Err()
}

func (r *areaRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceArea, error) {
	query := `
		SELECT id, name, ST_AsGeoJSON(boundary), created_at
		FROM service_areas
		WHERE id = $1
	`

	area, err := r.scanArea(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrAreaNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get service area by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return area, nil
}

// GetByName matches exactly, case-insensitively. Partial matches are not
// area lookups.
func (r *areaRepository) GetByName(ctx context.Context, name string) (*domain.ServiceArea, error) {
	query := `
		SELECT id, name, ST_AsGeoJSON(boundary), created_at
		FROM service_areas
		WHERE lower(name) = lower($1)
	`

	area, err := r.scanArea(r.db.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return nil, errors.ErrAreaNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get service area by name", zap.String("name", name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return area, nil
}

func (r *areaRepository) Create(ctx context.Context, area *domain.ServiceArea) error {
	boundary, err := encodeBoundary(area.Boundary)
	if err != nil {
		return errors.ErrInvalidGeometry
	}

	query := `
		INSERT INTO service_areas (name, boundary)
		VALUES ($1, ST_SetSRID(ST_GeomFromGeoJSON($2), 4326))
		RETURNING id, created_at
	`

	err = r.db.QueryRowContext(ctx, query, area.Name, boundary).
		Scan(&area.ID, &area.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create service area", zap.String("name", area.Name), zap.Error(err))
		return mapWriteError(err)
	}

	return nil
}

func (r *areaRepository) Update(ctx context.Context, area *domain.ServiceArea) error {
	boundary, err := encodeBoundary(area.Boundary)
	if err != nil {
		return errors.ErrInvalidGeometry
	}

	query := `
		UPDATE service_areas
		SET name = $1, boundary = ST_SetSRID(ST_GeomFromGeoJSON($2), 4326)
		WHERE id = $3
	`

	res, err := r.db.ExecContext(ctx, query, area.Name, boundary, area.ID)
	if err != nil {
		r.logger.Error("Failed to update service area", zap.Int64("id", area.ID), zap.Error(err))
		return mapWriteError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrAreaNotFound
	}

	return nil
}

// Delete removes the area; the ON DELETE SET NULL foreign key clears the
// reference on dependent businesses without deleting them.
func (r *areaRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM service_areas WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete service area", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrAreaNotFound
	}

	return nil
}
