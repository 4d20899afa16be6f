package repository

import (
	"context"

	"github.com/business-locator/internal/domain"
)

// BusinessRepository persists businesses with their category and service
// area resolved on every read. The three spatial searches are independent
// query paths; all of them honor the same BusinessFilter as List.
type BusinessRepository interface {
	List(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, error)
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	Create(ctx context.Context, business *domain.Business) error
	Update(ctx context.Context, business *domain.Business) error
	Delete(ctx context.Context, id int64) error

	// SearchNearby returns every business within radiusMeters of center,
	// distance-annotated, ordered by ascending distance.
	SearchNearby(ctx context.Context, center domain.Point, radiusMeters float64, filter domain.BusinessFilter) ([]*domain.Business, error)

	// SearchNearest returns the limit closest businesses to center,
	// distance-annotated, no radius cutoff.
	SearchNearest(ctx context.Context, center domain.Point, limit int, filter domain.BusinessFilter) ([]*domain.Business, error)

	// SearchWithinArea returns businesses whose location is covered by
	// the boundary of the given area, boundary points included, in the
	// store's default name order.
	SearchWithinArea(ctx context.Context, areaID int64, filter domain.BusinessFilter) ([]*domain.Business, error)
}
