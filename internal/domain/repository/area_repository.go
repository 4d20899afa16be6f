package repository

import (
	"context"

	"github.com/business-locator/internal/domain"
)

type AreaRepository interface {
	List(ctx context.Context) ([]*domain.ServiceArea, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceArea, error)
	// GetByName matches the area name exactly, case-insensitively.
	GetByName(ctx context.Context, name string) (*domain.ServiceArea, error)
	Create(ctx context.Context, area *domain.ServiceArea) error
	Update(ctx context.Context, area *domain.ServiceArea) error
	// Delete nulls out the area reference on dependent businesses.
	Delete(ctx context.Context, id int64) error
}
