package repository

import (
	"context"

	"github.com/business-locator/internal/domain"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	// Delete cascades to every business in the category.
	Delete(ctx context.Context, id int64) error
}
