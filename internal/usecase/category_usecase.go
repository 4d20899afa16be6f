package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/business-locator/internal/domain"
	"github.com/business-locator/internal/domain/repository"
	"github.com/business-locator/internal/usecase/dto"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	logger       *zap.Logger
}

func NewCategoryUseCase(
	categoryRepo repository.CategoryRepository,
	logger *zap.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list categories", zap.Error(err))
		return nil, err
	}

	return dto.NewCategoryList(categories), nil
}

func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewCategoryResponse(category)
	return &resp, nil
}

func (uc *CategoryUseCase) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &domain.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	resp := dto.NewCategoryResponse(category)
	return &resp, nil
}

func (uc *CategoryUseCase) Update(ctx context.Context, id int64, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	resp := dto.NewCategoryResponse(category)
	return &resp, nil
}

// Delete removes the category and, through the cascade, its businesses.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.categoryRepo.Delete(ctx, id)
}
