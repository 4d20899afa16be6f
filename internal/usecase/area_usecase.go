package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/business-locator/internal/domain"
	"github.com/business-locator/internal/domain/repository"
	"github.com/business-locator/internal/pkg/errors"
	"github.com/business-locator/internal/pkg/geojson"
	"github.com/business-locator/internal/usecase/dto"
)

type AreaUseCase struct {
	areaRepo  repository.AreaRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

func NewAreaUseCase(
	areaRepo repository.AreaRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *AreaUseCase {
	return &AreaUseCase{
		areaRepo:  areaRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

func (uc *AreaUseCase) List(ctx context.Context) ([]dto.AreaResponse, error) {
	areas, err := uc.areaRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list service areas", zap.Error(err))
		return nil, err
	}

	result, err := dto.NewAreaList(areas)
	if err != nil {
		uc.logger.Error("Failed to serialize service areas", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return result, nil
}

func (uc *AreaUseCase) GetByID(ctx context.Context, id int64) (*dto.AreaResponse, error) {
	area, err := uc.areaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp, err := dto.NewAreaResponse(area)
	if err != nil {
		uc.logger.Error("Failed to serialize service area", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return &resp, nil
}

func (uc *AreaUseCase) Create(ctx context.Context, req dto.CreateAreaRequest) (*dto.AreaResponse, error) {
	boundary, err := geojson.DecodePolygon(req.Boundary)
	if err != nil {
		return nil, errors.ErrInvalidGeometry.WithMessage(err.Error())
	}

	area := &domain.ServiceArea{
		Name:     req.Name,
		Boundary: boundary,
	}

	if err := uc.areaRepo.Create(ctx, area); err != nil {
		return nil, err
	}

	resp, err := dto.NewAreaResponse(area)
	if err != nil {
		return nil, errors.ErrInternalServer
	}

	return &resp, nil
}

func (uc *AreaUseCase) Update(ctx context.Context, id int64, req dto.UpdateAreaRequest) (*dto.AreaResponse, error) {
	area, err := uc.areaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldName := area.Name

	if req.Name != nil {
		area.Name = *req.Name
	}
	if req.Boundary != nil {
		boundary, err := geojson.DecodePolygon(req.Boundary)
		if err != nil {
			return nil, errors.ErrInvalidGeometry.WithMessage(err.Error())
		}
		area.Boundary = boundary
	}

	if err := uc.areaRepo.Update(ctx, area); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, oldName, area.Name)

	resp, err := dto.NewAreaResponse(area)
	if err != nil {
		return nil, errors.ErrInternalServer
	}

	return &resp, nil
}

// Delete removes the area. Dependent businesses keep existing with their
// reference nulled by the database.
func (uc *AreaUseCase) Delete(ctx context.Context, id int64) error {
	area, err := uc.areaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.areaRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidate(ctx, area.Name)
	return nil
}

// invalidate drops stale by-name cache entries after a mutation.
func (uc *AreaUseCase) invalidate(ctx context.Context, names ...string) {
	for _, name := range names {
		key := AreaCacheKey(name)
		if err := uc.cacheRepo.Delete(ctx, key); err != nil {
			uc.logger.Warn("Area cache invalidation failed", zap.String("key", key), zap.Error(err))
		}
	}
}
