package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/business-locator/internal/domain"
	"github.com/business-locator/internal/domain/repository"
	"github.com/business-locator/internal/pkg/errors"
	"github.com/business-locator/internal/pkg/utils"
	"github.com/business-locator/internal/usecase/dto"
)

// SpatialUseCase runs the three spatial queries: proximity, k-nearest and
// polygon containment. All of them are pure reads and compose with the
// same non-spatial filter as plain listings.
type SpatialUseCase struct {
	businessRepo repository.BusinessRepository
	areaRepo     repository.AreaRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	areaCacheTTL time.Duration
}

func NewSpatialUseCase(
	businessRepo repository.BusinessRepository,
	areaRepo repository.AreaRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	areaCacheTTL time.Duration,
) *SpatialUseCase {
	return &SpatialUseCase{
		businessRepo: businessRepo,
		areaRepo:     areaRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		areaCacheTTL: areaCacheTTL,
	}
}

// Nearby returns every business within the radius, closest first.
func (uc *SpatialUseCase) Nearby(ctx context.Context, q dto.NearbyQuery) ([]dto.BusinessResponse, error) {
	if !utils.ValidateCoordinates(q.Center.Lat, q.Center.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateRadius(q.RadiusMeters) {
		return nil, errors.ErrInvalidRadius
	}

	businesses, err := uc.businessRepo.SearchNearby(ctx, q.Center, q.RadiusMeters, q.Filter)
	if err != nil {
		uc.logger.Error("Failed to search nearby businesses", zap.Error(err))
		return nil, err
	}

	result, err := dto.NewBusinessList(businesses)
	if err != nil {
		uc.logger.Error("Failed to serialize nearby businesses", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return result, nil
}

// Nearest returns the limit closest businesses regardless of distance.
func (uc *SpatialUseCase) Nearest(ctx context.Context, q dto.NearestQuery) ([]dto.BusinessResponse, error) {
	if !utils.ValidateCoordinates(q.Center.Lat, q.Center.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	if q.Limit == 0 {
		q.Limit = dto.DefaultNearestLimit
	}
	if !utils.ValidateLimit(q.Limit) {
		return nil, errors.ErrInvalidLimit
	}

	businesses, err := uc.businessRepo.SearchNearest(ctx, q.Center, q.Limit, q.Filter)
	if err != nil {
		uc.logger.Error("Failed to search nearest businesses", zap.Error(err))
		return nil, err
	}

	result, err := dto.NewBusinessList(businesses)
	if err != nil {
		uc.logger.Error("Failed to serialize nearest businesses", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return result, nil
}

// WithinArea returns businesses contained in the named area's boundary,
// boundary points included, in default name order.
func (uc *SpatialUseCase) WithinArea(ctx context.Context, q dto.WithinAreaQuery) ([]dto.BusinessResponse, error) {
	name := strings.TrimSpace(q.AreaName)
	if name == "" {
		return nil, errors.ErrAreaNameRequired
	}

	area, err := uc.resolveArea(ctx, name)
	if err != nil {
		return nil, err
	}

	businesses, err := uc.businessRepo.SearchWithinArea(ctx, area.ID, q.Filter)
	if err != nil {
		uc.logger.Error("Failed to search businesses within area",
			zap.String("area", name), zap.Error(err))
		return nil, err
	}

	result, err := dto.NewBusinessList(businesses)
	if err != nil {
		uc.logger.Error("Failed to serialize businesses within area", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return result, nil
}

// AreaCacheKey is the cache key for an area resolved by name.
func AreaCacheKey(name string) string {
	return "area:name:" + strings.ToLower(strings.TrimSpace(name))
}

// resolveArea looks the area up through the cache. Cache failures are
// logged and fall through to the database; only the database decides
// NotFound.
func (uc *SpatialUseCase) resolveArea(ctx context.Context, name string) (*domain.ServiceArea, error) {
	key := AreaCacheKey(name)

	if cached, err := uc.cacheRepo.Get(ctx, key); err != nil {
		uc.logger.Warn("Area cache read failed", zap.String("key", key), zap.Error(err))
	} else if cached != nil {
		var area domain.ServiceArea
		if err := json.Unmarshal(cached, &area); err == nil {
			return &area, nil
		}
		uc.logger.Warn("Dropping unreadable area cache entry", zap.String("key", key))
	}

	area, err := uc.areaRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(area); err == nil {
		if err := uc.cacheRepo.Set(ctx, key, raw, uc.areaCacheTTL); err != nil {
			uc.logger.Warn("Area cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return area, nil
}
