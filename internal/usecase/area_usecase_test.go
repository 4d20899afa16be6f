package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/business-locator/internal/domain"
	"github.com/business-locator/internal/pkg/errors"
	"github.com/business-locator/internal/pkg/geojson"
	"github.com/business-locator/internal/usecase"
	"github.com/business-locator/internal/usecase/dto"
)

func testArea(id int64, name string) *domain.ServiceArea {
	return &domain.ServiceArea{
		ID:   id,
		Name: name,
		Boundary: domain.Polygon{Rings: [][]domain.Point{{
			{Lon: -6.28, Lat: 53.33},
			{Lon: -6.24, Lat: 53.33},
			{Lon: -6.24, Lat: 53.36},
			{Lon: -6.28, Lat: 53.36},
			{Lon: -6.28, Lat: 53.33},
		}}},
	}
}

func polygonObject(t *testing.T) *geojson.Object {
	t.Helper()
	return &geojson.Object{
		Type:        geojson.TypePolygon,
		Coordinates: json.RawMessage(`[[[-6.28, 53.33], [-6.24, 53.33], [-6.24, 53.36], [-6.28, 53.36], [-6.28, 53.33]]]`),
	}
}

func TestAreaUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockArea := &MockAreaRepository{}
		uc := usecase.NewAreaUseCase(mockArea, &MockCacheRepository{}, zap.NewNop())

		mockArea.On("Create", ctx, mock.MatchedBy(func(a *domain.ServiceArea) bool {
			return a.Name == "City Centre" && len(a.Boundary.Rings) == 1
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.ServiceArea).ID = 7
		}).Return(nil)

		resp, err := uc.Create(ctx, dto.CreateAreaRequest{
			Name:     "City Centre",
			Boundary: polygonObject(t),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, geojson.TypePolygon, resp.Boundary.Type)
	})

	t.Run("invalid boundary", func(t *testing.T) {
		uc := usecase.NewAreaUseCase(&MockAreaRepository{}, &MockCacheRepository{}, zap.NewNop())

		_, err := uc.Create(ctx, dto.CreateAreaRequest{
			Name: "City Centre",
			Boundary: &geojson.Object{
				Type:        geojson.TypePolygon,
				Coordinates: json.RawMessage(`[[[0, 0], [1, 0], [0, 0]]]`),
			},
		})

		appErr, ok := err.(*errors.AppError)
		assert.True(t, ok)
		assert.Equal(t, errors.ErrInvalidGeometry.Code, appErr.Code)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mockArea := &MockAreaRepository{}
		uc := usecase.NewAreaUseCase(mockArea, &MockCacheRepository{}, zap.NewNop())

		mockArea.On("Create", ctx, mock.Anything).Return(errors.ErrDuplicateName)

		_, err := uc.Create(ctx, dto.CreateAreaRequest{
			Name:     "City Centre",
			Boundary: polygonObject(t),
		})

		assert.Equal(t, errors.ErrDuplicateName, err)
	})
}

func TestAreaUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("rename invalidates both cache keys", func(t *testing.T) {
		mockArea := &MockAreaRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewAreaUseCase(mockArea, mockCache, zap.NewNop())

		mockArea.On("GetByID", ctx, int64(1)).Return(testArea(1, "City Centre"), nil)
		mockArea.On("Update", ctx, mock.MatchedBy(func(a *domain.ServiceArea) bool {
			return a.Name == "Inner City"
		})).Return(nil)
		mockCache.On("Delete", ctx, usecase.AreaCacheKey("City Centre")).Return(nil)
		mockCache.On("Delete", ctx, usecase.AreaCacheKey("Inner City")).Return(nil)

		resp, err := uc.Update(ctx, 1, dto.UpdateAreaRequest{Name: ptrString("Inner City")})

		assert.NoError(t, err)
		assert.Equal(t, "Inner City", resp.Name)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache invalidation failure does not fail the update", func(t *testing.T) {
		mockArea := &MockAreaRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewAreaUseCase(mockArea, mockCache, zap.NewNop())

		mockArea.On("GetByID", ctx, int64(1)).Return(testArea(1, "City Centre"), nil)
		mockArea.On("Update", ctx, mock.Anything).Return(nil)
		mockCache.On("Delete", ctx, mock.Anything).Return(errors.ErrCacheError)

		_, err := uc.Update(ctx, 1, dto.UpdateAreaRequest{Name: ptrString("Inner City")})

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		mockArea := &MockAreaRepository{}
		uc := usecase.NewAreaUseCase(mockArea, &MockCacheRepository{}, zap.NewNop())

		mockArea.On("GetByID", ctx, int64(99)).Return(nil, errors.ErrAreaNotFound)

		_, err := uc.Update(ctx, 99, dto.UpdateAreaRequest{Name: ptrString("x")})

		assert.Equal(t, errors.ErrAreaNotFound, err)
	})
}

func TestAreaUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("invalidates cache for the deleted name", func(t *testing.T) {
		mockArea := &MockAreaRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewAreaUseCase(mockArea, mockCache, zap.NewNop())

		mockArea.On("GetByID", ctx, int64(1)).Return(testArea(1, "Docklands"), nil)
		mockArea.On("Delete", ctx, int64(1)).Return(nil)
		mockCache.On("Delete", ctx, usecase.AreaCacheKey("Docklands")).Return(nil)

		err := uc.Delete(ctx, 1)

		assert.NoError(t, err)
		mockCache.AssertExpectations(t)
	})

	t.Run("not found skips invalidation", func(t *testing.T) {
		mockArea := &MockAreaRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewAreaUseCase(mockArea, mockCache, zap.NewNop())

		mockArea.On("GetByID", ctx, int64(99)).Return(nil, errors.ErrAreaNotFound)

		err := uc.Delete(ctx, 99)

		assert.Equal(t, errors.ErrAreaNotFound, err)
		mockCache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
