package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/business-locator/internal/delivery/http/handler"
	"github.com/business-locator/internal/domain"
	"github.com/business-locator/internal/pkg/errors"
	"github.com/business-locator/internal/usecase"
)

// stubBusinessRepo records the arguments of the last spatial call and
// returns canned rows.
type stubBusinessRepo struct {
	businesses []*domain.Business

	lastCenter domain.Point
	lastRadius float64
	lastLimit  int
	lastAreaID int64
	lastFilter domain.BusinessFilter
}

func (s *stubBusinessRepo) List(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, error) {
	return s.businesses, nil
}

func (s *stubBusinessRepo) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	return nil, errors.ErrBusinessNotFound
}

func (s *stubBusinessRepo) Create(ctx context.Context, business *domain.Business) error { return nil }
func (s *stubBusinessRepo) Update(ctx context.Context, business *domain.Business) error { return nil }
func (s *stubBusinessRepo) Delete(ctx context.Context, id int64) error                  { return nil }

func (s *stubBusinessRepo) SearchNearby(ctx context.Context, center domain.Point, radiusMeters float64, filter domain.BusinessFilter) ([]*domain.Business, error) {
	s.lastCenter, s.lastRadius, s.lastFilter = center, radiusMeters, filter
	return s.businesses, nil
}

func (s *stubBusinessRepo) SearchNearest(ctx context.Context, center domain.Point, limit int, filter domain.BusinessFilter) ([]*domain.Business, error) {
	s.lastCenter, s.lastLimit, s.lastFilter = center, limit, filter
	return s.businesses, nil
}

func (s *stubBusinessRepo) SearchWithinArea(ctx context.Context, areaID int64, filter domain.BusinessFilter) ([]*domain.Business, error) {
	s.lastAreaID, s.lastFilter = areaID, filter
	return s.businesses, nil
}

type stubAreaRepo struct {
	areas map[string]*domain.ServiceArea
}

func (s *stubAreaRepo) List(ctx context.Context) ([]*domain.ServiceArea, error) { return nil, nil }
func (s *stubAreaRepo) GetByID(ctx context.Context, id int64) (*domain.ServiceArea, error) {
	return nil, errors.ErrAreaNotFound
}

func (s *stubAreaRepo) GetByName(ctx context.Context, name string) (*domain.ServiceArea, error) {
	if area, ok := s.areas[name]; ok {
		return area, nil
	}
	return nil, errors.ErrAreaNotFound
}

func (s *stubAreaRepo) Create(ctx context.Context, area *domain.ServiceArea) error { return nil }
func (s *stubAreaRepo) Update(ctx context.Context, area *domain.ServiceArea) error { return nil }
func (s *stubAreaRepo) Delete(ctx context.Context, id int64) error                 { return nil }

// stubCache never hits and swallows writes.
type stubCache struct{}

func (stubCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }
func (stubCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}
func (stubCache) Delete(ctx context.Context, key string) error { return nil }

type envelope struct {
	Data []json.RawMessage `json:"data"`
	Meta *struct {
		Total int `json:"total"`
	} `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newSpatialApp(businessRepo *stubBusinessRepo, areaRepo *stubAreaRepo) *fiber.App {
	uc := usecase.NewSpatialUseCase(businessRepo, areaRepo, stubCache{}, zap.NewNop(), time.Minute)
	h := handler.NewSpatialHandler(uc, zap.NewNop())

	app := fiber.New()
	app.Get("/api/v1/businesses/nearby", h.Nearby)
	app.Get("/api/v1/businesses/nearest", h.Nearest)
	app.Get("/api/v1/businesses/within-area", h.WithinArea)
	return app
}

func doRequest(t *testing.T, app *fiber.App, url string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return resp.StatusCode, env
}

func TestSpatialHandler_Nearby(t *testing.T) {
	t.Run("success with defaults", func(t *testing.T) {
		repo := &stubBusinessRepo{businesses: []*domain.Business{
			{
				ID:       1,
				Name:     "Test Bistro",
				Location: domain.Point{Lon: -6.26, Lat: 53.35},
				Category: &domain.Category{ID: 1, Name: "Restaurant", Slug: "restaurant"},
			},
		}}
		app := newSpatialApp(repo, &stubAreaRepo{})

		status, env := doRequest(t, app, "/api/v1/businesses/nearby?lat=53.35&lon=-6.26")

		assert.Equal(t, http.StatusOK, status)
		assert.Len(t, env.Data, 1)
		assert.Equal(t, 1, env.Meta.Total)

		// lat/lon query order swaps into the lon-first point; the omitted
		// radius falls back to the default.
		assert.Equal(t, domain.Point{Lon: -6.26, Lat: 53.35}, repo.lastCenter)
		assert.Equal(t, 1000.0, repo.lastRadius)
	})

	t.Run("missing lat", func(t *testing.T) {
		app := newSpatialApp(&stubBusinessRepo{}, &stubAreaRepo{})

		status, env := doRequest(t, app, "/api/v1/businesses/nearby?lon=-6.26")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_COORDINATES", env.Error.Code)
	})

	t.Run("non-numeric lon", func(t *testing.T) {
		app := newSpatialApp(&stubBusinessRepo{}, &stubAreaRepo{})

		status, env := doRequest(t, app, "/api/v1/businesses/nearby?lat=53.35&lon=east")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_COORDINATES", env.Error.Code)
	})

	t.Run("out of range lat", func(t *testing.T) {
		app := newSpatialApp(&stubBusinessRepo{}, &stubAreaRepo{})

		status, env := doRequest(t, app, "/api/v1/businesses/nearby?lat=91&lon=0")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_COORDINATES", env.Error.Code)
	})

	t.Run("negative radius", func(t *testing.T) {
		app := newSpatialApp(&stubBusinessRepo{}, &stubAreaRepo{})

		status, env := doRequest(t, app, "/api/v1/businesses/nearby?lat=53.35&lon=-6.26&radius=-5")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_RADIUS", env.Error.Code)
	})

	t.Run("category filter is split on commas", func(t *testing.T) {
		repo := &stubBusinessRepo{}
		app := newSpatialApp(repo, &stubAreaRepo{})

		status, _ := doRequest(t, app,
			"/api/v1/businesses/nearby?lat=53.35&lon=-6.26&category__slug=restaurant,retail&search=cafe")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, []string{"restaurant", "retail"}, repo.lastFilter.CategorySlugs)
		assert.Equal(t, "cafe", repo.lastFilter.Search)
	})
}

func TestSpatialHandler_Nearest(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		repo := &stubBusinessRepo{}
		app := newSpatialApp(repo, &stubAreaRepo{})

		status, _ := doRequest(t, app, "/api/v1/businesses/nearest?lat=53.35&lon=-6.26")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, 5, repo.lastLimit)
	})

	t.Run("explicit limit", func(t *testing.T) {
		repo := &stubBusinessRepo{}
		app := newSpatialApp(repo, &stubAreaRepo{})

		status, _ := doRequest(t, app, "/api/v1/businesses/nearest?lat=53.35&lon=-6.26&limit=3")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, 3, repo.lastLimit)
	})

	t.Run("non-numeric limit", func(t *testing.T) {
		app := newSpatialApp(&stubBusinessRepo{}, &stubAreaRepo{})

		status, env := doRequest(t, app, "/api/v1/businesses/nearest?lat=53.35&lon=-6.26&limit=all")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_LIMIT", env.Error.Code)
	})

	t.Run("limit above cap", func(t *testing.T) {
		app := newSpatialApp(&stubBusinessRepo{}, &stubAreaRepo{})

		status, env := doRequest(t, app, "/api/v1/businesses/nearest?lat=53.35&lon=-6.26&limit=101")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_LIMIT", env.Error.Code)
	})
}

func TestSpatialHandler_WithinArea(t *testing.T) {
	areas := &stubAreaRepo{areas: map[string]*domain.ServiceArea{
		"City Centre": {ID: 1, Name: "City Centre"},
	}}

	t.Run("resolves area and queries by its id", func(t *testing.T) {
		repo := &stubBusinessRepo{}
		app := newSpatialApp(repo, areas)

		status, env := doRequest(t, app, "/api/v1/businesses/within-area?name=City+Centre")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, int64(1), repo.lastAreaID)
		assert.Empty(t, env.Data)
	})

	t.Run("missing name", func(t *testing.T) {
		app := newSpatialApp(&stubBusinessRepo{}, areas)

		status, env := doRequest(t, app, "/api/v1/businesses/within-area")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "AREA_NAME_REQUIRED", env.Error.Code)
	})

	t.Run("unknown area", func(t *testing.T) {
		app := newSpatialApp(&stubBusinessRepo{}, areas)

		status, env := doRequest(t, app, "/api/v1/businesses/within-area?name=Nowhere")

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "SERVICE_AREA_NOT_FOUND", env.Error.Code)
	})
}
