package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/business-locator/internal/pkg/utils"
	"github.com/business-locator/internal/usecase"
	"github.com/business-locator/internal/usecase/dto"
)

// SpatialHandler serves the three spatial search endpoints.
type SpatialHandler struct {
	spatialUC *usecase.SpatialUseCase
	logger    *zap.Logger
}

func NewSpatialHandler(spatialUC *usecase.SpatialUseCase, logger *zap.Logger) *SpatialHandler {
	return &SpatialHandler{
		spatialUC: spatialUC,
		logger:    logger,
	}
}

// Nearby godoc
// @Summary Proximity search
// @Description Returns every business within the radius of the given point, closest first, each annotated with its distance in meters.
// @Tags Spatial
// @Produce json
// @Param lat query number true "Latitude of the search center"
// @Param lon query number true "Longitude of the search center"
// @Param radius query number false "Search radius in meters" default(1000)
// @Param category__slug query string false "Filter by category slug (comma-separated)"
// @Param service_area__name query string false "Filter by service area name"
// @Param search query string false "Free-text search over name and description"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BusinessResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/businesses/nearby [get]
func (h *SpatialHandler) Nearby(c *fiber.Ctx) error {
	center, err := parseCenter(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	radius, err := parseRadius(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.spatialUC.Nearby(c.Context(), dto.NearbyQuery{
		Center:       center,
		RadiusMeters: radius,
		Filter:       parseFilter(c),
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// Nearest godoc
// @Summary K-nearest-neighbor search
// @Description Returns the N closest businesses to the given point regardless of distance.
// @Tags Spatial
// @Produce json
// @Param lat query number true "Latitude of the search center"
// @Param lon query number true "Longitude of the search center"
// @Param limit query int false "Number of results" default(5)
// @Param category__slug query string false "Filter by category slug (comma-separated)"
// @Param service_area__name query string false "Filter by service area name"
// @Param search query string false "Free-text search over name and description"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BusinessResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/businesses/nearest [get]
func (h *SpatialHandler) Nearest(c *fiber.Ctx) error {
	center, err := parseCenter(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	limit, err := parseLimit(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.spatialUC.Nearest(c.Context(), dto.NearestQuery{
		Center: center,
		Limit:  limit,
		Filter: parseFilter(c),
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// WithinArea godoc
// @Summary Containment search
// @Description Returns every business located inside the named service area's boundary. The name match is exact and case-insensitive.
// @Tags Spatial
// @Produce json
// @Param name query string true "Service area name"
// @Param category__slug query string false "Filter by category slug (comma-separated)"
// @Param search query string false "Free-text search over name and description"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BusinessResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/businesses/within-area [get]
func (h *SpatialHandler) WithinArea(c *fiber.Ctx) error {
	result, err := h.spatialUC.WithinArea(c.Context(), dto.WithinAreaQuery{
		AreaName: c.Query("name"),
		Filter:   parseFilter(c),
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}
