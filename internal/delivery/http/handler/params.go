package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/business-locator/internal/domain"
	"github.com/business-locator/internal/pkg/errors"
	"github.com/business-locator/internal/usecase/dto"
)

// parseCenter reads lat/lon query params. Both must be present and
// numeric; they arrive in lat/lon order and are swapped into the
// lon-first Point here, at the boundary.
func parseCenter(c *fiber.Ctx) (domain.Point, error) {
	latRaw := c.Query("lat")
	lonRaw := c.Query("lon")
	if latRaw == "" || lonRaw == "" {
		return domain.Point{}, errors.ErrInvalidCoordinates
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return domain.Point{}, errors.ErrInvalidCoordinates
	}
	lon, err := strconv.ParseFloat(lonRaw, 64)
	if err != nil {
		return domain.Point{}, errors.ErrInvalidCoordinates
	}

	return domain.Point{Lon: lon, Lat: lat}, nil
}

func parseRadius(c *fiber.Ctx) (float64, error) {
	raw := c.Query("radius")
	if raw == "" {
		return dto.DefaultRadiusMeters, nil
	}

	radius, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.ErrInvalidRadius
	}
	return radius, nil
}

func parseLimit(c *fiber.Ctx) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return dto.DefaultNearestLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.ErrInvalidLimit
	}
	return limit, nil
}

// parseFilter reads the non-spatial modifiers shared by listings and
// spatial searches. category__slug accepts a comma-separated list.
func parseFilter(c *fiber.Ctx) domain.BusinessFilter {
	filter := domain.BusinessFilter{
		AreaName: c.Query("service_area__name"),
		Search:   c.Query("search"),
	}

	if raw := c.Query("category__slug"); raw != "" {
		for _, slug := range strings.Split(raw, ",") {
			if slug = strings.TrimSpace(slug); slug != "" {
				filter.CategorySlugs = append(filter.CategorySlugs, slug)
			}
		}
	}

	return filter
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidRequest.WithMessage("id must be a positive integer")
	}
	return id, nil
}
