package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/business-locator/internal/pkg/errors"
	"github.com/business-locator/internal/pkg/utils"
	"github.com/business-locator/internal/pkg/validator"
	"github.com/business-locator/internal/usecase"
	"github.com/business-locator/internal/usecase/dto"
)

type BusinessHandler struct {
	businessUC *usecase.BusinessUseCase
	logger     *zap.Logger
}

func NewBusinessHandler(businessUC *usecase.BusinessUseCase, logger *zap.Logger) *BusinessHandler {
	return &BusinessHandler{
		businessUC: businessUC,
		logger:     logger,
	}
}

// List godoc
// @Summary List businesses
// @Description Lists businesses alphabetically, optionally filtered by category slug, service area name or free text.
// @Tags Businesses
// @Produce json
// @Param category__slug query string false "Filter by category slug (comma-separated)"
// @Param service_area__name query string false "Filter by service area name"
// @Param search query string false "Free-text search over name and description"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BusinessResponse}
// @Router /api/v1/businesses [get]
func (h *BusinessHandler) List(c *fiber.Ctx) error {
	result, err := h.businessUC.List(c.Context(), parseFilter(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// Get godoc
// @Summary Retrieve one business
// @Tags Businesses
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.BusinessResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/businesses/{id} [get]
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.businessUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Create godoc
// @Summary Create a business
// @Tags Businesses
// @Accept json
// @Produce json
// @Param request body dto.CreateBusinessRequest true "Business fields"
// @Success 201 {object} utils.SuccessResponse{data=dto.BusinessResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/businesses [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	result, err := h.businessUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// Update godoc
// @Summary Partially update a business
// @Tags Businesses
// @Accept json
// @Produce json
// @Param id path int true "Business ID"
// @Param request body dto.UpdateBusinessRequest true "Fields to change"
// @Success 200 {object} utils.SuccessResponse{data=dto.BusinessResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/businesses/{id} [patch]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	result, err := h.businessUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Delete godoc
// @Summary Delete a business
// @Tags Businesses
// @Param id path int true "Business ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/businesses/{id} [delete]
func (h *BusinessHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.businessUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendNoContent(c)
}
