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

type AreaHandler struct {
	areaUC *usecase.AreaUseCase
	logger *zap.Logger
}

func NewAreaHandler(areaUC *usecase.AreaUseCase, logger *zap.Logger) *AreaHandler {
	return &AreaHandler{
		areaUC: areaUC,
		logger: logger,
	}
}

// List godoc
// @Summary List service areas
// @Tags Areas
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.AreaResponse}
// @Router /api/v1/areas [get]
func (h *AreaHandler) List(c *fiber.Ctx) error {
	result, err := h.areaUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

func (h *AreaHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.areaUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

func (h *AreaHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	result, err := h.areaUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

func (h *AreaHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	result, err := h.areaUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Delete godoc
// @Summary Delete a service area
// @Description Dependent businesses are kept; their area reference is cleared.
// @Tags Areas
// @Param id path int true "Area ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/areas/{id} [delete]
func (h *AreaHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.areaUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendNoContent(c)
}
