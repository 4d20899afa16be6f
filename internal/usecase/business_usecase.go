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

type BusinessUseCase struct {
	businessRepo repository.BusinessRepository
	logger       *zap.Logger
}

func NewBusinessUseCase(
	businessRepo repository.BusinessRepository,
	logger *zap.Logger,
) *BusinessUseCase {
	return &BusinessUseCase{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

func (uc *BusinessUseCase) List(ctx context.Context, filter domain.BusinessFilter) ([]dto.BusinessResponse, error) {
	businesses, err := uc.businessRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list businesses", zap.Error(err))
		return nil, err
	}

	result, err := dto.NewBusinessList(businesses)
	if err != nil {
		uc.logger.Error("Failed to serialize businesses", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return result, nil
}

func (uc *BusinessUseCase) GetByID(ctx context.Context, id int64) (*dto.BusinessResponse, error) {
	business, err := uc.businessRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp, err := dto.NewBusinessResponse(business)
	if err != nil {
		uc.logger.Error("Failed to serialize business", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return &resp, nil
}

func (uc *BusinessUseCase) Create(ctx context.Context, req dto.CreateBusinessRequest) (*dto.BusinessResponse, error) {
	location, err := geojson.DecodePoint(req.Location)
	if err != nil {
		return nil, errors.ErrInvalidGeometry.WithMessage(err.Error())
	}

	business := &domain.Business{
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Location:    location,
		CategoryID:  req.CategoryID,
		AreaID:      req.ServiceAreaID,
	}

	if err := uc.businessRepo.Create(ctx, business); err != nil {
		return nil, err
	}

	// Reload to resolve category and area in one pass.
	return uc.GetByID(ctx, business.ID)
}

func (uc *BusinessUseCase) Update(ctx context.Context, id int64, req dto.UpdateBusinessRequest) (*dto.BusinessResponse, error) {
	business, err := uc.businessRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Description != nil {
		business.Description = *req.Description
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.Email != nil {
		business.Email = *req.Email
	}
	if req.Website != nil {
		business.Website = *req.Website
	}
	if req.Location != nil {
		location, err := geojson.DecodePoint(req.Location)
		if err != nil {
			return nil, errors.ErrInvalidGeometry.WithMessage(err.Error())
		}
		business.Location = location
	}
	if req.CategoryID != nil {
		business.CategoryID = *req.CategoryID
	}
	if req.ServiceAreaID.Present {
		business.AreaID = req.ServiceAreaID.Value
	}

	if err := uc.businessRepo.Update(ctx, business); err != nil {
		return nil, err
	}

	return uc.GetByID(ctx, id)
}

func (uc *BusinessUseCase) Delete(ctx context.Context, id int64) error {
	return uc.businessRepo.Delete(ctx, id)
}
