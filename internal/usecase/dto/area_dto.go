package dto

import (
	"time"

	"github.com/business-locator/internal/domain"
	"github.com/business-locator/internal/pkg/geojson"
)

type AreaResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Boundary  *geojson.Object `json:"boundary"`
	CreatedAt time.Time       `json:"created_at"`
}

type CreateAreaRequest struct {
	Name     string          `json:"name" validate:"required,max=150"`
	Boundary *geojson.Object `json:"boundary" validate:"required"`
}

// UpdateAreaRequest carries only the fields present in the PATCH body.
type UpdateAreaRequest struct {
	Name     *string         `json:"name" validate:"omitempty,min=1,max=150"`
	Boundary *geojson.Object `json:"boundary"`
}

func NewAreaResponse(a *domain.ServiceArea) (AreaResponse, error) {
	boundary, err := geojson.EncodePolygon(a.Boundary)
	if err != nil {
		return AreaResponse{}, err
	}
	return AreaResponse{
		ID:        a.ID,
		Name:      a.Name,
		Boundary:  boundary,
		CreatedAt: a.CreatedAt,
	}, nil
}

func NewAreaList(areas []*domain.ServiceArea) ([]AreaResponse, error) {
	result := make([]AreaResponse, 0, len(areas))
	for _, a := range areas {
		resp, err := NewAreaResponse(a)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}
