package dto

import (
	"time"

	"github.com/business-locator/internal/domain"
	"github.com/business-locator/internal/pkg/geojson"
)

// BusinessResponse is the wire shape of a business. Location and
// service_area serialize as explicit null when absent, never as empty
// objects.
type BusinessResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Phone       string           `json:"phone"`
	Email       string           `json:"email"`
	Website     string           `json:"website"`
	Location    *geojson.Object  `json:"location"`
	Category    CategoryResponse `json:"category"`
	ServiceArea *AreaResponse    `json:"service_area"`
	Distance    *float64         `json:"distance,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type CreateBusinessRequest struct {
	Name          string          `json:"name" validate:"required,max=200"`
	Description   string          `json:"description"`
	Phone         string          `json:"phone" validate:"omitempty,max=20"`
	Email         string          `json:"email" validate:"omitempty,email"`
	Website       string          `json:"website" validate:"omitempty,url"`
	Location      *geojson.Object `json:"location" validate:"required"`
	CategoryID    int64           `json:"category_id" validate:"required,gt=0"`
	ServiceAreaID *int64          `json:"service_area_id" validate:"omitempty,gt=0"`
}

// UpdateBusinessRequest carries only the fields present in the PATCH body.
// ServiceAreaID is doubly-optional: absent leaves the reference untouched,
// explicit null clears it.
type UpdateBusinessRequest struct {
	Name          *string         `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string         `json:"description"`
	Phone         *string         `json:"phone" validate:"omitempty,max=20"`
	Email         *string         `json:"email" validate:"omitempty,email"`
	Website       *string         `json:"website" validate:"omitempty,url"`
	Location      *geojson.Object `json:"location"`
	CategoryID    *int64          `json:"category_id" validate:"omitempty,gt=0"`
	ServiceAreaID OptionalInt64   `json:"service_area_id"`
}

// OptionalInt64 distinguishes "field absent" from "field: null" in PATCH
// bodies.
type OptionalInt64 struct {
	Present bool
	Value   *int64
}

func (o *OptionalInt64) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v int64
	if err := unmarshalInt64(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func NewBusinessResponse(b *domain.Business) (BusinessResponse, error) {
	resp := BusinessResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Phone:       b.Phone,
		Email:       b.Email,
		Website:     b.Website,
		Distance:    b.Distance,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	location, err := geojson.EncodePoint(b.Location)
	if err != nil {
		return BusinessResponse{}, err
	}
	resp.Location = location

	if b.Category != nil {
		resp.Category = NewCategoryResponse(b.Category)
	}

	if b.Area != nil {
		area, err := NewAreaResponse(b.Area)
		if err != nil {
			return BusinessResponse{}, err
		}
		resp.ServiceArea = &area
	}

	return resp, nil
}

func NewBusinessList(businesses []*domain.Business) ([]BusinessResponse, error) {
	result := make([]BusinessResponse, 0, len(businesses))
	for _, b := range businesses {
		resp, err := NewBusinessResponse(b)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}
