package usecase

import (
	"context"

	"dreamcrm/internal/domain/entity"
)

// PropertyFilterInput narrows the property listing. Empty fields match all.
type PropertyFilterInput struct {
	Search string `query:"search"`
	Type   string `query:"type"`
	Status string `query:"status"`
}

// CreatePropertyInput defines the data required to list a new property.
type CreatePropertyInput struct {
	Title     string  `json:"title" validate:"required"`
	Type      string  `json:"type" validate:"required"`
	Status    string  `json:"status" validate:"required"`
	PriceAED  float64 `json:"priceAED" validate:"required,gt=0"`
	Location  string  `json:"location" validate:"required"`
	Bedrooms  int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms int     `json:"bathrooms" validate:"gte=0"`
	AreaSqFt  int     `json:"areaSqFt" validate:"gte=0"`
	ImageURL  string  `json:"imageUrl"`
}

// PropertyUsecase defines the interface for property operations.
type PropertyUsecase interface {
	List(ctx context.Context, filter *PropertyFilterInput) ([]*entity.Property, error)
	Get(ctx context.Context, id string) (*entity.Property, error)
	Create(ctx context.Context, input *CreatePropertyInput) (*entity.Property, error)
}
