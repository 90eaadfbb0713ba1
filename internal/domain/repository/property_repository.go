package repository

import (
	"context"
	"errors"

	"dreamcrm/internal/domain/entity"
)

// ErrPropertyNotFound is returned when a property is not found.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyFilter narrows a property listing. Zero values mean "no filter".
type PropertyFilter struct {
	// Search matches title or location, case-insensitively.
	Search string
	Type   entity.PropertyType
	Status entity.PropertyStatus
}

// PropertyRepository defines the standard operations for property persistence.
type PropertyRepository interface {
	// FindByID retrieves a single property by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Property, error)

	// List retrieves properties matching the filter, in insertion order.
	List(ctx context.Context, filter PropertyFilter) ([]*entity.Property, error)

	// Create persists a new property.
	Create(ctx context.Context, property *entity.Property) error
}
