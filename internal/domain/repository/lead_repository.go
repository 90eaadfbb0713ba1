package repository

import (
	"context"
	"errors"

	"dreamcrm/internal/domain/entity"
)

// ErrLeadNotFound is returned when a lead is not found.
var ErrLeadNotFound = errors.New("lead not found")

// LeadRepository defines the standard operations for lead persistence.
type LeadRepository interface {
	// FindByID retrieves a single lead by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Lead, error)

	// List retrieves all leads in insertion order.
	List(ctx context.Context) ([]*entity.Lead, error)

	// Create persists a new lead.
	Create(ctx context.Context, lead *entity.Lead) error
}
