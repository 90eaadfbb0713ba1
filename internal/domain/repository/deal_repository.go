package repository

import (
	"context"
	"errors"

	"dreamcrm/internal/domain/entity"
)

// ErrDealNotFound is returned when a deal is not found.
var ErrDealNotFound = errors.New("deal not found")

// DealRepository defines the standard operations for deal persistence.
type DealRepository interface {
	// FindByID retrieves a single deal by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Deal, error)

	// List retrieves all deals in insertion order.
	List(ctx context.Context) ([]*entity.Deal, error)

	// ListByStage retrieves all deals in the given stage, in insertion order.
	ListByStage(ctx context.Context, stage entity.DealStage) ([]*entity.Deal, error)

	// ListClosedByAgent retrieves the agent's closed deals, in insertion order.
	ListClosedByAgent(ctx context.Context, agentID string) ([]*entity.Deal, error)
}
