package repository

import (
	"context"
	"errors"

	"dreamcrm/internal/domain/entity"
)

// ErrCallNotFound is returned when a call is not found.
var ErrCallNotFound = errors.New("call not found")

// CallRepository defines the standard operations for the call log.
type CallRepository interface {
	// List retrieves all calls in insertion order.
	List(ctx context.Context) ([]*entity.Call, error)

	// Create persists a new call log entry.
	Create(ctx context.Context, call *entity.Call) error
}
