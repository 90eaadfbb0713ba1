// Package repository defines the interfaces for the entity store.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"dreamcrm/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by email, compared case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List retrieves all users in insertion order.
	List(ctx context.Context) ([]*entity.User, error)

	// ListByRole retrieves all users with the given role, in insertion order.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}
