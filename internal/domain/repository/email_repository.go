package repository

import (
	"context"
	"errors"

	"dreamcrm/internal/domain/entity"
)

// ErrEmailNotFound is returned when an email is not found.
var ErrEmailNotFound = errors.New("email not found")

// EmailRepository defines the standard operations for mail persistence.
type EmailRepository interface {
	// FindByID retrieves a single email by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Email, error)

	// List retrieves all emails in insertion order.
	List(ctx context.Context) ([]*entity.Email, error)

	// ListByFolder retrieves the folder's emails, in insertion order.
	ListByFolder(ctx context.Context, folder entity.EmailFolder) ([]*entity.Email, error)

	// Create persists a new email.
	Create(ctx context.Context, email *entity.Email) error

	// Update modifies an existing email.
	Update(ctx context.Context, email *entity.Email) error

	// Delete removes an email from the store entirely.
	Delete(ctx context.Context, id string) error
}
