package repository

import (
	"context"
	"errors"

	"dreamcrm/internal/domain/entity"
)

// ErrDocumentNotFound is returned when a document is not found.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository defines the standard operations for document metadata.
type DocumentRepository interface {
	// List retrieves all documents in insertion order.
	List(ctx context.Context) ([]*entity.Document, error)

	// Create persists new document metadata.
	Create(ctx context.Context, document *entity.Document) error

	// Delete removes a document by ID.
	Delete(ctx context.Context, id string) error
}
