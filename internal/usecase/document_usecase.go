package usecase

import (
	"context"
	"time"

	"dreamcrm/internal/domain/entity"
)

// UploadDocumentInput defines the metadata recorded for an upload. The
// file itself is not stored; only the metadata record is kept.
type UploadDocumentInput struct {
	Name        string `json:"name" validate:"required"`
	SizeKB      int    `json:"sizeKB" validate:"gte=0"`
	RelatedToID string `json:"relatedToId" validate:"required"`
}

// DocumentView is a document enriched with the uploader's name and the
// title of the property or deal it is linked to. Dangling references
// degrade to "N/A".
type DocumentView struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Type       entity.DocumentType `json:"type"`
	SizeKB     int                 `json:"sizeKB"`
	UploadDate time.Time           `json:"uploadDate"`
	UploadedBy string              `json:"uploadedBy"`
	RelatedTo  string              `json:"relatedTo"`
}

// DocumentUsecase defines the interface for document operations.
type DocumentUsecase interface {
	List(ctx context.Context) ([]DocumentView, error)
	Upload(ctx context.Context, actor *entity.User, input *UploadDocumentInput) (*entity.Document, error)
	Delete(ctx context.Context, id string) error
}
