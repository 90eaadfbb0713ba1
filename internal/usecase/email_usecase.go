package usecase

import (
	"context"

	"dreamcrm/internal/domain/entity"
)

// ComposeEmailInput defines the data required to send an email to a lead.
type ComposeEmailInput struct {
	ToLeadID string `json:"toLeadId" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	Body     string `json:"body"`
}

// FolderSummary pairs a folder with its unread count.
type FolderSummary struct {
	Folder entity.EmailFolder `json:"folder"`
	Unread int                `json:"unread"`
}

// EmailUsecase defines the interface for the mailbox.
//
// Deleting moves an email to Trash; deleting from Trash removes it for
// good. Compose lands directly in Sent, already read. Opening an unread
// email marks it read exactly once.
type EmailUsecase interface {
	Folders(ctx context.Context) ([]FolderSummary, error)
	// ListFolder returns a folder's emails sorted by date descending.
	ListFolder(ctx context.Context, folder entity.EmailFolder) ([]*entity.Email, error)
	Open(ctx context.Context, id string) (*entity.Email, error)
	Compose(ctx context.Context, actor *entity.User, input *ComposeEmailInput) (*entity.Email, error)
	Delete(ctx context.Context, id string) error
}
