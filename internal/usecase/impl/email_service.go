package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"dreamcrm/internal/domain/entity"
	domainerrors "dreamcrm/internal/domain/errors"
	"dreamcrm/internal/domain/repository"
	"dreamcrm/internal/usecase"

	"github.com/pkg/errors"
)

// emailService implements the EmailUsecase interface.
type emailService struct {
	emails repository.EmailRepository
	leads  repository.LeadRepository
	logger *slog.Logger
}

// NewEmailService is the constructor for emailService.
func NewEmailService(
	emails repository.EmailRepository,
	leads repository.LeadRepository,
	logger *slog.Logger,
) usecase.EmailUsecase {
	return &emailService{emails: emails, leads: leads, logger: logger}
}

func (srv *emailService) Folders(ctx context.Context) ([]usecase.FolderSummary, error) {
	emails, err := srv.emails.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list emails")
	}

	unread := make(map[entity.EmailFolder]int)
	for _, e := range emails {
		if !e.IsRead {
			unread[e.Folder]++
		}
	}

	summaries := make([]usecase.FolderSummary, 0, len(entity.EmailFolders()))
	for _, folder := range entity.EmailFolders() {
		summaries = append(summaries, usecase.FolderSummary{
			Folder: folder,
			Unread: unread[folder],
		})
	}

	return summaries, nil
}

// ListFolder returns a folder's emails newest first.
func (srv *emailService) ListFolder(ctx context.Context, folder entity.EmailFolder) ([]*entity.Email, error) {
	if !folder.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("unknown folder"))
	}

	emails, err := srv.emails.ListByFolder(ctx, folder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list folder")
	}

	sort.SliceStable(emails, func(i, j int) bool {
		return emails[i].Date.After(emails[j].Date)
	})

	return emails, nil
}

// Open returns the email and marks it read. The flag only ever flips
// from unread to read; opening again changes nothing.
func (srv *emailService) Open(ctx context.Context, id string) (*entity.Email, error) {
	email, err := srv.emails.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmailNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNotFound)
		}

		return nil, errors.Wrap(err, "failed to find email")
	}

	if !email.IsRead {
		email.IsRead = true
		if err := srv.emails.Update(ctx, email); err != nil {
			return nil, errors.Wrap(err, "failed to mark email read")
		}
	}

	return email, nil
}

// Compose sends an email to a lead. It lands directly in Sent, already
// read; nothing programmatically enters Drafts or Inbox.
func (srv *emailService) Compose(ctx context.Context, actor *entity.User, input *usecase.ComposeEmailInput) (*entity.Email, error) {
	lead, err := srv.leads.FindByID(ctx, input.ToLeadID)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("select a valid recipient"))
		}

		return nil, errors.Wrap(err, "failed to find recipient lead")
	}

	now := time.Now()
	email := &entity.Email{
		ID:      newID("email", now),
		To:      lead.Name,
		Subject: input.Subject,
		Body:    input.Body,
		Date:    now,
		IsRead:  true,
		Folder:  entity.FolderSent,
	}
	if actor != nil {
		email.From = actor.Name
	}

	if err := srv.emails.Create(ctx, email); err != nil {
		return nil, errors.Wrap(err, "failed to store email")
	}

	srv.logger.Info("Email sent", "emailID", email.ID, "to", email.To)

	return email, nil
}

// Delete moves the email to Trash; deleting an email already in Trash
// removes it from the store entirely.
func (srv *emailService) Delete(ctx context.Context, id string) error {
	email, err := srv.emails.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmailNotFound) {
			return errors.WithStack(domainerrors.ErrNotFound)
		}

		return errors.Wrap(err, "failed to find email")
	}

	if email.Folder == entity.FolderTrash {
		if err := srv.emails.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete email")
		}

		srv.logger.Info("Email permanently deleted", "emailID", id)

		return nil
	}

	email.Folder = entity.FolderTrash
	if err := srv.emails.Update(ctx, email); err != nil {
		return errors.Wrap(err, "failed to move email to trash")
	}

	srv.logger.Info("Email moved to trash", "emailID", id)

	return nil
}
