package impl

import (
	"context"
	"strings"
	"testing"

	"dreamcrm/internal/domain/entity"
	domainerrors "dreamcrm/internal/domain/errors"
	"dreamcrm/internal/infra/persistence/memory"
	"dreamcrm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmailFixture() usecase.EmailUsecase {
	store := memory.NewSeededStore()

	return NewEmailService(memory.NewEmailRepository(store), memory.NewLeadRepository(store), testLogger())
}

func TestEmailService_Folders_UnreadCounts(t *testing.T) {
	svc := newEmailFixture()

	summaries, err := svc.Folders(context.Background())

	require.NoError(t, err)
	require.Len(t, summaries, 4)
	assert.Equal(t, usecase.FolderSummary{Folder: entity.FolderInbox, Unread: 2}, summaries[0])
	assert.Equal(t, usecase.FolderSummary{Folder: entity.FolderSent, Unread: 0}, summaries[1])
	assert.Equal(t, usecase.FolderSummary{Folder: entity.FolderDrafts, Unread: 0}, summaries[2])
	assert.Equal(t, usecase.FolderSummary{Folder: entity.FolderTrash, Unread: 0}, summaries[3])
}

func TestEmailService_ListFolder_NewestFirst(t *testing.T) {
	svc := newEmailFixture()

	inbox, err := svc.ListFolder(context.Background(), entity.FolderInbox)

	require.NoError(t, err)
	require.Len(t, inbox, 3)
	assert.Equal(t, "email-5", inbox[0].ID)
	assert.Equal(t, "email-1", inbox[1].ID)
	assert.Equal(t, "email-3", inbox[2].ID)
}

func TestEmailService_ListFolder_UnknownFolder(t *testing.T) {
	svc := newEmailFixture()

	_, err := svc.ListFolder(context.Background(), entity.EmailFolder("Archive"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestEmailService_Open_MarksReadOnce(t *testing.T) {
	svc := newEmailFixture()
	ctx := context.Background()

	opened, err := svc.Open(ctx, "email-1")
	require.NoError(t, err)
	assert.True(t, opened.IsRead)

	summaries, err := svc.Folders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summaries[0].Unread)

	// Opening again changes nothing.
	_, err = svc.Open(ctx, "email-1")
	require.NoError(t, err)

	summaries, err = svc.Folders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summaries[0].Unread)
}

func TestEmailService_Open_NotFound(t *testing.T) {
	svc := newEmailFixture()

	_, err := svc.Open(context.Background(), "email-999")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestEmailService_Compose_LandsInSentRead(t *testing.T) {
	svc := newEmailFixture()
	actor := &entity.User{ID: "user-2", Name: "Agent Ahmed"}

	sent, err := svc.Compose(context.Background(), actor, &usecase.ComposeEmailInput{
		ToLeadID: "lead-1",
		Subject:  "Viewing slots this week",
		Body:     "Hi Hassan, would Tuesday work?",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sent.ID, "email-"))
	assert.Equal(t, "Agent Ahmed", sent.From)
	assert.Equal(t, "Hassan Iqbal", sent.To)
	assert.Equal(t, entity.FolderSent, sent.Folder)
	assert.True(t, sent.IsRead)

	folder, err := svc.ListFolder(context.Background(), entity.FolderSent)
	require.NoError(t, err)
	assert.Len(t, folder, 3)
}

func TestEmailService_Compose_UnknownRecipient(t *testing.T) {
	svc := newEmailFixture()

	_, err := svc.Compose(context.Background(), nil, &usecase.ComposeEmailInput{ToLeadID: "lead-999"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "select a valid recipient")
}

func TestEmailService_Delete_TrashThenHardDelete(t *testing.T) {
	svc := newEmailFixture()
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "email-1"))

	trash, err := svc.ListFolder(ctx, entity.FolderTrash)
	require.NoError(t, err)
	require.Len(t, trash, 1)
	assert.Equal(t, "email-1", trash[0].ID)

	// Deleting from Trash removes the email entirely.
	require.NoError(t, svc.Delete(ctx, "email-1"))

	trash, err = svc.ListFolder(ctx, entity.FolderTrash)
	require.NoError(t, err)
	assert.Empty(t, trash)

	_, err = svc.Open(ctx, "email-1")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
