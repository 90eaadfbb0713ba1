package memory

import (
	"context"
	"testing"

	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByEmail_CaseInsensitive(t *testing.T) {
	repo := NewUserRepository(NewSeededStore())
	ctx := context.Background()

	user, err := repo.FindByEmail(ctx, "ADMIN@dream.AE")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestUserRepository_FindByEmail_Miss(t *testing.T) {
	repo := NewUserRepository(NewSeededStore())

	_, err := repo.FindByEmail(context.Background(), "nobody@dream.ae")

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_ListByRole(t *testing.T) {
	repo := NewUserRepository(NewSeededStore())
	ctx := context.Background()

	agents, err := repo.ListByRole(ctx, entity.RoleAgent)
	require.NoError(t, err)
	assert.Len(t, agents, 2)

	admins, err := repo.ListByRole(ctx, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}

// Reads hand out copies; mutating a result must not leak into the store.
func TestUserRepository_CloneOnRead(t *testing.T) {
	repo := NewUserRepository(NewSeededStore())
	ctx := context.Background()

	first, err := repo.FindByID(ctx, "user-1")
	require.NoError(t, err)
	first.Name = "Mangled"

	second, err := repo.FindByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Admin Ali", second.Name)
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(NewSeededStore())
	ctx := context.Background()

	user, err := repo.FindByID(ctx, "user-2")
	require.NoError(t, err)

	user.Name = "Ahmed Al Mansoori"
	require.NoError(t, repo.Update(ctx, user))

	updated, err := repo.FindByID(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, "Ahmed Al Mansoori", updated.Name)

	err = repo.Update(ctx, &entity.User{ID: "user-999"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
