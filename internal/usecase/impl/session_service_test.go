package impl

import (
	"context"
	"testing"

	domainerrors "dreamcrm/internal/domain/errors"
	"dreamcrm/internal/domain/repository"
	"dreamcrm/internal/infra/persistence/memory"
	"dreamcrm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionFixture() (usecase.SessionUsecase, *memStateStore) {
	store := memory.NewSeededStore()
	state := newMemStateStore()
	svc := NewSessionService(memory.NewUserRepository(store), state, staticTokenService{}, testLogger())

	return svc, state
}

func TestSessionService_Login_Success(t *testing.T) {
	svc, state := newSessionFixture()
	ctx := context.Background()

	out, err := svc.Login(ctx, &usecase.LoginInput{Email: "admin@dream.ae"})

	require.NoError(t, err)
	assert.Equal(t, "token-user-1", out.Token)
	assert.Equal(t, "Admin Ali", out.User.Name)
	assert.True(t, svc.IsAuthenticated())

	raw, err := state.Get(ctx, repository.StateKeySessionUser)
	require.NoError(t, err)
	assert.Contains(t, raw, `"user-1"`)
}

func TestSessionService_Login_CaseInsensitiveEmail(t *testing.T) {
	svc, _ := newSessionFixture()

	out, err := svc.Login(context.Background(), &usecase.LoginInput{Email: "Admin@Dream.AE"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", out.User.ID)
}

func TestSessionService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newSessionFixture()

	out, err := svc.Login(context.Background(), &usecase.LoginInput{Email: "nobody@dream.ae"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.False(t, svc.IsAuthenticated())
}

func TestSessionService_Logout_ClearsSession(t *testing.T) {
	svc, state := newSessionFixture()
	ctx := context.Background()

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ahmed@dream.ae"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, svc.Current(ctx))

	_, err = state.Get(ctx, repository.StateKeySessionUser)
	assert.True(t, errors.Is(err, repository.ErrStateNotFound))
}

func TestSessionService_Current_ReturnsCopy(t *testing.T) {
	svc, _ := newSessionFixture()
	ctx := context.Background()

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "fatima@dream.ae"})
	require.NoError(t, err)

	first := svc.Current(ctx)
	require.NotNil(t, first)
	first.Name = "Mangled"

	second := svc.Current(ctx)
	assert.Equal(t, "Agent Fatima", second.Name)
}

func TestSessionService_UpdateProfile_MergesAndPersists(t *testing.T) {
	svc, state := newSessionFixture()
	ctx := context.Background()

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "ahmed@dream.ae"})
	require.NoError(t, err)

	name := "Ahmed Al Mansoori"
	updated, err := svc.UpdateProfile(ctx, &usecase.UpdateProfileInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Ahmed Al Mansoori", updated.Name)
	assert.Equal(t, "ahmed@dream.ae", updated.Email)

	raw, err := state.Get(ctx, repository.StateKeySessionUser)
	require.NoError(t, err)
	assert.Contains(t, raw, "Ahmed Al Mansoori")
}

func TestSessionService_UpdateProfile_NoSession(t *testing.T) {
	svc, _ := newSessionFixture()

	updated, err := svc.UpdateProfile(context.Background(), &usecase.UpdateProfileInput{})

	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestSessionService_ChangePassword(t *testing.T) {
	svc, _ := newSessionFixture()
	ctx := context.Background()

	tests := []struct {
		name    string
		input   usecase.ChangePasswordInput
		wantErr string
	}{
		{
			name:  "valid",
			input: usecase.ChangePasswordInput{CurrentPassword: "old", NewPassword: "new", ConfirmPassword: "new"},
		},
		{
			name:    "mismatch",
			input:   usecase.ChangePasswordInput{CurrentPassword: "old", NewPassword: "new", ConfirmPassword: "other"},
			wantErr: "New passwords don't match",
		},
		{
			name:    "empty fields",
			input:   usecase.ChangePasswordInput{},
			wantErr: "Please fill all password fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ChangePassword(ctx, &tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSessionService_Restore_RoundTrip(t *testing.T) {
	svc, state := newSessionFixture()
	ctx := context.Background()

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "admin@dream.ae"})
	require.NoError(t, err)

	// A fresh service sharing the same state store picks the session up.
	restored := NewSessionService(memory.NewUserRepository(memory.NewSeededStore()), state, staticTokenService{}, testLogger())
	require.NoError(t, restored.Restore(ctx))

	current := restored.Current(ctx)
	require.NotNil(t, current)
	assert.Equal(t, "user-1", current.ID)
}

func TestSessionService_Restore_MissingKey(t *testing.T) {
	svc, _ := newSessionFixture()

	require.NoError(t, svc.Restore(context.Background()))
	assert.False(t, svc.IsAuthenticated())
}

func TestSessionService_Restore_CorruptRecord(t *testing.T) {
	svc, state := newSessionFixture()
	ctx := context.Background()

	require.NoError(t, state.Put(ctx, repository.StateKeySessionUser, "{not json"))

	require.NoError(t, svc.Restore(ctx))
	assert.False(t, svc.IsAuthenticated())
}
