package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"dreamcrm/internal/domain/entity"
	domainerrors "dreamcrm/internal/domain/errors"
	"dreamcrm/internal/domain/repository"
	"dreamcrm/internal/domain/service"
	"dreamcrm/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface. The CRM is a
// single-actor application, so one in-process session mirrors the
// persisted record under the state key "user".
type sessionService struct {
	users    repository.UserRepository
	state    repository.StateStore
	tokenSvc service.TokenService
	logger   *slog.Logger

	mu      sync.RWMutex
	current *entity.User
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	users repository.UserRepository,
	state repository.StateStore,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		users:    users,
		state:    state,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// Login matches the email case-insensitively against the directory. There
// is no password; a miss is an invalid-credentials error, never a crash.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to look up user by email")
	}

	if err := srv.persistSession(ctx, user); err != nil {
		return nil, err
	}

	token, err := srv.tokenSvc.Generate(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.mu.Lock()
	srv.current = user
	srv.mu.Unlock()

	srv.logger.Info("User logged in", "userID", user.ID, "role", user.Role)

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// Logout clears the session. Failures to delete the persisted record are
// logged and swallowed; logout always succeeds.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.mu.Lock()
	srv.current = nil
	srv.mu.Unlock()

	if err := srv.state.Delete(ctx, repository.StateKeySessionUser); err != nil {
		srv.logger.Warn("Failed to delete persisted session", "error", err)
	}

	srv.logger.Info("User logged out")

	return nil
}

func (srv *sessionService) Current(_ context.Context) *entity.User {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.current == nil {
		return nil
	}

	user := *srv.current

	return &user
}

func (srv *sessionService) IsAuthenticated() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.current != nil
}

// UpdateProfile shallow-merges the provided fields into the session user
// and re-persists it. Without a session it is a silent no-op.
func (srv *sessionService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.mu.Lock()
	if srv.current == nil {
		srv.mu.Unlock()

		return nil, nil
	}

	merged := *srv.current
	if input.Name != nil {
		merged.Name = *input.Name
	}
	if input.Email != nil {
		merged.Email = *input.Email
	}
	if input.Avatar != nil {
		merged.Avatar = *input.Avatar
	}
	srv.current = &merged
	srv.mu.Unlock()

	if err := srv.users.Update(ctx, &merged); err != nil {
		srv.logger.Warn("Failed to write profile update to directory", "error", err)
	}

	if err := srv.persistSession(ctx, &merged); err != nil {
		return nil, err
	}

	srv.logger.Info("Profile updated", "userID", merged.ID)

	return &merged, nil
}

// ChangePassword validates the form and acknowledges. The account store
// keeps no credentials, so nothing is written anywhere.
func (srv *sessionService) ChangePassword(_ context.Context, input *usecase.ChangePasswordInput) error {
	if input.NewPassword != input.ConfirmPassword {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("New passwords don't match"))
	}
	if input.NewPassword == "" || input.CurrentPassword == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("Please fill all password fields"))
	}

	return nil
}

// Restore loads the persisted session at startup. A missing key or a
// corrupt record yields an unauthenticated start; neither is an error.
func (srv *sessionService) Restore(ctx context.Context) error {
	raw, err := srv.state.Get(ctx, repository.StateKeySessionUser)
	if err != nil {
		if !errors.Is(err, repository.ErrStateNotFound) {
			srv.logger.Warn("Failed to read persisted session, starting unauthenticated", "error", err)
		}

		return nil
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		srv.logger.Warn("Persisted session is corrupt, starting unauthenticated", "error", err)

		return nil
	}

	srv.mu.Lock()
	srv.current = &user
	srv.mu.Unlock()

	srv.logger.Info("Session restored", "userID", user.ID, "role", user.Role)

	return nil
}

func (srv *sessionService) persistSession(ctx context.Context, user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "failed to serialize session user")
	}

	if err := srv.state.Put(ctx, repository.StateKeySessionUser, string(raw)); err != nil {
		return errors.Wrap(domainerrors.ErrStateStoreFailed, err.Error())
	}

	return nil
}
