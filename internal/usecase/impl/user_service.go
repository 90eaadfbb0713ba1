package impl

import (
	"context"
	"log/slog"

	"dreamcrm/internal/domain/entity"
	domainerrors "dreamcrm/internal/domain/errors"
	"dreamcrm/internal/domain/repository"
	"dreamcrm/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(users repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{users: users, logger: logger}
}

func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.users.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
