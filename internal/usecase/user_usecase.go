package usecase

import (
	"context"

	"dreamcrm/internal/domain/entity"
)

// UserUsecase defines the interface for the admin user directory.
type UserUsecase interface {
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
}
