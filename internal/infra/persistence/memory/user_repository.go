package memory

import (
	"context"
	"strings"

	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/domain/repository"
)

type userRepository struct {
	store *Store
}

// NewUserRepository creates a user repository backed by the in-memory store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.ID == id {
			return clone(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			return clone(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *userRepository) List(_ context.Context) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		users = append(users, clone(u))
	}

	return users, nil
}

func (r *userRepository) ListByRole(_ context.Context, role entity.Role) ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var users []*entity.User
	for _, u := range r.store.users {
		if u.Role == role {
			users = append(users, clone(u))
		}
	}

	return users, nil
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.users = append(r.store.users, clone(user))

	return nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, u := range r.store.users {
		if u.ID == user.ID {
			r.store.users[i] = clone(user)

			return nil
		}
	}

	return repository.ErrUserNotFound
}
