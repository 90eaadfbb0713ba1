package memory

import (
	"context"

	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/domain/repository"
)

type emailRepository struct {
	store *Store
}

// NewEmailRepository creates a mail repository backed by the in-memory store.
func NewEmailRepository(store *Store) repository.EmailRepository {
	return &emailRepository{store: store}
}

func (r *emailRepository) FindByID(_ context.Context, id string) (*entity.Email, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.emails {
		if e.ID == id {
			return clone(e), nil
		}
	}

	return nil, repository.ErrEmailNotFound
}

func (r *emailRepository) List(_ context.Context) ([]*entity.Email, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	emails := make([]*entity.Email, 0, len(r.store.emails))
	for _, e := range r.store.emails {
		emails = append(emails, clone(e))
	}

	return emails, nil
}

func (r *emailRepository) ListByFolder(_ context.Context, folder entity.EmailFolder) ([]*entity.Email, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var emails []*entity.Email
	for _, e := range r.store.emails {
		if e.Folder == folder {
			emails = append(emails, clone(e))
		}
	}

	return emails, nil
}

func (r *emailRepository) Create(_ context.Context, email *entity.Email) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.emails = append(r.store.emails, clone(email))

	return nil
}

func (r *emailRepository) Update(_ context.Context, email *entity.Email) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, e := range r.store.emails {
		if e.ID == email.ID {
			r.store.emails[i] = clone(email)

			return nil
		}
	}

	return repository.ErrEmailNotFound
}

func (r *emailRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, e := range r.store.emails {
		if e.ID == id {
			r.store.emails = append(r.store.emails[:i], r.store.emails[i+1:]...)

			return nil
		}
	}

	return repository.ErrEmailNotFound
}
