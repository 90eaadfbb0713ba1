package memory

import (
	"context"

	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/domain/repository"
)

type leadRepository struct {
	store *Store
}

// NewLeadRepository creates a lead repository backed by the in-memory store.
func NewLeadRepository(store *Store) repository.LeadRepository {
	return &leadRepository{store: store}
}

func (r *leadRepository) FindByID(_ context.Context, id string) (*entity.Lead, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, l := range r.store.leads {
		if l.ID == id {
			return clone(l), nil
		}
	}

	return nil, repository.ErrLeadNotFound
}

func (r *leadRepository) List(_ context.Context) ([]*entity.Lead, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	leads := make([]*entity.Lead, 0, len(r.store.leads))
	for _, l := range r.store.leads {
		leads = append(leads, clone(l))
	}

	return leads, nil
}

func (r *leadRepository) Create(_ context.Context, lead *entity.Lead) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.leads = append(r.store.leads, clone(lead))

	return nil
}
