package memory

import (
	"context"

	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/domain/repository"
)

type callRepository struct {
	store *Store
}

// NewCallRepository creates a call-log repository backed by the in-memory store.
func NewCallRepository(store *Store) repository.CallRepository {
	return &callRepository{store: store}
}

func (r *callRepository) List(_ context.Context) ([]*entity.Call, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	calls := make([]*entity.Call, 0, len(r.store.calls))
	for _, c := range r.store.calls {
		calls = append(calls, clone(c))
	}

	return calls, nil
}

func (r *callRepository) Create(_ context.Context, call *entity.Call) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.calls = append(r.store.calls, clone(call))

	return nil
}
