package memory

import (
	"context"

	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/domain/repository"
)

type dealRepository struct {
	store *Store
}

// NewDealRepository creates a deal repository backed by the in-memory store.
func NewDealRepository(store *Store) repository.DealRepository {
	return &dealRepository{store: store}
}

func (r *dealRepository) FindByID(_ context.Context, id string) (*entity.Deal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, d := range r.store.deals {
		if d.ID == id {
			return clone(d), nil
		}
	}

	return nil, repository.ErrDealNotFound
}

func (r *dealRepository) List(_ context.Context) ([]*entity.Deal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	deals := make([]*entity.Deal, 0, len(r.store.deals))
	for _, d := range r.store.deals {
		deals = append(deals, clone(d))
	}

	return deals, nil
}

func (r *dealRepository) ListByStage(_ context.Context, stage entity.DealStage) ([]*entity.Deal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var deals []*entity.Deal
	for _, d := range r.store.deals {
		if d.Stage == stage {
			deals = append(deals, clone(d))
		}
	}

	return deals, nil
}

func (r *dealRepository) ListClosedByAgent(_ context.Context, agentID string) ([]*entity.Deal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var deals []*entity.Deal
	for _, d := range r.store.deals {
		if d.AgentID == agentID && d.Stage == entity.DealClosed {
			deals = append(deals, clone(d))
		}
	}

	return deals, nil
}
