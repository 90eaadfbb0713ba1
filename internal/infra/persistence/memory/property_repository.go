package memory

import (
	"context"
	"strings"

	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/domain/repository"
)

type propertyRepository struct {
	store *Store
}

// NewPropertyRepository creates a property repository backed by the in-memory store.
func NewPropertyRepository(store *Store) repository.PropertyRepository {
	return &propertyRepository{store: store}
}

func (r *propertyRepository) FindByID(_ context.Context, id string) (*entity.Property, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.properties {
		if p.ID == id {
			return clone(p), nil
		}
	}

	return nil, repository.ErrPropertyNotFound
}

func (r *propertyRepository) List(_ context.Context, filter repository.PropertyFilter) ([]*entity.Property, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	properties := make([]*entity.Property, 0, len(r.store.properties))
	for _, p := range r.store.properties {
		if !matchesFilter(p, filter) {
			continue
		}
		properties = append(properties, clone(p))
	}

	return properties, nil
}

func (r *propertyRepository) Create(_ context.Context, property *entity.Property) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.properties = append(r.store.properties, clone(property))

	return nil
}

func matchesFilter(p *entity.Property, filter repository.PropertyFilter) bool {
	if filter.Type != "" && p.Type != filter.Type {
		return false
	}
	if filter.Status != "" && p.Status != filter.Status {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Location), needle) {
			return false
		}
	}

	return true
}
