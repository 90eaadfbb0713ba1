package memory

import (
	"context"

	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/domain/repository"
)

type documentRepository struct {
	store *Store
}

// NewDocumentRepository creates a document repository backed by the in-memory store.
func NewDocumentRepository(store *Store) repository.DocumentRepository {
	return &documentRepository{store: store}
}

func (r *documentRepository) List(_ context.Context) ([]*entity.Document, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	documents := make([]*entity.Document, 0, len(r.store.documents))
	for _, d := range r.store.documents {
		documents = append(documents, clone(d))
	}

	return documents, nil
}

func (r *documentRepository) Create(_ context.Context, document *entity.Document) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.documents = append(r.store.documents, clone(document))

	return nil
}

func (r *documentRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, d := range r.store.documents {
		if d.ID == id {
			r.store.documents = append(r.store.documents[:i], r.store.documents[i+1:]...)

			return nil
		}
	}

	return repository.ErrDocumentNotFound
}
