package impl

import (
	"context"

	"dreamcrm/internal/domain/repository"

	"github.com/pkg/errors"
)

// nameIndex maps entity ids to display names for listing enrichment.
type nameIndex map[string]string

// lookup degrades dangling references to "N/A" instead of erroring.
func (idx nameIndex) lookup(id string) string {
	if name, ok := idx[id]; ok {
		return name
	}

	return "N/A"
}

func userNamesByID(ctx context.Context, users repository.UserRepository) (nameIndex, error) {
	all, err := users.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to index users")
	}

	idx := make(nameIndex, len(all))
	for _, u := range all {
		idx[u.ID] = u.Name
	}

	return idx, nil
}

func propertyTitlesByID(ctx context.Context, properties repository.PropertyRepository) (nameIndex, error) {
	all, err := properties.List(ctx, repository.PropertyFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to index properties")
	}

	idx := make(nameIndex, len(all))
	for _, p := range all {
		idx[p.ID] = p.Title
	}

	return idx, nil
}
