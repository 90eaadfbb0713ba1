// Package memory implements the entity store as flat in-memory collections.
// The dataset is seeded once at startup; foreign keys between collections
// are advisory and never enforced here.
package memory

import (
	"sync"

	"dreamcrm/internal/domain/entity"
)

// Dataset is the seed content of the store.
type Dataset struct {
	Users      []*entity.User
	Properties []*entity.Property
	Deals      []*entity.Deal
	Leads      []*entity.Lead
	Documents  []*entity.Document
	Reminders  []*entity.Reminder
	Calls      []*entity.Call
	Emails     []*entity.Email
}

// Store owns every collection exclusively; reads hand out copies so callers
// cannot alias stored entities. The system has one logical actor, but the
// HTTP surface is concurrent, so a mutex guards the slices anyway.
type Store struct {
	mu         sync.RWMutex
	users      []*entity.User
	properties []*entity.Property
	deals      []*entity.Deal
	leads      []*entity.Lead
	documents  []*entity.Document
	reminders  []*entity.Reminder
	calls      []*entity.Call
	emails     []*entity.Email
}

// NewStore creates a store seeded with the given dataset.
func NewStore(seed Dataset) *Store {
	return &Store{
		users:      seed.Users,
		properties: seed.Properties,
		deals:      seed.Deals,
		leads:      seed.Leads,
		documents:  seed.Documents,
		reminders:  seed.Reminders,
		calls:      seed.Calls,
		emails:     seed.Emails,
	}
}

// NewSeededStore creates a store loaded with the built-in fixture dataset.
func NewSeededStore() *Store {
	return NewStore(Fixture())
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}
