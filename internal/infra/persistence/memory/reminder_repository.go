package memory

import (
	"context"

	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/domain/repository"
)

type reminderRepository struct {
	store *Store
}

// NewReminderRepository creates a reminder repository backed by the in-memory store.
func NewReminderRepository(store *Store) repository.ReminderRepository {
	return &reminderRepository{store: store}
}

func (r *reminderRepository) FindByID(_ context.Context, id string) (*entity.Reminder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, rem := range r.store.reminders {
		if rem.ID == id {
			return clone(rem), nil
		}
	}

	return nil, repository.ErrReminderNotFound
}

func (r *reminderRepository) List(_ context.Context) ([]*entity.Reminder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reminders := make([]*entity.Reminder, 0, len(r.store.reminders))
	for _, rem := range r.store.reminders {
		reminders = append(reminders, clone(rem))
	}

	return reminders, nil
}

func (r *reminderRepository) ListByAgent(_ context.Context, agentID string) ([]*entity.Reminder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var reminders []*entity.Reminder
	for _, rem := range r.store.reminders {
		if rem.AgentID == agentID {
			reminders = append(reminders, clone(rem))
		}
	}

	return reminders, nil
}

func (r *reminderRepository) Create(_ context.Context, reminder *entity.Reminder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.reminders = append(r.store.reminders, clone(reminder))

	return nil
}

func (r *reminderRepository) Update(_ context.Context, reminder *entity.Reminder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, rem := range r.store.reminders {
		if rem.ID == reminder.ID {
			r.store.reminders[i] = clone(reminder)

			return nil
		}
	}

	return repository.ErrReminderNotFound
}
