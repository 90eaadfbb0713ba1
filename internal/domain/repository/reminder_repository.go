package repository

import (
	"context"
	"errors"

	"dreamcrm/internal/domain/entity"
)

// ErrReminderNotFound is returned when a reminder is not found.
var ErrReminderNotFound = errors.New("reminder not found")

// ReminderRepository defines the standard operations for reminder persistence.
type ReminderRepository interface {
	// FindByID retrieves a single reminder by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Reminder, error)

	// List retrieves all reminders in insertion order.
	List(ctx context.Context) ([]*entity.Reminder, error)

	// ListByAgent retrieves the agent's reminders, in insertion order.
	ListByAgent(ctx context.Context, agentID string) ([]*entity.Reminder, error)

	// Create persists a new reminder.
	Create(ctx context.Context, reminder *entity.Reminder) error

	// Update modifies an existing reminder.
	Update(ctx context.Context, reminder *entity.Reminder) error
}
