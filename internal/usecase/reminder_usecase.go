package usecase

import (
	"context"
	"time"

	"dreamcrm/internal/domain/entity"
)

// AddReminderInput defines the data required to create a reminder.
type AddReminderInput struct {
	Title   string    `json:"title" validate:"required"`
	DueDate time.Time `json:"dueDate" validate:"required"`
}

// ReminderView is a reminder flagged with its overdue state at read time.
type ReminderView struct {
	entity.Reminder
	Overdue bool `json:"overdue"`
}

// ReminderUsecase defines the interface for reminders.
//
// Admins see every reminder; everyone else only their own.
type ReminderUsecase interface {
	// List returns the actor's visible reminders sorted by due date
	// ascending, incomplete first.
	List(ctx context.Context, actor *entity.User) ([]ReminderView, error)
	// Upcoming returns the incomplete visible reminders, due date ascending.
	Upcoming(ctx context.Context, actor *entity.User) ([]ReminderView, error)
	// ToggleComplete flips completion. Toggling twice restores the
	// original state.
	ToggleComplete(ctx context.Context, actor *entity.User, id string) (*entity.Reminder, error)
	Add(ctx context.Context, actor *entity.User, input *AddReminderInput) (*entity.Reminder, error)
}
