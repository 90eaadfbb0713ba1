package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"dreamcrm/internal/domain/entity"
	domainerrors "dreamcrm/internal/domain/errors"
	"dreamcrm/internal/domain/repository"
	"dreamcrm/internal/usecase"

	"github.com/pkg/errors"
)

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	reminders repository.ReminderRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(reminders repository.ReminderRepository, logger *slog.Logger) usecase.ReminderUsecase {
	return &reminderService{reminders: reminders, logger: logger, now: time.Now}
}

// visible returns the reminders the actor may see: everything for
// admins, otherwise only the actor's own.
func (srv *reminderService) visible(ctx context.Context, actor *entity.User) ([]*entity.Reminder, error) {
	if actor != nil && actor.Role == entity.RoleAdmin {
		reminders, err := srv.reminders.List(ctx)

		return reminders, errors.Wrap(err, "failed to list reminders")
	}

	agentID := ""
	if actor != nil {
		agentID = actor.ID
	}

	reminders, err := srv.reminders.ListByAgent(ctx, agentID)

	return reminders, errors.Wrap(err, "failed to list reminders")
}

func (srv *reminderService) List(ctx context.Context, actor *entity.User) ([]usecase.ReminderView, error) {
	reminders, err := srv.visible(ctx, actor)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		if reminders[i].IsCompleted != reminders[j].IsCompleted {
			return !reminders[i].IsCompleted
		}

		return reminders[i].DueDate.Before(reminders[j].DueDate)
	})

	return srv.views(reminders), nil
}

// Upcoming keeps only incomplete reminders, due date ascending.
func (srv *reminderService) Upcoming(ctx context.Context, actor *entity.User) ([]usecase.ReminderView, error) {
	reminders, err := srv.visible(ctx, actor)
	if err != nil {
		return nil, err
	}

	upcoming := make([]*entity.Reminder, 0, len(reminders))
	for _, r := range reminders {
		if !r.IsCompleted {
			upcoming = append(upcoming, r)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})

	return srv.views(upcoming), nil
}

// ToggleComplete flips the completion flag. Toggling twice restores the
// original state.
func (srv *reminderService) ToggleComplete(ctx context.Context, actor *entity.User, id string) (*entity.Reminder, error) {
	reminder, err := srv.reminders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNotFound)
		}

		return nil, errors.Wrap(err, "failed to find reminder")
	}

	if actor != nil && actor.Role != entity.RoleAdmin && reminder.AgentID != actor.ID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	reminder.IsCompleted = !reminder.IsCompleted
	if err := srv.reminders.Update(ctx, reminder); err != nil {
		return nil, errors.Wrap(err, "failed to update reminder")
	}

	return reminder, nil
}

func (srv *reminderService) Add(ctx context.Context, actor *entity.User, input *usecase.AddReminderInput) (*entity.Reminder, error) {
	now := srv.now()
	reminder := &entity.Reminder{
		ID:      newID("rem", now),
		Title:   input.Title,
		DueDate: input.DueDate,
	}
	if actor != nil {
		reminder.AgentID = actor.ID
	}

	if err := srv.reminders.Create(ctx, reminder); err != nil {
		return nil, errors.Wrap(err, "failed to create reminder")
	}

	srv.logger.Info("Reminder added", "reminderID", reminder.ID)

	return reminder, nil
}

func (srv *reminderService) views(reminders []*entity.Reminder) []usecase.ReminderView {
	now := srv.now()
	views := make([]usecase.ReminderView, 0, len(reminders))
	for _, r := range reminders {
		views = append(views, usecase.ReminderView{
			Reminder: *r,
			Overdue:  r.IsOverdue(now),
		})
	}

	return views
}
