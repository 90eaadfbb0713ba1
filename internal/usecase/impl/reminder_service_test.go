package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"dreamcrm/internal/domain/entity"
	domainerrors "dreamcrm/internal/domain/errors"
	"dreamcrm/internal/infra/persistence/memory"
	"dreamcrm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	reminderAdmin  = &entity.User{ID: "user-1", Role: entity.RoleAdmin}
	reminderAhmed  = &entity.User{ID: "user-2", Role: entity.RoleAgent}
	reminderFatima = &entity.User{ID: "user-3", Role: entity.RoleAgent}
)

func newReminderFixture() *reminderService {
	svc := NewReminderService(memory.NewReminderRepository(memory.NewSeededStore()), testLogger())
	rem := svc.(*reminderService)
	rem.now = func() time.Time {
		return time.Date(2024, 7, 29, 12, 0, 0, 0, time.UTC)
	}

	return rem
}

func TestReminderService_List_AdminSeesAll(t *testing.T) {
	svc := newReminderFixture()

	views, err := svc.List(context.Background(), reminderAdmin)

	require.NoError(t, err)
	require.Len(t, views, 5)

	// Incomplete first, due date ascending; the completed one sinks to
	// the bottom.
	assert.Equal(t, "rem-5", views[0].ID)
	assert.Equal(t, "rem-2", views[1].ID)
	assert.Equal(t, "rem-1", views[2].ID)
	assert.Equal(t, "rem-4", views[3].ID)
	assert.Equal(t, "rem-3", views[4].ID)
	assert.True(t, views[4].IsCompleted)
}

func TestReminderService_List_AgentSeesOwnOnly(t *testing.T) {
	svc := newReminderFixture()

	views, err := svc.List(context.Background(), reminderAhmed)

	require.NoError(t, err)
	require.Len(t, views, 3)
	for _, v := range views {
		assert.Equal(t, "user-2", v.AgentID)
	}
}

func TestReminderService_List_OverdueFlag(t *testing.T) {
	svc := newReminderFixture()

	views, err := svc.List(context.Background(), reminderAdmin)

	require.NoError(t, err)

	overdue := make(map[string]bool)
	for _, v := range views {
		overdue[v.ID] = v.Overdue
	}

	assert.True(t, overdue["rem-5"], "due yesterday, still open")
	assert.True(t, overdue["rem-2"], "due this morning, still open")
	assert.False(t, overdue["rem-1"], "due tomorrow")
	assert.False(t, overdue["rem-3"], "past due but completed")
}

func TestReminderService_Upcoming_IncompleteOnly(t *testing.T) {
	svc := newReminderFixture()

	views, err := svc.Upcoming(context.Background(), reminderAdmin)

	require.NoError(t, err)
	require.Len(t, views, 4)
	for i, v := range views {
		assert.False(t, v.IsCompleted)
		if i > 0 {
			assert.False(t, v.DueDate.Before(views[i-1].DueDate))
		}
	}
}

func TestReminderService_ToggleComplete_RoundTrip(t *testing.T) {
	svc := newReminderFixture()
	ctx := context.Background()

	toggled, err := svc.ToggleComplete(ctx, reminderFatima, "rem-1")
	require.NoError(t, err)
	assert.True(t, toggled.IsCompleted)

	toggled, err = svc.ToggleComplete(ctx, reminderFatima, "rem-1")
	require.NoError(t, err)
	assert.False(t, toggled.IsCompleted)
}

func TestReminderService_ToggleComplete_OtherAgentForbidden(t *testing.T) {
	svc := newReminderFixture()

	_, err := svc.ToggleComplete(context.Background(), reminderAhmed, "rem-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReminderService_ToggleComplete_AdminMayToggleAny(t *testing.T) {
	svc := newReminderFixture()

	toggled, err := svc.ToggleComplete(context.Background(), reminderAdmin, "rem-1")

	require.NoError(t, err)
	assert.True(t, toggled.IsCompleted)
}

func TestReminderService_ToggleComplete_NotFound(t *testing.T) {
	svc := newReminderFixture()

	_, err := svc.ToggleComplete(context.Background(), reminderAdmin, "rem-999")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestReminderService_Add(t *testing.T) {
	svc := newReminderFixture()
	ctx := context.Background()

	due := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)
	created, err := svc.Add(ctx, reminderAhmed, &usecase.AddReminderInput{Title: "Send contract draft", DueDate: due})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "rem-"))
	assert.Equal(t, "user-2", created.AgentID)
	assert.False(t, created.IsCompleted)

	views, err := svc.List(ctx, reminderAhmed)
	require.NoError(t, err)
	assert.Len(t, views, 4)
}
