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

// callService implements the CallUsecase interface.
type callService struct {
	calls  repository.CallRepository
	users  repository.UserRepository
	logger *slog.Logger
}

// NewCallService is the constructor for callService.
func NewCallService(
	calls repository.CallRepository,
	users repository.UserRepository,
	logger *slog.Logger,
) usecase.CallUsecase {
	return &callService{calls: calls, users: users, logger: logger}
}

// List returns the call log newest first.
func (srv *callService) List(ctx context.Context) ([]usecase.CallView, error) {
	calls, err := srv.calls.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list calls")
	}

	names, err := userNamesByID(ctx, srv.users)
	if err != nil {
		return nil, err
	}

	views := make([]usecase.CallView, 0, len(calls))
	for _, c := range calls {
		views = append(views, usecase.CallView{
			Call:      *c,
			AgentName: names.lookup(c.AgentID),
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].DateTime.After(views[j].DateTime)
	})

	return views, nil
}

func (srv *callService) Log(ctx context.Context, actor *entity.User, input *usecase.LogCallInput) (*entity.Call, error) {
	outcome := entity.CallOutcome(input.Outcome)
	if !outcome.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("unknown call outcome"))
	}

	call := &entity.Call{
		ID:         newID("call", time.Now()),
		ClientName: input.ClientName,
		DateTime:   input.DateTime,
		Outcome:    outcome,
		Notes:      input.Notes,
	}
	if actor != nil {
		call.AgentID = actor.ID
	}

	if err := srv.calls.Create(ctx, call); err != nil {
		return nil, errors.Wrap(err, "failed to log call")
	}

	srv.logger.Info("Call logged", "callID", call.ID, "outcome", call.Outcome)

	return call, nil
}
