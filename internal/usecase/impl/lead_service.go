package impl

import (
	"context"
	"log/slog"
	"time"

	"dreamcrm/internal/domain/entity"
	domainerrors "dreamcrm/internal/domain/errors"
	"dreamcrm/internal/domain/repository"
	"dreamcrm/internal/usecase"

	"github.com/pkg/errors"
)

// leadService implements the LeadUsecase interface.
type leadService struct {
	leads  repository.LeadRepository
	users  repository.UserRepository
	logger *slog.Logger
}

// NewLeadService is the constructor for leadService.
func NewLeadService(
	leads repository.LeadRepository,
	users repository.UserRepository,
	logger *slog.Logger,
) usecase.LeadUsecase {
	return &leadService{leads: leads, users: users, logger: logger}
}

func (srv *leadService) List(ctx context.Context) ([]usecase.LeadView, error) {
	leads, err := srv.leads.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	names, err := userNamesByID(ctx, srv.users)
	if err != nil {
		return nil, err
	}

	views := make([]usecase.LeadView, 0, len(leads))
	for _, lead := range leads {
		views = append(views, usecase.LeadView{
			Lead:      *lead,
			AgentName: names.lookup(lead.AgentID),
		})
	}

	return views, nil
}

func (srv *leadService) Create(ctx context.Context, input *usecase.CreateLeadInput) (*entity.Lead, error) {
	status := entity.LeadStatus(input.Status)
	if input.Status == "" {
		status = entity.LeadNew
	}
	if !status.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("unknown lead status"))
	}

	now := time.Now()
	lead := &entity.Lead{
		ID:        newID("lead", now),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Source:    input.Source,
		Status:    status,
		AgentID:   input.AgentID,
		CreatedAt: now,
	}

	if err := srv.leads.Create(ctx, lead); err != nil {
		return nil, errors.Wrap(err, "failed to create lead")
	}

	srv.logger.Info("Lead captured", "leadID", lead.ID, "source", lead.Source)

	return lead, nil
}
