package impl

import (
	"context"
	"log/slog"

	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/domain/repository"
	"dreamcrm/internal/usecase"

	"github.com/pkg/errors"
)

// dealService implements the DealUsecase interface.
type dealService struct {
	deals      repository.DealRepository
	properties repository.PropertyRepository
	users      repository.UserRepository
	logger     *slog.Logger
}

// NewDealService is the constructor for dealService.
func NewDealService(
	deals repository.DealRepository,
	properties repository.PropertyRepository,
	users repository.UserRepository,
	logger *slog.Logger,
) usecase.DealUsecase {
	return &dealService{deals: deals, properties: properties, users: users, logger: logger}
}

func (srv *dealService) List(ctx context.Context) ([]usecase.DealView, error) {
	deals, err := srv.deals.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deals")
	}

	return srv.enrich(ctx, deals)
}

// Pipeline groups deals by stage over the full enum domain so empty
// stages still appear as columns.
func (srv *dealService) Pipeline(ctx context.Context) ([]usecase.DealStageGroup, error) {
	deals, err := srv.deals.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deals")
	}

	views, err := srv.enrich(ctx, deals)
	if err != nil {
		return nil, err
	}

	byStage := make(map[string][]usecase.DealView)
	for _, v := range views {
		byStage[v.Stage] = append(byStage[v.Stage], v)
	}

	groups := make([]usecase.DealStageGroup, 0, len(entity.DealStages()))
	for _, stage := range entity.DealStages() {
		group := usecase.DealStageGroup{Stage: string(stage), Deals: byStage[string(stage)]}
		if group.Deals == nil {
			group.Deals = []usecase.DealView{}
		}
		groups = append(groups, group)
	}

	return groups, nil
}

func (srv *dealService) enrich(ctx context.Context, deals []*entity.Deal) ([]usecase.DealView, error) {
	titles, err := propertyTitlesByID(ctx, srv.properties)
	if err != nil {
		return nil, err
	}

	names, err := userNamesByID(ctx, srv.users)
	if err != nil {
		return nil, err
	}

	views := make([]usecase.DealView, 0, len(deals))
	for _, d := range deals {
		views = append(views, usecase.DealView{
			ID:             d.ID,
			PropertyTitle:  titles.lookup(d.PropertyID),
			AgentName:      names.lookup(d.AgentID),
			ClientID:       d.ClientID,
			Stage:          string(d.Stage),
			ValueAED:       d.ValueAED,
			CommissionRate: d.CommissionRate,
			Commission:     d.Commission(),
			CloseDate:      d.CloseDate,
		})
	}

	return views, nil
}
