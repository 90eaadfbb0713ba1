package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/domain/repository"
	"dreamcrm/internal/usecase"

	"github.com/pkg/errors"
)

// agentService implements the AgentUsecase interface.
type agentService struct {
	users  repository.UserRepository
	deals  repository.DealRepository
	logger *slog.Logger
}

// NewAgentService is the constructor for agentService.
func NewAgentService(
	users repository.UserRepository,
	deals repository.DealRepository,
	logger *slog.Logger,
) usecase.AgentUsecase {
	return &agentService{users: users, deals: deals, logger: logger}
}

// Leaderboard ranks Agent-role users by total commission over their
// Closed deals. The sort is stable, so ties keep directory order.
func (srv *agentService) Leaderboard(ctx context.Context) ([]usecase.AgentPerformance, error) {
	agents, err := srv.users.ListByRole(ctx, entity.RoleAgent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agents")
	}

	rows := make([]usecase.AgentPerformance, 0, len(agents))
	for _, agent := range agents {
		closed, err := srv.deals.ListClosedByAgent(ctx, agent.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list closed deals")
		}

		row := usecase.AgentPerformance{
			AgentID:     agent.ID,
			Name:        agent.Name,
			Avatar:      agent.Avatar,
			DealsClosed: len(closed),
		}
		for _, deal := range closed {
			row.SalesVolume += deal.ValueAED
			row.Commission += deal.Commission()
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Commission > rows[j].Commission
	})

	return rows, nil
}

func (srv *agentService) Add(ctx context.Context, input *usecase.AddAgentInput) (*entity.User, error) {
	now := time.Now()
	id := newID("user", now)
	agent := &entity.User{
		ID:        id,
		Name:      input.Name,
		Email:     input.Email,
		Role:      entity.RoleAgent,
		LastLogin: now,
		Avatar:    avatarURL(id),
	}

	if err := srv.users.Create(ctx, agent); err != nil {
		return nil, errors.Wrap(err, "failed to create agent")
	}

	srv.logger.Info("Agent added", "agentID", agent.ID, "name", agent.Name)

	return agent, nil
}
