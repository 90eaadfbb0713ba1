package usecase

import (
	"context"

	"dreamcrm/internal/domain/entity"
)

// AddAgentInput defines the data required to add an agent. The new user
// gets the Agent role, a generated id and a generated avatar.
type AddAgentInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// AgentPerformance is one leaderboard row: closed-deal totals for a
// single Agent-role user.
type AgentPerformance struct {
	AgentID     string  `json:"agentId"`
	Name        string  `json:"name"`
	Avatar      string  `json:"avatar"`
	DealsClosed int     `json:"dealsClosed"`
	SalesVolume float64 `json:"salesVolume"`
	Commission  float64 `json:"commission"`
}

// AgentUsecase defines the interface for agent operations.
type AgentUsecase interface {
	// Leaderboard ranks Agent-role users by total commission, descending.
	// Ties keep directory order.
	Leaderboard(ctx context.Context) ([]AgentPerformance, error)
	Add(ctx context.Context, input *AddAgentInput) (*entity.User, error)
}
