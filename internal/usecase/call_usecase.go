package usecase

import (
	"context"
	"time"

	"dreamcrm/internal/domain/entity"
)

// LogCallInput defines the data recorded when logging a call.
type LogCallInput struct {
	ClientName string    `json:"clientName" validate:"required"`
	DateTime   time.Time `json:"dateTime" validate:"required"`
	Outcome    string    `json:"outcome" validate:"required"`
	Notes      string    `json:"notes"`
}

// CallView is a call log entry enriched with the agent's name.
type CallView struct {
	entity.Call
	AgentName string `json:"agentName"`
}

// CallUsecase defines the interface for the call log.
type CallUsecase interface {
	// List returns the call log sorted by dateTime descending.
	List(ctx context.Context) ([]CallView, error)
	Log(ctx context.Context, actor *entity.User, input *LogCallInput) (*entity.Call, error)
}
