package usecase

import (
	"context"

	"dreamcrm/internal/domain/entity"
)

// CreateLeadInput defines the data required to capture a new lead.
type CreateLeadInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Source  string `json:"source" validate:"required"`
	Status  string `json:"status"`
	AgentID string `json:"agentId"`
}

// LeadView is a lead enriched with its assigned agent's name.
type LeadView struct {
	entity.Lead
	AgentName string `json:"agentName"`
}

// LeadUsecase defines the interface for lead operations.
type LeadUsecase interface {
	List(ctx context.Context) ([]LeadView, error)
	Create(ctx context.Context, input *CreateLeadInput) (*entity.Lead, error)
}
