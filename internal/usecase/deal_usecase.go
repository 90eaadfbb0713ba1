package usecase

import (
	"context"
	"time"
)

// DealView is a deal enriched with the property and agent it references.
// Dangling references degrade to "N/A" instead of erroring.
type DealView struct {
	ID             string    `json:"id"`
	PropertyTitle  string    `json:"propertyTitle"`
	AgentName      string    `json:"agentName"`
	ClientID       string    `json:"clientId"`
	Stage          string    `json:"stage"`
	ValueAED       float64   `json:"valueAED"`
	CommissionRate float64   `json:"commissionRate"`
	Commission     float64   `json:"commission"`
	CloseDate      time.Time `json:"closeDate"`
}

// DealStageGroup is the pipeline column for one stage, in enum order.
type DealStageGroup struct {
	Stage string     `json:"stage"`
	Deals []DealView `json:"deals"`
}

// DealUsecase defines the interface for deal operations.
type DealUsecase interface {
	List(ctx context.Context) ([]DealView, error)
	// Pipeline groups every deal by stage over the full enum domain, so
	// empty stages still appear.
	Pipeline(ctx context.Context) ([]DealStageGroup, error)
}
