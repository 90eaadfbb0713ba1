package usecase

import (
	"context"
	"time"
)

// KPIs are the dashboard headline figures. Commission totals only count
// Closed deals.
type KPIs struct {
	TotalPropertiesValue float64 `json:"totalPropertiesValue"`
	PropertiesOnMarket   int     `json:"propertiesOnMarket"`
	ActiveDeals          int     `json:"activeDeals"`
	ClosedDeals          int     `json:"closedDeals"`
	TotalCommissions     float64 `json:"totalCommissions"`
}

// EnumCount is one bucket of a distribution over a closed enum domain.
// Zero-count buckets are always present.
type EnumCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MonthlySales is one point of the dashboard sales trend.
type MonthlySales struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

// CommissionDeal is a closed deal as it appears in an agent's
// commission report.
type CommissionDeal struct {
	DealID         string    `json:"dealId"`
	PropertyTitle  string    `json:"propertyTitle"`
	ValueAED       float64   `json:"valueAED"`
	CommissionRate float64   `json:"commissionRate"`
	Commission     float64   `json:"commission"`
	CloseDate      time.Time `json:"closeDate"`
}

// AgentCommission is one agent's commission report entry with the deals
// that earned it.
type AgentCommission struct {
	AgentPerformance
	Deals []CommissionDeal `json:"deals"`
}

// LeadsFunnel is the lead status distribution plus the conversion rate.
// The rate divides the closed Deal count by the Lead count, so mixed
// populations can push it past 100.
type LeadsFunnel struct {
	Total          int         `json:"total"`
	Counts         []EnumCount `json:"counts"`
	ConversionRate float64     `json:"conversionRate"`
}

// DashboardOutput bundles everything the dashboard renders.
type DashboardOutput struct {
	KPIs             KPIs           `json:"kpis"`
	TypeDistribution []EnumCount    `json:"typeDistribution"`
	MonthlySales     []MonthlySales `json:"monthlySales"`
}

// ReportOutput is the full aggregate report.
type ReportOutput struct {
	KPIs             KPIs               `json:"kpis"`
	TotalProperties  int                `json:"totalProperties"`
	TotalDeals       int                `json:"totalDeals"`
	TotalLeads       int                `json:"totalLeads"`
	StatusBreakdown  []EnumCount        `json:"statusBreakdown"`
	StagePipeline    []EnumCount        `json:"stagePipeline"`
	Funnel           LeadsFunnel        `json:"funnel"`
	AgentPerformance []AgentPerformance `json:"agentPerformance"`
}

// CSVExport is a rendered CSV report ready for download.
type CSVExport struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// CalculateCommissionInput feeds the standalone commission calculator.
// RatePercent is a percentage, e.g. 2 for 2%.
type CalculateCommissionInput struct {
	ValueAED    float64 `json:"valueAED" validate:"gt=0"`
	RatePercent float64 `json:"ratePercent" validate:"gt=0"`
}

// ReportUsecase defines the interface for the aggregation engine. Every
// figure is recomputed from a fresh snapshot per call and zero-valued on
// empty input.
type ReportUsecase interface {
	Dashboard(ctx context.Context) (*DashboardOutput, error)
	Report(ctx context.Context) (*ReportOutput, error)
	CommissionReport(ctx context.Context) ([]AgentCommission, error)
	Funnel(ctx context.Context) (*LeadsFunnel, error)
	MonthlySales(ctx context.Context) []MonthlySales
	ExportCSV(ctx context.Context, now time.Time) (*CSVExport, error)
	CalculateCommission(input *CalculateCommissionInput) float64
}
