package impl

import (
	"context"
	"testing"
	"time"

	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/infra/persistence/memory"
	"dreamcrm/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportFixture() usecase.ReportUsecase {
	store := memory.NewSeededStore()

	return NewReportService(
		memory.NewPropertyRepository(store),
		memory.NewDealRepository(store),
		memory.NewLeadRepository(store),
		memory.NewUserRepository(store),
		testLogger(),
	)
}

func TestReportService_Dashboard_KPIs(t *testing.T) {
	svc := newReportFixture()

	out, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, 45300000, out.KPIs.TotalPropertiesValue, 0.01)
	assert.Equal(t, 5, out.KPIs.PropertiesOnMarket)
	assert.Equal(t, 2, out.KPIs.ActiveDeals)
	assert.Equal(t, 3, out.KPIs.ClosedDeals)
	assert.InDelta(t, 396000, out.KPIs.TotalCommissions, 0.01)
}

func TestReportService_Dashboard_TypeDistributionKeepsZeroBuckets(t *testing.T) {
	svc := newReportFixture()

	out, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	require.Len(t, out.TypeDistribution, 4)
	assert.Equal(t, usecase.EnumCount{Name: "Apartment", Count: 2}, out.TypeDistribution[0])
	assert.Equal(t, usecase.EnumCount{Name: "Villa", Count: 2}, out.TypeDistribution[1])
	assert.Equal(t, usecase.EnumCount{Name: "Commercial", Count: 1}, out.TypeDistribution[2])
	assert.Equal(t, usecase.EnumCount{Name: "Land", Count: 0}, out.TypeDistribution[3])
}

func TestReportService_MonthlySales_FixedSeries(t *testing.T) {
	svc := newReportFixture()

	series := svc.MonthlySales(context.Background())

	require.Len(t, series, 7)
	assert.Equal(t, usecase.MonthlySales{Month: "Jan", Sales: 4000000}, series[0])
	assert.Equal(t, usecase.MonthlySales{Month: "Jun", Sales: 12000000}, series[5])
	assert.Equal(t, usecase.MonthlySales{Month: "Jul", Sales: 8000000}, series[6])
}

func TestReportService_Report_Aggregates(t *testing.T) {
	svc := newReportFixture()

	out, err := svc.Report(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, out.TotalProperties)
	assert.Equal(t, 5, out.TotalDeals)
	assert.Equal(t, 4, out.TotalLeads)

	require.Len(t, out.StatusBreakdown, 3)
	assert.Equal(t, usecase.EnumCount{Name: "Available", Count: 3}, out.StatusBreakdown[0])
	assert.Equal(t, usecase.EnumCount{Name: "Sold", Count: 1}, out.StatusBreakdown[1])
	assert.Equal(t, usecase.EnumCount{Name: "Rented", Count: 1}, out.StatusBreakdown[2])

	require.Len(t, out.StagePipeline, 4)
	assert.Equal(t, usecase.EnumCount{Name: "Closed", Count: 3}, out.StagePipeline[2])
	assert.Equal(t, usecase.EnumCount{Name: "Lost", Count: 0}, out.StagePipeline[3])
}

// The conversion rate divides closed deal count by lead count: three
// closed deals over four leads is 75 percent.
func TestReportService_Funnel_ConversionRate(t *testing.T) {
	svc := newReportFixture()

	funnel, err := svc.Funnel(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, funnel.Total)
	assert.InDelta(t, 75.0, funnel.ConversionRate, 0.001)

	require.Len(t, funnel.Counts, 4)
	for _, bucket := range funnel.Counts {
		assert.Equal(t, 1, bucket.Count, "status %s", bucket.Name)
	}
}

func TestReportService_Funnel_TwoClosedOverFourLeads(t *testing.T) {
	store := memory.NewStore(memory.Dataset{
		Deals: []*entity.Deal{
			{ID: "deal-a", Stage: entity.DealClosed, ValueAED: 1000000, CommissionRate: 0.02},
			{ID: "deal-b", Stage: entity.DealClosed, ValueAED: 2000000, CommissionRate: 0.02},
			{ID: "deal-c", Stage: entity.DealOffer, ValueAED: 3000000, CommissionRate: 0.02},
		},
		Leads: []*entity.Lead{
			{ID: "lead-a", Status: entity.LeadNew},
			{ID: "lead-b", Status: entity.LeadContacted},
			{ID: "lead-c", Status: entity.LeadQualified},
			{ID: "lead-d", Status: entity.LeadLost},
		},
	})
	svc := NewReportService(
		memory.NewPropertyRepository(store),
		memory.NewDealRepository(store),
		memory.NewLeadRepository(store),
		memory.NewUserRepository(store),
		testLogger(),
	)

	funnel, err := svc.Funnel(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, 50.0, funnel.ConversionRate, 0.001)
}

func TestReportService_Funnel_NoLeads(t *testing.T) {
	store := memory.NewStore(memory.Dataset{})
	svc := NewReportService(
		memory.NewPropertyRepository(store),
		memory.NewDealRepository(store),
		memory.NewLeadRepository(store),
		memory.NewUserRepository(store),
		testLogger(),
	)

	funnel, err := svc.Funnel(context.Background())

	require.NoError(t, err)
	assert.Zero(t, funnel.Total)
	assert.Zero(t, funnel.ConversionRate)
}

func TestReportService_Report_AgentPerformanceRankedByCommission(t *testing.T) {
	svc := newReportFixture()

	out, err := svc.Report(context.Background())

	require.NoError(t, err)
	require.Len(t, out.AgentPerformance, 2)

	top := out.AgentPerformance[0]
	assert.Equal(t, "Agent Fatima", top.Name)
	assert.Equal(t, 2, top.DealsClosed)
	assert.InDelta(t, 14800000, top.SalesVolume, 0.01)
	assert.InDelta(t, 296000, top.Commission, 0.01)

	second := out.AgentPerformance[1]
	assert.Equal(t, "Agent Ahmed", second.Name)
	assert.Equal(t, 1, second.DealsClosed)
	assert.InDelta(t, 100000, second.Commission, 0.01)
}

func TestReportService_CommissionReport_ListsClosedDeals(t *testing.T) {
	svc := newReportFixture()

	rows, err := svc.CommissionReport(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Len(t, rows[0].Deals, 2)
	assert.Equal(t, "Spacious Downtown Villa", rows[0].Deals[0].PropertyTitle)
	assert.InDelta(t, 240000, rows[0].Deals[0].Commission, 0.01)

	require.Len(t, rows[1].Deals, 1)
	assert.Equal(t, "Modern JLT Office Space", rows[1].Deals[0].PropertyTitle)
}

func TestReportService_CalculateCommission(t *testing.T) {
	svc := newReportFixture()

	tests := []struct {
		name  string
		input *usecase.CalculateCommissionInput
		want  float64
	}{
		{name: "two percent of a million", input: &usecase.CalculateCommissionInput{ValueAED: 1000000, RatePercent: 2}, want: 20000},
		{name: "fractional rate", input: &usecase.CalculateCommissionInput{ValueAED: 25000000, RatePercent: 1.5}, want: 375000},
		{name: "zero value", input: &usecase.CalculateCommissionInput{ValueAED: 0, RatePercent: 2}, want: 0},
		{name: "negative rate", input: &usecase.CalculateCommissionInput{ValueAED: 1000000, RatePercent: -1}, want: 0},
		{name: "nil input", input: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, svc.CalculateCommission(tt.input), 0.001)
		})
	}
}

func TestReportService_ExportCSV(t *testing.T) {
	svc := newReportFixture()
	now := time.Date(2024, 8, 1, 10, 30, 0, 0, time.UTC)

	export, err := svc.ExportCSV(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, "dream_crm_report_2024-08-01.csv", export.Filename)

	assert.Contains(t, export.Content, "Dream CRM - Full Report\n")
	assert.Contains(t, export.Content, "Generated on,2024-08-01 10:30:00\n")
	assert.Contains(t, export.Content, "Total Commission (AED),396,000\n")
	assert.Contains(t, export.Content, "Property Status Breakdown\nStatus,Count\nAvailable,3\n")
	assert.Contains(t, export.Content, "Conversion Rate (%),75.00\n")
	assert.Contains(t, export.Content, "Agent Name,Deals Closed,Sales Volume (AED),Commission Earned (AED)\n")
	assert.Contains(t, export.Content, "Agent Fatima,2,14,800,000,296,000\n")
	assert.Contains(t, export.Content, "Agent Ahmed,1,2,000,000,100,000\n")
}
