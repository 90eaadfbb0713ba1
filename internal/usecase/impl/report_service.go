package impl

import (
	"context"
	"log/slog"
	"sort"

	"dreamcrm/internal/domain/entity"
	"dreamcrm/internal/domain/repository"
	"dreamcrm/internal/usecase"

	"github.com/pkg/errors"
)

// monthlySalesSeries is the fixed trend the dashboard chart renders.
var monthlySalesSeries = []usecase.MonthlySales{
	{Month: "Jan", Sales: 4000000}, {Month: "Feb", Sales: 3000000},
	{Month: "Mar", Sales: 5000000}, {Month: "Apr", Sales: 4500000},
	{Month: "May", Sales: 6000000}, {Month: "Jun", Sales: 12000000},
	{Month: "Jul", Sales: 8000000},
}

// reportService implements the ReportUsecase interface. Every figure is
// a pure fold over a fresh snapshot; nothing is cached.
type reportService struct {
	properties repository.PropertyRepository
	deals      repository.DealRepository
	leads      repository.LeadRepository
	users      repository.UserRepository
	logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(
	properties repository.PropertyRepository,
	deals repository.DealRepository,
	leads repository.LeadRepository,
	users repository.UserRepository,
	logger *slog.Logger,
) usecase.ReportUsecase {
	return &reportService{
		properties: properties,
		deals:      deals,
		leads:      leads,
		users:      users,
		logger:     logger,
	}
}

func (srv *reportService) Dashboard(ctx context.Context) (*usecase.DashboardOutput, error) {
	properties, err := srv.properties.List(ctx, repository.PropertyFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	deals, err := srv.deals.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deals")
	}

	return &usecase.DashboardOutput{
		KPIs:             computeKPIs(properties, deals),
		TypeDistribution: typeDistribution(properties),
		MonthlySales:     srv.MonthlySales(ctx),
	}, nil
}

func (srv *reportService) Report(ctx context.Context) (*usecase.ReportOutput, error) {
	properties, err := srv.properties.List(ctx, repository.PropertyFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	deals, err := srv.deals.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deals")
	}

	leads, err := srv.leads.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	performance, err := srv.agentPerformance(ctx, deals)
	if err != nil {
		return nil, err
	}

	return &usecase.ReportOutput{
		KPIs:             computeKPIs(properties, deals),
		TotalProperties:  len(properties),
		TotalDeals:       len(deals),
		TotalLeads:       len(leads),
		StatusBreakdown:  statusBreakdown(properties),
		StagePipeline:    stagePipeline(deals),
		Funnel:           computeFunnel(leads, deals),
		AgentPerformance: performance,
	}, nil
}

// CommissionReport is the leaderboard plus the closed deals that earned
// each total, property titles enriched.
func (srv *reportService) CommissionReport(ctx context.Context) ([]usecase.AgentCommission, error) {
	deals, err := srv.deals.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deals")
	}

	performance, err := srv.agentPerformance(ctx, deals)
	if err != nil {
		return nil, err
	}

	titles, err := propertyTitlesByID(ctx, srv.properties)
	if err != nil {
		return nil, err
	}

	closedByAgent := make(map[string][]usecase.CommissionDeal)
	for _, d := range deals {
		if d.Stage != entity.DealClosed {
			continue
		}
		closedByAgent[d.AgentID] = append(closedByAgent[d.AgentID], usecase.CommissionDeal{
			DealID:         d.ID,
			PropertyTitle:  titles.lookup(d.PropertyID),
			ValueAED:       d.ValueAED,
			CommissionRate: d.CommissionRate,
			Commission:     d.Commission(),
			CloseDate:      d.CloseDate,
		})
	}

	report := make([]usecase.AgentCommission, 0, len(performance))
	for _, row := range performance {
		entry := usecase.AgentCommission{AgentPerformance: row, Deals: closedByAgent[row.AgentID]}
		if entry.Deals == nil {
			entry.Deals = []usecase.CommissionDeal{}
		}
		report = append(report, entry)
	}

	return report, nil
}

func (srv *reportService) Funnel(ctx context.Context) (*usecase.LeadsFunnel, error) {
	leads, err := srv.leads.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	deals, err := srv.deals.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deals")
	}

	funnel := computeFunnel(leads, deals)

	return &funnel, nil
}

func (srv *reportService) MonthlySales(_ context.Context) []usecase.MonthlySales {
	series := make([]usecase.MonthlySales, len(monthlySalesSeries))
	copy(series, monthlySalesSeries)

	return series
}

// CalculateCommission evaluates the standalone calculator:
// value x rate% / 100.
func (srv *reportService) CalculateCommission(input *usecase.CalculateCommissionInput) float64 {
	if input == nil || input.ValueAED <= 0 || input.RatePercent <= 0 {
		return 0
	}

	return input.ValueAED * input.RatePercent / 100
}

// agentPerformance folds Closed deals per Agent-role user, sorted by
// commission descending. The sort is stable, so ties keep directory order.
func (srv *reportService) agentPerformance(ctx context.Context, deals []*entity.Deal) ([]usecase.AgentPerformance, error) {
	agents, err := srv.users.ListByRole(ctx, entity.RoleAgent)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agents")
	}

	rows := make([]usecase.AgentPerformance, 0, len(agents))
	for _, agent := range agents {
		row := usecase.AgentPerformance{
			AgentID: agent.ID,
			Name:    agent.Name,
			Avatar:  agent.Avatar,
		}
		for _, d := range deals {
			if d.AgentID != agent.ID || d.Stage != entity.DealClosed {
				continue
			}
			row.DealsClosed++
			row.SalesVolume += d.ValueAED
			row.Commission += d.Commission()
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Commission > rows[j].Commission
	})

	return rows, nil
}

func computeKPIs(properties []*entity.Property, deals []*entity.Deal) usecase.KPIs {
	kpis := usecase.KPIs{
		// The dashboard labels this "Properties on Market" but counts
		// the whole portfolio, sold and rented included.
		PropertiesOnMarket: len(properties),
	}
	for _, p := range properties {
		kpis.TotalPropertiesValue += p.PriceAED
	}
	for _, d := range deals {
		switch d.Stage {
		case entity.DealNegotiation, entity.DealOffer:
			kpis.ActiveDeals++
		case entity.DealClosed:
			kpis.ClosedDeals++
			kpis.TotalCommissions += d.Commission()
		case entity.DealLost:
		}
	}

	return kpis
}

func typeDistribution(properties []*entity.Property) []usecase.EnumCount {
	counts := make(map[entity.PropertyType]int)
	for _, p := range properties {
		counts[p.Type]++
	}

	distribution := make([]usecase.EnumCount, 0, len(entity.PropertyTypes()))
	for _, t := range entity.PropertyTypes() {
		distribution = append(distribution, usecase.EnumCount{Name: string(t), Count: counts[t]})
	}

	return distribution
}

func statusBreakdown(properties []*entity.Property) []usecase.EnumCount {
	counts := make(map[entity.PropertyStatus]int)
	for _, p := range properties {
		counts[p.Status]++
	}

	breakdown := make([]usecase.EnumCount, 0, len(entity.PropertyStatuses()))
	for _, s := range entity.PropertyStatuses() {
		breakdown = append(breakdown, usecase.EnumCount{Name: string(s), Count: counts[s]})
	}

	return breakdown
}

func stagePipeline(deals []*entity.Deal) []usecase.EnumCount {
	counts := make(map[entity.DealStage]int)
	for _, d := range deals {
		counts[d.Stage]++
	}

	pipeline := make([]usecase.EnumCount, 0, len(entity.DealStages()))
	for _, s := range entity.DealStages() {
		pipeline = append(pipeline, usecase.EnumCount{Name: string(s), Count: counts[s]})
	}

	return pipeline
}

// computeFunnel counts leads by status and derives the conversion rate
// as closed deal count over lead count. The populations differ, so the
// rate can exceed 100.
func computeFunnel(leads []*entity.Lead, deals []*entity.Deal) usecase.LeadsFunnel {
	counts := make(map[entity.LeadStatus]int)
	for _, l := range leads {
		counts[l.Status]++
	}

	funnel := usecase.LeadsFunnel{Total: len(leads)}
	for _, s := range entity.LeadStatuses() {
		funnel.Counts = append(funnel.Counts, usecase.EnumCount{Name: string(s), Count: counts[s]})
	}

	closedDeals := 0
	for _, d := range deals {
		if d.Stage == entity.DealClosed {
			closedDeals++
		}
	}
	if len(leads) > 0 {
		funnel.ConversionRate = float64(closedDeals) / float64(len(leads)) * 100
	}

	return funnel
}
