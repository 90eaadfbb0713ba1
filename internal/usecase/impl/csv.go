package impl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dreamcrm/internal/usecase"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// csvPrinter formats numbers with en-US thousands grouping, matching the
// figures the report screens render.
var csvPrinter = message.NewPrinter(language.AmericanEnglish)

func formatNum(v float64) string {
	return csvPrinter.Sprint(number.Decimal(v))
}

// ExportCSV renders the full report as CSV. Section order and headers
// follow the report screen's download exactly.
func (srv *reportService) ExportCSV(ctx context.Context, now time.Time) (*usecase.CSVExport, error) {
	report, err := srv.Report(ctx)
	if err != nil {
		return nil, err
	}

	var b strings.Builder

	b.WriteString("Dream CRM - Full Report\n")
	fmt.Fprintf(&b, "Generated on,%s\n\n", now.Format("2006-01-02 15:04:05"))

	b.WriteString("Key Metrics\n")
	b.WriteString("Metric,Value\n")
	fmt.Fprintf(&b, "Total Properties,%d\n", report.TotalProperties)
	fmt.Fprintf(&b, "Total Deals,%d\n", report.TotalDeals)
	fmt.Fprintf(&b, "Total Leads,%d\n", report.TotalLeads)
	fmt.Fprintf(&b, "Total Commission (AED),%s\n\n", formatNum(report.KPIs.TotalCommissions))

	b.WriteString("Property Status Breakdown\n")
	b.WriteString("Status,Count\n")
	for _, row := range report.StatusBreakdown {
		fmt.Fprintf(&b, "%s,%d\n", row.Name, row.Count)
	}
	b.WriteString("\n")

	b.WriteString("Deals Pipeline\n")
	b.WriteString("Stage,Count\n")
	for _, row := range report.StagePipeline {
		fmt.Fprintf(&b, "%s,%d\n", row.Name, row.Count)
	}
	b.WriteString("\n")

	b.WriteString("Leads Funnel\n")
	b.WriteString("Status,Count\n")
	for _, row := range report.Funnel.Counts {
		fmt.Fprintf(&b, "%s,%d\n", row.Name, row.Count)
	}
	fmt.Fprintf(&b, "Conversion Rate (%%),%.2f\n\n", report.Funnel.ConversionRate)

	b.WriteString("Agent Performance\n")
	b.WriteString("Agent Name,Deals Closed,Sales Volume (AED),Commission Earned (AED)\n")
	for _, agent := range report.AgentPerformance {
		fmt.Fprintf(&b, "%s,%d,%s,%s\n",
			agent.Name, agent.DealsClosed, formatNum(agent.SalesVolume), formatNum(agent.Commission))
	}

	return &usecase.CSVExport{
		Filename: fmt.Sprintf("dream_crm_report_%s.csv", now.Format("2006-01-02")),
		Content:  b.String(),
	}, nil
}
