package dashboard

import (
	"fmt"

	"github.com/emagineer/kpiboard/internal/kpi"
	"github.com/emagineer/kpiboard/internal/prefs"
)

// Row is one tabular line of the visible dashboard.
type Row struct {
	Metric   string
	Current  string
	Previous string
	Change   string
}

// Rows returns the metrics visible for the snapshot, for exports and plain
// text output.
func Rows(st prefs.State, data kpi.Dataset) []Row {
	kind := Select(st.Company, st.View)
	switch kind {
	case KindPortfolio:
		p := kpi.Summarize(data)
		return []Row{
			{Metric: "Combined Revenue", Current: kpi.FormatCurrency(p.Revenue[st.TimeRange], false)},
			{Metric: "MTD Net Profit", Current: kpi.FormatCurrency(p.NetProfit, false)},
			{Metric: "Cash Position", Current: kpi.FormatCurrency(p.Cash, false)},
			{Metric: "Runway (months)", Current: fmt.Sprintf("%d", p.RunwayMonths)},
			{Metric: "Portfolio Health", Current: fmt.Sprintf("%d", p.Health)},
			{Metric: "WellBefore Health", Current: fmt.Sprintf("%d", p.WellBeforeHealth)},
			{Metric: "D2C Builders Health", Current: fmt.Sprintf("%d", p.D2CHealth)},
		}
	case KindNone:
		return nil
	}

	co := data.Company(st.Company)
	visible := co.Visible(st.View)
	rows := make([]Row, 0, len(visible))
	for _, k := range visible {
		m := k.At(st.TimeRange)
		rows = append(rows, Row{
			Metric:   k.Label,
			Current:  kpi.Format(k.Unit, m.Current),
			Previous: kpi.Format(k.Unit, m.Previous),
			Change:   kpi.FormatPercentChange(m.ChangePercent()),
		})
	}
	return rows
}
