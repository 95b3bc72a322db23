package dashboard

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/emagineer/kpiboard/internal/kpi"
	"github.com/emagineer/kpiboard/internal/prefs"
	"github.com/emagineer/kpiboard/internal/ui"
)

// Render returns the dashboard body for kind at the snapshot's time range.
func Render(kind Kind, st prefs.State, data kpi.Dataset, width int) string {
	width = max(cardWidth+2, width)
	switch kind {
	case KindWellBeforeExecutive, KindD2CExecutive:
		return renderExecutive(data.Company(st.Company), st.TimeRange, width)
	case KindWellBeforeOperator, KindD2COperator:
		return renderOperator(data.Company(st.Company), st.TimeRange, width)
	case KindPortfolio:
		return renderPortfolio(data, st.TimeRange, width)
	default:
		return muted(fmt.Sprintf("No dashboard for company %q. Press 1, 2 or 3 to pick one.", st.Company))
	}
}

func renderExecutive(co *kpi.Company, r prefs.TimeRange, width int) string {
	title := strong(co.Name+" · Executive Overview") + "  " + muted(co.Tagline+" · "+r.Label())

	visible := co.Visible(prefs.ViewExecutive)
	cards := make([]string, 0, len(visible))
	for _, k := range visible {
		m := k.At(r)
		cards = append(cards, card(k.Label, kpi.FormatCompact(k.Unit, m.Current), changeText(m, k.Improving(r)), cardWidth))
	}

	targets := make([]string, 0, len(co.Targets))
	for _, t := range co.Targets {
		targets = append(targets, targetLine(t))
	}

	attention := make([]kpi.Insight, 0, len(co.Insights))
	for _, in := range co.Insights {
		if in.Type == kpi.InsightCritical || in.Type == kpi.InsightWarning {
			attention = append(attention, in)
		}
	}

	parts := []string{
		title,
		"",
		grid(cards, width, cardWidth),
		"",
		section("Monthly Targets", targets...),
		"",
		section("Revenue Trend (12 months)", sparkline(co.Trend)),
	}
	if len(attention) > 0 {
		parts = append(parts, "", section("Needs Attention", insightLines(attention, width, false)...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderOperator(co *kpi.Company, r prefs.TimeRange, width int) string {
	title := strong(co.Name+" · Operator View") + "  " + muted(co.Tagline+" · "+r.Label())

	rows := []string{muted(fmt.Sprintf("%-24s %14s %14s %10s", "METRIC", "CURRENT", "PREVIOUS", "CHANGE"))}
	for _, k := range co.Visible(prefs.ViewOperator) {
		m := k.At(r)
		rows = append(rows, fmt.Sprintf("%-24s %14s %14s %s",
			k.Label,
			kpi.Format(k.Unit, m.Current),
			kpi.Format(k.Unit, m.Previous),
			changeText(m, k.Improving(r)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		section("Operating Metrics", rows...),
		"",
		section("Insights", insightLines(co.Insights, width, true)...),
		"",
		countsLine(kpi.CountInsights(co.Insights)),
	)
}

func renderPortfolio(data kpi.Dataset, r prefs.TimeRange, width int) string {
	p := kpi.Summarize(data)

	title := strong("Emagineer Portfolio Overview") + "  " +
		muted("Combined view of WellBefore and D2C Builders · "+r.Label()) + "  " +
		healthScore("Portfolio Health", p.Health)

	stats := grid([]string{
		card(r.Label()+" Revenue", kpi.FormatCurrency(p.Revenue[r], true), muted("Combined both companies"), cardWidth),
		card("MTD Net Profit", kpi.FormatCurrency(p.NetProfit, true), muted("Combined margin"), cardWidth),
		card("Cash Position", kpi.FormatCurrency(p.Cash, true), muted(fmt.Sprintf("~%d months runway", p.RunwayMonths)), cardWidth),
	}, width, cardWidth)

	var alert string
	if p.Counts.Critical > 0 {
		plural := ""
		if p.Counts.Critical > 1 {
			plural = "s"
		}
		alert = lipgloss.NewStyle().Foreground(c(ui.Error)).Bold(true).
			Render(fmt.Sprintf("%d Critical Issue%s", p.Counts.Critical, plural))
	} else {
		alert = lipgloss.NewStyle().Foreground(c(ui.Success)).Bold(true).Render("All Systems Operational")
	}
	alerts := section("Alerts",
		alert+"  "+muted(fmt.Sprintf("%d total items need attention", p.Counts.Critical+p.Counts.Warning)),
		countsLine(p.Counts),
	)
	attention := append(append([]kpi.Insight{}, p.Critical...), p.Warnings...)

	cards := []string{
		companyCard(data.WellBefore, p.WellBeforeHealth, "ltv_cac", "1", width),
		companyCard(data.D2CBuilders, p.D2CHealth, "gross_margin", "2", width),
	}
	companies := grid(cards, width, companyCardWidth)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		stats,
		"",
		alerts,
		strings.Join(insightLines(attention, width, false), "\n"),
		"",
		companies,
	)
}

const companyCardWidth = 44

func companyCard(co *kpi.Company, health int, secondKey string, shortcut string, width int) string {
	rev, _ := co.KPI("revenue")
	mtd := rev.At(prefs.RangeMonth)
	second, _ := co.KPI(secondKey)
	secondM := second.At(prefs.RangeMonth)

	counts := kpi.CountInsights(co.Insights)
	badges := make([]string, 0, 2)
	if counts.Critical > 0 {
		badges = append(badges, lipgloss.NewStyle().Foreground(c(ui.Error)).Render(fmt.Sprintf("%d Critical", counts.Critical)))
	}
	if counts.Warning > 0 {
		badges = append(badges, lipgloss.NewStyle().Foreground(c(ui.Warning)).Render(fmt.Sprintf("%d Warning", counts.Warning)))
	}

	var goal string
	if t, ok := co.Target("revenue"); ok {
		goal = progressBar(t.PercentComplete(), barWidth) + " " + muted(fmt.Sprintf("%.0f%% to monthly goal", t.PercentComplete()))
	}

	lines := []string{
		strong(co.Name) + "  " + muted(co.Tagline),
		healthScore("Health", health),
		"",
		muted("MTD REVENUE ") + strong(kpi.FormatCurrency(mtd.Current, true)) + " " + changeText(mtd, rev.Improving(prefs.RangeMonth)),
		muted(strings.ToUpper(second.Label)+" ") + strong(kpi.Format(second.Unit, secondM.Current)) + " " + changeText(secondM, second.Improving(prefs.RangeMonth)),
		goal,
		sparkline(co.Trend),
		"",
		strings.Join(badges, "  ") + "  " + muted("press "+shortcut+" to open"),
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c(ui.Border)).
		Padding(0, 1).
		Width(min(companyCardWidth, width)).
		Render(strings.Join(lines, "\n"))
}
