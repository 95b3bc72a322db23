package dashboard

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/emagineer/kpiboard/internal/kpi"
	"github.com/emagineer/kpiboard/internal/ui"
)

const (
	cardWidth  = 26
	barWidth   = 24
	sparkRunes = "▁▂▃▄▅▆▇█"
)

// c converts a palette color for lipgloss v2.
func c[T ~string](col T) color.Color {
	return lipgloss.Color(string(col))
}

func muted(s string) string {
	return lipgloss.NewStyle().Foreground(c(ui.Muted)).Render(s)
}

func heading(s string) string {
	return lipgloss.NewStyle().Foreground(c(ui.Accent)).Bold(true).Render(s)
}

func strong(s string) string {
	return lipgloss.NewStyle().Foreground(c(ui.Foreground)).Bold(true).Render(s)
}

func trendColor(good bool) color.Color {
	if good {
		return c(ui.Success)
	}
	return c(ui.Warning)
}

func changeText(m kpi.Metric, good bool) string {
	arrow := "▲"
	if m.ChangePercent() < 0 {
		arrow = "▼"
	}
	return lipgloss.NewStyle().
		Foreground(trendColor(good)).
		Render(arrow + " " + kpi.FormatPercentChange(m.ChangePercent()))
}

// card renders a KPI tile with the value for the selected window.
func card(label, value, detail string, width int) string {
	inner := width - 4
	lines := []string{
		muted(ansi.Truncate(strings.ToUpper(label), inner, "…")),
		strong(value),
	}
	if detail != "" {
		lines = append(lines, detail)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c(ui.Border)).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(lines, "\n"))
}

// grid lays cards out in rows that fit width.
func grid(cards []string, width int, each int) string {
	if len(cards) == 0 {
		return ""
	}
	perRow := max(1, width/(each+1))
	rows := make([]string, 0, len(cards)/perRow+1)
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		row := make([]string, 0, (end-start)*2)
		for i, card := range cards[start:end] {
			if i > 0 {
				row = append(row, " ")
			}
			row = append(row, card)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// progressBar renders progress toward a target, capped at a full bar.
func progressBar(pct float64, width int) string {
	filled := int(math.Round(math.Min(math.Max(pct, 0), 100) / 100 * float64(width)))
	col := c(ui.Primary)
	switch {
	case pct >= 100:
		col = c(ui.Success)
	case pct < 75:
		col = c(ui.Warning)
	}
	bar := lipgloss.NewStyle().Foreground(col).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(c(ui.Border)).Render(strings.Repeat("░", width-filled))
	return bar + rest
}

func targetLine(t kpi.Target) string {
	pct := t.PercentComplete()
	label := fmt.Sprintf("%-20s", ansi.Truncate(t.Label, 20, "…"))
	values := fmt.Sprintf("%s / %s", kpi.FormatCompact(t.Unit, t.Current), kpi.FormatCompact(t.Unit, t.Goal))
	return label + " " + progressBar(pct, barWidth) + " " +
		strong(fmt.Sprintf("%3.0f%%", pct)) + "  " + muted(values)
}

// Sparkline maps values onto block runes scaled between min and max.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	runes := []rune(sparkRunes)
	var b strings.Builder
	for _, v := range values {
		idx := len(runes) - 1
		if hi > lo {
			idx = int(math.Round((v - lo) / (hi - lo) * float64(len(runes)-1)))
		}
		b.WriteRune(runes[idx])
	}
	return b.String()
}

func sparkline(values []float64) string {
	return lipgloss.NewStyle().Foreground(c(ui.Primary)).Render(Sparkline(values))
}

func insightIcon(t kpi.InsightType) string {
	style := lipgloss.NewStyle().Bold(true)
	switch t {
	case kpi.InsightCritical:
		return style.Foreground(c(ui.Error)).Render("✗")
	case kpi.InsightWarning:
		return style.Foreground(c(ui.Warning)).Render("!")
	case kpi.InsightSuccess:
		return style.Foreground(c(ui.Success)).Render("✓")
	default:
		return style.Foreground(c(ui.Info)).Render("i")
	}
}

func insightLines(insights []kpi.Insight, width int, withDetail bool) []string {
	lines := make([]string, 0, len(insights)*2)
	for _, in := range insights {
		lines = append(lines, insightIcon(in.Type)+" "+strong(ansi.Truncate(in.Title, max(10, width-2), "…")))
		if withDetail && in.Detail != "" {
			lines = append(lines, "  "+muted(ansi.Truncate(in.Detail, max(10, width-2), "…")))
		}
	}
	return lines
}

func countsLine(counts kpi.InsightCounts) string {
	parts := []string{
		lipgloss.NewStyle().Foreground(c(ui.Error)).Render(fmt.Sprintf("%d critical", counts.Critical)),
		lipgloss.NewStyle().Foreground(c(ui.Warning)).Render(fmt.Sprintf("%d warning", counts.Warning)),
		lipgloss.NewStyle().Foreground(c(ui.Info)).Render(fmt.Sprintf("%d info", counts.Info)),
		lipgloss.NewStyle().Foreground(c(ui.Success)).Render(fmt.Sprintf("%d positive", counts.Success)),
	}
	return strings.Join(parts, muted(" · "))
}

// healthScore renders a 0-100 score colored by band.
func healthScore(label string, score int) string {
	col := c(ui.Error)
	switch {
	case score >= 80:
		col = c(ui.Success)
	case score >= 60:
		col = c(ui.Warning)
	}
	value := lipgloss.NewStyle().Foreground(col).Bold(true).Render(fmt.Sprintf("%d", score))
	if label == "" {
		return value + muted("/100")
	}
	return muted(label+" ") + value + muted("/100")
}

func section(title string, lines ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{heading(title)}, lines...)...)
}
