package tui

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/emagineer/kpiboard/internal/dashboard"
	"github.com/emagineer/kpiboard/internal/kpi"
	"github.com/emagineer/kpiboard/internal/prefs"
	"github.com/emagineer/kpiboard/internal/ui"
)

const brand = "Emagineer"

const separator = " │ "

func fg[T ~string](col T) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(col)))
}

// renderHeader draws the two header lines: the context bar and the
// shortcut hint row.
func renderHeader(st prefs.State, width int) string {
	logo := lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(ui.Background))).
		Background(lipgloss.Color(string(ui.Primary))).
		Bold(true).
		Padding(0, 1).
		Render("E")

	company := fg(ui.Foreground).Bold(true).Render(kpi.DisplayName(st.Company))
	if tagline := kpi.HeaderTagline(st.Company); tagline != "" {
		company += " " + fg(ui.Muted).Render(tagline)
	}

	segments := []string{
		logo + " " + fg(ui.Primary).Bold(true).Render(brand),
		company,
		fg(ui.Success).Render("● Live"),
		fg(ui.Foreground).Render(st.TimeRange.Label()),
		viewToggle(st.View),
		themeIndicator(st.DarkMode),
	}
	bar := strings.Join(segments, fg(ui.Border).Render(separator))

	hints := fg(ui.Muted).Render("Shortcuts: ") + strings.Join([]string{
		hint("E", "Executive"),
		hint("O", "Operator"),
		hint("D", "Dark mode"),
		hint("1-3", "Companies"),
	}, "  ")

	return lipgloss.JoinVertical(lipgloss.Left,
		ansi.Truncate(bar, width, "…"),
		ansi.Truncate(hints, width, "…"),
	)
}

func viewToggle(current prefs.View) string {
	parts := make([]string, 0, len(prefs.Views()))
	for _, v := range prefs.Views() {
		label := dashboard.ViewLabel(v)
		if v == current {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(lipgloss.Color(string(ui.Background))).
				Background(lipgloss.Color(string(ui.Accent))).
				Bold(true).
				Padding(0, 1).
				Render(label))
			continue
		}
		parts = append(parts, fg(ui.Muted).Padding(0, 1).Render(label))
	}
	return strings.Join(parts, "")
}

func themeIndicator(dark bool) string {
	if dark {
		return fg(ui.Secondary).Render("☾ Dark")
	}
	return fg(ui.Warning).Render("☀ Light")
}

func hint(k, label string) string {
	return fg(ui.Accent).Bold(true).Render(k) + " " + fg(ui.Muted).Render(label)
}
