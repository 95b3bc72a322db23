// Package ui provides Charm-based UI components for kpiboard
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette, replaced by ApplyPalette
	Primary    = active.Primary
	Secondary  = active.Secondary
	Accent     = active.Accent
	Info       = active.Info
	Success    = active.Success
	Warning    = active.Warning
	Error      = active.Error
	Muted      = active.Muted
	Background = active.Background
	Surface    = active.Surface
	Foreground = active.Foreground
	Border     = active.Border
	Highlight  = active.Highlight

	// Text styles
	Tagline      lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	HintStyle    lipgloss.Style

	// Box styles
	InfoBox    lipgloss.Style
	SuccessBox lipgloss.Style

	HeaderStyle lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	Tagline = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	WarningStyle = lipgloss.NewStyle().
		Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	HintStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true)

	InfoBox = box(Info)
	SuccessBox = box(Success)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(Background).
		Background(Primary).
		Padding(0, 1).
		Bold(true)
}

func box(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1)
}

// PrimaryStyle renders text in the primary color.
func PrimaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Primary).Bold(true)
}

// Header renders a title bar.
func Header(title string) string {
	return HeaderStyle.Render(title)
}
