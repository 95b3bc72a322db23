package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines the TUI color palette.
type Palette struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Disabled   bool
}

const (
	darkThemeName  = "dark"
	lightThemeName = "light"
)

// ThemeNames returns supported palette names.
func ThemeNames() []string {
	return []string{darkThemeName, lightThemeName}
}

// PaletteByName returns a palette by theme name.
func PaletteByName(name string) Palette {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case lightThemeName:
		return Palette{
			Name:       lightThemeName,
			Primary:    lipgloss.Color("#2563EB"),
			Secondary:  lipgloss.Color("#4F46E5"),
			Accent:     lipgloss.Color("#0891B2"),
			Info:       lipgloss.Color("#2563EB"),
			Success:    lipgloss.Color("#059669"),
			Warning:    lipgloss.Color("#D97706"),
			Error:      lipgloss.Color("#DC2626"),
			Muted:      lipgloss.Color("#64748B"),
			Background: lipgloss.Color("#F8FAFC"),
			Surface:    lipgloss.Color("#FFFFFF"),
			Foreground: lipgloss.Color("#0F172A"),
			Border:     lipgloss.Color("#CBD5E1"),
			Highlight:  lipgloss.Color("#1D4ED8"),
		}
	default:
		return Palette{
			Name:       darkThemeName,
			Primary:    lipgloss.Color("#60A5FA"),
			Secondary:  lipgloss.Color("#818CF8"),
			Accent:     lipgloss.Color("#22D3EE"),
			Info:       lipgloss.Color("#60A5FA"),
			Success:    lipgloss.Color("#34D399"),
			Warning:    lipgloss.Color("#FBBF24"),
			Error:      lipgloss.Color("#F87171"),
			Muted:      lipgloss.Color("#94A3B8"),
			Background: lipgloss.Color("#0F172A"),
			Surface:    lipgloss.Color("#1E293B"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Border:     lipgloss.Color("#334155"),
			Highlight:  lipgloss.Color("#93C5FD"),
		}
	}
}

// PaletteFor returns the dark or light palette.
func PaletteFor(dark bool) Palette {
	if dark {
		return PaletteByName(darkThemeName)
	}
	return PaletteByName(lightThemeName)
}

// DefaultPalette returns the default theme palette.
func DefaultPalette() Palette {
	return PaletteByName(darkThemeName)
}

var active = DefaultPalette()

// ApplyPalette installs p as the active palette and rebuilds the shared
// styles. Applying the active palette again changes nothing.
func ApplyPalette(p Palette) {
	if p == active {
		return
	}
	active = p
	if p.Disabled {
		p = monochrome(p)
	}

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Info = p.Info
	Success = p.Success
	Warning = p.Warning
	Error = p.Error
	Muted = p.Muted
	Background = p.Background
	Surface = p.Surface
	Foreground = p.Foreground
	Border = p.Border
	Highlight = p.Highlight

	rebuildStyles()
}

func monochrome(p Palette) Palette {
	none := lipgloss.Color("")
	p.Primary, p.Secondary, p.Accent, p.Info = none, none, none, none
	p.Success, p.Warning, p.Error, p.Muted = none, none, none, none
	p.Background, p.Surface, p.Foreground = none, none, none
	p.Border, p.Highlight = none, none
	return p
}
