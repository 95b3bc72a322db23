package ui

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ThemeEnv overrides the detected terminal background ("dark" or "light").
const ThemeEnv = "KPIBOARD_THEME"

// SystemPrefersDark reports the ambient light/dark preference. The
// KPIBOARD_THEME environment variable wins, then the configured theme
// ("dark", "light" or "system"), then the terminal background.
func SystemPrefersDark(configured string) bool {
	if dark, ok := parseTheme(os.Getenv(ThemeEnv)); ok {
		return dark
	}
	if dark, ok := parseTheme(configured); ok {
		return dark
	}
	if !IsInteractiveTerminal() {
		return true
	}
	return termenv.HasDarkBackground()
}

func parseTheme(value string) (dark bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case darkThemeName:
		return true, true
	case lightThemeName:
		return false, true
	default:
		return false, false
	}
}
