package ui

// Preferences controls runtime UI settings.
type Preferences struct {
	Dense   bool
	NoColor bool
}

// CurrentPreferences holds the active UI preferences.
var CurrentPreferences = Preferences{}

// ApplyPreferences updates UI preferences and re-applies the active theme.
func ApplyPreferences(p Preferences) {
	CurrentPreferences = p
	ApplyTheme(IsDark(), p.NoColor)
}

// ApplyTheme switches the color palette for the TUI.
func ApplyTheme(dark bool, noColor bool) {
	palette := PaletteFor(dark)
	palette.Disabled = noColor
	ApplyPalette(palette)
}

// ApplyDarkMode is the dark-mode subscriber: it selects the dark or light
// palette and is a no-op when that palette is already active.
func ApplyDarkMode(dark bool) {
	ApplyTheme(dark, CurrentPreferences.NoColor)
}

// IsDark reports whether the dark palette is active.
func IsDark() bool {
	return active.Name == darkThemeName
}
