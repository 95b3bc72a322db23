package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhTheme returns a form theme built from the active palette, so forms
// follow the dark mode preference.
func HuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	f := &t.Focused
	f.Base = f.Base.BorderForeground(Primary)
	f.Title = f.Title.Foreground(Highlight).Bold(true)
	f.Description = f.Description.Foreground(Muted)
	f.ErrorIndicator = f.ErrorIndicator.Foreground(Error)
	f.ErrorMessage = f.ErrorMessage.Foreground(Error)
	f.SelectSelector = f.SelectSelector.Foreground(Accent).SetString("› ")
	f.Option = f.Option.Foreground(Foreground)
	f.SelectedOption = f.SelectedOption.Foreground(Accent).Bold(true)
	f.FocusedButton = f.FocusedButton.Foreground(Surface).Background(Primary).Bold(true)
	f.BlurredButton = f.BlurredButton.Foreground(Muted).Background(Surface)
	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(Accent)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(Muted)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(Accent)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(Muted).Bold(false)

	t.Group.Title = lipgloss.NewStyle().Foreground(Primary).Bold(true).MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().Foreground(Muted)

	return t
}
