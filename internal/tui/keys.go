package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
)

type keyMap struct {
	Executive   key.Binding
	Operator    key.Binding
	DarkMode    key.Binding
	WellBefore  key.Binding
	D2CBuilders key.Binding
	Portfolio   key.Binding
	Company     key.Binding
	TimeRange   key.Binding
	Export      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Executive:   key.NewBinding(key.WithKeys("e", "E"), key.WithHelp("e", "executive")),
		Operator:    key.NewBinding(key.WithKeys("o", "O"), key.WithHelp("o", "operator")),
		DarkMode:    key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d", "dark mode")),
		WellBefore:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "wellbefore")),
		D2CBuilders: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "d2c builders")),
		Portfolio:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "portfolio")),
		Company:     key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c", "company")),
		TimeRange:   key.NewBinding(key.WithKeys("t", "T"), key.WithHelp("t", "time range")),
		Export:      key.NewBinding(key.WithKeys("x", "X"), key.WithHelp("x", "export csv")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:        key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Executive, k.Operator, k.DarkMode, k.Company, k.TimeRange, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Executive, k.Operator, k.DarkMode},
		{k.WellBefore, k.D2CBuilders, k.Portfolio},
		{k.Company, k.TimeRange, k.Export},
		{k.Help, k.Quit},
	}
}

// ShortcutsMarkdown returns the keyboard reference as a markdown table.
func ShortcutsMarkdown() string {
	k := newKeyMap()
	var b strings.Builder
	b.WriteString("# Keyboard shortcuts\n\n")
	b.WriteString("Shortcuts are case-insensitive and ignored while a picker filter is being typed.\n\n")
	b.WriteString("| Key | Action |\n|-----|--------|\n")
	for _, group := range k.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", strings.ToUpper(h.Key), h.Desc)
		}
	}
	return b.String()
}
