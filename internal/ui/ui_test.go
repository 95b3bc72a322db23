package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestApplyDarkMode(t *testing.T) {
	t.Cleanup(func() { ApplyPalette(DefaultPalette()) })

	ApplyDarkMode(false)
	assert.False(t, IsDark())
	assert.Equal(t, PaletteByName("light").Primary, Primary)

	ApplyDarkMode(false)
	assert.False(t, IsDark())

	ApplyDarkMode(true)
	assert.True(t, IsDark())
	assert.Equal(t, PaletteByName("dark").Primary, Primary)
}

func TestThemeNamesResolve(t *testing.T) {
	assert.Equal(t, []string{"dark", "light"}, ThemeNames())
	for _, name := range ThemeNames() {
		assert.Equal(t, name, PaletteByName(name).Name)
	}
}

func TestApplyTheme_NoColor(t *testing.T) {
	t.Cleanup(func() { ApplyPalette(DefaultPalette()) })

	ApplyTheme(true, true)
	assert.True(t, IsDark())
	assert.Empty(t, string(Primary))
}

func TestSystemPrefersDark(t *testing.T) {
	t.Setenv(ThemeEnv, "light")
	assert.False(t, SystemPrefersDark("dark"))

	t.Setenv(ThemeEnv, "")
	assert.True(t, SystemPrefersDark("dark"))
	assert.False(t, SystemPrefersDark(" Light "))

	t.Setenv("CI", "true")
	assert.True(t, SystemPrefersDark("system"))
}

func pickerItems() []PickerItem {
	return []PickerItem{
		{ID: "today", TitleText: "Today"},
		{ID: "week", TitleText: "This Week"},
		{ID: "month", TitleText: "This Month"},
	}
}

func TestPicker_QuickPick(t *testing.T) {
	p := NewPicker("Time Range", pickerItems(), "month")
	p, _ = p.Update(tea.KeyPressMsg{Code: '2', Text: "2"})

	id, ok := p.Choice()
	assert.True(t, ok)
	assert.Equal(t, "week", id)
}

func TestPicker_EnterChoosesCurrent(t *testing.T) {
	p := NewPicker("Time Range", pickerItems(), "month")
	p, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	id, ok := p.Choice()
	assert.True(t, ok)
	assert.Equal(t, "month", id)
}

func TestPicker_Escape(t *testing.T) {
	p := NewPicker("Time Range", pickerItems(), "month")
	p, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	assert.True(t, p.Closed())
	_, ok := p.Choice()
	assert.False(t, ok)
}

func TestPicker_FilterCapturesKeys(t *testing.T) {
	p := NewPicker("Time Range", pickerItems(), "month")
	p, _ = p.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	assert.True(t, p.Filtering())

	p, _ = p.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	assert.False(t, p.Closed())
}
