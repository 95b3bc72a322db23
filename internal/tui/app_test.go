package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emagineer/kpiboard/internal/kpi"
	"github.com/emagineer/kpiboard/internal/prefs"
	"github.com/emagineer/kpiboard/internal/ui"
)

func newTestModel(t *testing.T, dark bool) (Model, *prefs.Store) {
	t.Helper()
	store := prefs.Initialize(prefs.NewMemorySlot(), func() bool { return dark })
	m := New(store, kpi.Sample(), Options{
		ExportDir: t.TempDir(),
		Now:       func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) },
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model), store
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyPressMsg
		switch k {
		case "enter":
			msg = tea.KeyPressMsg{Code: tea.KeyEnter}
		case "esc":
			msg = tea.KeyPressMsg{Code: tea.KeyEscape}
		default:
			r := []rune(k)
			require.Len(t, r, 1, "unsupported key %q", k)
			msg = tea.KeyPressMsg{Code: r[0], Text: k}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestShortcuts(t *testing.T) {
	cases := []struct {
		name string
		keys []string
		want prefs.State
	}{
		{"operator", []string{"o"}, prefs.State{Company: prefs.CompanyWellBefore, View: prefs.ViewOperator, TimeRange: prefs.RangeMonth}},
		{"operator then executive", []string{"o", "e"}, prefs.State{Company: prefs.CompanyWellBefore, View: prefs.ViewExecutive, TimeRange: prefs.RangeMonth}},
		{"uppercase", []string{"O", "D"}, prefs.State{Company: prefs.CompanyWellBefore, View: prefs.ViewOperator, TimeRange: prefs.RangeMonth, DarkMode: true}},
		{"d2c", []string{"2"}, prefs.State{Company: prefs.CompanyD2CBuilders, View: prefs.ViewExecutive, TimeRange: prefs.RangeMonth}},
		{"portfolio keeps view", []string{"o", "3"}, prefs.State{Company: prefs.CompanyPortfolio, View: prefs.ViewOperator, TimeRange: prefs.RangeMonth}},
		{"back to wellbefore", []string{"3", "1"}, prefs.State{Company: prefs.CompanyWellBefore, View: prefs.ViewExecutive, TimeRange: prefs.RangeMonth}},
		{"dark twice", []string{"d", "d"}, prefs.State{Company: prefs.CompanyWellBefore, View: prefs.ViewExecutive, TimeRange: prefs.RangeMonth}},
		{"unbound keys", []string{"z", "9", "!"}, prefs.State{Company: prefs.CompanyWellBefore, View: prefs.ViewExecutive, TimeRange: prefs.RangeMonth}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, store := newTestModel(t, false)
			press(t, m, tc.keys...)
			assert.Equal(t, tc.want, store.State())
		})
	}
}

func TestCompanyPicker(t *testing.T) {
	m, store := newTestModel(t, false)

	m = press(t, m, "c")
	require.True(t, m.pickerOpen)
	assert.Contains(t, ansi.Strip(m.View().Content), "Company")

	m = press(t, m, "2")
	assert.False(t, m.pickerOpen)
	assert.Equal(t, prefs.CompanyD2CBuilders, store.State().Company)
}

func TestTimeRangePicker(t *testing.T) {
	m, store := newTestModel(t, false)

	m = press(t, m, "t", "5")
	assert.False(t, m.pickerOpen)
	assert.Equal(t, prefs.RangeQuarter, store.State().TimeRange)

	m = press(t, m, "t", "esc")
	assert.False(t, m.pickerOpen)
	assert.Equal(t, prefs.RangeQuarter, store.State().TimeRange)
}

func TestPickerLeavesViewShortcutsActive(t *testing.T) {
	m, store := newTestModel(t, false)

	m = press(t, m, "c", "o", "d")
	assert.True(t, m.pickerOpen)
	assert.Equal(t, prefs.ViewOperator, store.State().View)
	assert.True(t, store.State().DarkMode)
}

func TestShortcutsSuppressedWhileFiltering(t *testing.T) {
	m, store := newTestModel(t, false)
	before := store.State()

	m = press(t, m, "c", "/", "d", "o", "e", "3")
	require.True(t, m.pickerOpen)
	assert.Equal(t, before, store.State())
}

func TestExportShortcut(t *testing.T) {
	m, _ := newTestModel(t, false)

	m = press(t, m, "x")

	path := filepath.Join(m.opts.ExportDir, "dashboard-export-2026-03-14.csv")
	assert.Equal(t, "Exported to "+path, m.Status())
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, false)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsHeader(t *testing.T) {
	m, _ := newTestModel(t, true)
	m = press(t, m, "2", "o")

	out := ansi.Strip(m.View().Content)
	assert.Contains(t, out, "Emagineer")
	assert.Contains(t, out, "D2C Builders $2M 3PL")
	assert.Contains(t, out, "This Month")
	assert.Contains(t, out, "☾ Dark")
	assert.Contains(t, out, "Shortcuts:")
	assert.Contains(t, out, "Operator View")
}

func TestSnapshot(t *testing.T) {
	st := prefs.State{Company: prefs.CompanyPortfolio, View: prefs.ViewExecutive, TimeRange: prefs.RangeWeek}
	out := ansi.Strip(Snapshot(st, kpi.Sample(), 120))

	assert.Contains(t, out, "Portfolio Combined")
	assert.Contains(t, out, "This Week")
	assert.Contains(t, out, "☀ Light")
}

func TestShortcutsMarkdown(t *testing.T) {
	md := ShortcutsMarkdown()

	assert.Contains(t, md, "| `E` | executive |")
	assert.Contains(t, md, "| `D` | dark mode |")
	assert.Contains(t, md, "| `3` | portfolio |")
	assert.Contains(t, md, "| `Q` | quit |")
}

func TestHelpStylesFollowDarkMode(t *testing.T) {
	ui.ApplyDarkMode(false)
	t.Cleanup(func() { ui.ApplyDarkMode(true) })

	m, store := newTestModel(t, false)
	t.Cleanup(store.WatchDarkMode(ui.ApplyDarkMode))
	light := lipgloss.Color(string(ui.PaletteFor(false).Accent))
	assert.Equal(t, light, m.helpModel().Styles.ShortKey.GetForeground())

	m = press(t, m, "d")

	require.True(t, ui.IsDark())
	dark := lipgloss.Color(string(ui.PaletteFor(true).Accent))
	assert.Equal(t, dark, m.helpModel().Styles.ShortKey.GetForeground())
	assert.Equal(t, dark, m.helpModel().Styles.FullKey.GetForeground())
}
