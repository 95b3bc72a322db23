// Package tui is the interactive terminal dashboard.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"

	"github.com/emagineer/kpiboard/internal/dashboard"
	"github.com/emagineer/kpiboard/internal/export"
	"github.com/emagineer/kpiboard/internal/kpi"
	"github.com/emagineer/kpiboard/internal/prefs"
	"github.com/emagineer/kpiboard/internal/ui"
)

const statusTTL = 4 * time.Second

// Options configures the dashboard program.
type Options struct {
	ExportDir string
	Logger    *log.Logger
	Now       func() time.Time
}

type pickerTarget int

const (
	pickCompany pickerTarget = iota
	pickTimeRange
)

type statusClearMsg struct{ seq int }

// Model is the bubbletea model for the dashboard.
type Model struct {
	store *prefs.Store
	data  kpi.Dataset
	opts  Options

	keys keyMap
	help help.Model

	picker     ui.Picker
	pickerOpen bool
	pickerFor  pickerTarget

	status    string
	statusErr bool
	statusSeq int

	width  int
	height int
}

// New builds the dashboard model around an initialized store.
func New(store *prefs.Store, data kpi.Dataset, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}

	return Model{
		store: store,
		data:  data,
		opts:  opts,
		keys:  newKeyMap(),
		help:  help.New(),
		width: ui.TerminalWidth(),
	}
}

// helpModel returns the help footer styled from the palette active now, so
// it follows dark mode changes.
func (m Model) helpModel() help.Model {
	h := m.help
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ui.Accent))).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(ui.Muted)))
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = hintStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = hintStyle
	h.Styles.ShortSeparator = hintStyle
	h.Styles.FullSeparator = hintStyle
	h.Styles.Ellipsis = hintStyle
	return h
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		if m.pickerOpen {
			m.picker.SetSize(min(60, msg.Width-4), max(8, msg.Height-8))
		}
		return m, nil
	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.pickerOpen {
			return m.updatePicker(msg)
		}
		return m.handleKey(msg)
	}

	if m.pickerOpen {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updatePicker routes keys while a picker is open. Shortcuts that do not
// collide with picker navigation still apply unless the filter input has
// focus.
func (m Model) updatePicker(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if !m.picker.Filtering() && key.Matches(msg, m.keys.Executive, m.keys.Operator, m.keys.DarkMode) {
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if !m.picker.Closed() {
		return m, cmd
	}

	m.pickerOpen = false
	id, ok := m.picker.Choice()
	if !ok {
		return m, cmd
	}
	var err error
	switch m.pickerFor {
	case pickCompany:
		err = m.store.SetCompany(prefs.Company(id))
	case pickTimeRange:
		err = m.store.SetTimeRange(prefs.TimeRange(id))
	}
	return m, tea.Batch(cmd, m.persistStatus(err))
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	var err error
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Executive):
		err = m.store.SetView(prefs.ViewExecutive)
	case key.Matches(msg, m.keys.Operator):
		err = m.store.SetView(prefs.ViewOperator)
	case key.Matches(msg, m.keys.DarkMode):
		err = m.store.ToggleDarkMode()
	case key.Matches(msg, m.keys.WellBefore):
		err = m.store.SetCompany(prefs.CompanyWellBefore)
	case key.Matches(msg, m.keys.D2CBuilders):
		err = m.store.SetCompany(prefs.CompanyD2CBuilders)
	case key.Matches(msg, m.keys.Portfolio):
		err = m.store.SetCompany(prefs.CompanyPortfolio)
	case key.Matches(msg, m.keys.Company):
		m.openPicker(pickCompany)
		return m, nil
	case key.Matches(msg, m.keys.TimeRange):
		m.openPicker(pickTimeRange)
		return m, nil
	case key.Matches(msg, m.keys.Export):
		return m.export()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}
	return m, m.persistStatus(err)
}

func (m *Model) openPicker(target pickerTarget) {
	st := m.store.State()
	switch target {
	case pickCompany:
		items := make([]ui.PickerItem, 0, len(prefs.Companies()))
		for i, c := range prefs.Companies() {
			items = append(items, ui.PickerItem{
				ID:        string(c),
				TitleText: kpi.DisplayName(c),
				Details:   kpi.HeaderTagline(c),
				Shortcut:  strconv.Itoa(i + 1),
			})
		}
		m.picker = ui.NewPicker("Company", items, string(st.Company))
	case pickTimeRange:
		items := make([]ui.PickerItem, 0, len(prefs.TimeRanges()))
		for _, r := range prefs.TimeRanges() {
			items = append(items, ui.PickerItem{ID: string(r), TitleText: r.Label()})
		}
		m.picker = ui.NewPicker("Time Range", items, string(st.TimeRange))
	}
	if m.width > 0 {
		m.picker.SetSize(min(60, m.width-4), max(8, m.height-8))
	}
	m.pickerFor = target
	m.pickerOpen = true
}

func (m Model) export() (tea.Model, tea.Cmd) {
	path, err := export.ToDir(m.opts.ExportDir, m.store.State(), m.data, m.opts.Now())
	if err != nil {
		m.opts.Logger.Error("export failed", "error", err)
		return m, m.setStatus("Export failed: "+err.Error(), true)
	}
	m.opts.Logger.Debug("dashboard exported", "path", path)
	return m, m.setStatus("Exported to "+path, false)
}

func (m *Model) persistStatus(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return m.setStatus(fmt.Sprintf("Preferences not saved: %v", err), true)
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// Status returns the transient status line.
func (m Model) Status() string {
	return m.status
}

func (m Model) View() tea.View {
	st := m.store.State()
	width := m.width
	if width <= 0 {
		width = ui.TerminalWidth()
	}

	var body string
	if m.pickerOpen {
		body = m.picker.View()
	} else {
		body = dashboard.Render(dashboard.Select(st.Company, st.View), st, m.data, width)
	}

	parts := []string{renderHeader(st, width), "", body, ""}
	if m.status != "" {
		style := ui.SuccessStyle
		if m.statusErr {
			style = ui.ErrorStyle
		}
		parts = append(parts, style.Render(m.status))
	}
	parts = append(parts, m.helpModel().View(m.keys))

	v := tea.NewView(lipgloss.JoinVertical(lipgloss.Left, parts...))
	v.AltScreen = true
	return v
}

// Snapshot renders the header and dashboard for st without the
// interactive chrome.
func Snapshot(st prefs.State, data kpi.Dataset, width int) string {
	body := dashboard.Render(dashboard.Select(st.Company, st.View), st, data, width)
	return lipgloss.JoinVertical(lipgloss.Left, renderHeader(st, width), "", body)
}

// Run starts the interactive dashboard and blocks until it exits.
func Run(ctx context.Context, store *prefs.Store, data kpi.Dataset, opts Options) error {
	program := tea.NewProgram(New(store, data, opts), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
