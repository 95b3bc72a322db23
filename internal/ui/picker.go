package ui

import (
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// PickerItem represents a selectable item in a picker list.
type PickerItem struct {
	ID        string
	TitleText string
	Details   string
	Shortcut  string
}

// Title returns the item label.
func (p PickerItem) Title() string { return p.TitleText }

// Description returns the item details.
func (p PickerItem) Description() string { return p.Details }

// FilterValue returns the filterable text.
func (p PickerItem) FilterValue() string { return p.TitleText + " " + p.Details + " " + p.ID }

type pickerDelegate struct {
	slot          lipgloss.Style
	title         lipgloss.Style
	details       lipgloss.Style
	selectedTitle lipgloss.Style
	currentMark   lipgloss.Style
	currentID     string
}

func newPickerDelegate(currentID string) pickerDelegate {
	return pickerDelegate{
		slot: lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(Muted))),
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(Foreground))),
		details: lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(Muted))),
		selectedTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(Primary))).
			Bold(true),
		currentMark: lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(Accent))),
		currentID: currentID,
	}
}

func (d pickerDelegate) Height() int { return 1 }

func (d pickerDelegate) Spacing() int { return 0 }

func (d pickerDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d pickerDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	pi, ok := item.(PickerItem)
	if !ok || m.Width() <= 0 {
		return
	}

	isSelected := index == m.Index() && m.FilterState() != list.Filtering

	slot := pi.Shortcut
	if slot == "" {
		slot = fmt.Sprintf("%d", index+1)
	}
	available := max(12, m.Width()-8)
	content := ansi.Truncate(pi.TitleText, available, "...")

	mark := " "
	if pi.ID == d.currentID {
		mark = d.currentMark.Render("•")
	}

	prefix := "  "
	slotText := d.slot.Render(slot)
	titleText := d.title.Render(content)
	if isSelected {
		prefix = "> "
		slotText = d.selectedTitle.Render(slot)
		titleText = d.selectedTitle.Render(content)
	}
	line := prefix + slotText + " " + mark + " " + titleText
	if pi.Details != "" && m.Width() > lipgloss.Width(line)+len(pi.Details)+3 {
		line += "  " + d.details.Render(pi.Details)
	}
	fmt.Fprint(w, line) //nolint:errcheck
}

// Picker is an embeddable single-choice list, the terminal stand-in for a
// dropdown.
type Picker struct {
	list      list.Model
	title     string
	items     []PickerItem
	choice    string
	done      bool
	cancelled bool
}

// NewPicker builds a picker with currentID pre-selected and marked.
func NewPicker(title string, items []PickerItem, currentID string) Picker {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, newPickerDelegate(currentID), 40, len(items)+2)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()

	for idx, item := range items {
		if item.ID == currentID {
			l.Select(idx)
			break
		}
	}

	return Picker{list: l, title: title, items: items}
}

// SetSize fits the picker list into the given box.
func (p *Picker) SetSize(width, height int) {
	p.list.SetSize(max(20, width), max(3, min(height, len(p.items)+2)))
}

// Filtering reports whether the filter text input has focus.
func (p Picker) Filtering() bool {
	return p.list.FilterState() == list.Filtering
}

// Choice returns the chosen item ID once the picker is done.
func (p Picker) Choice() (id string, done bool) {
	return p.choice, p.done && !p.cancelled
}

// Closed reports whether the picker was confirmed or cancelled.
func (p Picker) Closed() bool {
	return p.done
}

// Update handles a message while the picker is open.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && !p.Filtering() {
		switch key.String() {
		case "enter":
			if item, ok := p.list.SelectedItem().(PickerItem); ok {
				p.choice = item.ID
				p.done = true
				return p, nil
			}
		case "esc":
			if p.list.FilterState() == list.FilterApplied {
				break
			}
			p.done = true
			p.cancelled = true
			return p, nil
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if p.selectByNumber(key.String()) {
				return p, nil
			}
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p *Picker) selectByNumber(keyNum string) bool {
	slot := int(keyNum[0] - '0')
	visible := p.list.VisibleItems()
	if slot < 1 || slot > len(visible) {
		return false
	}
	p.list.Select(slot - 1)
	if item, ok := visible[slot-1].(PickerItem); ok {
		p.choice = item.ID
		p.done = true
		return true
	}
	return false
}

// View renders the picker inside a bordered box.
func (p Picker) View() string {
	heading := lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(Accent))).
		Bold(true).
		Render(p.title)

	body := []string{heading, p.list.View()}
	if filter := strings.TrimSpace(p.list.FilterValue()); filter != "" {
		body = append(body, MutedStyle.Render("filter: "+filter))
	}
	body = append(body, MutedStyle.Render("enter select · 1-9 quick pick · / filter · esc close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(string(Border))).
		Padding(0, 1).
		Render(strings.Join(body, "\n"))
}
