package widget

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/fui/internal/ui"
	"github.com/muurk/fui/pkg/feeder"
)

type pane int

const (
	pickerPane pane = iota
	selectedPane
)

// MultiselectOption configures a Multiselect.
type MultiselectOption func(*Multiselect)

// SelectAnything allows selecting text that matches no candidate.
func SelectAnything() MultiselectOption {
	return func(m *Multiselect) {
		m.selectAnything = true
	}
}

// RedundantSelection allows the same value to be selected more than once.
func RedundantSelection() MultiselectOption {
	return func(m *Multiselect) {
		m.redundant = true
	}
}

// OnSelect registers the callback run after a value is selected.
func OnSelect(fn func(value string) tea.Cmd) MultiselectOption {
	return func(m *Multiselect) {
		m.onSelect = fn
	}
}

// OnDeselect registers the callback run after a value is removed.
func OnDeselect(fn func(value string) tea.Cmd) MultiselectOption {
	return func(m *Multiselect) {
		m.onDeselect = fn
	}
}

// MultiselectWindow sets how many candidates the picker shows.
func MultiselectWindow(n int) MultiselectOption {
	return func(m *Multiselect) {
		if n > 0 {
			m.window = n
		}
	}
}

// Multiselect pairs an Autocomplete picker with the list of values chosen so
// far, side by side.
//
// Enter in the picker moves its text to the selected list when the text is
// non-empty, allowed (SelectAnything or a visible candidate) and not a
// duplicate (unless RedundantSelection). Enter in the selected list removes
// the highlighted value. Right at the end of the picker text focuses the
// selected list and left brings focus back.
type Multiselect struct {
	picker   *Autocomplete
	selected *SelectList
	keys     KeyMap
	active   pane
	focused  bool
	width    int
	window   int

	selectAnything bool
	redundant      bool
	onSelect       func(string) tea.Cmd
	onDeselect     func(string) tea.Cmd
}

// NewMultiselect creates a multiselect drawing candidates from f.
func NewMultiselect(f feeder.Feeder, opts ...MultiselectOption) *Multiselect {
	m := &Multiselect{
		keys:   DefaultKeyMap(),
		window: DefaultWindow,
		width:  ui.MinTerminalWidth,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.picker = NewAutocomplete(f, WithWindow(m.window))
	m.selected = NewSelectList(m.window + 1)
	m.selected.SetMarker(ui.SelectedMarker)
	m.layout()
	return m
}

// Picker returns the candidate picker.
func (m *Multiselect) Picker() *Autocomplete {
	return m.picker
}

// SelectedItems returns the selected values in insertion order.
func (m *Multiselect) SelectedItems() []string {
	return m.selected.Items()
}

// SelectItems replaces the selected values. Repeats are dropped unless
// RedundantSelection is set.
func (m *Multiselect) SelectItems(items []string) {
	if m.redundant {
		m.selected.SetItems(items)
		return
	}
	seen := make(map[string]bool, len(items))
	unique := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		unique = append(unique, item)
	}
	m.selected.SetItems(unique)
}

// SelectedFocused reports whether the selected list has input focus.
func (m *Multiselect) SelectedFocused() bool {
	return m.focused && m.active == selectedPane
}

func (m *Multiselect) Update(msg tea.Msg) Result {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.picker.Update(msg)
	}
	if !m.focused {
		return Ignored()
	}
	if m.active == selectedPane {
		return m.updateSelected(km)
	}

	switch {
	case key.Matches(km, m.keys.Enter):
		return Consumed(m.selectCurrent())
	case key.Matches(km, m.keys.Right) && m.picker.AtEnd():
		return Consumed(m.activate(selectedPane))
	}
	return m.picker.Update(km)
}

func (m *Multiselect) updateSelected(km tea.KeyMsg) Result {
	switch {
	case key.Matches(km, m.keys.Enter):
		return Consumed(m.deselectCurrent())
	case key.Matches(km, m.keys.Left):
		return Consumed(m.activate(pickerPane))
	case key.Matches(km, m.keys.Up):
		if m.selected.Up() {
			return Consumed(nil)
		}
	case key.Matches(km, m.keys.Down):
		if m.selected.Down() {
			return Consumed(nil)
		}
	}
	return Ignored()
}

func (m *Multiselect) selectCurrent() tea.Cmd {
	value := m.picker.Value()
	if value == "" {
		return nil
	}
	if !m.selectAnything && !m.picker.IsCandidate(value) {
		return nil
	}
	if !m.redundant && m.selected.Contains(value) {
		return nil
	}

	m.selected.Append(value)
	m.picker.SetValue("")
	if m.onSelect != nil {
		return m.onSelect(value)
	}
	return nil
}

func (m *Multiselect) deselectCurrent() tea.Cmd {
	value, ok := m.selected.Remove(m.selected.Index())
	if !ok {
		return nil
	}
	if m.onDeselect != nil {
		return m.onDeselect(value)
	}
	return nil
}

func (m *Multiselect) activate(p pane) tea.Cmd {
	m.active = p
	if !m.focused {
		return nil
	}
	if p == selectedPane {
		m.picker.Blur()
		return m.selected.Focus()
	}
	m.selected.Blur()
	return m.picker.Focus()
}

func (m *Multiselect) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		ui.PaneTitleStyle.Render("Candidates"),
		m.picker.View(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		ui.PaneTitleStyle.Render("Selected"),
		m.selected.View(),
	)
	half := m.width / 2
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(half).Render(left),
		lipgloss.NewStyle().Width(m.width-half).Render(right),
	)
}

func (m *Multiselect) Focus() tea.Cmd {
	m.focused = true
	return m.activate(m.active)
}

func (m *Multiselect) Blur() {
	m.focused = false
	m.picker.Blur()
	m.selected.Blur()
}

func (m *Multiselect) Focused() bool {
	return m.focused
}

func (m *Multiselect) SetWidth(width int) {
	m.width = width
	m.layout()
}

func (m *Multiselect) layout() {
	half := m.width / 2
	m.picker.SetWidth(half - 1)
	m.selected.SetWidth(m.width - half)
}
