package widget

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/fui/internal/ui"
)

type listItem string

func (i listItem) FilterValue() string { return string(i) }

// lineDelegate renders each entry on one line with a cursor marker.
type lineDelegate struct {
	focused bool
	marker  string
}

func (d lineDelegate) Height() int { return 1 }

func (d lineDelegate) Spacing() int { return 0 }

func (d lineDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d lineDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	if index == m.Index() {
		line := ui.CursorMarker + string(it)
		if d.focused {
			line = ui.HighlightedCandidateStyle.Render(line)
		}
		_, _ = fmt.Fprint(w, line)
		return
	}
	_, _ = fmt.Fprint(w, ui.CandidateStyle.Render(d.marker+string(it)))
}

// SelectList is a single-selection list over strings.
//
// The list is navigated with Up and Down by its owner; it does not react
// to keys on its own.
type SelectList struct {
	model    list.Model
	items    []string
	delegate lineDelegate
	focused  bool
}

// NewSelectList creates an empty list showing height entries at a time.
func NewSelectList(height int) *SelectList {
	if height < 1 {
		height = 1
	}
	d := lineDelegate{}
	m := list.New(nil, d, ui.MinTerminalWidth, height)
	m.SetShowTitle(false)
	m.SetShowStatusBar(false)
	m.SetShowPagination(false)
	m.SetShowHelp(false)
	m.SetFilteringEnabled(false)
	m.DisableQuitKeybindings()
	m.SetStatusBarItemName("entry", "entries")
	m.Styles.NoItems = ui.HelpStyle.PaddingLeft(2)
	return &SelectList{model: m, delegate: d}
}

// SetMarker sets the prefix drawn before entries that are not highlighted.
func (s *SelectList) SetMarker(marker string) {
	s.delegate.marker = marker
	s.model.SetDelegate(s.delegate)
}

// SetItems replaces the entries and highlights the first one.
func (s *SelectList) SetItems(items []string) {
	s.items = append([]string(nil), items...)
	s.sync(0)
}

// Items returns a copy of the entries in order.
func (s *SelectList) Items() []string {
	return append([]string(nil), s.items...)
}

func (s *SelectList) Len() int {
	return len(s.items)
}

// Index returns the highlighted position, or -1 when the list is empty.
func (s *SelectList) Index() int {
	if len(s.items) == 0 {
		return -1
	}
	return s.model.Index()
}

// Selected returns the highlighted entry.
func (s *SelectList) Selected() (string, bool) {
	i := s.Index()
	if i < 0 {
		return "", false
	}
	return s.items[i], true
}

// Select highlights the entry at index, clamped to the list bounds.
func (s *SelectList) Select(index int) {
	if len(s.items) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(s.items) {
		index = len(s.items) - 1
	}
	s.model.Select(index)
}

// Up moves the highlight one entry up. It reports false at the top.
func (s *SelectList) Up() bool {
	i := s.Index()
	if i <= 0 {
		return false
	}
	s.model.Select(i - 1)
	return true
}

// Down moves the highlight one entry down. It reports false at the bottom.
func (s *SelectList) Down() bool {
	i := s.Index()
	if i < 0 || i >= len(s.items)-1 {
		return false
	}
	s.model.Select(i + 1)
	return true
}

// Append adds an entry at the end and keeps the current highlight.
func (s *SelectList) Append(item string) {
	s.items = append(s.items, item)
	s.sync(s.Index())
}

// Remove deletes the entry at index and returns it.
func (s *SelectList) Remove(index int) (string, bool) {
	if index < 0 || index >= len(s.items) {
		return "", false
	}
	removed := s.items[index]
	s.items = append(s.items[:index:index], s.items[index+1:]...)
	s.sync(index)
	return removed, true
}

// Contains reports whether item is one of the entries.
func (s *SelectList) Contains(item string) bool {
	for _, it := range s.items {
		if it == item {
			return true
		}
	}
	return false
}

func (s *SelectList) sync(index int) {
	entries := make([]list.Item, len(s.items))
	for i, it := range s.items {
		entries[i] = listItem(it)
	}
	s.model.SetItems(entries)
	s.Select(index)
}

// Update does nothing; owners drive the list through Up and Down.
func (s *SelectList) Update(msg tea.Msg) Result {
	return Ignored()
}

func (s *SelectList) View() string {
	return s.model.View()
}

func (s *SelectList) Focus() tea.Cmd {
	s.focused = true
	s.delegate.focused = true
	s.model.SetDelegate(s.delegate)
	return nil
}

func (s *SelectList) Blur() {
	s.focused = false
	s.delegate.focused = false
	s.model.SetDelegate(s.delegate)
}

func (s *SelectList) Focused() bool {
	return s.focused
}

func (s *SelectList) SetWidth(width int) {
	s.model.SetWidth(width)
}
