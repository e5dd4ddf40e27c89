package widget

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/fui/internal/ui"
)

// TextInput is a single editable line.
//
// A key is consumed only when it changes the text or moves the cursor, so
// enter, up/down, left at the first column and right at the end of the
// text reach the container.
type TextInput struct {
	model textinput.Model
}

// NewTextInput creates a text line holding initial.
func NewTextInput(initial string) *TextInput {
	m := textinput.New()
	m.Prompt = "> "
	m.PromptStyle = ui.HelpStyle
	m.SetValue(initial)
	m.CursorEnd()
	return &TextInput{model: m}
}

// Value returns the current text.
func (t *TextInput) Value() string {
	return t.model.Value()
}

// SetValue replaces the text and moves the cursor to its end.
func (t *TextInput) SetValue(s string) {
	t.model.SetValue(s)
	t.model.CursorEnd()
}

// Position returns the cursor column in runes.
func (t *TextInput) Position() int {
	return t.model.Position()
}

// AtStart reports whether the cursor is on the first column.
func (t *TextInput) AtStart() bool {
	return t.model.Position() == 0
}

// AtEnd reports whether the cursor is past the last rune.
func (t *TextInput) AtEnd() bool {
	return t.model.Position() >= len([]rune(t.model.Value()))
}

// SetPlaceholder sets the text shown while the line is empty.
func (t *TextInput) SetPlaceholder(s string) {
	t.model.Placeholder = s
}

func (t *TextInput) Update(msg tea.Msg) Result {
	if _, ok := msg.(tea.KeyMsg); !ok {
		var cmd tea.Cmd
		t.model, cmd = t.model.Update(msg)
		return Result{Cmd: cmd}
	}
	if !t.model.Focused() {
		return Ignored()
	}

	value, pos := t.model.Value(), t.model.Position()
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	if t.model.Value() == value && t.model.Position() == pos {
		return Ignored()
	}
	return Consumed(cmd)
}

func (t *TextInput) View() string {
	return t.model.View()
}

func (t *TextInput) Focus() tea.Cmd {
	t.model.PromptStyle = ui.FocusedLabelStyle
	return t.model.Focus()
}

func (t *TextInput) Blur() {
	t.model.PromptStyle = ui.HelpStyle
	t.model.Blur()
}

func (t *TextInput) Focused() bool {
	return t.model.Focused()
}

// SetWidth limits the visible part of the line.
func (t *TextInput) SetWidth(width int) {
	w := width - len([]rune(t.model.Prompt)) - 1
	if w < 1 {
		w = 1
	}
	t.model.Width = w
}
