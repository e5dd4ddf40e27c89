package widget

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/fui/internal/ui"
)

// Checkbox is a boolean toggle. Space or x flips it while focused.
type Checkbox struct {
	checked bool
	focused bool
	keys    KeyMap
}

// NewCheckbox creates a checkbox in the given state.
func NewCheckbox(checked bool) *Checkbox {
	return &Checkbox{checked: checked, keys: DefaultKeyMap()}
}

func (c *Checkbox) Checked() bool {
	return c.checked
}

func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

// Raw returns the literal form of the state, "true" or "false".
func (c *Checkbox) Raw() string {
	return strconv.FormatBool(c.checked)
}

func (c *Checkbox) Update(msg tea.Msg) Result {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !c.focused {
		return Ignored()
	}
	if key.Matches(km, c.keys.Toggle) {
		c.checked = !c.checked
		return Consumed(nil)
	}
	return Ignored()
}

func (c *Checkbox) View() string {
	box := ui.UncheckedBox
	if c.checked {
		box = ui.CheckedMarker
	}
	if c.focused {
		return ui.FocusedLabelStyle.Render(box)
	}
	return box
}

func (c *Checkbox) Focus() tea.Cmd {
	c.focused = true
	return nil
}

func (c *Checkbox) Blur() {
	c.focused = false
}

func (c *Checkbox) Focused() bool {
	return c.focused
}
