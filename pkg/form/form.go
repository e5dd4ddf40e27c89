package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/fui/internal/logging"
	"github.com/muurk/fui/internal/ui"
	"github.com/muurk/fui/pkg/field"
	"github.com/muurk/fui/pkg/validators"
	"github.com/muurk/fui/pkg/widget"
)

// Option configures a Form.
type Option func(*Form)

// WithTitle sets the heading drawn above the fields.
func WithTitle(title string) Option {
	return func(f *Form) {
		f.title = title
	}
}

// SubmitOnEnter makes enter submit the form unless a field consumes it.
func SubmitOnEnter() Option {
	return func(f *Form) {
		f.submitOnEnter = true
	}
}

type entry struct {
	field field.FormField
	bound field.Bound
}

// focus positions after the fields
const (
	cancelButton = iota
	submitButton
	buttonCount
)

// Form is an ordered set of bound fields with Cancel and Submit buttons.
type Form struct {
	title         string
	entries       []entry
	focus         int
	focused       bool
	width         int
	submitOnEnter bool

	keys widget.KeyMap
	help help.Model

	onSubmit func(Data) tea.Cmd
	onCancel func() tea.Cmd
}

// New creates an empty form.
func New(opts ...Option) *Form {
	f := &Form{
		keys:  widget.DefaultKeyMap(),
		help:  help.New(),
		width: ui.MinTerminalWidth,
	}
	f.help.Styles.ShortKey = ui.HelpStyle
	f.help.Styles.ShortDesc = ui.HelpStyle
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Field binds fd and appends it to the form.
//
// Labels are expected to be unique. A repeated label is logged and its
// value overwrites the earlier one in the submitted data.
func (f *Form) Field(fd field.FormField) *Form {
	for _, e := range f.entries {
		if e.field.Label() == fd.Label() {
			logging.Warn("Duplicate field label",
				zap.String("form", f.title),
				zap.String("label", fd.Label()),
			)
			break
		}
	}
	b := fd.Bind()
	widget.SetWidth(b, f.innerWidth())
	f.entries = append(f.entries, entry{field: fd, bound: b})
	return f
}

// OnSubmit registers the callback receiving valid data.
func (f *Form) OnSubmit(fn func(Data) tea.Cmd) *Form {
	f.onSubmit = fn
	return f
}

// OnCancel registers the callback run when the form is cancelled.
func (f *Form) OnCancel(fn func() tea.Cmd) *Form {
	f.onCancel = fn
	return f
}

// Title returns the form heading.
func (f *Form) Title() string {
	return f.title
}

// Labels returns the field labels in order.
func (f *Form) Labels() []string {
	labels := make([]string, len(f.entries))
	for i, e := range f.entries {
		labels[i] = e.field.Label()
	}
	return labels
}

// Bound returns the live field with the given label.
func (f *Form) Bound(label string) (field.Bound, bool) {
	for _, e := range f.entries {
		if e.field.Label() == label {
			return e.bound, true
		}
	}
	return nil, false
}

// Validate checks every field against its current widget value. Data is
// empty unless Errors is.
func (f *Form) Validate() (Data, Errors) {
	var data Data
	errs := Errors{}
	for _, e := range f.entries {
		label := e.field.Label()
		v, err := e.bound.Validate()
		if err != nil {
			if !validators.IsValidationError(err) {
				logging.Error("Field value could not be decoded",
					zap.String("label", label),
					zap.Error(err),
				)
			}
			errs[label] = err.Error()
			continue
		}
		data.set(label, v)
	}
	logging.LogValidation(f.title, len(f.entries), errs)
	if len(errs) > 0 {
		return Data{}, errs
	}
	return data, nil
}

// Submit validates the form. Valid data goes to the submit callback;
// otherwise the errors are painted on the fields.
func (f *Form) Submit() tea.Cmd {
	data, errs := f.Validate()
	for _, e := range f.entries {
		e.bound.SetError(errs[e.field.Label()])
	}
	if len(errs) > 0 || f.onSubmit == nil {
		return nil
	}
	return f.onSubmit(data)
}

// Cancel runs the cancel callback without validating.
func (f *Form) Cancel() tea.Cmd {
	if f.onCancel == nil {
		return nil
	}
	return f.onCancel()
}

func (f *Form) Update(msg tea.Msg) widget.Result {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.SetWidth(msg.Width)
		return widget.Ignored()
	case tea.KeyMsg:
		return f.updateKey(msg)
	}
	if b := f.current(); b != nil {
		return b.Update(msg)
	}
	return widget.Ignored()
}

func (f *Form) updateKey(msg tea.KeyMsg) widget.Result {
	switch {
	case key.Matches(msg, f.keys.Submit):
		return widget.Consumed(f.Submit())
	case key.Matches(msg, f.keys.Cancel):
		return widget.Consumed(f.Cancel())
	case key.Matches(msg, f.keys.Next):
		return widget.Consumed(f.moveFocus(1))
	case key.Matches(msg, f.keys.Prev):
		return widget.Consumed(f.moveFocus(-1))
	}

	b := f.current()
	if b == nil {
		return f.updateButtons(msg)
	}

	res := b.Update(msg)
	if res.Submitted && f.submitOnEnter {
		return widget.Consumed(tea.Batch(res.Cmd, f.Submit()))
	}
	if res.Consumed {
		return res
	}

	switch {
	case key.Matches(msg, f.keys.Enter) && f.submitOnEnter:
		return widget.Consumed(tea.Batch(res.Cmd, f.Submit()))
	case key.Matches(msg, f.keys.Enter), key.Matches(msg, f.keys.Down):
		return widget.Consumed(tea.Batch(res.Cmd, f.moveFocus(1)))
	case key.Matches(msg, f.keys.Up):
		if f.focus == 0 {
			return res
		}
		return widget.Consumed(tea.Batch(res.Cmd, f.moveFocus(-1)))
	}
	return res
}

func (f *Form) updateButtons(msg tea.KeyMsg) widget.Result {
	button := f.focus - len(f.entries)
	switch {
	case key.Matches(msg, f.keys.Enter):
		if button == submitButton {
			return widget.Consumed(f.Submit())
		}
		return widget.Consumed(f.Cancel())
	case key.Matches(msg, f.keys.Left), key.Matches(msg, f.keys.Up):
		return widget.Consumed(f.moveFocus(-1))
	case key.Matches(msg, f.keys.Right), key.Matches(msg, f.keys.Down):
		if button == submitButton {
			return widget.Ignored()
		}
		return widget.Consumed(f.moveFocus(1))
	}
	return widget.Ignored()
}

// current returns the focused field, or nil when a button has focus.
func (f *Form) current() field.Bound {
	if f.focus < len(f.entries) {
		return f.entries[f.focus].bound
	}
	return nil
}

// moveFocus cycles focus through the fields and the buttons.
func (f *Form) moveFocus(delta int) tea.Cmd {
	n := len(f.entries) + buttonCount
	if b := f.current(); b != nil {
		b.Blur()
	}
	f.focus = ((f.focus+delta)%n + n) % n
	if !f.focused {
		return nil
	}
	if b := f.current(); b != nil {
		return b.Focus()
	}
	return nil
}

// FocusIndex returns the focused position: a field index, or
// len(Labels()) and len(Labels())+1 for the Cancel and Submit buttons.
func (f *Form) FocusIndex() int {
	return f.focus
}

func (f *Form) Focus() tea.Cmd {
	f.focused = true
	if b := f.current(); b != nil {
		return b.Focus()
	}
	return nil
}

func (f *Form) Blur() {
	f.focused = false
	if b := f.current(); b != nil {
		b.Blur()
	}
}

func (f *Form) Focused() bool {
	return f.focused
}

// SetWidth resizes the form and its fields.
func (f *Form) SetWidth(width int) {
	f.width = ui.ClampWidth(width)
	for _, e := range f.entries {
		widget.SetWidth(e.bound, f.innerWidth())
	}
}

func (f *Form) innerWidth() int {
	return f.width - 2 - 2*ui.DefaultPadding
}

func (f *Form) View() string {
	var b strings.Builder
	if f.title != "" {
		b.WriteString(ui.TitleStyle.Render(f.title))
		b.WriteString("\n")
	}
	for _, e := range f.entries {
		b.WriteString(e.bound.View())
		b.WriteString("\n")
	}
	b.WriteString(f.buttonsView())
	b.WriteString("\n")
	b.WriteString(ui.FooterStyle.Render(f.help.View(f.keys)))
	return ui.ContainerStyle(f.width).Render(b.String())
}

func (f *Form) buttonsView() string {
	render := func(label string, button int) string {
		if f.focused && f.focus-len(f.entries) == button {
			return ui.FocusedButtonStyle.Render(label)
		}
		return ui.ButtonStyle.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		render("Cancel", cancelButton),
		"  ",
		render("Submit", submitButton),
	)
}
