package fui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/fui/internal/logging"
	"github.com/muurk/fui/pkg/form"
)

// ErrNoActions is returned by Run when no action has been registered.
var ErrNoActions = errors.New("fui: no actions registered")

// Handler receives the data of a submitted action form.
type Handler func(data form.Data) error

// Action is one entry offered by the action picker.
type Action struct {
	Description string
	Form        *form.Form
	Handler     Handler
}

// Option configures a Fui.
type Option func(*Fui)

// ExitOnFormCancel makes cancelling an action form end the whole flow
// instead of returning to the action picker.
func ExitOnFormCancel() Option {
	return func(f *Fui) {
		f.exitOnFormCancel = true
	}
}

// WithProgramOptions passes options to the underlying tea.Program.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(f *Fui) {
		f.programOpts = append(f.programOpts, opts...)
	}
}

// WithTitle sets the heading of the action picker.
func WithTitle(title string) Option {
	return func(f *Fui) {
		f.title = title
	}
}

// Fui is the action shell.
type Fui struct {
	title            string
	actions          []Action
	exitOnFormCancel bool
	programOpts      []tea.ProgramOption
}

// New creates a shell without actions.
func New(opts ...Option) *Fui {
	f := &Fui{title: "Pick action"}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Action registers an action. The shell takes over the form's submit and
// cancel callbacks.
func (f *Fui) Action(description string, fm *form.Form, handler Handler) *Fui {
	for _, a := range f.actions {
		if a.Description == description {
			logging.Warn("Duplicate action description", zap.String("description", description))
			break
		}
	}
	f.actions = append(f.actions, Action{Description: description, Form: fm, Handler: handler})
	return f
}

// Actions returns the registered actions in order.
func (f *Fui) Actions() []Action {
	return append([]Action(nil), f.actions...)
}

// Run drives the flow until it ends and then invokes the chosen handler.
// Cancelling is not an error.
func (f *Fui) Run() error {
	_, err := f.Execute()
	return err
}

// Execute is like Run but also reports how the flow ended.
func (f *Fui) Execute() (Outcome, error) {
	if len(f.actions) == 0 {
		return Outcome{}, ErrNoActions
	}

	m := NewModel(f)
	if _, err := tea.NewProgram(m, f.programOpts...).Run(); err != nil {
		return Outcome{}, fmt.Errorf("running terminal program: %w", err)
	}

	out, ok := m.Outcome()
	if !ok {
		// The program ended without reaching a terminal state.
		out = Outcome{State: StateCancelled, Action: -1}
	}
	return out, f.dispatch(out)
}

// dispatch invokes the handler of a completed flow.
func (f *Fui) dispatch(out Outcome) error {
	if out.State != StateDone {
		logging.Info("Flow cancelled")
		return nil
	}
	a := f.actions[out.Action]
	logging.Info("Running action handler", zap.String("action", a.Description))
	if a.Handler == nil {
		return nil
	}
	if err := a.Handler(out.Data); err != nil {
		return fmt.Errorf("action %q: %w", a.Description, err)
	}
	return nil
}
