package fui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/fui/internal/logging"
	"github.com/muurk/fui/pkg/feeder"
	"github.com/muurk/fui/pkg/field"
	"github.com/muurk/fui/pkg/form"
	"github.com/muurk/fui/pkg/validators"
	"github.com/muurk/fui/pkg/widget"
)

// State is a step of the action flow.
type State int

const (
	StatePickingAction State = iota
	StateFillingForm
	StateDone
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StatePickingAction:
		return "picking-action"
	case StateFillingForm:
		return "filling-form"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Outcome is how a flow ended. Action and Data are set for StateDone.
type Outcome struct {
	State  State
	Action int
	Data   form.Data
}

// pickerLabel is the field label of the action picker.
const pickerLabel = "action"

const maxPickerWindow = 10

// Model is the tea.Model driving the flow.
type Model struct {
	fui     *Fui
	picker  *form.Form
	state   State
	current int
	keys    widget.KeyMap

	// outcome is written once, when the flow reaches a terminal state.
	outcome *Outcome
}

// NewModel builds the picker and takes over the callbacks of every action
// form.
func NewModel(f *Fui) *Model {
	m := &Model{fui: f, keys: widget.DefaultKeyMap(), current: -1}

	descriptions := make([]string, len(f.actions))
	for i, a := range f.actions {
		descriptions[i] = a.Description
	}
	window := len(descriptions)
	if window < widget.DefaultWindow {
		window = widget.DefaultWindow
	}
	if window > maxPickerWindow {
		window = maxPickerWindow
	}

	m.picker = form.New(form.WithTitle(f.title), form.SubmitOnEnter()).
		Field(field.Autocomplete(pickerLabel, feeder.NewList(descriptions), widget.WithWindow(window)).
			Help("Pick action").
			Validator(validators.OneOf(descriptions...))).
		OnSubmit(m.pick).
		OnCancel(func() tea.Cmd { return m.finish(StateCancelled, -1, form.Data{}) })

	for i, a := range f.actions {
		if a.Form == nil {
			continue
		}
		i := i
		a.Form.
			OnSubmit(func(d form.Data) tea.Cmd { return m.finish(StateDone, i, d) }).
			OnCancel(m.formCancelled)
	}
	return m
}

// State returns the current step.
func (m *Model) State() State {
	return m.state
}

// Current returns the index of the action being filled in, or -1.
func (m *Model) Current() int {
	return m.current
}

// Outcome returns the terminal result once the flow has ended.
func (m *Model) Outcome() (Outcome, bool) {
	if m.outcome == nil {
		return Outcome{}, false
	}
	return *m.outcome, true
}

func (m *Model) Init() tea.Cmd {
	return m.picker.Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.picker.SetWidth(msg.Width)
		for _, a := range m.fui.actions {
			if a.Form != nil {
				a.Form.SetWidth(msg.Width)
			}
		}
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if key.Matches(msg, m.keys.Quit) {
			return m, m.finish(StateCancelled, -1, form.Data{})
		}
	}

	switch m.state {
	case StatePickingAction:
		return m, m.picker.Update(msg).Cmd
	case StateFillingForm:
		return m, m.fui.actions[m.current].Form.Update(msg).Cmd
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.state {
	case StatePickingAction:
		return m.picker.View()
	case StateFillingForm:
		return m.fui.actions[m.current].Form.View()
	}
	return ""
}

// pick handles a valid picker submission.
func (m *Model) pick(d form.Data) tea.Cmd {
	description := d.String(pickerLabel)
	for i, a := range m.fui.actions {
		if a.Description != description {
			continue
		}
		if a.Form == nil {
			// Nothing to fill in.
			return m.finish(StateDone, i, form.Data{})
		}
		m.picker.Blur()
		m.transition(StateFillingForm, i)
		return a.Form.Focus()
	}
	return nil
}

func (m *Model) formCancelled() tea.Cmd {
	if m.fui.exitOnFormCancel {
		return m.finish(StateCancelled, -1, form.Data{})
	}
	m.fui.actions[m.current].Form.Blur()
	m.transition(StatePickingAction, -1)
	return m.picker.Focus()
}

func (m *Model) transition(to State, action int) {
	desc := ""
	if action >= 0 {
		desc = m.fui.actions[action].Description
	}
	logging.LogTransition(m.state.String(), to.String(), desc)
	m.state = to
	m.current = action
}

// finish records the outcome and quits the program. Later calls are no-ops.
func (m *Model) finish(state State, action int, data form.Data) tea.Cmd {
	if m.outcome != nil {
		return nil
	}
	m.outcome = &Outcome{State: state, Action: action, Data: data}
	m.transition(state, action)
	return tea.Quit
}
