package fui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/fui/pkg/form"
	"github.com/muurk/fui/pkg/widget"
)

// formModel runs a single form without the action picker.
type formModel struct {
	form    *form.Form
	keys    widget.KeyMap
	outcome *Outcome
}

func newFormModel(fm *form.Form) *formModel {
	m := &formModel{form: fm, keys: widget.DefaultKeyMap()}
	fm.OnSubmit(func(d form.Data) tea.Cmd { return m.finish(StateDone, d) }).
		OnCancel(func() tea.Cmd { return m.finish(StateCancelled, form.Data{}) })
	return m
}

func (m *formModel) finish(state State, data form.Data) tea.Cmd {
	if m.outcome != nil {
		return nil
	}
	m.outcome = &Outcome{State: state, Data: data}
	return tea.Quit
}

func (m *formModel) Init() tea.Cmd {
	return m.form.Focus()
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Quit) {
		return m, m.finish(StateCancelled, form.Data{})
	}
	if m.outcome != nil {
		return m, nil
	}
	return m, m.form.Update(msg).Cmd
}

func (m *formModel) View() string {
	if m.outcome != nil {
		return ""
	}
	return m.form.View()
}

// RunForm shows a single form and returns its data. ok is false when the
// user cancelled.
func RunForm(fm *form.Form, opts ...tea.ProgramOption) (data form.Data, ok bool, err error) {
	m := newFormModel(fm)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return form.Data{}, false, fmt.Errorf("running terminal program: %w", err)
	}
	if m.outcome == nil || m.outcome.State != StateDone {
		return form.Data{}, false, nil
	}
	return m.outcome.Data, true, nil
}
