package widget

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Widget is an interactive, focusable view.
type Widget interface {
	// Update handles msg and reports whether it was consumed.
	Update(msg tea.Msg) Result
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

// Sizer is implemented by widgets that adapt to the available width.
type Sizer interface {
	SetWidth(width int)
}

// Result is the outcome of delivering an event to a widget.
//
// Cmd may be set on an ignored result (cursor blinking, for instance); the
// container should still run it.
type Result struct {
	Consumed  bool
	Submitted bool
	Cmd       tea.Cmd
}

// Ignored reports that the widget did not handle the event.
func Ignored() Result {
	return Result{}
}

// Consumed reports that the widget handled the event.
func Consumed(cmd tea.Cmd) Result {
	return Result{Consumed: true, Cmd: cmd}
}

// Submitted reports that the widget handled the event as a submission of
// its value. Containers configured to submit on enter treat it as a submit
// request.
func Submitted(cmd tea.Cmd) Result {
	return Result{Consumed: true, Submitted: true, Cmd: cmd}
}

// SetWidth resizes w if it supports resizing.
func SetWidth(w Widget, width int) {
	if s, ok := w.(Sizer); ok {
		s.SetWidth(width)
	}
}
