package widget

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/muurk/fui/internal/ui"
)

// Labeled decorates a widget with a label column, help text and an error
// line. Inner is the typed handle to the decorated widget.
type Labeled[W Widget] struct {
	Inner W

	label string
	help  string
	err   string
}

// NewLabeled wraps inner.
func NewLabeled[W Widget](label, help string, inner W) *Labeled[W] {
	return &Labeled[W]{Inner: inner, label: label, help: help}
}

func (l *Labeled[W]) Label() string {
	return l.label
}

func (l *Labeled[W]) Help() string {
	return l.help
}

// SetError shows msg under the widget. An empty msg clears it.
func (l *Labeled[W]) SetError(msg string) {
	l.err = msg
}

func (l *Labeled[W]) Error() string {
	return l.err
}

func (l *Labeled[W]) Update(msg tea.Msg) Result {
	return l.Inner.Update(msg)
}

// View renders the header line, the widget, the error line and a spacer.
func (l *Labeled[W]) View() string {
	var b strings.Builder

	label := runewidth.FillRight(l.label, ui.LabelWidth)
	if l.Inner.Focused() {
		b.WriteString(ui.FocusedLabelStyle.Render(label))
	} else {
		b.WriteString(ui.LabelStyle.Render(label))
	}
	b.WriteString(": ")
	b.WriteString(ui.HelpStyle.Render(l.help))
	b.WriteString("\n")

	b.WriteString(l.Inner.View())
	b.WriteString("\n")

	b.WriteString(ui.FieldErrorStyle.Render(l.err))
	b.WriteString("\n")
	return b.String()
}

func (l *Labeled[W]) Focus() tea.Cmd {
	return l.Inner.Focus()
}

func (l *Labeled[W]) Blur() {
	l.Inner.Blur()
}

func (l *Labeled[W]) Focused() bool {
	return l.Inner.Focused()
}

func (l *Labeled[W]) SetWidth(width int) {
	SetWidth(l.Inner, width)
}
