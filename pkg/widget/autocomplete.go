package widget

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/fui/pkg/feeder"
)

// DefaultWindow is the number of candidates an Autocomplete shows.
const DefaultWindow = 5

// AutocompleteOption configures an Autocomplete.
type AutocompleteOption func(*Autocomplete)

// WithWindow sets how many candidates are fetched and shown.
func WithWindow(n int) AutocompleteOption {
	return func(a *Autocomplete) {
		if n > 0 {
			a.window = n
		}
	}
}

// SubmitAnything lets enter submit text that matches no candidate.
func SubmitAnything() AutocompleteOption {
	return func(a *Autocomplete) {
		a.submitAnything = true
	}
}

// OnSubmit registers the callback run when enter submits the text.
func OnSubmit(fn func(value string) tea.Cmd) AutocompleteOption {
	return func(a *Autocomplete) {
		a.onSubmit = fn
	}
}

// Autocomplete is a text line with a live-filtered candidate list below it.
//
// Every edit re-queries the feeder from offset zero. Moving the highlight
// copies the candidate into the text without re-querying, so the window
// stays put while browsing. Enter submits only when submitting anything is
// allowed or the text equals one of the visible candidates; otherwise it is
// ignored.
type Autocomplete struct {
	input      *TextInput
	candidates *SelectList
	feeder     feeder.Feeder
	keys       KeyMap

	window         int
	submitAnything bool
	onSubmit       func(string) tea.Cmd

	// mirrored is set once the highlighted candidate has been copied into
	// the text since the last query.
	mirrored bool
}

// NewAutocomplete creates an autocomplete over f with empty text.
func NewAutocomplete(f feeder.Feeder, opts ...AutocompleteOption) *Autocomplete {
	a := &Autocomplete{
		feeder: f,
		keys:   DefaultKeyMap(),
		window: DefaultWindow,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.input = NewTextInput("")
	a.candidates = NewSelectList(a.window)
	a.refresh()
	return a
}

// Value returns the current text.
func (a *Autocomplete) Value() string {
	return a.input.Value()
}

// SetValue replaces the text and refreshes the candidates.
func (a *Autocomplete) SetValue(s string) {
	a.input.SetValue(s)
	a.refresh()
}

// Candidates returns the visible candidates.
func (a *Autocomplete) Candidates() []string {
	return a.candidates.Items()
}

// Highlighted returns the highlighted candidate.
func (a *Autocomplete) Highlighted() (string, bool) {
	return a.candidates.Selected()
}

// IsCandidate reports whether s is one of the visible candidates.
func (a *Autocomplete) IsCandidate(s string) bool {
	return a.candidates.Contains(s)
}

// CanSubmit reports whether enter would submit the current text.
func (a *Autocomplete) CanSubmit() bool {
	return a.submitAnything || a.IsCandidate(a.Value())
}

// AtEnd reports whether the text cursor is past the last rune.
func (a *Autocomplete) AtEnd() bool {
	return a.input.AtEnd()
}

// SetOnSubmit replaces the submit callback.
func (a *Autocomplete) SetOnSubmit(fn func(value string) tea.Cmd) {
	a.onSubmit = fn
}

func (a *Autocomplete) refresh() {
	a.candidates.SetItems(a.feeder.Query(a.input.Value(), 0, a.window))
	a.mirrored = false
}

func (a *Autocomplete) Update(msg tea.Msg) Result {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return a.input.Update(msg)
	}
	if !a.input.Focused() {
		return Ignored()
	}

	switch {
	case key.Matches(km, a.keys.Clear):
		a.SetValue("")
		return Consumed(nil)
	case key.Matches(km, a.keys.Up):
		return a.move(a.candidates.Up)
	case key.Matches(km, a.keys.Down):
		if !a.mirrored && a.candidates.Len() > 0 {
			return a.move(func() bool { return true })
		}
		return a.move(a.candidates.Down)
	case key.Matches(km, a.keys.Enter):
		if !a.CanSubmit() {
			return Ignored()
		}
		var cmd tea.Cmd
		if a.onSubmit != nil {
			cmd = a.onSubmit(a.Value())
		}
		return Submitted(cmd)
	}

	before := a.input.Value()
	res := a.input.Update(km)
	if a.input.Value() != before {
		a.refresh()
	}
	return res
}

// move runs step and mirrors the highlighted candidate into the text.
// It ignores the key when the highlight cannot move.
func (a *Autocomplete) move(step func() bool) Result {
	if !step() {
		return Ignored()
	}
	if s, ok := a.candidates.Selected(); ok {
		a.input.SetValue(s)
		a.mirrored = true
	}
	return Consumed(nil)
}

func (a *Autocomplete) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, a.input.View(), a.candidates.View())
}

func (a *Autocomplete) Focus() tea.Cmd {
	a.candidates.Focus()
	return a.input.Focus()
}

func (a *Autocomplete) Blur() {
	a.candidates.Blur()
	a.input.Blur()
}

func (a *Autocomplete) Focused() bool {
	return a.input.Focused()
}

func (a *Autocomplete) SetWidth(width int) {
	a.input.SetWidth(width)
	a.candidates.SetWidth(width)
}
