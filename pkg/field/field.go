package field

import (
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/fui/pkg/feeder"
	"github.com/muurk/fui/pkg/validators"
	"github.com/muurk/fui/pkg/widget"
)

// ErrInvalidRaw reports a raw value that cannot be decoded into the field
// type. It is an internal error, never a validation failure.
var ErrInvalidRaw = errors.New("invalid raw value")

// Checker validates a raw value of type T and returns the value stored in
// the form data.
type Checker[T any] func(raw T, vs []validators.Validator) (any, error)

// CheckString runs the validators on the text itself.
func CheckString(raw string, vs []validators.Validator) (any, error) {
	if err := validators.Run(vs, raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// CheckBool runs the validators on "true" or "false".
func CheckBool(raw bool, vs []validators.Validator) (any, error) {
	if err := validators.Run(vs, strconv.FormatBool(raw)); err != nil {
		return nil, err
	}
	return raw, nil
}

// CheckStrings runs the validators on every item. An empty list is checked
// once as the empty string, so Required rejects it.
func CheckStrings(raw []string, vs []validators.Validator) (any, error) {
	if len(raw) == 0 {
		if err := validators.Run(vs, ""); err != nil {
			return nil, err
		}
		return []string{}, nil
	}
	for _, item := range raw {
		if err := validators.Run(vs, item); err != nil {
			return nil, err
		}
	}
	return append([]string(nil), raw...), nil
}

// ParseBool decodes the literal form of a checkbox value.
func ParseBool(raw string) (bool, error) {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalidRaw, raw)
	}
	return b, nil
}

// FormField is anything a form can hold.
type FormField interface {
	Label() string
	Bind() Bound
}

// Bound is a field attached to its live widget.
type Bound interface {
	widget.Widget
	Label() string
	// Validate checks the widget's current value.
	Validate() (any, error)
	// SetError paints msg on the widget. An empty msg clears it.
	SetError(msg string)
	// Error returns the message currently painted.
	Error() string
}

// Field describes one typed form input.
type Field[T any, W widget.Widget] struct {
	label      string
	help       string
	initial    T
	validators []validators.Validator
	manager    WidgetManager[T, W]
	check      Checker[T]
}

// New creates a field managed by m and validated by check.
func New[T any, W widget.Widget](label string, m WidgetManager[T, W], check Checker[T]) *Field[T, W] {
	return &Field[T, W]{label: label, manager: m, check: check}
}

// Text creates a single-line text field.
func Text(label string) *Field[string, *widget.TextInput] {
	return New[string, *widget.TextInput](label, NewTextManager(), CheckString)
}

// Checkbox creates a boolean field.
func Checkbox(label string) *Field[bool, *widget.Checkbox] {
	return New[bool, *widget.Checkbox](label, NewCheckboxManager(), CheckBool)
}

// Autocomplete creates a text field completed from f.
func Autocomplete(label string, f feeder.Feeder, opts ...widget.AutocompleteOption) *Field[string, *widget.Autocomplete] {
	return New[string, *widget.Autocomplete](label, NewAutocompleteManager(f, opts...), CheckString)
}

// Multiselect creates a list field whose items are picked from f.
func Multiselect(label string, f feeder.Feeder, opts ...widget.MultiselectOption) *Field[[]string, *widget.Multiselect] {
	return New[[]string, *widget.Multiselect](label, NewMultiselectManager(f, opts...), CheckStrings)
}

// Label returns the key the field's value is stored under.
func (f *Field[T, W]) Label() string {
	return f.label
}

// Help sets the text shown next to the label.
func (f *Field[T, W]) Help(help string) *Field[T, W] {
	f.help = help
	return f
}

// Initial sets the value the widget starts with.
func (f *Field[T, W]) Initial(v T) *Field[T, W] {
	f.initial = v
	return f
}

// Validator appends v to the validator chain.
func (f *Field[T, W]) Validator(v validators.Validator) *Field[T, W] {
	f.validators = append(f.validators, v)
	return f
}

// Validate checks raw against the validator chain.
func (f *Field[T, W]) Validate(raw T) (any, error) {
	return f.check(raw, f.validators)
}

// Build builds the labeled widget for the field.
func (f *Field[T, W]) Build() *widget.Labeled[W] {
	return f.manager.BuildWidget(f.label, f.help, f.initial)
}

// Bind builds the widget and attaches the field to it.
func (f *Field[T, W]) Bind() Bound {
	return &bound[T, W]{field: f, view: f.Build()}
}

type bound[T any, W widget.Widget] struct {
	field *Field[T, W]
	view  *widget.Labeled[W]
}

func (b *bound[T, W]) Label() string { return b.field.label }

func (b *bound[T, W]) Validate() (any, error) {
	return b.field.Validate(b.field.manager.Value(b.view))
}

func (b *bound[T, W]) SetError(msg string) {
	b.field.manager.SetError(b.view, msg)
}

func (b *bound[T, W]) Error() string { return b.view.Error() }

func (b *bound[T, W]) Update(msg tea.Msg) widget.Result { return b.view.Update(msg) }

func (b *bound[T, W]) View() string { return b.view.View() }

func (b *bound[T, W]) Focus() tea.Cmd { return b.view.Focus() }

func (b *bound[T, W]) Blur() { b.view.Blur() }

func (b *bound[T, W]) Focused() bool { return b.view.Focused() }

func (b *bound[T, W]) SetWidth(width int) { b.view.SetWidth(width) }

// Widget returns the labeled widget of a bound field built by this package.
func Widget[T any, W widget.Widget](b Bound) (*widget.Labeled[W], bool) {
	bb, ok := b.(*bound[T, W])
	if !ok {
		return nil, false
	}
	return bb.view, true
}
