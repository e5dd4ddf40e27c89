package field

import (
	"github.com/muurk/fui/pkg/feeder"
	"github.com/muurk/fui/pkg/widget"
)

// WidgetManager builds and reads the widget behind a field of type T.
type WidgetManager[T any, W widget.Widget] interface {
	// BuildWidget builds the labeled widget showing initial.
	BuildWidget(label, help string, initial T) *widget.Labeled[W]
	// Value reads the current value from a widget built by BuildWidget.
	Value(view *widget.Labeled[W]) T
	// SetError paints msg on the widget. An empty msg clears it.
	SetError(view *widget.Labeled[W], msg string)
	// BuildValueWidget builds only the value-bearing widget.
	BuildValueWidget(initial T) W
}

type labeler[T any, W widget.Widget] struct {
	build func(initial T) W
}

func (l labeler[T, W]) BuildWidget(label, help string, initial T) *widget.Labeled[W] {
	return widget.NewLabeled(label, help, l.build(initial))
}

func (l labeler[T, W]) SetError(view *widget.Labeled[W], msg string) {
	view.SetError(msg)
}

func (l labeler[T, W]) BuildValueWidget(initial T) W {
	return l.build(initial)
}

// TextManager manages single-line text entry.
type TextManager struct {
	labeler[string, *widget.TextInput]
}

// NewTextManager creates a TextManager.
func NewTextManager() TextManager {
	return TextManager{labeler[string, *widget.TextInput]{build: widget.NewTextInput}}
}

func (TextManager) Value(view *widget.Labeled[*widget.TextInput]) string {
	return view.Inner.Value()
}

// CheckboxManager manages boolean toggles.
type CheckboxManager struct {
	labeler[bool, *widget.Checkbox]
}

// NewCheckboxManager creates a CheckboxManager.
func NewCheckboxManager() CheckboxManager {
	return CheckboxManager{labeler[bool, *widget.Checkbox]{build: widget.NewCheckbox}}
}

func (CheckboxManager) Value(view *widget.Labeled[*widget.Checkbox]) bool {
	return view.Inner.Checked()
}

// AutocompleteManager manages text entry completed from a feeder.
type AutocompleteManager struct {
	labeler[string, *widget.Autocomplete]
}

// NewAutocompleteManager creates a manager building autocompletes over f.
func NewAutocompleteManager(f feeder.Feeder, opts ...widget.AutocompleteOption) AutocompleteManager {
	build := func(initial string) *widget.Autocomplete {
		a := widget.NewAutocomplete(f, opts...)
		if initial != "" {
			a.SetValue(initial)
		}
		return a
	}
	return AutocompleteManager{labeler[string, *widget.Autocomplete]{build: build}}
}

func (AutocompleteManager) Value(view *widget.Labeled[*widget.Autocomplete]) string {
	return view.Inner.Value()
}

// MultiselectManager manages lists of values picked from a feeder.
type MultiselectManager struct {
	labeler[[]string, *widget.Multiselect]
}

// NewMultiselectManager creates a manager building multiselects over f.
func NewMultiselectManager(f feeder.Feeder, opts ...widget.MultiselectOption) MultiselectManager {
	build := func(initial []string) *widget.Multiselect {
		m := widget.NewMultiselect(f, opts...)
		if len(initial) > 0 {
			m.SelectItems(initial)
		}
		return m
	}
	return MultiselectManager{labeler[[]string, *widget.Multiselect]{build: build}}
}

func (MultiselectManager) Value(view *widget.Labeled[*widget.Multiselect]) []string {
	return view.Inner.SelectedItems()
}
