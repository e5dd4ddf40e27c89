package config

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/muurk/fui/pkg/feeder"
	"github.com/muurk/fui/pkg/field"
	"github.com/muurk/fui/pkg/form"
	"github.com/muurk/fui/pkg/fui"
	"github.com/muurk/fui/pkg/validators"
	"github.com/muurk/fui/pkg/widget"
)

// HandlerFactory returns the handler for an action of the file.
type HandlerFactory func(action ActionSpec) fui.Handler

// Build turns the actions file into a runnable application.
func (s *Spec) Build(handlers HandlerFactory, opts ...fui.Option) (*fui.Fui, error) {
	if s.Title != "" {
		opts = append([]fui.Option{fui.WithTitle(s.Title)}, opts...)
	}
	if s.ExitOnFormCancel {
		opts = append(opts, fui.ExitOnFormCancel())
	}
	app := fui.New(opts...)

	for i, a := range s.Actions {
		fm, err := a.BuildForm()
		if err != nil {
			return nil, fmt.Errorf("actions[%d]: %w", i, err)
		}
		var h fui.Handler
		if handlers != nil {
			h = handlers(a)
		}
		app.Action(a.Description, fm, h)
	}
	return app, nil
}

// BuildForm builds the form of the action.
func (a ActionSpec) BuildForm() (*form.Form, error) {
	title := a.Title
	if title == "" {
		title = a.Description
	}
	fm := form.New(form.WithTitle(title))
	for j, f := range a.Fields {
		ff, err := f.Build()
		if err != nil {
			return nil, fmt.Errorf("fields[%d]: %w", j, err)
		}
		fm.Field(ff)
	}
	return fm, nil
}

// Build builds the form field.
func (f FieldSpec) Build() (field.FormField, error) {
	vs, err := f.buildValidators()
	if err != nil {
		return nil, err
	}

	switch f.Type {
	case TypeText:
		var initial string
		if err := decodeInitial(f.Initial, &initial); err != nil {
			return nil, err
		}
		return configure(field.Text(f.Label), f.Help, initial, vs), nil

	case TypeCheckbox:
		initial, err := checkboxInitial(f.Initial)
		if err != nil {
			return nil, err
		}
		return configure(field.Checkbox(f.Label), f.Help, initial, vs), nil

	case TypeAutocomplete:
		fd, err := f.Feeder.Build()
		if err != nil {
			return nil, err
		}
		var opts []widget.AutocompleteOption
		if f.SubmitAnything {
			opts = append(opts, widget.SubmitAnything())
		}
		if f.Window > 0 {
			opts = append(opts, widget.WithWindow(f.Window))
		}
		var initial string
		if err := decodeInitial(f.Initial, &initial); err != nil {
			return nil, err
		}
		return configure(field.Autocomplete(f.Label, fd, opts...), f.Help, initial, vs), nil

	case TypeMultiselect:
		fd, err := f.Feeder.Build()
		if err != nil {
			return nil, err
		}
		var opts []widget.MultiselectOption
		if f.SelectAnything {
			opts = append(opts, widget.SelectAnything())
		}
		if f.RedundantSelection {
			opts = append(opts, widget.RedundantSelection())
		}
		if f.Window > 0 {
			opts = append(opts, widget.MultiselectWindow(f.Window))
		}
		var initial []string
		if err := decodeInitial(f.Initial, &initial); err != nil {
			return nil, err
		}
		return configure(field.Multiselect(f.Label, fd, opts...), f.Help, initial, vs), nil
	}
	return nil, invalid("", "unknown field type %q", f.Type)
}

func configure[T any, W widget.Widget](f *field.Field[T, W], help string, initial T, vs []validators.Validator) *field.Field[T, W] {
	f.Help(help).Initial(initial)
	for _, v := range vs {
		f.Validator(v)
	}
	return f
}

func decodeInitial(node yaml.Node, out any) error {
	if node.Kind == 0 {
		return nil
	}
	if err := node.Decode(out); err != nil {
		return fmt.Errorf("line %d: invalid initial value: %w", node.Line, err)
	}
	return nil
}

// checkboxInitial accepts a YAML boolean or its literal string form.
func checkboxInitial(node yaml.Node) (bool, error) {
	var raw any
	if err := decodeInitial(node, &raw); err != nil {
		return false, err
	}
	switch v := raw.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		return field.ParseBool(v)
	}
	return false, fmt.Errorf("line %d: %w: checkbox initial must be a boolean", node.Line, field.ErrInvalidRaw)
}

func (f FieldSpec) buildValidators() ([]validators.Validator, error) {
	vs := make([]validators.Validator, 0, len(f.Validators))
	for _, v := range f.Validators {
		switch v.Name {
		case ValidatorRequired:
			vs = append(vs, validators.Required)
		case ValidatorFileExists:
			vs = append(vs, validators.FileExists)
		case ValidatorDirExists:
			vs = append(vs, validators.DirExists)
		case ValidatorPathFree:
			vs = append(vs, validators.PathFree)
		case ValidatorOneOf:
			vs = append(vs, validators.OneOf(v.Options...))
		case ValidatorRegex:
			re, err := validators.Regex(v.Pattern)
			if err != nil {
				return nil, err
			}
			vs = append(vs, re)
		default:
			return nil, invalid("", "unknown validator %q", v.Name)
		}
	}
	return vs, nil
}

// Build builds the candidate source.
func (f *FeederSpec) Build() (feeder.Feeder, error) {
	if f == nil {
		return nil, invalid("", "feeder is required")
	}
	switch f.Kind {
	case FeederList:
		return feeder.NewList(f.Items), nil
	case FeederFuzzy:
		return feeder.NewFuzzy(f.Items...), nil
	}

	kind, ok := feeder.ParseKind(f.Only)
	if !ok {
		return nil, invalid("", "unknown entry kind %q", f.Only)
	}
	opts := []feeder.Option{feeder.OfKind(kind)}
	if f.Absolute {
		opts = append(opts, feeder.Absolute())
	}
	if f.NoHidden {
		opts = append(opts, feeder.NoHidden())
	}
	dir, err := homedir.Expand(f.Dir)
	if err != nil {
		return nil, fmt.Errorf("expanding feeder dir: %w", err)
	}

	switch f.Kind {
	case FeederGlob:
		if dir != "" {
			opts = append(opts, feeder.In(dir))
		}
		return feeder.NewDir(opts...), nil
	case FeederWalk:
		if dir == "" {
			dir = "."
		}
		return feeder.NewWalk(dir, opts...), nil
	}
	return nil, invalid("", "unknown feeder kind %q", f.Kind)
}
