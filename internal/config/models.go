package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Field types
const (
	TypeText         = "text"
	TypeCheckbox     = "checkbox"
	TypeAutocomplete = "autocomplete"
	TypeMultiselect  = "multiselect"
)

// Feeder kinds
const (
	FeederList  = "list"
	FeederFuzzy = "fuzzy"
	FeederGlob  = "glob"
	FeederWalk  = "walk"
)

// Spec is a whole application.
type Spec struct {
	Version          int          `yaml:"version"`
	Title            string       `yaml:"title,omitempty"`
	ExitOnFormCancel bool         `yaml:"exit_on_form_cancel,omitempty"`
	Actions          []ActionSpec `yaml:"actions"`
}

// ActionSpec describes one action and its form.
type ActionSpec struct {
	Description string      `yaml:"description"`
	Title       string      `yaml:"title,omitempty"` // Form heading, defaults to the description
	Fields      []FieldSpec `yaml:"fields,omitempty"`
}

// FieldSpec describes one form field.
type FieldSpec struct {
	Type       string          `yaml:"type"`
	Label      string          `yaml:"label"`
	Help       string          `yaml:"help,omitempty"`
	Initial    yaml.Node       `yaml:"initial,omitempty"` // Decoded according to Type
	Feeder     *FeederSpec     `yaml:"feeder,omitempty"`
	Validators []ValidatorSpec `yaml:"validators,omitempty"`
	Window     int             `yaml:"window,omitempty"` // Candidates shown by autocomplete/multiselect

	SubmitAnything     bool `yaml:"submit_anything,omitempty"`
	SelectAnything     bool `yaml:"select_anything,omitempty"`
	RedundantSelection bool `yaml:"redundant_selection,omitempty"`
}

// FeederSpec describes a candidate source.
type FeederSpec struct {
	Kind     string   `yaml:"kind"`
	Items    []string `yaml:"items,omitempty"`     // list and fuzzy
	Dir      string   `yaml:"dir,omitempty"`       // glob base or walk root; "~" is expanded
	Only     string   `yaml:"only,omitempty"`      // all, dirs or files
	Absolute bool     `yaml:"absolute,omitempty"`  // glob and walk
	NoHidden bool     `yaml:"no_hidden,omitempty"` // glob and walk
}

// Validator names
const (
	ValidatorRequired   = "required"
	ValidatorFileExists = "file_exists"
	ValidatorDirExists  = "dir_exists"
	ValidatorPathFree   = "path_free"
	ValidatorOneOf      = "one_of"
	ValidatorRegex      = "regex"
)

// ValidatorSpec names a validator and its argument. In YAML it is either a
// bare name ("required") or a single-key mapping ({one_of: [a, b]},
// {regex: "^x"}).
type ValidatorSpec struct {
	Name    string
	Options []string // one_of
	Pattern string   // regex
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *ValidatorSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		v.Name = node.Value
		return nil

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: validator mapping must have exactly one key", node.Line)
		}
		v.Name = node.Content[0].Value
		arg := node.Content[1]
		switch v.Name {
		case ValidatorOneOf:
			return arg.Decode(&v.Options)
		case ValidatorRegex:
			return arg.Decode(&v.Pattern)
		default:
			return fmt.Errorf("line %d: validator %q takes no argument", node.Line, v.Name)
		}
	}
	return fmt.Errorf("line %d: validator must be a name or a mapping", node.Line)
}

// MarshalYAML implements yaml.Marshaler.
func (v ValidatorSpec) MarshalYAML() (interface{}, error) {
	switch v.Name {
	case ValidatorOneOf:
		return map[string][]string{v.Name: v.Options}, nil
	case ValidatorRegex:
		return map[string]string{v.Name: v.Pattern}, nil
	}
	return v.Name, nil
}
