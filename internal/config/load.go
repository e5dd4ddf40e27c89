package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/muurk/fui/pkg/feeder"
)

// Version is the actions file format understood by this package.
const Version = 1

// Load reads and validates the actions file at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read actions file: %w", err)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// LoadDefault reads the actions file from the default location.
func LoadDefault() (*Spec, error) {
	path, err := GetSpecPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get actions file path: %w", err)
	}
	return Load(path)
}

// Parse decodes and validates a spec.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse actions file: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the actions file for errors that would otherwise only show up
// while building the application. All problems are reported together.
func (s *Spec) Validate() error {
	var errs []error
	if s.Version != Version {
		errs = append(errs, invalid("version", "unsupported actions file version: %d (expected %d)", s.Version, Version))
	}
	if len(s.Actions) == 0 {
		errs = append(errs, invalid("actions", "at least one action is required"))
	}

	seen := make(map[string]bool)
	for i, a := range s.Actions {
		path := fmt.Sprintf("actions[%d]", i)
		if a.Description == "" {
			errs = append(errs, invalid(path, "description is required"))
		} else if seen[a.Description] {
			errs = append(errs, invalid(path, "duplicate description %q", a.Description))
		}
		seen[a.Description] = true

		labels := make(map[string]bool)
		for j, f := range a.Fields {
			fieldPath := fmt.Sprintf("%s.fields[%d]", path, j)
			if labels[f.Label] {
				errs = append(errs, invalid(fieldPath, "duplicate label %q", f.Label))
			}
			labels[f.Label] = true
			errs = append(errs, f.validate(fieldPath)...)
		}
	}
	return errors.Join(errs...)
}

func (f FieldSpec) validate(path string) []error {
	var errs []error
	if f.Label == "" {
		errs = append(errs, invalid(path, "label is required"))
	}

	switch f.Type {
	case TypeText, TypeCheckbox:
		if f.Feeder != nil {
			errs = append(errs, invalid(path, "%s fields take no feeder", f.Type))
		}
	case TypeAutocomplete, TypeMultiselect:
		if f.Feeder == nil {
			errs = append(errs, invalid(path, "%s fields need a feeder", f.Type))
		} else {
			errs = append(errs, f.Feeder.validate(path+".feeder")...)
		}
	default:
		errs = append(errs, invalid(path, "unknown field type %q", f.Type))
	}

	for k, v := range f.Validators {
		vpath := fmt.Sprintf("%s.validators[%d]", path, k)
		switch v.Name {
		case ValidatorRequired, ValidatorFileExists, ValidatorDirExists, ValidatorPathFree:
		case ValidatorOneOf:
			if len(v.Options) == 0 {
				errs = append(errs, invalid(vpath, "one_of needs at least one option"))
			}
		case ValidatorRegex:
			if _, err := regexp.Compile(v.Pattern); err != nil {
				errs = append(errs, invalid(vpath, "invalid regex: %v", err))
			}
		default:
			errs = append(errs, invalid(vpath, "unknown validator %q", v.Name))
		}
	}
	return errs
}

func (f *FeederSpec) validate(path string) []error {
	var errs []error
	switch f.Kind {
	case FeederList, FeederFuzzy:
		if len(f.Items) == 0 {
			errs = append(errs, invalid(path, "%s feeder needs items", f.Kind))
		}
	case FeederGlob, FeederWalk:
		if _, ok := feeder.ParseKind(f.Only); !ok {
			errs = append(errs, invalid(path, "unknown entry kind %q (expected all, dirs or files)", f.Only))
		}
	default:
		errs = append(errs, invalid(path, "unknown feeder kind %q", f.Kind))
	}
	return errs
}
