package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/muurk/fui/pkg/field"
	"github.com/muurk/fui/pkg/form"
	"github.com/muurk/fui/pkg/fui"
)

func TestGetConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if filepath.Base(configDir) != "fui" {
		t.Errorf("GetConfigDir() = %v, should end in 'fui'", configDir)
	}

	path, err := GetSpecPath()
	if err != nil {
		t.Fatalf("GetSpecPath() error = %v", err)
	}
	if filepath.Base(path) != "actions.yaml" {
		t.Errorf("GetSpecPath() should end with 'actions.yaml', got: %v", path)
	}
}

func TestParseExample(t *testing.T) {
	spec, err := Parse([]byte(Example))
	if err != nil {
		t.Fatalf("Parse(Example) error = %v", err)
	}
	if spec.Title != "File tools" || len(spec.Actions) != 3 {
		t.Fatalf("unexpected spec: %+v", spec)
	}

	compression := spec.Actions[0].Fields[1]
	want := []ValidatorSpec{{Name: ValidatorOneOf, Options: []string{"gzip", "bzip2", "xz", "none"}}}
	if diff := cmp.Diff(want, compression.Validators); diff != "" {
		t.Errorf("validators (-want +got):\n%s", diff)
	}

	regex := spec.Actions[2].Fields[0].Validators
	if len(regex) != 3 || regex[1].Name != ValidatorRegex || regex[1].Pattern == "" {
		t.Errorf("mixed validator list decoded as %+v", regex)
	}

	app, err := spec.Build(nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	var descs []string
	for _, a := range app.Actions() {
		descs = append(descs, a.Description)
	}
	if diff := cmp.Diff([]string{"Create archive", "Find file", "Make directory"}, descs); diff != "" {
		t.Errorf("actions (-want +got):\n%s", diff)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	spec := `
version: 2
actions:
  - description: a
    fields:
      - {type: slider, label: x}
      - {type: autocomplete, label: x}
      - type: text
        label: y
        validators: [required, {regex: "("}, shout]
  - description: a
`
	_, err := Parse([]byte(spec))
	if err == nil {
		t.Fatal("Parse() expected error")
	}
	if !IsValidationError(err) {
		t.Errorf("error should be a validation error: %v", err)
	}
	for _, want := range []string{
		"unsupported actions file version: 2",
		`actions[0].fields[0]: unknown field type "slider"`,
		`actions[0].fields[1]: duplicate label "x"`,
		"autocomplete fields need a feeder",
		"actions[0].fields[2].validators[1]: invalid regex",
		`unknown validator "shout"`,
		`actions[1]: duplicate description "a"`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q:\n%v", want, err)
		}
	}
}

func TestFeederSpecValidation(t *testing.T) {
	tests := []struct {
		name   string
		feeder FeederSpec
		want   string
	}{
		{"list without items", FeederSpec{Kind: FeederList}, "list feeder needs items"},
		{"bad only", FeederSpec{Kind: FeederGlob, Only: "sockets"}, `unknown entry kind "sockets"`},
		{"bad kind", FeederSpec{Kind: "ftp"}, `unknown feeder kind "ftp"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.feeder.validate("f")
			if len(errs) != 1 || !strings.Contains(errs[0].Error(), tt.want) {
				t.Errorf("validate() = %v, want %q", errs, tt.want)
			}
		})
	}
}

func TestBuildInitialValues(t *testing.T) {
	spec := `
version: 1
actions:
  - description: run
    fields:
      - {type: text, label: name, initial: Alice}
      - {type: checkbox, label: verbose, initial: true}
      - {type: checkbox, label: quiet, initial: "false"}
      - type: multiselect
        label: files
        initial: [a.txt, "b,c.txt"]
        select_anything: true
        feeder: {kind: fuzzy, items: [a.txt]}
`
	s, err := Parse([]byte(spec))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	fm, err := s.Actions[0].BuildForm()
	if err != nil {
		t.Fatalf("BuildForm() error = %v", err)
	}

	data, errs := fm.Validate()
	if errs != nil {
		t.Fatalf("Validate() errors = %v", errs)
	}
	want := map[string]any{
		"name":    "Alice",
		"verbose": true,
		"quiet":   false,
		"files":   []string{"a.txt", "b,c.txt"},
	}
	if diff := cmp.Diff(want, data.Map()); diff != "" {
		t.Errorf("data (-want +got):\n%s", diff)
	}
}

func TestBuildRejectsBadCheckboxInitial(t *testing.T) {
	spec := `
version: 1
actions:
  - description: run
    fields:
      - {type: checkbox, label: verbose, initial: "maybe"}
`
	s, err := Parse([]byte(spec))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	_, err = s.Build(nil)
	if !errors.Is(err, field.ErrInvalidRaw) {
		t.Errorf("Build() error = %v, want ErrInvalidRaw", err)
	}
}

func TestBuildWiresHandlers(t *testing.T) {
	s, err := Parse([]byte(Example))
	if err != nil {
		t.Fatal(err)
	}

	var called []string
	app, err := s.Build(func(a ActionSpec) fui.Handler {
		return func(form.Data) error {
			called = append(called, a.Description)
			return nil
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	m := fui.NewModel(app)
	m.Init()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Make directory")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.State() != fui.StateFillingForm || m.Current() != 2 {
		t.Fatalf("state = %v, current = %d", m.State(), m.Current())
	}

	if err := app.Actions()[2].Handler(form.Data{}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Make directory"}, called); diff != "" {
		t.Errorf("handlers (-want +got):\n%s", diff)
	}
}

func TestLoadAndWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "actions.yaml")

	if err := WriteFile(path, []byte(Example), false); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := WriteFile(path, []byte(Example), false); err == nil {
		t.Error("WriteFile() should refuse to overwrite")
	}
	if err := WriteFile(path, []byte(Example), true); err != nil {
		t.Errorf("WriteFile(overwrite) error = %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}

	spec, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(spec.Actions) != 3 {
		t.Errorf("Load() actions = %d", len(spec.Actions))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) expected error")
	}
}

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	path, err := GetSpecPath()
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte(Example), false); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDefault(); err != nil {
		t.Errorf("LoadDefault() error = %v", err)
	}
}
