package form

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/muurk/fui/internal/logging"
	"github.com/muurk/fui/pkg/feeder"
	"github.com/muurk/fui/pkg/field"
	"github.com/muurk/fui/pkg/validators"
	"github.com/muurk/fui/pkg/widget"
)

var (
	enterKey  = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey    = tea.KeyMsg{Type: tea.KeyTab}
	submitKey = tea.KeyMsg{Type: tea.KeyCtrlF}
	cancelKey = tea.KeyMsg{Type: tea.KeyEsc}
)

func typeText(f *Form, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func newProfileForm() *Form {
	return New(WithTitle("profile")).
		Field(field.Text("name").Validator(validators.Required)).
		Field(field.Checkbox("verbose").Initial(true))
}

func setText(t *testing.T, f *Form, label, value string) {
	t.Helper()
	b, ok := f.Bound(label)
	if !ok {
		t.Fatalf("no field %q", label)
	}
	view, ok := field.Widget[string, *widget.TextInput](b)
	if !ok {
		t.Fatalf("field %q is not a text field", label)
	}
	view.Inner.SetValue(value)
}

func TestValidateRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantData map[string]any
		wantErrs Errors
	}{
		{
			name:     "valid",
			value:    "Alice",
			wantData: map[string]any{"name": "Alice", "verbose": true},
		},
		{
			name:     "missing name",
			value:    "",
			wantData: map[string]any{},
			wantErrs: Errors{"name": validators.MsgRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProfileForm()
			setText(t, f, "name", tt.value)

			data, errs := f.Validate()
			if diff := cmp.Diff(tt.wantData, data.Map()); diff != "" {
				t.Errorf("data (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantErrs, errs); diff != "" {
				t.Errorf("errors (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	for _, value := range []string{"", "Alice"} {
		f := newProfileForm()
		setText(t, f, "name", value)

		d1, e1 := f.Validate()
		d2, e2 := f.Validate()
		if diff := cmp.Diff(d1.Map(), d2.Map()); diff != "" {
			t.Errorf("data changed between runs (-first +second):\n%s", diff)
		}
		if diff := cmp.Diff(e1, e2); diff != "" {
			t.Errorf("errors changed between runs (-first +second):\n%s", diff)
		}
	}
}

func TestSubmitPaintsAndClearsErrors(t *testing.T) {
	var got []Data
	f := newProfileForm().OnSubmit(func(d Data) tea.Cmd {
		got = append(got, d)
		return nil
	})
	f.Focus()

	if res := f.Update(submitKey); !res.Consumed || res.Cmd != nil {
		t.Errorf("failed submit = %+v, want consumed without command", res)
	}
	name, _ := f.Bound("name")
	if name.Error() != validators.MsgRequired {
		t.Errorf("name error = %q, want %q", name.Error(), validators.MsgRequired)
	}
	if len(got) != 0 {
		t.Fatalf("submit callback ran with invalid data: %v", got)
	}

	typeText(f, "Bob")
	f.Update(submitKey)
	if name.Error() != "" {
		t.Errorf("name error after fix = %q, want cleared", name.Error())
	}
	if len(got) != 1 || got[0].String("name") != "Bob" || !got[0].Bool("verbose") {
		t.Errorf("submitted data = %+v", got)
	}
}

func TestCancelSkipsValidation(t *testing.T) {
	cancelled := 0
	f := newProfileForm().OnCancel(func() tea.Cmd {
		cancelled++
		return nil
	})
	f.Focus()

	f.Update(cancelKey)
	if cancelled != 1 {
		t.Errorf("cancel callback ran %d times, want 1", cancelled)
	}
	name, _ := f.Bound("name")
	if name.Error() != "" {
		t.Errorf("cancel painted error %q", name.Error())
	}
}

func TestFocusCycle(t *testing.T) {
	submitted := false
	f := newProfileForm().OnSubmit(func(Data) tea.Cmd {
		submitted = true
		return nil
	})
	f.Focus()

	want := []int{1, 2, 3, 0}
	for i, w := range want {
		f.Update(tabKey)
		if f.FocusIndex() != w {
			t.Fatalf("after tab %d FocusIndex() = %d, want %d", i+1, f.FocusIndex(), w)
		}
	}

	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.FocusIndex() != 3 {
		t.Fatalf("shift+tab from first field = %d, want submit button", f.FocusIndex())
	}
	setText(t, f, "name", "Alice")
	f.Update(enterKey)
	if !submitted {
		t.Error("enter on the submit button should submit")
	}
}

func TestEnterMovesToNextField(t *testing.T) {
	f := newProfileForm()
	f.Focus()
	f.Update(enterKey)
	if f.FocusIndex() != 1 {
		t.Errorf("FocusIndex() = %d, want 1", f.FocusIndex())
	}
}

func TestSubmitOnEnter(t *testing.T) {
	var got []string
	f := New(SubmitOnEnter()).
		Field(field.Autocomplete("action", feeder.Strings("greet", "bye")).
			Validator(validators.OneOf("greet", "bye"))).
		OnSubmit(func(d Data) tea.Cmd {
			got = append(got, d.String("action"))
			return nil
		})
	f.Focus()

	typeText(f, "gre")
	f.Update(enterKey)
	action, _ := f.Bound("action")
	if action.Error() != validators.MsgOneOf || len(got) != 0 {
		t.Errorf("partial match: error = %q, submitted = %v", action.Error(), got)
	}

	typeText(f, "et")
	f.Update(enterKey)
	if diff := cmp.Diff([]string{"greet"}, got); diff != "" {
		t.Errorf("submitted actions (-want +got):\n%s", diff)
	}
}

func TestDataJSONKeepsFieldOrder(t *testing.T) {
	f := New().
		Field(field.Text("zeta").Initial("z")).
		Field(field.Checkbox("alpha")).
		Field(field.Multiselect("files", feeder.Strings("a")))

	data, errs := f.Validate()
	if errs != nil {
		t.Fatalf("errors = %v", errs)
	}

	raw, err := data.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"zeta":"z","alpha":false,"files":[]}`; string(raw) != want {
		t.Errorf("MarshalJSON() = %s, want %s", raw, want)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "files"}, data.Labels()); diff != "" {
		t.Errorf("Labels() (-want +got):\n%s", diff)
	}
}

func TestDuplicateLabelIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logging.SetLogger(zap.New(core))
	t.Cleanup(func() { logging.SetLogger(zap.NewNop()) })

	f := New().Field(field.Text("name")).Field(field.Text("name"))
	if logs.FilterMessage("Duplicate field label").Len() != 1 {
		t.Errorf("expected one duplicate label warning, got %v", logs.All())
	}
	if len(f.Labels()) != 2 {
		t.Errorf("Labels() = %v", f.Labels())
	}
}

func TestViewShowsFieldsAndButtons(t *testing.T) {
	f := newProfileForm()
	f.SetWidth(80)
	view := f.View()
	for _, want := range []string{"profile", "name", "verbose", "Cancel", "Submit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
