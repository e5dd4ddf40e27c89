package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/muurk/fui/pkg/feeder"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(w Widget, s string) {
	for _, r := range s {
		w.Update(runes(string(r)))
	}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	upKey    = tea.KeyMsg{Type: tea.KeyUp}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	leftKey  = tea.KeyMsg{Type: tea.KeyLeft}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
	clearKey = tea.KeyMsg{Type: tea.KeyCtrlU}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func TestTextInputConsumesOnlyEdits(t *testing.T) {
	in := NewTextInput("")
	if res := in.Update(runes("a")); res.Consumed {
		t.Error("unfocused input should ignore keys")
	}

	in.Focus()
	if res := in.Update(runes("a")); !res.Consumed {
		t.Error("typing should be consumed")
	}
	if res := in.Update(enterKey); res.Consumed {
		t.Error("enter should be ignored")
	}
	if res := in.Update(rightKey); res.Consumed {
		t.Error("right at end of text should be ignored")
	}
	if res := in.Update(leftKey); !res.Consumed {
		t.Error("left inside text should be consumed")
	}
	if res := in.Update(leftKey); res.Consumed {
		t.Error("left at column 0 should be ignored")
	}
	if in.Value() != "a" {
		t.Errorf("Value() = %q, want %q", in.Value(), "a")
	}
}

func TestCheckboxToggle(t *testing.T) {
	c := NewCheckbox(true)
	if c.Raw() != "true" {
		t.Fatalf("Raw() = %q, want true", c.Raw())
	}

	c.Update(spaceKey)
	if !c.Checked() {
		t.Error("unfocused checkbox should not toggle")
	}

	c.Focus()
	if res := c.Update(spaceKey); !res.Consumed {
		t.Error("space should be consumed")
	}
	if c.Checked() || c.Raw() != "false" {
		t.Errorf("after toggle Checked() = %v, Raw() = %q", c.Checked(), c.Raw())
	}
	c.Update(runes("x"))
	if !c.Checked() {
		t.Error("x should toggle back")
	}
	if res := c.Update(enterKey); res.Consumed {
		t.Error("enter should be ignored")
	}
}

func TestSelectList(t *testing.T) {
	s := NewSelectList(3)
	if s.Index() != -1 {
		t.Errorf("empty Index() = %d, want -1", s.Index())
	}
	if _, ok := s.Remove(0); ok {
		t.Error("Remove on empty list should fail")
	}

	s.SetItems([]string{"a", "b", "c", "d"})
	if s.Up() {
		t.Error("Up at top should report false")
	}
	for i := 0; i < 3; i++ {
		if !s.Down() {
			t.Fatalf("Down %d should move", i)
		}
	}
	if s.Down() {
		t.Error("Down at bottom should report false")
	}
	if got, _ := s.Selected(); got != "d" {
		t.Errorf("Selected() = %q, want d", got)
	}

	removed, ok := s.Remove(s.Index())
	if !ok || removed != "d" {
		t.Errorf("Remove() = %q, %v", removed, ok)
	}
	if got, _ := s.Selected(); got != "c" {
		t.Errorf("highlight after removing last = %q, want c", got)
	}

	s.Append("e")
	if diff := cmp.Diff([]string{"a", "b", "c", "e"}, s.Items()); diff != "" {
		t.Errorf("Items() mismatch (-want +got):\n%s", diff)
	}
	if !s.Contains("e") || s.Contains("d") {
		t.Error("Contains() disagrees with Items()")
	}
}

func fruitFeeder() feeder.Feeder {
	return feeder.Strings("apple", "apricot", "banana")
}

func TestAutocompleteLiveFilter(t *testing.T) {
	a := NewAutocomplete(fruitFeeder())
	a.Focus()

	if diff := cmp.Diff([]string{"apple", "apricot", "banana"}, a.Candidates()); diff != "" {
		t.Errorf("initial candidates (-want +got):\n%s", diff)
	}

	typeText(a, "ap")
	if diff := cmp.Diff([]string{"apple", "apricot"}, a.Candidates()); diff != "" {
		t.Errorf("after typing (-want +got):\n%s", diff)
	}

	a.Update(clearKey)
	if a.Value() != "" || len(a.Candidates()) != 3 {
		t.Errorf("after clear Value() = %q, candidates = %v", a.Value(), a.Candidates())
	}
}

func TestAutocompleteWindow(t *testing.T) {
	a := NewAutocomplete(feeder.Strings("a1", "a2", "a3", "a4"), WithWindow(2))
	if diff := cmp.Diff([]string{"a1", "a2"}, a.Candidates()); diff != "" {
		t.Errorf("windowed candidates (-want +got):\n%s", diff)
	}
}

func TestAutocompleteSelectionMirrorsText(t *testing.T) {
	a := NewAutocomplete(fruitFeeder())
	a.Focus()
	typeText(a, "ap")

	if res := a.Update(upKey); res.Consumed {
		t.Error("up at the first candidate should be ignored")
	}

	a.Update(downKey)
	if a.Value() != "apple" {
		t.Errorf("first down: Value() = %q, want apple", a.Value())
	}
	a.Update(downKey)
	if a.Value() != "apricot" {
		t.Errorf("second down: Value() = %q, want apricot", a.Value())
	}
	if res := a.Update(downKey); res.Consumed {
		t.Error("down past the last candidate should be ignored")
	}
	a.Update(upKey)
	if a.Value() != "apple" {
		t.Errorf("up: Value() = %q, want apple", a.Value())
	}
	if diff := cmp.Diff([]string{"apple", "apricot"}, a.Candidates()); diff != "" {
		t.Errorf("browsing must not re-query (-want +got):\n%s", diff)
	}
}

func TestAutocompleteSubmitGate(t *testing.T) {
	var submitted []string
	onSubmit := OnSubmit(func(v string) tea.Cmd {
		submitted = append(submitted, v)
		return nil
	})

	a := NewAutocomplete(feeder.Strings("apple", "apricot"), onSubmit)
	a.Focus()
	typeText(a, "apri")
	if res := a.Update(enterKey); res.Consumed {
		t.Error("enter on a partial match should be ignored")
	}
	if len(submitted) != 0 {
		t.Fatalf("submitted %v before an exact match", submitted)
	}

	typeText(a, "cot")
	res := a.Update(enterKey)
	if !res.Consumed || !res.Submitted {
		t.Errorf("enter on exact match = %+v, want submitted", res)
	}
	if diff := cmp.Diff([]string{"apricot"}, submitted); diff != "" {
		t.Errorf("submitted (-want +got):\n%s", diff)
	}

	anything := NewAutocomplete(feeder.Strings("apple", "apricot"), SubmitAnything(), onSubmit)
	anything.Focus()
	typeText(anything, "zzz")
	if res := anything.Update(enterKey); !res.Submitted {
		t.Error("SubmitAnything should always submit")
	}
	if submitted[len(submitted)-1] != "zzz" {
		t.Errorf("last submitted = %q, want zzz", submitted[len(submitted)-1])
	}
}

func TestAutocompleteSetValue(t *testing.T) {
	a := NewAutocomplete(fruitFeeder())
	a.SetValue("ban")
	if diff := cmp.Diff([]string{"banana"}, a.Candidates()); diff != "" {
		t.Errorf("candidates after SetValue (-want +got):\n%s", diff)
	}
	if !a.AtEnd() {
		t.Error("SetValue should leave the cursor at the end")
	}
}

func selectText(m *Multiselect, s string) {
	typeText(m, s)
	m.Update(enterKey)
}

func TestMultiselectDuplicateGate(t *testing.T) {
	tests := []struct {
		name string
		opts []MultiselectOption
		want []string
	}{
		{"default", nil, []string{"apple"}},
		{"redundant", []MultiselectOption{RedundantSelection()}, []string{"apple", "apple"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMultiselect(fruitFeeder(), tt.opts...)
			m.Focus()
			selectText(m, "apple")
			selectText(m, "apple")
			if diff := cmp.Diff(tt.want, m.SelectedItems()); diff != "" {
				t.Errorf("SelectedItems() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMultiselectSelectItemsDropsRepeats(t *testing.T) {
	tests := []struct {
		name string
		opts []MultiselectOption
		want []string
	}{
		{"default", nil, []string{"apple", "banana"}},
		{"redundant", []MultiselectOption{RedundantSelection()}, []string{"apple", "apple", "banana"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMultiselect(fruitFeeder(), tt.opts...)
			m.SelectItems([]string{"apple", "apple", "banana"})
			if diff := cmp.Diff(tt.want, m.SelectedItems()); diff != "" {
				t.Errorf("SelectedItems() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMultiselectSelectGate(t *testing.T) {
	var selected []string
	m := NewMultiselect(fruitFeeder(), OnSelect(func(v string) tea.Cmd {
		selected = append(selected, v)
		return nil
	}))
	m.Focus()

	if res := m.Update(enterKey); !res.Consumed {
		t.Error("enter should always be consumed by the picker")
	}
	selectText(m, "kiwi")
	if len(selected) != 0 || len(m.SelectedItems()) != 0 {
		t.Errorf("unknown value selected: %v", selected)
	}
	m.Picker().SetValue("")

	selectText(m, "banana")
	if diff := cmp.Diff([]string{"banana"}, selected); diff != "" {
		t.Errorf("OnSelect calls (-want +got):\n%s", diff)
	}
	if m.Picker().Value() != "" {
		t.Errorf("picker text after select = %q, want empty", m.Picker().Value())
	}

	anything := NewMultiselect(fruitFeeder(), SelectAnything())
	anything.Focus()
	selectText(anything, "kiwi")
	if diff := cmp.Diff([]string{"kiwi"}, anything.SelectedItems()); diff != "" {
		t.Errorf("SelectAnything (-want +got):\n%s", diff)
	}
}

func TestMultiselectDeselect(t *testing.T) {
	var removed []string
	m := NewMultiselect(fruitFeeder(), OnDeselect(func(v string) tea.Cmd {
		removed = append(removed, v)
		return nil
	}))
	m.Focus()
	m.SelectItems([]string{"apple", "banana"})

	m.Update(rightKey)
	if !m.SelectedFocused() {
		t.Fatal("right at end of empty picker text should focus the selected list")
	}
	if res := m.Update(upKey); res.Consumed {
		t.Error("up at the top of the selected list should be ignored")
	}
	m.Update(downKey)
	if res := m.Update(enterKey); !res.Consumed {
		t.Error("enter in the selected list should be consumed")
	}
	if diff := cmp.Diff([]string{"banana"}, removed); diff != "" {
		t.Errorf("OnDeselect calls (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"apple"}, m.SelectedItems()); diff != "" {
		t.Errorf("SelectedItems() (-want +got):\n%s", diff)
	}

	m.Update(enterKey)
	m.Update(enterKey)
	if len(m.SelectedItems()) != 0 || len(removed) != 2 {
		t.Errorf("deselect on empty list fired: removed = %v", removed)
	}

	m.Update(leftKey)
	if m.SelectedFocused() || !m.Picker().Focused() {
		t.Error("left should focus the picker again")
	}
}

func TestMultiselectNavigationIsLocal(t *testing.T) {
	m := NewMultiselect(fruitFeeder())
	m.Focus()
	m.SelectItems([]string{"x", "y"})

	m.Update(downKey)
	if m.Picker().Value() != "apple" {
		t.Errorf("picker Value() = %q, want apple", m.Picker().Value())
	}
	if got, _ := m.selected.Selected(); got != "x" {
		t.Errorf("selected highlight moved to %q", got)
	}
}

func TestLabeledView(t *testing.T) {
	l := NewLabeled("name", "Your name", NewTextInput("Bob"))
	l.SetError("Field is required")

	view := l.View()
	for _, want := range []string{"name", ": Your name", "Bob", "Field is required"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	header := strings.SplitN(view, "\n", 2)[0]
	if idx := strings.Index(header, ": "); idx < 20 {
		t.Errorf("label column is %d wide, want at least 20: %q", idx, header)
	}

	l.SetError("")
	if strings.Contains(l.View(), "Field is required") {
		t.Error("empty error should clear the message")
	}
	if l.Inner.Value() != "Bob" {
		t.Errorf("Inner.Value() = %q", l.Inner.Value())
	}
}
