// Package widget provides the interactive pieces forms are built from.
//
// Widgets wrap Bubble Tea components (bubbles/textinput, bubbles/list) and
// follow a single event convention: Update returns a Result telling the
// parent container whether the event was consumed. An ignored event is
// free for the container to act on, for example to move focus or submit
// the form. Callbacks registered on widgets run synchronously inside Update
// and hand back an optional tea.Cmd.
//
// Composite widgets keep typed references to their children, so callers
// reach an inner widget through a field (Labeled.Inner) or an accessor
// (Multiselect.Picker) rather than by position in a tree.
package widget
