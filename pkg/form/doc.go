// Package form arranges bound fields into a navigable, submittable form.
//
// A Form validates every field in declared order when submitted. When all
// fields pass, the submit callback receives the collected Data. Otherwise
// each field's message is painted on its widget (fields that passed are
// cleared) and nothing else happens. Cancelling skips validation and runs
// the cancel callback.
//
// Keys: ctrl+f submits, esc cancels, tab and shift+tab cycle through the
// fields and the Cancel/Submit buttons. Up and down move focus when the
// focused field does not use them. With SubmitOnEnter, enter submits unless
// the focused field consumes it.
package form
