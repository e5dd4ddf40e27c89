// Package fui runs a small terminal application made of actions.
//
// Each action pairs a description with a form and a handler. The user picks
// an action by its description, fills in the form and submits it; the
// handler then receives the validated data. The flow is a state machine:
//
//	PickingAction --pick--> FillingForm(i) --submit--> Done(i, data)
//	PickingAction --cancel--> Cancelled
//	FillingForm(i) --cancel--> PickingAction (Cancelled with ExitOnFormCancel)
//
// ctrl+c cancels from any state. The handler runs exactly once, after the
// terminal program has exited, so its output is not lost to the alternate
// screen.
package fui
