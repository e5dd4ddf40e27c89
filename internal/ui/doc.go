// Package ui holds the shared look of fui: the colour palette, the styles
// applied by widgets and forms, terminal size helpers and a Printer for the
// "run once and exit" boxes shown after a program has finished.
//
// Widgets never build their own lipgloss styles. They pick one of the
// package-level styles so a form renders consistently regardless of which
// widgets it is made of.
//
// # Logging Integration
//
// Output produced here is meant for the user. Diagnostics go through
// internal/logging, which stays silent unless FUI_LOG_LEVEL is set, so the
// rendered form is never interleaved with log lines.
package ui
