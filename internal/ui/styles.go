package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - titles, focus, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - highlighted candidates
	ErrorColor   = lipgloss.Color("#FF5555") // Red - validation errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - selected items
	MutedColor   = lipgloss.Color("#626262") // Gray - help text, hints
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	DefaultPadding   = 2   // Default padding inside boxes
	LabelWidth       = 20  // Column reserved for field labels
)

// Form styles
var (
	// TitleStyle renders a form title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	// LabelStyle renders the label column of an unfocused field.
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// FocusedLabelStyle renders the label column of the focused field.
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// HelpStyle renders a field's help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// FieldErrorStyle renders the error line under a field.
	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// CandidateStyle renders an entry of a candidate list.
	CandidateStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(TextColor)

	// HighlightedCandidateStyle renders the highlighted candidate.
	HighlightedCandidateStyle = lipgloss.NewStyle().
					Foreground(SuccessColor).
					Bold(true)

	// SelectedItemStyle renders entries already picked in a multiselect.
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(WarningColor)

	// PaneTitleStyle renders the headers above multiselect panes.
	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Bold(true)

	// ButtonStyle renders an unfocused form button.
	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 2)

	// FocusedButtonStyle renders the focused form button.
	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 2)

	// FooterStyle renders the key help line.
	FooterStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			MarginTop(1)

	// SuccessTitleStyle is for the success result title
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// ResultKeyStyle is for result detail keys
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(LabelWidth)

	// ResultValueStyle is for result detail values
	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)
)

// Markers
const (
	CursorMarker   = "→ "
	SuccessMarker  = "✓"
	FailureMarker  = "✗"
	CheckedMarker  = "[x]"
	UncheckedBox   = "[ ]"
	SelectedMarker = "• "
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _ := GetTerminalSize()
	return width
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24 // Default fallback
	}
	return ClampWidth(width), height
}

// ClampWidth bounds a terminal width to the supported range.
func ClampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// IsTerminal reports whether stdin and stdout are both attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ContainerStyle returns the rounded box a form is drawn in.
func ContainerStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width-2). // Account for border characters
		Padding(0, 1)
}

// SuccessBoxStyle returns the border style for success result boxes
func SuccessBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(SuccessColor).
		Width(width-2).
		Padding(1, 2)
}

// ErrorBoxStyle returns the border style for error result boxes
func ErrorBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width-2).
		Padding(1, 2)
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	if width < 0 {
		width = 0
	}
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}
