package output

import "github.com/charmbracelet/lipgloss"

// Color constants using ANSI 256-color palette.
// These provide a consistent color scheme across all formatters.
const (
	// ColorPrimary is used for primary elements like headers (bright blue).
	ColorPrimary = lipgloss.Color("39")

	// ColorSuccess is used for positive status indicators (green).
	ColorSuccess = lipgloss.Color("42")

	// ColorWarning is used for warning messages (orange/yellow).
	ColorWarning = lipgloss.Color("214")

	// ColorDanger is used for errors (red).
	ColorDanger = lipgloss.Color("196")

	// ColorMuted is used for less important or secondary text (gray).
	ColorMuted = lipgloss.Color("245")
)

// Box styles for containing grouped content.
var (
	// HeaderBox is the style for the header section containing load info.
	HeaderBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1).
			MarginBottom(1)

	// FooterBox is the style for the footer section containing summary info.
	FooterBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1).
			MarginTop(1)
)

// Text styles for individual elements.
var (
	// LabelStyle is for field labels.
	LabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// ValueStyle is for field values.
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	// SuccessStyle is for positive indicators.
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	// WarningStyle is for warnings.
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	// DangerStyle is for errors.
	DangerStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	// MutedStyle is for secondary text.
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// TableHeaderStyle is for table column headers.
	TableHeaderStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
)
