package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Status symbol styles
var (
	ActiveIconStyle = lipgloss.NewStyle().
			Foreground(ColorActive)

	CurrentIconStyle = lipgloss.NewStyle().
				Foreground(ColorCurrent)

	ResurrectableIconStyle = lipgloss.NewStyle().
				Foreground(ColorResurrectable)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Candidate list styles
var (
	ItemSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorSelected).
				Bold(true)

	ItemStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	LastUsedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	MatchStyle = lipgloss.NewStyle().
			Foreground(ColorMatch).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Filter input styles
var (
	FilterCursorStyle = lipgloss.NewStyle().
				Foreground(ColorMatch)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(ColorFilterPrompt)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// StatusStyle returns the style for a candidate status symbol
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "current":
		return CurrentIconStyle
	case "active":
		return ActiveIconStyle
	case "resurrectable":
		return ResurrectableIconStyle
	default:
		return NormalStyle
	}
}
