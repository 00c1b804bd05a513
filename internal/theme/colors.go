package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Candidate state colors
const (
	ColorActive        Color = "2"   // Green - session running
	ColorCurrent       Color = "99"  // Purple - the attached session
	ColorDirectory     Color = "250" // Default - plain directory
	ColorResurrectable Color = "3"   // Yellow - dead but restorable
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorFilterPrompt Color = "226" // Yellow - filter prompt
	ColorMatch        Color = "205" // Pink - fuzzy match highlight
	ColorSelected     Color = "236" // Dark gray - selected row background
)
