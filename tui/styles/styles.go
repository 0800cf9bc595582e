// Package styles provides Lipgloss styles for the TUI using the Tomorrow Night colour palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - Tomorrow Night (cool, muted) theme from Gogh
const (
	// Night is the main background colour (Tomorrow Night background)
	Night = lipgloss.Color("#1D1F21")
	// Charcoal is a secondary dark background (Tomorrow Night ANSI 0 black)
	Charcoal = lipgloss.Color("#161719")
	// Slate is the border/dim accent colour (Tomorrow Night selection grey)
	Slate = lipgloss.Color("#373B41")
	// Fog is a secondary text colour (Tomorrow Night comment grey)
	Fog = lipgloss.Color("#969896")
	// Paper is the primary text colour (Tomorrow Night foreground)
	Paper = lipgloss.Color("#C5C8C6")
	// Blue is used for highlights and focus states (Tomorrow Night ANSI 4)
	Blue = lipgloss.Color("#81A2BE")
	// Cyan is an accent colour for information and interactive elements (Tomorrow Night ANSI 6)
	Cyan = lipgloss.Color("#8ABEB7")
	// Amber is a warm accent for sub-headers (Tomorrow Night ANSI 3 yellow)
	Amber = lipgloss.Color("#F0C674")
	// Magenta is an accent colour for headers and special elements (Tomorrow Night ANSI 5)
	Magenta = lipgloss.Color("#B294BB")
	// Red is used for warnings and errors (Tomorrow Night ANSI 1)
	Red = lipgloss.Color("#CC6666")
	// Green is used for success messages (Tomorrow Night ANSI 2)
	Green = lipgloss.Color("#B5BD68")
)

// Pre-defined styles using the color palette

// Background is the main background style for the entire TUI
var Background = lipgloss.NewStyle().
	Background(Night)

// Panel is the style for content panels
var Panel = lipgloss.NewStyle().
	Background(Charcoal).
	Padding(1, 2)

// Border is the style for bordered panels
var Border = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Slate)

// Highlight is the style for selected/highlighted items
var Highlight = lipgloss.NewStyle().
	Background(Blue).
	Foreground(Charcoal).
	Bold(true)

// PrimaryText is the style for primary text content
var PrimaryText = lipgloss.NewStyle().
	Foreground(Paper)

// SecondaryText is the style for less prominent text
var SecondaryText = lipgloss.NewStyle().
	Foreground(Fog)

// Warning is the style for warning messages
var Warning = lipgloss.NewStyle().
	Foreground(Red).
	Bold(true)

// Success is the style for success messages
var Success = lipgloss.NewStyle().
	Foreground(Green).
	Bold(true)
