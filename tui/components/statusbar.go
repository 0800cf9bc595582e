package components

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/vidpreset/tui/styles"
)

// StatusBarState holds the state for the status bar.
type StatusBarState struct {
	// Input is the selected input reference, empty when none is picked
	Input string
	// Active is the in-flight preset label, empty when idle
	Active string
	// Count is the number of recorded outputs
	Count int
}

// StatusBar renders the status bar component.
// The left side shows the selected video; the right side shows the run
// state and the output count.
func StatusBar(state StatusBarState, width int) string {
	var inputStr string
	if state.Input == "" {
		inputStr = "No video selected"
	} else {
		inputStr = filepath.Base(state.Input)
	}

	var runStr string
	if state.Active != "" {
		runStr = "Running: " + state.Active
	} else {
		runStr = "Idle"
	}

	leftContent := fmt.Sprintf(" ▶ %s", inputStr)
	rightContent := fmt.Sprintf("%s | Outputs: %d ", runStr, state.Count)

	// Calculate padding between left and right content
	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(rightContent)
	padding := width - leftWidth - rightWidth
	if padding < 0 {
		padding = 0
	}

	content := leftContent + strings.Repeat(" ", padding) + rightContent

	statusBarStyle := lipgloss.NewStyle().
		Background(styles.Charcoal).
		Foreground(styles.Paper).
		Bold(true).
		Width(width)

	return statusBarStyle.Render(content)
}
