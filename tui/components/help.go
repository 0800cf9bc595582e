package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/vidpreset/tui/styles"
)

// HelpOverlay renders the help overlay showing all keybindings.
// The overlay is styled with the palette colors and grouped by function.
func HelpOverlay(width, height int) string {
	groups := []struct {
		title    string
		bindings []struct {
			key  string
			desc string
		}
	}{
		{
			title: "Video",
			bindings: []struct {
				key  string
				desc string
			}{
				{"O", "Pick a video file"},
				{"Enter / P", "Choose a preset to apply"},
				{"1", "Apply Split (60-second clips)"},
				{"2", "Apply Crop Square (1080x1080)"},
				{"3", "Apply Blur"},
				{"4", "Apply Enhance"},
			},
		},
		{
			title: "Outputs",
			bindings: []struct {
				key  string
				desc string
			}{
				{"J", "Select previous output"},
				{"K", "Select next output"},
			},
		},
		{
			title: "General",
			bindings: []struct {
				key  string
				desc string
			}{
				{"?", "Show/hide this help"},
				{"Esc", "Cancel picker or form"},
				{"q / Ctrl+C", "Quit application"},
			},
		},
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true).
		Padding(0, 1)

	groupStyle := lipgloss.NewStyle().
		Foreground(styles.Amber).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Blue).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.Paper)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keybindings"))
	b.WriteString("\n\n")

	for _, g := range groups {
		b.WriteString(" " + groupStyle.Render(g.title) + "\n")
		for _, binding := range g.bindings {
			b.WriteString(fmt.Sprintf("   %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-12s", binding.key)),
				descStyle.Render(binding.desc)))
		}
		b.WriteString("\n")
	}

	hintStyle := lipgloss.NewStyle().Foreground(styles.Fog).Italic(true)
	b.WriteString(hintStyle.Render(" Press any key to close"))

	return b.String()
}
