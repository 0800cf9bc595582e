package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/vidpreset/pkg/timeutil"
	"github.com/user/vidpreset/tui/styles"
)

// RunBox renders a bordered info box for the in-flight run: spinner, preset
// label, and elapsed time. Returns "" when no run is active.
func RunBox(label, spinnerView string, elapsedSeconds float64, width int) string {
	if label == "" || width < 10 {
		return ""
	}

	textStyle := lipgloss.NewStyle().Foreground(styles.Paper)
	dimStyle := lipgloss.NewStyle().Foreground(styles.Fog)

	line := fmt.Sprintf(" %s %s", spinnerView, textStyle.Render("Applying "+label))
	elapsed := dimStyle.Render(fmt.Sprintf(" Elapsed: %s", timeutil.FormatTime(elapsedSeconds)))

	return RenderInfoBox("Running", []string{line, elapsed}, width)
}
