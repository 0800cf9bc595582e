package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/vidpreset/tui/styles"
)

// NoticeKind classifies a notice for styling.
type NoticeKind int

const (
	// NoticeNone means no notice is displayed.
	NoticeNone NoticeKind = iota
	// NoticeInfo is a neutral informational message.
	NoticeInfo
	// NoticeSuccess reports a completed run.
	NoticeSuccess
	// NoticeError reports a failed or rejected operation.
	NoticeError
)

// NoticeState holds the current user-facing notice.
type NoticeState struct {
	Kind NoticeKind
	Text string
}

// Set replaces the notice.
func (s *NoticeState) Set(kind NoticeKind, text string) {
	s.Kind = kind
	s.Text = text
}

// Clear removes the notice.
func (s *NoticeState) Clear() {
	s.Kind = NoticeNone
	s.Text = ""
}

// Notice renders the current notice in a bordered box, wrapped to fit.
// Returns "" when there is nothing to show.
func Notice(state NoticeState, width int) string {
	if state.Kind == NoticeNone || state.Text == "" || width < 10 {
		return ""
	}

	var style lipgloss.Style
	var title string
	switch state.Kind {
	case NoticeSuccess:
		style = lipgloss.NewStyle().Foreground(styles.Green)
		title = "Done"
	case NoticeError:
		style = lipgloss.NewStyle().Foreground(styles.Red)
		title = "Error"
	default:
		style = lipgloss.NewStyle().Foreground(styles.Cyan)
		title = "Notice"
	}

	innerWidth := width - 4
	if innerWidth < 6 {
		innerWidth = 6
	}

	wrapped := lipgloss.NewStyle().Width(innerWidth).Render(state.Text)
	var lines []string
	for _, line := range strings.Split(wrapped, "\n") {
		lines = append(lines, " "+style.Render(line))
	}

	return RenderInfoBox(title, lines, width)
}
