package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/vidpreset/tui/styles"
)

// OutputItem represents one recorded output in the list.
type OutputItem struct {
	// Preset is the human-readable preset label
	Preset string
	// Output is the destination path or sequence pattern
	Output string
	// CreatedAt is when the output was produced
	CreatedAt time.Time
}

// OutputsListState holds the state for the outputs list component.
type OutputsListState struct {
	// Items is the list of recorded outputs, most recent first
	Items []OutputItem
	// SelectedIndex is the currently selected item index
	SelectedIndex int
	// ScrollOffset is the scroll position
	ScrollOffset int
}

// MoveUp moves the selection one row up, clamping at the top.
func (s *OutputsListState) MoveUp() {
	if s.SelectedIndex > 0 {
		s.SelectedIndex--
	}
}

// MoveDown moves the selection one row down, clamping at the bottom.
func (s *OutputsListState) MoveDown() {
	if s.SelectedIndex < len(s.Items)-1 {
		s.SelectedIndex++
	}
}

// Prepend inserts a new item at the head of the list and keeps the
// selection on the same logical row.
func (s *OutputsListState) Prepend(item OutputItem) {
	s.Items = append([]OutputItem{item}, s.Items...)
	if s.SelectedIndex > 0 {
		s.SelectedIndex++
	}
}

// tableRows is the fixed number of rows in the table (excluding header).
const tableRows = 8

// OutputsList renders the recorded outputs as a fixed-height table,
// most recent first, inside a bordered box.
func OutputsList(state OutputsListState, width int) string {
	var lines []string

	headerStyle := lipgloss.NewStyle().
		Foreground(styles.Fog).
		Bold(true).
		Underline(true)

	// Column widths (When: 16, Preset: 12, Output: rest)
	whenWidth := 16
	presetWidth := 12
	pathWidth := width - whenWidth - presetWidth - 8
	if pathWidth < 10 {
		pathWidth = 10
	}

	header := fmt.Sprintf(" %-*s %-*s %-*s",
		whenWidth, "When",
		presetWidth, "Preset",
		pathWidth, "Output")
	lines = append(lines, headerStyle.Render(header))

	if len(state.Items) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(styles.Slate).
			Italic(true)
		lines = append(lines, emptyStyle.Render(" No outputs yet. Pick a video and apply a preset."))
		for i := 1; i < tableRows; i++ {
			lines = append(lines, "")
		}
		return RenderInfoBox("Outputs", lines, width)
	}

	// Keep the selected item visible within the fixed rows
	if state.SelectedIndex < state.ScrollOffset {
		state.ScrollOffset = state.SelectedIndex
	} else if state.SelectedIndex >= state.ScrollOffset+tableRows {
		state.ScrollOffset = state.SelectedIndex - tableRows + 1
	}
	if state.ScrollOffset < 0 {
		state.ScrollOffset = 0
	}
	maxOffset := len(state.Items) - tableRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if state.ScrollOffset > maxOffset {
		state.ScrollOffset = maxOffset
	}

	rowStyle := lipgloss.NewStyle().Foreground(styles.Paper)
	selectedStyle := lipgloss.NewStyle().
		Background(styles.Blue).
		Foreground(styles.Charcoal).
		Bold(true)

	for i := state.ScrollOffset; i < len(state.Items) && i < state.ScrollOffset+tableRows; i++ {
		item := state.Items[i]

		path := item.Output
		if len(path) > pathWidth {
			path = "..." + path[len(path)-pathWidth+3:]
		}

		row := fmt.Sprintf(" %-*s %-*s %-*s",
			whenWidth, item.CreatedAt.Local().Format("2006-01-02 15:04"),
			presetWidth, item.Preset,
			pathWidth, path)

		if i == state.SelectedIndex {
			lines = append(lines, selectedStyle.Render(row))
		} else {
			lines = append(lines, rowStyle.Render(row))
		}
	}

	// Pad to the fixed height
	for len(lines) < tableRows+1 {
		lines = append(lines, "")
	}

	title := fmt.Sprintf("Outputs (%d)", len(state.Items))
	return RenderInfoBox(title, lines, width)
}
