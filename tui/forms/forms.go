// Package forms provides huh-based form components for the TUI.
package forms

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/user/vidpreset/preset"
)

// NewPresetForm creates a huh select form for choosing a preset.
// The result pointer is bound to the select field value and holds the
// preset machine name on submit.
func NewPresetForm(value *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(preset.All))
	for _, p := range preset.All {
		label := fmt.Sprintf("%s: %s", p.Label(), p.Description())
		options = append(options, huh.NewOption(label, p.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Apply preset").
				Description("The video is processed by ffmpeg; the original file is untouched.").
				Options(options...).
				Value(value),
		),
	).WithTheme(Theme())
}

// NewConfirmQuitForm creates a huh confirm form asking the user whether to
// quit while a run is still in flight. The result pointer is bound to the
// confirm field value.
func NewConfirmQuitForm(quit *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Quit now?").
				Description("A run is still in progress. Quitting abandons it.").
				Affirmative("Yes, quit").
				Negative("No, keep running").
				Value(quit),
		),
	).WithTheme(Theme())
}
