// Package tui implements the interactive preset screen.
package tui

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/vidpreset/db"
	"github.com/user/vidpreset/engine"
	"github.com/user/vidpreset/preset"
	"github.com/user/vidpreset/run"
	"github.com/user/vidpreset/tui/components"
	"github.com/user/vidpreset/tui/forms"
	"github.com/user/vidpreset/tui/styles"
)

// historyLimit is how many recorded outputs are loaded on startup.
const historyLimit = 50

// videoTypes are the extensions the file picker offers.
var videoTypes = []string{".mp4", ".mov", ".mkv", ".webm", ".avi", ".m4v"}

// mode identifies which input surface currently owns key events.
type mode int

const (
	// modeNormal is the main screen.
	modeNormal mode = iota
	// modePicking shows the file picker.
	modePicking
	// modeChoosing shows the preset select form.
	modeChoosing
	// modeConfirmQuit shows the quit confirmation while a run is active.
	modeConfirmQuit
	// modeHelp shows the keybinding overlay.
	modeHelp
)

// runDoneMsg is sent when the background run goroutine finishes.
type runDoneMsg struct {
	rec run.Record
	err error
}

// Model is the Bubbletea model for the preset screen.
// It implements the tea.Model interface with Init, Update, and View methods.
type Model struct {
	// ctrl sequences runs and owns the busy gate and record list
	ctrl *run.Controller
	// mode is the active input surface
	mode mode
	// picker is the video file picker
	picker filepicker.Model
	// spin is the busy spinner shown while a run is in flight
	spin spinner.Model
	// form is the active huh form (preset select or quit confirm)
	form *huh.Form
	// chosenPreset is bound to the preset select form
	chosenPreset string
	// confirmQuit is bound to the quit confirm form
	confirmQuit bool
	// outputs holds the outputs list state
	outputs components.OutputsListState
	// notice holds the current user-facing notice
	notice components.NoticeState
	// running indicates a run is in flight
	running bool
	// runningLabel is the label of the in-flight preset
	runningLabel string
	// runStarted is when the in-flight run began
	runStarted time.Time
	// quitting flag to signal shutdown
	quitting bool
	// terminal width
	width int
	// terminal height
	height int
}

// NewModel creates a TUI model around a run controller, seeding the outputs
// list from previously recorded history.
func NewModel(ctrl *run.Controller, history []db.Output) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Cyan)

	m := &Model{
		ctrl: ctrl,
		spin: sp,
	}

	for _, o := range history {
		label := o.Preset
		if p, err := preset.Parse(o.Preset); err == nil {
			label = p.Label()
		}
		m.outputs.Items = append(m.outputs.Items, components.OutputItem{
			Preset:    label,
			Output:    o.OutputPath,
			CreatedAt: o.CreatedAt,
		})
	}

	return m
}

// Init initializes the model. It returns an optional command to run.
func (m *Model) Init() tea.Cmd {
	return nil
}

// runPresetCmd starts the transformation in a background goroutine and
// reports its outcome as a message. The controller's busy slot is already
// claimed by the model before this command is issued.
func runPresetCmd(ctrl *run.Controller, p preset.Preset) tea.Cmd {
	return func() tea.Msg {
		rec, err := ctrl.Start(context.Background(), p)
		return runDoneMsg{rec: rec, err: err}
	}
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.Height = msg.Height - 6
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case runDoneMsg:
		return m.finishRun(msg)
	}

	switch m.mode {
	case modeHelp:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.mode = modeNormal
		}
		return m, nil
	case modePicking:
		return m.updatePicker(msg)
	case modeChoosing, modeConfirmQuit:
		return m.updateForm(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleNormalKey(key)
	}

	return m, nil
}

// handleNormalKey handles key events on the main screen.
func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.running {
			// Confirm before abandoning an in-flight run
			m.confirmQuit = false
			m.form = forms.NewConfirmQuitForm(&m.confirmQuit)
			m.mode = modeConfirmQuit
			return m, m.form.Init()
		}
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.mode = modeHelp
		return m, nil

	case "o", "O":
		// Picking is allowed at any time, including while running;
		// the new selection only affects later runs.
		return m.openPicker()

	case "enter", "p", "P":
		return m.openPresetForm()

	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		return m.startRun(preset.All[idx])

	case "j", "J":
		m.outputs.MoveUp()
		return m, nil

	case "k", "K":
		m.outputs.MoveDown()
		return m, nil
	}

	return m, nil
}

// openPicker switches to the file picker.
func (m *Model) openPicker() (tea.Model, tea.Cmd) {
	fp := filepicker.New()
	fp.AllowedTypes = videoTypes
	fp.Height = m.height - 6
	if home, err := os.UserHomeDir(); err == nil {
		fp.CurrentDirectory = home
	}
	m.picker = fp
	m.mode = modePicking
	return m, m.picker.Init()
}

// updatePicker handles messages while the file picker is active.
// Esc cancels silently; a selection replaces the input wholesale.
func (m *Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.mode = modeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.ctrl.SetInput(path)
		m.notice.Set(components.NoticeInfo, "Selected "+filepath.Base(path))
		m.mode = modeNormal
		return m, nil
	}
	if didSelect, path := m.picker.DidSelectDisabledFile(msg); didSelect {
		m.notice.Set(components.NoticeError, filepath.Base(path)+" is not a video file.")
		return m, cmd
	}

	return m, cmd
}

// openPresetForm switches to the preset select form, applying the same
// guards as a direct run request.
func (m *Model) openPresetForm() (tea.Model, tea.Cmd) {
	if m.running {
		m.notice.Set(components.NoticeError, "A run is already in progress.")
		return m, nil
	}
	if m.ctrl.Input() == "" {
		m.notice.Set(components.NoticeError, "No video selected. Press o to pick one.")
		return m, nil
	}

	m.chosenPreset = preset.Split.String()
	m.form = forms.NewPresetForm(&m.chosenPreset)
	m.mode = modeChoosing
	return m, m.form.Init()
}

// updateForm handles messages while a huh form owns input.
// Esc cancels the form silently.
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.mode = modeNormal
		m.form = nil
		return m, nil
	}

	f, cmd := m.form.Update(msg)
	if pf, ok := f.(*huh.Form); ok {
		m.form = pf
	}

	switch m.form.State {
	case huh.StateCompleted:
		wasConfirm := m.mode == modeConfirmQuit
		m.mode = modeNormal
		m.form = nil
		if wasConfirm {
			if m.confirmQuit {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		p, err := preset.Parse(m.chosenPreset)
		if err != nil {
			m.notice.Set(components.NoticeError, err.Error())
			return m, nil
		}
		return m.startRun(p)

	case huh.StateAborted:
		m.mode = modeNormal
		m.form = nil
		return m, nil
	}

	return m, cmd
}

// startRun begins a transformation if the controller is idle and an input
// is selected. Rejections surface as notices and change no state.
func (m *Model) startRun(p preset.Preset) (tea.Model, tea.Cmd) {
	if m.running || m.ctrl.Active() != "" {
		m.notice.Set(components.NoticeError, "A run is already in progress.")
		return m, nil
	}
	if m.ctrl.Input() == "" {
		m.notice.Set(components.NoticeError, "No video selected. Press o to pick one.")
		return m, nil
	}

	m.running = true
	m.runningLabel = p.Label()
	m.runStarted = time.Now()
	m.notice.Clear()

	return m, tea.Batch(m.spin.Tick, runPresetCmd(m.ctrl, p))
}

// finishRun applies the outcome of a completed run.
func (m *Model) finishRun(msg runDoneMsg) (tea.Model, tea.Cmd) {
	m.running = false
	m.runningLabel = ""

	if msg.err != nil {
		if errors.Is(msg.err, engine.ErrTimeout) {
			m.notice.Set(components.NoticeError, "Run timed out before the engine finished.")
		} else {
			// ErrEngineFailed carries the truncated engine log.
			m.notice.Set(components.NoticeError, msg.err.Error())
		}
		return m, nil
	}

	m.outputs.Prepend(components.OutputItem{
		Preset:    msg.rec.Preset.Label(),
		Output:    msg.rec.Output,
		CreatedAt: msg.rec.CreatedAt,
	})
	m.notice.Set(components.NoticeSuccess, "Saved "+msg.rec.Output)
	return m, nil
}

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if m.mode == modeHelp {
		return components.HelpOverlay(m.width, m.height)
	}

	statusBar := components.StatusBar(components.StatusBarState{
		Input:  m.ctrl.Input(),
		Active: m.runningLabel,
		Count:  len(m.outputs.Items),
	}, m.width)

	switch m.mode {
	case modePicking:
		titleStyle := lipgloss.NewStyle().Foreground(styles.Magenta).Bold(true).Padding(0, 1)
		hintStyle := lipgloss.NewStyle().Foreground(styles.Fog).Italic(true).Padding(0, 1)
		return statusBar + "\n" +
			titleStyle.Render("Pick a video") + "\n" +
			hintStyle.Render("Esc cancels") + "\n\n" +
			m.picker.View()

	case modeChoosing, modeConfirmQuit:
		if m.form != nil {
			return statusBar + "\n\n" + m.form.View()
		}
	}

	var sections []string
	sections = append(sections, statusBar)

	if m.running {
		elapsed := time.Since(m.runStarted).Seconds()
		sections = append(sections, components.RunBox(m.runningLabel, m.spin.View(), elapsed, m.width))
	}

	sections = append(sections, components.OutputsList(m.outputs, m.width))

	if notice := components.Notice(m.notice, m.width); notice != "" {
		sections = append(sections, notice)
	}

	hintStyle := lipgloss.NewStyle().Foreground(styles.Fog)
	sections = append(sections, hintStyle.Render(" o: pick video  enter: apply preset  1-4: quick apply  ?: help  q: quit"))

	out := sections[0]
	for _, s := range sections[1:] {
		out += "\n" + s
	}
	return out
}

// Run loads recorded history and starts the Bubbletea program.
func Run(ctrl *run.Controller, database *sql.DB) error {
	var history []db.Output
	if database != nil {
		var err error
		history, err = db.ListOutputs(database, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to load output history: %w", err)
		}
	}

	p := tea.NewProgram(NewModel(ctrl, history), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
