package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/user/vidpreset/engine"
	"github.com/user/vidpreset/preset"
	"github.com/user/vidpreset/run"
	"github.com/user/vidpreset/tui/components"
)

// countingEngine counts invocations without running anything.
type countingEngine struct {
	mu    sync.Mutex
	calls int
}

func (e *countingEngine) Run(ctx context.Context, args []string) (engine.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	return engine.Result{Success: true}, nil
}

func (e *countingEngine) callCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

func newTestModel(t *testing.T, eng run.Engine) *Model {
	t.Helper()
	ctrl := run.New(eng, t.TempDir())
	return NewModel(ctrl, nil)
}

func TestStartRunRejectedWhileRunning(t *testing.T) {
	eng := &countingEngine{}
	m := newTestModel(t, eng)
	m.ctrl.SetInput("/videos/a.mp4")
	m.running = true
	m.runningLabel = "Blur"

	_, cmd := m.startRun(preset.Enhance)
	if cmd != nil {
		t.Fatal("rejected run should not issue a command")
	}
	if eng.callCount() != 0 {
		t.Fatal("engine must not be invoked while another run is active")
	}
	if m.notice.Kind != components.NoticeError {
		t.Fatal("expected an error notice")
	}
	if !m.running || m.runningLabel != "Blur" {
		t.Fatal("run state must be unchanged by a rejected request")
	}
}

func TestStartRunRejectedWithoutInput(t *testing.T) {
	eng := &countingEngine{}
	m := newTestModel(t, eng)

	_, cmd := m.startRun(preset.Blur)
	if cmd != nil {
		t.Fatal("rejected run should not issue a command")
	}
	if m.notice.Kind != components.NoticeError {
		t.Fatal("expected an error notice")
	}
	if m.running {
		t.Fatal("model must stay idle")
	}
}

func TestStartRunEntersRunning(t *testing.T) {
	eng := &countingEngine{}
	m := newTestModel(t, eng)
	m.ctrl.SetInput("/videos/a.mp4")

	_, cmd := m.startRun(preset.CropSquare)
	if cmd == nil {
		t.Fatal("accepted run should issue commands")
	}
	if !m.running || m.runningLabel != "Crop Square" {
		t.Fatalf("expected running state with label, got running=%v label=%q", m.running, m.runningLabel)
	}
}

func TestFinishRunSuccessPrependsOutput(t *testing.T) {
	m := newTestModel(t, &countingEngine{})
	m.running = true
	m.runningLabel = "Blur"

	rec := run.Record{
		Preset:    preset.Blur,
		Output:    "/out/blur_20260826_101500.mp4",
		CreatedAt: time.Now(),
	}
	m.finishRun(runDoneMsg{rec: rec})

	if m.running {
		t.Fatal("model should return to idle")
	}
	if len(m.outputs.Items) != 1 || m.outputs.Items[0].Output != rec.Output {
		t.Fatalf("output not prepended: %+v", m.outputs.Items)
	}
	if m.notice.Kind != components.NoticeSuccess {
		t.Fatal("expected a success notice")
	}
}

func TestFinishRunFailureKeepsOutputs(t *testing.T) {
	m := newTestModel(t, &countingEngine{})
	m.running = true

	log := engine.TruncateLog(strings.Repeat("x", 5000))
	m.finishRun(runDoneMsg{err: fmt.Errorf("%w: %s", run.ErrEngineFailed, log)})

	if m.running {
		t.Fatal("model should return to idle after failure")
	}
	if len(m.outputs.Items) != 0 {
		t.Fatal("failed run must not add an output")
	}
	if m.notice.Kind != components.NoticeError {
		t.Fatal("expected an error notice")
	}
	// The notice carries at most the first 2000 characters of the log.
	if strings.Count(m.notice.Text, "x") != engine.MaxLogChars {
		t.Fatalf("notice should carry the truncated log, got %d chars", strings.Count(m.notice.Text, "x"))
	}
}

func TestFinishRunTimeoutNotice(t *testing.T) {
	m := newTestModel(t, &countingEngine{})
	m.running = true

	m.finishRun(runDoneMsg{err: engine.ErrTimeout})

	if m.notice.Kind != components.NoticeError {
		t.Fatal("expected an error notice")
	}
	if !strings.Contains(m.notice.Text, "timed out") {
		t.Fatalf("timeout should be reported distinctly, got %q", m.notice.Text)
	}
}
