package run

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/user/vidpreset/db"
	"github.com/user/vidpreset/engine"
	"github.com/user/vidpreset/preset"
)

// fakeEngine records invocations and returns a canned result. When block is
// non-nil, Run waits on it after signalling entered.
type fakeEngine struct {
	mu      sync.Mutex
	calls   int
	args    []string
	result  engine.Result
	err     error
	entered chan struct{}
	block   chan struct{}
}

func (f *fakeEngine) Run(ctx context.Context, args []string) (engine.Result, error) {
	f.mu.Lock()
	f.calls++
	f.args = args
	f.mu.Unlock()

	if f.entered != nil {
		close(f.entered)
	}
	if f.block != nil {
		<-f.block
	}
	return f.result, f.err
}

func (f *fakeEngine) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newController(t *testing.T, eng Engine) *Controller {
	t.Helper()
	c := New(eng, filepath.Join(t.TempDir(), "output"))
	c.Now = func() time.Time {
		return time.Date(2026, 8, 26, 10, 15, 0, 0, time.UTC)
	}
	return c
}

func TestStartSuccessAppendsRecord(t *testing.T) {
	eng := &fakeEngine{result: engine.Result{Success: true, Log: "ok"}}
	c := newController(t, eng)
	c.SetInput("/videos/a.mp4")

	rec, err := c.Start(context.Background(), preset.Blur)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if rec.Stamp != "20260826_101500" {
		t.Fatalf("unexpected stamp: %q", rec.Stamp)
	}
	if filepath.Base(rec.Output) != "blur_20260826_101500.mp4" {
		t.Fatalf("unexpected output: %q", rec.Output)
	}

	records := c.Records()
	if len(records) != 1 || records[0].Output != rec.Output {
		t.Fatalf("record not appended: %+v", records)
	}
	if c.Active() != "" {
		t.Fatalf("controller should return to idle, active = %q", c.Active())
	}
}

func TestStartOrdersRecordsMostRecentFirst(t *testing.T) {
	eng := &fakeEngine{result: engine.Result{Success: true}}
	c := newController(t, eng)
	c.SetInput("/videos/a.mp4")

	stamps := []time.Time{
		time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 26, 10, 0, 1, 0, time.UTC),
	}
	i := 0
	c.Now = func() time.Time { t := stamps[i]; i++; return t }

	if _, err := c.Start(context.Background(), preset.Blur); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if _, err := c.Start(context.Background(), preset.Enhance); err != nil {
		t.Fatalf("second start: %v", err)
	}

	records := c.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Preset != preset.Enhance {
		t.Fatalf("most recent record should be first, got %v", records[0].Preset)
	}
}

func TestStartSplitUsesSegmentPattern(t *testing.T) {
	eng := &fakeEngine{result: engine.Result{Success: true}}
	c := newController(t, eng)
	c.SetInput("/videos/a.mp4")

	rec, err := c.Start(context.Background(), preset.Split)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !strings.Contains(rec.Output, "%03d") {
		t.Fatalf("split destination should be a sequence pattern: %q", rec.Output)
	}
}

func TestStartNoInput(t *testing.T) {
	eng := &fakeEngine{result: engine.Result{Success: true}}
	c := newController(t, eng)

	if _, err := c.Start(context.Background(), preset.Blur); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
	if eng.callCount() != 0 {
		t.Fatal("engine must not be invoked without an input")
	}
}

// TestStartWhileRunning checks the single-slot gate: a second start while a
// run is in flight is rejected and the engine is not invoked again.
func TestStartWhileRunning(t *testing.T) {
	eng := &fakeEngine{
		result:  engine.Result{Success: true},
		entered: make(chan struct{}),
		block:   make(chan struct{}),
	}
	c := newController(t, eng)
	c.SetInput("/videos/a.mp4")

	done := make(chan error, 1)
	go func() {
		_, err := c.Start(context.Background(), preset.Blur)
		done <- err
	}()

	<-eng.entered
	if got := c.Active(); got != "Blur" {
		t.Fatalf("active label = %q, want Blur", got)
	}

	if _, err := c.Start(context.Background(), preset.Enhance); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	close(eng.block)
	if err := <-done; err != nil {
		t.Fatalf("first run: %v", err)
	}

	if eng.callCount() != 1 {
		t.Fatalf("engine invoked %d times, want 1", eng.callCount())
	}
	if got := len(c.Records()); got != 1 {
		t.Fatalf("expected 1 record, got %d", got)
	}
}

func TestStartEngineFailureRecordsNothing(t *testing.T) {
	eng := &fakeEngine{result: engine.Result{Success: false, Log: strings.Repeat("e", 1500)}}
	c := newController(t, eng)
	c.SetInput("/videos/a.mp4")

	_, err := c.Start(context.Background(), preset.CropSquare)
	if !errors.Is(err, ErrEngineFailed) {
		t.Fatalf("expected ErrEngineFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), strings.Repeat("e", 1500)) {
		t.Fatal("failure error should carry the engine log")
	}
	if len(c.Records()) != 0 {
		t.Fatal("failed run must not append an output record")
	}
	if c.Active() != "" {
		t.Fatal("controller should return to idle after failure")
	}
}

func TestStartEngineErrorRecordsNothing(t *testing.T) {
	eng := &fakeEngine{err: errors.New("exec format error")}
	c := newController(t, eng)
	c.SetInput("/videos/a.mp4")

	if _, err := c.Start(context.Background(), preset.Blur); err == nil {
		t.Fatal("expected error from engine")
	}
	if len(c.Records()) != 0 {
		t.Fatal("errored run must not append an output record")
	}
}

func TestSetInputReplacesWholesale(t *testing.T) {
	eng := &fakeEngine{result: engine.Result{Success: true}}
	c := newController(t, eng)

	c.SetInput("/videos/a.mp4")
	c.SetInput("/videos/b.mp4")
	if c.Input() != "/videos/b.mp4" {
		t.Fatalf("input = %q, want /videos/b.mp4", c.Input())
	}
}

func TestStartPersistsToStore(t *testing.T) {
	eng := &fakeEngine{result: engine.Result{Success: true}}
	c := newController(t, eng)
	c.SetInput("/videos/a.mp4")

	database, err := db.OpenAt(filepath.Join(t.TempDir(), "data.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer database.Close()
	c.Store = database

	if _, err := c.Start(context.Background(), preset.Enhance); err != nil {
		t.Fatalf("start: %v", err)
	}

	outputs, err := db.ListOutputs(database, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(outputs) != 1 || outputs[0].Preset != "enhance" {
		t.Fatalf("expected one persisted enhance output, got %+v", outputs)
	}
}
