// Package run sequences a single transformation: destination computation,
// command construction, and engine invocation, behind a one-slot busy gate.
package run

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/user/vidpreset/db"
	"github.com/user/vidpreset/engine"
	"github.com/user/vidpreset/pkg/outpath"
	"github.com/user/vidpreset/preset"
)

// ErrBusy is returned when a run is requested while another is in flight.
var ErrBusy = errors.New("a run is already in progress")

// ErrNoInput is returned when a run is requested before a video is selected.
var ErrNoInput = errors.New("no input video selected")

// ErrEngineFailed is returned when the engine exits non-zero. The wrapped
// message carries the truncated engine log.
var ErrEngineFailed = errors.New("engine invocation failed")

// Engine is the execution adapter the controller drives. The concrete
// implementation is engine.Runner; tests substitute fakes.
type Engine interface {
	Run(ctx context.Context, args []string) (engine.Result, error)
}

// Record is one produced output: the destination path (or sequence pattern
// for segmented output) and the timestamp that named it. Records are never
// mutated after creation.
type Record struct {
	Preset    preset.Preset
	Input     string
	Output    string
	Stamp     string
	CreatedAt time.Time
}

// Controller owns the selected input reference, the single busy slot, and
// the ordered list of output records (most recent first). All mutation goes
// through its mutex so the TUI goroutine and headless CLI share one code path.
type Controller struct {
	// Engine executes command invocations.
	Engine Engine
	// OutDir is the output directory; created on first run.
	OutDir string
	// Store, when non-nil, persists successful records. A persistence
	// failure never fails the run.
	Store *sql.DB
	// Now supplies timestamps; defaults to time.Now.
	Now func() time.Time

	mu      sync.Mutex
	input   string
	active  string
	records []Record
}

// New creates an idle controller.
func New(eng Engine, outDir string) *Controller {
	return &Controller{
		Engine: eng,
		OutDir: outDir,
		Now:    time.Now,
	}
}

// SetInput replaces the selected input reference wholesale. Allowed at any
// time, including while a run is in flight; the in-flight run keeps the
// reference it started with.
func (c *Controller) SetInput(ref string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = ref
}

// Input returns the currently selected input reference, or "".
func (c *Controller) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// Active returns the label of the in-flight preset, or "" when idle.
func (c *Controller) Active() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Records returns a snapshot of the output records, most recent first.
func (c *Controller) Records() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Start runs one transformation to completion. It claims the busy slot,
// computes the destination, builds the command, and invokes the engine
// exactly once. The output record is appended only after the engine
// confirms success; every failure path leaves the record list untouched
// and returns the controller to idle.
func (c *Controller) Start(ctx context.Context, p preset.Preset) (Record, error) {
	c.mu.Lock()
	if c.active != "" {
		c.mu.Unlock()
		return Record{}, ErrBusy
	}
	if c.input == "" {
		c.mu.Unlock()
		return Record{}, ErrNoInput
	}
	input := c.input
	c.active = p.Label()
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.active = ""
		c.mu.Unlock()
	}()

	if err := outpath.EnsureDir(c.OutDir); err != nil {
		return Record{}, err
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	createdAt := now()
	stamp := outpath.Timestamp(createdAt)
	dest := c.destination(p, stamp)

	res, err := c.Engine.Run(ctx, p.Args(input, dest))
	if err != nil {
		return Record{}, err
	}
	if !res.Success {
		return Record{}, fmt.Errorf("%w: %s", ErrEngineFailed, res.Log)
	}

	rec := Record{
		Preset:    p,
		Input:     input,
		Output:    dest,
		Stamp:     stamp,
		CreatedAt: createdAt,
	}

	c.mu.Lock()
	c.records = append([]Record{rec}, c.records...)
	c.mu.Unlock()

	if c.Store != nil {
		_ = db.InsertOutput(c.Store, p.String(), input, dest)
	}

	return rec, nil
}

// destination computes the output path for a preset, a sequence pattern for
// multi-file presets and a single timestamped file otherwise.
func (c *Controller) destination(p preset.Preset, stamp string) string {
	if p.Multi() {
		return outpath.SegmentPattern(c.OutDir, p.Prefix(), stamp)
	}
	return outpath.File(c.OutDir, p.Prefix(), stamp, ".mp4")
}
