// Package engine invokes the external ffmpeg binary and captures its output.
package engine

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// ErrTimeout is returned when an invocation exceeds the runner's deadline.
// It is distinct from a non-zero engine exit, which is reported through
// Result.Success instead.
var ErrTimeout = errors.New("engine invocation timed out")

// MaxLogChars bounds the log excerpt kept from an invocation.
const MaxLogChars = 2000

// Result is the outcome of a single engine invocation.
type Result struct {
	// Success is true when the engine exited zero.
	Success bool
	// Log holds at most the first MaxLogChars characters of the combined
	// stdout and stderr output.
	Log string
}

// Runner executes the external media engine. Each call runs the engine
// exactly once: no retry, no queueing. Serialization of runs is the
// caller's concern.
type Runner struct {
	// Bin is the engine binary; defaults to "ffmpeg" when empty.
	Bin string
	// Timeout bounds each invocation. Zero means no deadline.
	Timeout time.Duration
}

// NewRunner returns a Runner for the ffmpeg on PATH with the given deadline.
func NewRunner(timeout time.Duration) *Runner {
	return &Runner{Bin: "ffmpeg", Timeout: timeout}
}

// Run invokes the engine with args, capturing stdout and stderr into one
// buffer. A non-zero exit yields Result{Success: false} with the captured
// log and a nil error; the error return is reserved for the engine failing
// to start and for deadline expiry (ErrTimeout).
func (r *Runner) Run(ctx context.Context, args []string) (Result, error) {
	bin := r.Bin
	if bin == "" {
		bin = "ffmpeg"
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	runErr := cmd.Run()
	log := TruncateLog(out.String())

	if ctx.Err() == context.DeadlineExceeded {
		return Result{Log: log}, ErrTimeout
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return Result{Success: false, Log: log}, nil
		}
		return Result{Log: log}, runErr
	}

	return Result{Success: true, Log: log}, nil
}

// TruncateLog caps s at MaxLogChars characters.
func TruncateLog(s string) string {
	if len(s) > MaxLogChars {
		return s[:MaxLogChars]
	}
	return s
}
