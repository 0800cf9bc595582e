// Package outpath computes output locations for transformed videos.
package outpath

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// appDir is the app-private data directory name under ~/.local/share.
const appDir = "vidpreset"

// BaseDir returns the default output directory,
// ~/.local/share/vidpreset/output.
func BaseDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", appDir, "output"), nil
}

// EnsureDir creates dir (and parents) if it does not exist.
// Calling it again for an existing directory is not an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// Timestamp formats t as a sortable, filesystem-safe stamp with no colons
// or periods, e.g. 20260826_153045.
func Timestamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// File joins dir, prefix, stamp, and extension into a destination path.
// There is no collision check: two calls within the same clock second for
// the same prefix produce the same path.
func File(dir, prefix, stamp, ext string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", prefix, stamp, ext))
}

// SegmentPattern returns the multi-file destination for segmented output,
// carrying a zero-padded sequence placeholder for the engine to expand:
// <dir>/<prefix>_<stamp>_%03d.mp4
func SegmentPattern(dir, prefix, stamp string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s_%%03d.mp4", prefix, stamp))
}
