package outpath

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestTimestampFilesystemSafe(t *testing.T) {
	ts := Timestamp(time.Date(2026, 8, 26, 15, 30, 45, 0, time.UTC))
	if ts != "20260826_153045" {
		t.Fatalf("Timestamp = %q, want 20260826_153045", ts)
	}
	if strings.ContainsAny(ts, ":.") {
		t.Fatalf("timestamp contains filesystem-unsafe characters: %q", ts)
	}
}

func TestTimestampSortable(t *testing.T) {
	earlier := Timestamp(time.Date(2026, 8, 26, 9, 59, 59, 0, time.UTC))
	later := Timestamp(time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC))
	if !(earlier < later) {
		t.Fatalf("timestamps should sort chronologically: %q vs %q", earlier, later)
	}
}

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("first EnsureDir: %v", err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("second EnsureDir: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("expected a directory")
	}

	entries, err := os.ReadDir(filepath.Dir(dir))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one directory, found %d entries", len(entries))
	}
}

func TestFile(t *testing.T) {
	got := File("/out", "crop", "20260826_153045", ".mp4")
	if got != "/out/crop_20260826_153045.mp4" {
		t.Fatalf("File = %q", got)
	}
}

func TestSegmentPattern(t *testing.T) {
	got := SegmentPattern("/out", "split", "20260826_153045")
	if got != "/out/split_20260826_153045_%03d.mp4" {
		t.Fatalf("SegmentPattern = %q", got)
	}
}
