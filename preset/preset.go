// Package preset defines the four fixed video transformations and builds
// the ffmpeg invocations for them.
package preset

import (
	"fmt"
	"strings"
)

// Preset identifies one of the fixed transformation configurations.
type Preset int

const (
	// Split segments the input into fixed 60-second chunks.
	Split Preset = iota
	// CropSquare crops to the largest centered square and scales to 1080x1080.
	CropSquare
	// Blur applies a fixed-radius box blur.
	Blur
	// Enhance applies an unsharp mask followed by contrast/brightness/saturation adjustment.
	Enhance
)

// Encoding parameters shared by all presets. None are user-configurable.
const (
	videoCodec   = "libx264"
	speedPreset  = "veryfast"
	crf          = "28"
	audioCodec   = "aac"
	segmentSecs  = 60
	cropSquareVF = "crop='min(iw,ih)':'min(iw,ih)',scale=1080:1080"
	blurVF       = "boxblur=10:1"
	enhanceVF    = "unsharp=5:5:1.5:5:5:0.0,eq=contrast=1.2:brightness=0.05:saturation=1.3"
)

// All lists every preset in display order.
var All = []Preset{Split, CropSquare, Blur, Enhance}

// String returns the stable machine name used in flags, the database, and paths.
func (p Preset) String() string {
	switch p {
	case Split:
		return "split"
	case CropSquare:
		return "crop-square"
	case Blur:
		return "blur"
	case Enhance:
		return "enhance"
	default:
		return fmt.Sprintf("preset(%d)", int(p))
	}
}

// Label returns the human-readable name shown in the UI.
func (p Preset) Label() string {
	switch p {
	case Split:
		return "Split"
	case CropSquare:
		return "Crop Square"
	case Blur:
		return "Blur"
	case Enhance:
		return "Enhance"
	default:
		return p.String()
	}
}

// Description returns a short explanation of what the preset does.
func (p Preset) Description() string {
	switch p {
	case Split:
		return fmt.Sprintf("Cut into %d-second clips", segmentSecs)
	case CropSquare:
		return "Center-crop to a 1080x1080 square"
	case Blur:
		return "Soften the whole frame with a box blur"
	case Enhance:
		return "Sharpen and boost contrast, brightness, saturation"
	default:
		return ""
	}
}

// Prefix returns the output filename prefix for the preset.
func (p Preset) Prefix() string {
	switch p {
	case Split:
		return "split"
	case CropSquare:
		return "crop"
	case Blur:
		return "blur"
	case Enhance:
		return "enhance"
	default:
		return "out"
	}
}

// Multi reports whether the preset writes multiple output files
// (its destination is a sequence pattern rather than a single path).
func (p Preset) Multi() bool {
	return p == Split
}

// Parse converts a machine name back to a Preset.
func Parse(s string) (Preset, error) {
	for _, p := range All {
		if s == p.String() {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown preset %q (expected one of: split, crop-square, blur, enhance)", s)
}

// Args builds the ffmpeg argument list for the preset. The input reference
// and output path are passed through verbatim; builders never validate that
// the input exists or decodes — a bad input is ffmpeg's to report.
func (p Preset) Args(input, output string) []string {
	args := []string{"-y", "-i", input}

	switch p {
	case Split:
		args = append(args,
			"-c:v", videoCodec,
			"-preset", speedPreset,
			"-crf", crf,
			"-c:a", audioCodec,
			"-f", "segment",
			"-segment_time", fmt.Sprintf("%d", segmentSecs),
			"-reset_timestamps", "1",
		)
	case CropSquare:
		args = append(args, "-vf", cropSquareVF, "-c:v", videoCodec, "-preset", speedPreset, "-crf", crf, "-c:a", "copy")
	case Blur:
		args = append(args, "-vf", blurVF, "-c:v", videoCodec, "-preset", speedPreset, "-crf", crf, "-c:a", "copy")
	case Enhance:
		args = append(args, "-vf", enhanceVF, "-c:v", videoCodec, "-preset", speedPreset, "-crf", crf, "-c:a", "copy")
	}

	return append(args, output)
}

// CommandLine renders the full invocation as a single display string, with
// the input and output each wrapped in one pair of double quotes. Used for
// logging and the failure notices; execution always goes through Args.
func (p Preset) CommandLine(input, output string) string {
	parts := []string{"ffmpeg"}
	for _, a := range p.Args(input, output) {
		if a == input || a == output {
			a = `"` + a + `"`
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
