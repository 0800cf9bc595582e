package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/user/vidpreset/db"
	"github.com/user/vidpreset/deps"
	"github.com/user/vidpreset/engine"
	"github.com/user/vidpreset/pkg/outpath"
	"github.com/user/vidpreset/run"
	"github.com/user/vidpreset/tui"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "vidpreset",
	Short: "Apply preset transformations to local videos",
	Long: `vidpreset is a terminal tool for applying one of four preset
transformations to a local video file via ffmpeg.

Presets:
  - split        cut into fixed 60-second clips
  - crop-square  center-crop to a 1080x1080 square
  - blur         soften the frame with a box blur
  - enhance      sharpen and boost contrast/brightness/saturation

Successful outputs are recorded and listed with 'vidpreset outputs'.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vidpreset version %s\n", Version)
	},
}

var openCmd = &cobra.Command{
	Use:   "open [video-file]",
	Short: "Open the interactive preset screen",
	Long:  `Open the interactive screen for picking a video and applying presets. A video file argument pre-selects the input; otherwise use the built-in picker.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var videoPath string
		if len(args) == 1 {
			absPath, err := resolveVideoPath(args[0])
			if err != nil {
				return err
			}
			videoPath = absPath
		}

		outDir, err := outpath.BaseDir()
		if err != nil {
			return fmt.Errorf("failed to resolve output directory: %w", err)
		}

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		ctrl := run.New(engine.NewRunner(0), outDir)
		ctrl.Store = database
		if videoPath != "" {
			ctrl.SetInput(videoPath)
		}

		return tui.Run(ctrl, database)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that all required system dependencies (ffmpeg) are installed and available.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking dependencies...")
		fmt.Println()

		allGood := true

		if err := deps.CheckFfmpeg(); err != nil {
			fmt.Println("✗ ffmpeg: NOT FOUND")
			fmt.Printf("  Install from: %s\n", deps.FfmpegInstallURL)
			allGood = false
		} else {
			fmt.Println("✓ ffmpeg: OK")
		}

		fmt.Println()
		if allGood {
			fmt.Println("All dependencies are installed!")
		} else {
			fmt.Println("Some dependencies are missing. Please install them to use all features.")
			os.Exit(1)
		}
	},
}

// resolveVideoPath resolves a user-supplied path to an absolute path and
// verifies it names a regular file.
func resolveVideoPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("video file not found: %s", absPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to access video file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a video file: %s", absPath)
	}

	return absPath, nil
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(doctorCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
