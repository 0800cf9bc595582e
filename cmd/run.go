package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/user/vidpreset/db"
	"github.com/user/vidpreset/deps"
	"github.com/user/vidpreset/engine"
	"github.com/user/vidpreset/pkg/outpath"
	"github.com/user/vidpreset/preset"
	"github.com/user/vidpreset/run"
)

var runCmd = &cobra.Command{
	Use:   "run <preset> <video-file>",
	Short: "Apply a preset to a video without the interactive screen",
	Long: `Apply a preset transformation to a video file and print the output path.
Preset is one of: split, crop-square, blur, enhance.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := preset.Parse(args[0])
		if err != nil {
			return err
		}

		videoPath, err := resolveVideoPath(args[1])
		if err != nil {
			return err
		}

		if err := deps.CheckFfmpeg(); err != nil {
			return err
		}

		outDir, _ := cmd.Flags().GetString("output")
		if outDir == "" {
			outDir, err = outpath.BaseDir()
			if err != nil {
				return fmt.Errorf("failed to resolve output directory: %w", err)
			}
		}

		timeout, _ := cmd.Flags().GetDuration("timeout")

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		ctrl := run.New(engine.NewRunner(timeout), outDir)
		ctrl.Store = database
		ctrl.SetInput(videoPath)

		fmt.Printf("Applying %s to %s\n", p.Label(), videoPath)
		started := time.Now()

		rec, err := ctrl.Start(context.Background(), p)
		if errors.Is(err, engine.ErrTimeout) {
			return fmt.Errorf("run timed out after %s", timeout)
		}
		if err != nil {
			return err
		}

		if p.Multi() {
			fmt.Printf("Segments written: %s (%.1fs)\n", rec.Output, time.Since(started).Seconds())
		} else {
			fmt.Printf("Output written: %s (%.1fs)\n", rec.Output, time.Since(started).Seconds())
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringP("output", "o", "", "Output directory (default: app data directory)")
	runCmd.Flags().Duration("timeout", 0, "Abort the run after this duration (e.g. 10m); 0 disables")
	rootCmd.AddCommand(runCmd)
}
