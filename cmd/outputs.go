package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/vidpreset/db"
)

var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "List recorded outputs",
	Long:  `Display recorded transformation outputs as a table, most recent first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer database.Close()

		outputs, err := db.ListOutputs(database, limit)
		if err != nil {
			return fmt.Errorf("failed to query outputs: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWhen\tPreset\tInput\tOutput")
		fmt.Fprintln(w, "--\t----\t------\t-----\t------")

		for _, o := range outputs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				o.ID,
				o.CreatedAt.Local().Format("2006-01-02 15:04"),
				o.Preset,
				filepath.Base(o.InputPath),
				o.OutputPath,
			)
		}
		w.Flush()

		if len(outputs) == 0 {
			fmt.Println("\nNo outputs recorded yet.")
		} else {
			fmt.Printf("\n%d output(s).\n", len(outputs))
		}

		return nil
	},
}

func init() {
	outputsCmd.Flags().IntP("limit", "n", 20, "Maximum rows to show (0 = all)")
	rootCmd.AddCommand(outputsCmd)
}
