// ABOUTME: CLI command to import workouts from a CSV export.
// ABOUTME: Rows already in the ledger are skipped, so re-importing is safe.
package main

import (
	"github.com/harperreed/fitness/internal/render"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import workouts from a CSV export",
	Long: `Import workouts from a CSV export.

Required columns: date, title. Optional: description, score_type,
best_result_display, best_result_raw, barbell_lift, set_details, notes,
rx_or_scaled and pr. Rows with a barbell lift and a load score also update
PRs.

Example:
  fitness import ~/Downloads/workouts.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := svc.ImportFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printOut(cmd, render.Import(s))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
