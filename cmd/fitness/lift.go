// ABOUTME: CLI commands for strength lifts and personal records.
// ABOUTME: Logging a lift checks it against the best at the same rep count.
package main

import (
	"strconv"

	"github.com/harperreed/fitness/internal/render"
	"github.com/harperreed/fitness/internal/training"
	"github.com/spf13/cobra"
)

var (
	liftReps   int
	liftSets   int
	liftDate   string
	liftNotes  string
	liftLimit  int
	liftFormat string
)

var liftCmd = &cobra.Command{
	Use:   "lift",
	Short: "Log lifts and view PRs",
}

var liftLogCmd = &cobra.Command{
	Use:   "log <lift> <weight>",
	Short: "Log a lift",
	Long: `Log a strength lift. Weight is in pounds.

A lift is a PR when it beats the best weight ever logged for the same lift
at the same rep count. Matching the previous best is not a PR.

Examples:
  fitness lift log "Back Squat" 225 -r 5
  fitness lift log Deadlift 315 -r 3 --sets 3 --date 2024-01-08`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return &training.ValidationError{Field: "weight", Message: "must be a number"}
		}
		res, err := svc.RecordLift(cmd.Context(), training.LiftInput{
			Lift:   args[0],
			Weight: weight,
			Reps:   &liftReps,
			Sets:   &liftSets,
			Date:   liftDate,
			Notes:  liftNotes,
		})
		if err != nil {
			return err
		}
		printOut(cmd, render.Lift(res))
		return nil
	},
}

var liftHistoryCmd = &cobra.Command{
	Use:   "history <lift>",
	Short: "History and current PR for a lift",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := render.ParseFormat(liftFormat, render.Markdown)
		if err != nil {
			return err
		}
		h, err := svc.GetLiftHistory(cmd.Context(), args[0], liftLimit)
		if err != nil {
			return err
		}
		text, err := render.LiftHistory(h, f)
		return printRendered(cmd, text, err)
	},
}

var liftPRsCmd = &cobra.Command{
	Use:   "prs [lift]",
	Short: "Current personal records",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := render.ParseFormat(liftFormat, render.Markdown)
		if err != nil {
			return err
		}
		var filter string
		if len(args) == 1 {
			filter = args[0]
		}
		prs, err := svc.PRBoard(cmd.Context(), filter)
		if err != nil {
			return err
		}
		text, err := render.PRBoard(prs, f)
		return printRendered(cmd, text, err)
	},
}

func init() {
	liftLogCmd.Flags().IntVarP(&liftReps, "reps", "r", 1, "Reps per set")
	liftLogCmd.Flags().IntVar(&liftSets, "sets", 1, "Number of sets")
	liftLogCmd.Flags().StringVarP(&liftDate, "date", "d", "", "Date (YYYY-MM-DD), defaults to today")
	liftLogCmd.Flags().StringVarP(&liftNotes, "notes", "n", "", "Notes")

	liftHistoryCmd.Flags().IntVarP(&liftLimit, "limit", "l", 20, "Max workouts shown (max 100)")
	liftHistoryCmd.Flags().StringVarP(&liftFormat, "format", "f", "markdown", "markdown or json")
	liftPRsCmd.Flags().StringVarP(&liftFormat, "format", "f", "markdown", "markdown or json")

	liftCmd.AddCommand(liftLogCmd, liftHistoryCmd, liftPRsCmd)
	rootCmd.AddCommand(liftCmd)
}
