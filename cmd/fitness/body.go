// ABOUTME: CLI commands for body weight, readiness check-ins and mobility.
// ABOUTME: Weight and readiness are one row per day; logging again replaces it.
package main

import (
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fitness/internal/render"
	"github.com/harperreed/fitness/internal/training"
	"github.com/spf13/cobra"
)

var (
	bodyDate   string
	bodyNotes  string
	bodyDays   int
	weightDays int
	bodyFormat string
	bodyYes    bool

	mobilityFocus     string
	mobilityExercises string
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight",
}

var weightLogCmd = &cobra.Command{
	Use:   "log <lbs>",
	Short: "Log body weight",
	Long: `Log body weight in pounds. Shows the change from the previous weigh-in.

Examples:
  fitness weight log 182.4
  fitness weight log 181 --date 2024-01-09`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return &training.ValidationError{Field: "weight", Message: "must be a number"}
		}
		res, err := svc.LogWeight(cmd.Context(), training.WeightInput{Date: bodyDate, Weight: w, Notes: bodyNotes})
		if err != nil {
			return err
		}
		printOut(cmd, render.Weight(res))
		return nil
	},
}

var weightHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Weigh-ins over the last N days",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := render.ParseFormat(bodyFormat, render.Markdown)
		if err != nil {
			return err
		}
		rows, err := svc.WeightHistory(cmd.Context(), weightDays)
		if err != nil {
			return err
		}
		text, err := render.WeightHistory(rows, f)
		return printRendered(cmd, text, err)
	},
}

var readinessCmd = &cobra.Command{
	Use:     "readiness",
	Aliases: []string{"r"},
	Short:   "Morning readiness check-ins",
}

var readinessLogCmd = &cobra.Command{
	Use:   "log <sleep> <energy> <soreness> <stress>",
	Short: "Log a readiness check-in",
	Long: `Log a morning check-in. Each score is 1-5. Sleep and energy: higher is
better. Soreness and stress: higher is worse.

The composite score adjusts today's prescription.

Examples:
  fitness readiness log 4 4 2 2
  fitness readiness log 2 2 4 4 --notes "bad night"`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := []string{"sleep_quality", "energy", "soreness", "stress"}
		scores := make([]int, len(args))
		for i, a := range args {
			n, err := strconv.Atoi(a)
			if err != nil {
				return &training.ValidationError{Field: names[i], Message: "must be a whole number"}
			}
			scores[i] = n
		}
		res, err := svc.LogReadiness(cmd.Context(), training.ReadinessInput{
			Date:         bodyDate,
			SleepQuality: scores[0],
			Energy:       scores[1],
			Soreness:     scores[2],
			Stress:       scores[3],
			Notes:        bodyNotes,
		})
		if err != nil {
			return err
		}
		printOut(cmd, render.Readiness(res))
		return nil
	},
}

var readinessDeleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete a check-in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !bodyYes {
			color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "⚠ Pass --yes to delete the check-in for %s\n", args[0])
		}
		date, err := svc.DeleteReadiness(cmd.Context(), args[0], bodyYes)
		if err != nil {
			return err
		}
		printOut(cmd, render.ReadinessDeleted(date))
		return nil
	},
}

var readinessHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Check-ins over the last N days",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := render.ParseFormat(bodyFormat, render.Markdown)
		if err != nil {
			return err
		}
		rows, err := svc.ReadinessHistory(cmd.Context(), bodyDays)
		if err != nil {
			return err
		}
		text, err := render.ReadinessHistory(rows, f)
		return printRendered(cmd, text, err)
	},
}

var mobilityCmd = &cobra.Command{
	Use:   "mobility",
	Short: "Mobility and stretching sessions",
}

var mobilityLogCmd = &cobra.Command{
	Use:   "log <minutes>",
	Short: "Log a mobility session",
	Long: `Log a mobility session. Several sessions per day are allowed.

Examples:
  fitness mobility log 15 --focus hips
  fitness mobility log 20 --focus "t-spine" --exercises "open books, cat-cow"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[0])
		if err != nil {
			return &training.ValidationError{Field: "duration_minutes", Message: "must be a whole number"}
		}
		res, err := svc.LogMobility(cmd.Context(), training.MobilityInput{
			Date:      bodyDate,
			Minutes:   minutes,
			FocusArea: mobilityFocus,
			Exercises: mobilityExercises,
			Notes:     bodyNotes,
		})
		if err != nil {
			return err
		}
		printOut(cmd, render.Mobility(res))
		return nil
	},
}

var mobilityHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Mobility sessions over the last N days",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := render.ParseFormat(bodyFormat, render.Markdown)
		if err != nil {
			return err
		}
		rows, err := svc.MobilityHistory(cmd.Context(), bodyDays)
		if err != nil {
			return err
		}
		text, err := render.MobilityHistory(rows, f)
		return printRendered(cmd, text, err)
	},
}

func init() {
	for _, c := range []*cobra.Command{weightLogCmd, readinessLogCmd, mobilityLogCmd} {
		c.Flags().StringVarP(&bodyDate, "date", "d", "", "Date (YYYY-MM-DD), defaults to today")
		c.Flags().StringVarP(&bodyNotes, "notes", "n", "", "Notes")
	}
	mobilityLogCmd.Flags().StringVar(&mobilityFocus, "focus", "", "Focus area, e.g. hips")
	mobilityLogCmd.Flags().StringVar(&mobilityExercises, "exercises", "", "Exercises performed")

	readinessDeleteCmd.Flags().BoolVarP(&bodyYes, "yes", "y", false, "Confirm deletion")

	weightHistoryCmd.Flags().IntVar(&weightDays, "days", 90, "Days of history (max 365)")
	for _, c := range []*cobra.Command{readinessHistoryCmd, mobilityHistoryCmd} {
		c.Flags().IntVar(&bodyDays, "days", 30, "Days of history (max 365)")
	}
	for _, c := range []*cobra.Command{weightHistoryCmd, readinessHistoryCmd, mobilityHistoryCmd} {
		c.Flags().StringVarP(&bodyFormat, "format", "f", "markdown", "markdown or json")
	}

	weightCmd.AddCommand(weightLogCmd, weightHistoryCmd)
	readinessCmd.AddCommand(readinessLogCmd, readinessDeleteCmd, readinessHistoryCmd)
	mobilityCmd.AddCommand(mobilityLogCmd, mobilityHistoryCmd)
	rootCmd.AddCommand(weightCmd, readinessCmd, mobilityCmd)
}
