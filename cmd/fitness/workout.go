// ABOUTME: CLI commands for managing workouts.
// ABOUTME: Supports log, list, update, delete, and history subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fitness/internal/render"
	"github.com/harperreed/fitness/internal/training"
	"github.com/spf13/cobra"
)

var (
	workoutDate        string
	workoutDescription string
	workoutScoreType   string
	workoutResult      string
	workoutNotes       string
	workoutScaled      bool
	workoutLimit       int
	workoutYes         bool
	workoutTitle       string
	workoutDays        int
	workoutFormat      string
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts",
	Long: `Log and manage training sessions.

A workout is unique by date, title and result: logging the same session twice
is rejected, and imports skip rows that are already in the ledger.

COMMANDS:

  log      Log a workout
  list     List recent workouts with IDs
  update   Change fields of a workout
  delete   Delete a workout (requires --yes)
  history  Workouts over the last N days`,
}

var workoutLogCmd = &cobra.Command{
	Use:   "log <title>",
	Short: "Log a workout",
	Long: `Log a workout.

Examples:
  fitness workout log Fran --result 4:32 --score-type time
  fitness workout log "5K run" --result 24:10 --date 2024-01-09
  fitness workout log Cindy --result "18 + 5" --scaled`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rx := !workoutScaled
		w, err := svc.LogWorkout(cmd.Context(), training.WorkoutInput{
			Title:       args[0],
			Date:        workoutDate,
			Description: workoutDescription,
			ScoreType:   workoutScoreType,
			Result:      workoutResult,
			Notes:       workoutNotes,
			RX:          &rx,
		})
		if err != nil {
			return err
		}
		printOut(cmd, render.WorkoutLogged(w))
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := svc.ListWorkouts(cmd.Context(), training.ListWorkoutsInput{
			Date:  workoutDate,
			Limit: workoutLimit,
		})
		if err != nil {
			return err
		}
		printOut(cmd, render.WorkoutList(ws))
		return nil
	},
}

var workoutUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a workout",
	Long: `Update fields of a workout. Only the flags you pass are changed.

Examples:
  fitness workout update 12 --result 4:28
  fitness workout update 12 --title "Fran (heavy)" --scaled`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		in := training.WorkoutUpdate{ID: id}
		if flags.Changed("date") {
			in.Date = &workoutDate
		}
		if flags.Changed("title") {
			in.Title = &workoutTitle
		}
		if flags.Changed("description") {
			in.Description = &workoutDescription
		}
		if flags.Changed("result") {
			in.Result = &workoutResult
		}
		if flags.Changed("notes") {
			in.Notes = &workoutNotes
		}
		if flags.Changed("scaled") {
			rx := !workoutScaled
			in.RX = &rx
		}

		w, err := svc.UpdateWorkout(cmd.Context(), in)
		if err != nil {
			return err
		}
		printOut(cmd, render.WorkoutUpdated(w))
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !workoutYes {
			color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "⚠ Pass --yes to delete workout #%d\n", id)
		}
		w, err := svc.DeleteWorkout(cmd.Context(), id, workoutYes)
		if err != nil {
			return err
		}
		printOut(cmd, render.WorkoutDeleted(w))
		return nil
	},
}

var workoutHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Workouts over the last N days",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := render.ParseFormat(workoutFormat, render.Markdown)
		if err != nil {
			return err
		}
		ws, err := svc.WorkoutHistory(cmd.Context(), workoutDays)
		if err != nil {
			return err
		}
		text, err := render.WorkoutHistory(ws, f)
		return printRendered(cmd, text, err)
	},
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, &training.ValidationError{Field: "id", Message: fmt.Sprintf("%q is not a workout id", s)}
	}
	return id, nil
}

func init() {
	workoutLogCmd.Flags().StringVarP(&workoutDate, "date", "d", "", "Date (YYYY-MM-DD), defaults to today")
	workoutLogCmd.Flags().StringVar(&workoutDescription, "description", "", "Workout description")
	workoutLogCmd.Flags().StringVarP(&workoutScoreType, "score-type", "s", "", "time, reps, rounds, load, distance or other")
	workoutLogCmd.Flags().StringVarP(&workoutResult, "result", "r", "", "Result as displayed, e.g. 4:32")
	workoutLogCmd.Flags().StringVarP(&workoutNotes, "notes", "n", "", "Notes")
	workoutLogCmd.Flags().BoolVar(&workoutScaled, "scaled", false, "Workout was scaled")

	workoutListCmd.Flags().StringVarP(&workoutDate, "date", "d", "", "Only workouts on this date")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "l", 10, "Max results (max 50)")

	workoutUpdateCmd.Flags().StringVarP(&workoutDate, "date", "d", "", "New date (YYYY-MM-DD)")
	workoutUpdateCmd.Flags().StringVarP(&workoutTitle, "title", "t", "", "New title")
	workoutUpdateCmd.Flags().StringVar(&workoutDescription, "description", "", "New description")
	workoutUpdateCmd.Flags().StringVarP(&workoutResult, "result", "r", "", "New result")
	workoutUpdateCmd.Flags().StringVarP(&workoutNotes, "notes", "n", "", "New notes")
	workoutUpdateCmd.Flags().BoolVar(&workoutScaled, "scaled", false, "Mark as scaled (--scaled=false for RX)")

	workoutDeleteCmd.Flags().BoolVarP(&workoutYes, "yes", "y", false, "Confirm deletion")

	workoutHistoryCmd.Flags().IntVar(&workoutDays, "days", 30, "Days of history (max 365)")
	workoutHistoryCmd.Flags().StringVarP(&workoutFormat, "format", "f", "markdown", "markdown or json")

	workoutCmd.AddCommand(workoutLogCmd, workoutListCmd, workoutUpdateCmd, workoutDeleteCmd, workoutHistoryCmd)
	rootCmd.AddCommand(workoutCmd)
}
