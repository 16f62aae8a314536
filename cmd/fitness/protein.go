// ABOUTME: CLI commands for daily protein tracking.
// ABOUTME: set replaces a day's total, add accumulates onto today's total.
package main

import (
	"strconv"
	"strings"

	"github.com/harperreed/fitness/internal/render"
	"github.com/harperreed/fitness/internal/training"
	"github.com/spf13/cobra"
)

var (
	proteinDate   string
	proteinNotes  string
	proteinGrams  int
	proteinDays   int
	proteinFormat string
)

var proteinCmd = &cobra.Command{
	Use:     "protein",
	Aliases: []string{"p"},
	Short:   "Track daily protein against the 160g target",
}

var proteinSetCmd = &cobra.Command{
	Use:   "set <grams>",
	Short: "Set a day's protein total",
	Long: `Set the protein total for a day, replacing any earlier value.

Examples:
  fitness protein set 165
  fitness protein set 140 --date 2024-01-09 --notes "travel day"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grams, err := parseGrams(args[0])
		if err != nil {
			return err
		}
		res, err := svc.LogProtein(cmd.Context(), training.ProteinInput{
			Date:  proteinDate,
			Grams: grams,
			Notes: proteinNotes,
		})
		if err != nil {
			return err
		}
		printOut(cmd, render.ProteinLogged(res))
		return nil
	},
}

var proteinAddCmd = &cobra.Command{
	Use:   "add <grams> [food...]",
	Short: "Add protein to today's total",
	Long: `Add grams to today's running total. The food, if given, is appended to
the day's notes.

Examples:
  fitness protein add 40 chicken breast
  fitness protein add 25`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grams, err := parseGrams(args[0])
		if err != nil {
			return err
		}
		res, err := svc.AddProtein(cmd.Context(), grams, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		printOut(cmd, render.ProteinAdded(res))
		return nil
	},
}

var proteinUpdateCmd = &cobra.Command{
	Use:   "update <date>",
	Short: "Correct an existing day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := training.UpdateProteinInput{Date: args[0]}
		if cmd.Flags().Changed("grams") {
			in.Grams = &proteinGrams
		}
		if cmd.Flags().Changed("notes") {
			in.Notes = &proteinNotes
		}
		res, err := svc.UpdateProtein(cmd.Context(), in)
		if err != nil {
			return err
		}
		printOut(cmd, render.ProteinUpdated(res))
		return nil
	},
}

var proteinHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Protein over the last N days",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := render.ParseFormat(proteinFormat, render.Markdown)
		if err != nil {
			return err
		}
		rows, err := svc.ProteinHistory(cmd.Context(), proteinDays)
		if err != nil {
			return err
		}
		text, err := render.ProteinHistory(rows, f)
		return printRendered(cmd, text, err)
	},
}

func parseGrams(s string) (int, error) {
	g, err := strconv.Atoi(s)
	if err != nil {
		return 0, &training.ValidationError{Field: "grams", Message: "must be a whole number"}
	}
	return g, nil
}

func init() {
	proteinSetCmd.Flags().StringVarP(&proteinDate, "date", "d", "", "Date (YYYY-MM-DD), defaults to today")
	proteinSetCmd.Flags().StringVarP(&proteinNotes, "notes", "n", "", "Notes")

	proteinUpdateCmd.Flags().IntVarP(&proteinGrams, "grams", "g", 0, "New total in grams")
	proteinUpdateCmd.Flags().StringVarP(&proteinNotes, "notes", "n", "", "New notes")

	proteinHistoryCmd.Flags().IntVar(&proteinDays, "days", 30, "Days of history (max 365)")
	proteinHistoryCmd.Flags().StringVarP(&proteinFormat, "format", "f", "markdown", "markdown or json")

	proteinCmd.AddCommand(proteinSetCmd, proteinAddCmd, proteinUpdateCmd, proteinHistoryCmd)
	rootCmd.AddCommand(proteinCmd)
}
