// ABOUTME: CLI commands for the training program and today's prescription.
// ABOUTME: today resolves the active program week and adjusts for readiness.
package main

import (
	"github.com/harperreed/fitness/internal/render"
	"github.com/harperreed/fitness/internal/training"
	"github.com/spf13/cobra"
)

var (
	todayDate    string
	programStart string
	programFile  string
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's prescribed workout",
	Long: `Show the prescription for today (or --date) from the active program.

Without an active program the built-in 4-week program is shown at week 1.
A readiness check-in for the day adds a note to back off or push harder.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := svc.GetToday(cmd.Context(), todayDate)
		if err != nil {
			return err
		}
		printOut(cmd, render.Today(p))
		return nil
	},
}

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Manage the active training program",
}

var programSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Activate a program",
	Long: `Activate a training program, replacing any active one.

Without --file the built-in 4-week program is used. Without --start the
program begins next Monday.

Examples:
  fitness program set
  fitness program set --start 2024-01-01
  fitness program set --file ~/programs/strength.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := svc.SetProgram(cmd.Context(), training.SetProgramInput{
			StartDate:   programStart,
			UseDefault:  programFile == "",
			ProgramFile: programFile,
		})
		if err != nil {
			return err
		}
		printOut(cmd, render.ProgramActivated(p))
		return nil
	},
}

func init() {
	todayCmd.Flags().StringVarP(&todayDate, "date", "d", "", "Date to check (YYYY-MM-DD), defaults to today")

	programSetCmd.Flags().StringVarP(&programStart, "start", "s", "", "Start date (YYYY-MM-DD), defaults to next Monday")
	programSetCmd.Flags().StringVarP(&programFile, "file", "f", "", "YAML program definition")

	programCmd.AddCommand(programSetCmd)
	rootCmd.AddCommand(todayCmd, programCmd)
}
