// ABOUTME: CLI commands for the weekly review and the dashboard summary.
// ABOUTME: Both render markdown by default and JSON with --format json.
package main

import (
	"github.com/harperreed/fitness/internal/render"
	"github.com/spf13/cobra"
)

var (
	reviewWeeks  int
	reportFormat string
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Weekly training review",
	Long: `Summarize workouts, PRs, protein adherence, weight change, readiness
and mobility over the last week (or --weeks, up to 12).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := render.ParseFormat(reportFormat, render.Markdown)
		if err != nil {
			return err
		}
		r, err := svc.WeeklyReview(cmd.Context(), reviewWeeks)
		if err != nil {
			return err
		}
		text, err := render.WeeklyReview(r, f)
		return printRendered(cmd, text, err)
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Dashboard for today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := render.ParseFormat(reportFormat, render.Markdown)
		if err != nil {
			return err
		}
		s, err := svc.Summary(cmd.Context())
		if err != nil {
			return err
		}
		text, err := render.Summary(s, f)
		return printRendered(cmd, text, err)
	},
}

func init() {
	reviewCmd.Flags().IntVarP(&reviewWeeks, "weeks", "w", 1, "Weeks to review (1-12)")
	reviewCmd.Flags().StringVarP(&reportFormat, "format", "f", "markdown", "markdown or json")
	summaryCmd.Flags().StringVarP(&reportFormat, "format", "f", "markdown", "markdown or json")

	rootCmd.AddCommand(reviewCmd, summaryCmd)
}
