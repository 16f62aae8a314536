// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fitness/internal/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates JSON-RPC over stdin/stdout, so logs go to stderr or
the configured log file.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "fitness": {
        "command": "fitness",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  fitness_log_workout        fitness_list_workouts      fitness_update_workout
  fitness_delete_workout     fitness_log_lift           fitness_log_protein
  fitness_add_protein        fitness_update_protein     fitness_log_weight
  fitness_log_readiness      fitness_delete_readiness   fitness_log_mobility
  fitness_get_today          fitness_set_program        fitness_get_lift_history
  fitness_get_prs            fitness_weekly_review      fitness_get_summary
  fitness_get_*_history      fitness_import_workouts

AVAILABLE RESOURCES:

  fitness://today      Today's prescribed workout
  fitness://summary    Dashboard as JSON
  fitness://prs        Current PR board as JSON`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(svc, logrus.StandardLogger())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
