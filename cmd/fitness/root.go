// ABOUTME: Root Cobra command for fitness CLI.
// ABOUTME: Opens config, logging, the SQLite ledger and the training service per run.
package main

import (
	"fmt"
	"io"

	"github.com/harperreed/fitness/internal/config"
	"github.com/harperreed/fitness/internal/logging"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/harperreed/fitness/internal/training"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dbPath    string
	store     *storage.Store
	svc       *training.Service
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "fitness",
	Short: "Personal training log and program coach",
	Long: `Fitness is a CLI for logging training and recovery and following a
structured program.

WHAT IT TRACKS:

  Workouts    WODs, classes and runs with results, RX or scaled
  Lifts       strength sets with automatic PR detection per rep count
  Nutrition   daily protein against a 160g target
  Body        weight, morning readiness check-ins, mobility sessions
  Program     a multi-week plan that tells you what to do today

QUICK START:

  $ fitness program set                    # Start the 4-week program next Monday
  $ fitness today                          # See today's prescribed workout
  $ fitness lift log "Back Squat" 225 -r 5 # Log a lift, flags new PRs
  $ fitness protein add 40 chicken         # Add to today's protein total
  $ fitness readiness log 4 4 2 2          # Sleep, energy, soreness, stress
  $ fitness review                         # Weekly review

MCP INTEGRATION:

  Run 'fitness mcp' to start the Model Context Protocol server. Add to your
  Claude config:

  {
    "mcpServers": {
      "fitness": { "command": "fitness", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Everything lives in one SQLite file, ~/.local/share/fitness/fitness.db by
  default. Override with --db, DB_PATH, or data_dir in
  ~/.config/fitness/config.json.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "help" || cmd.Name() == "install-skill" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}

		logCloser = logging.Setup(logging.SetupParams{
			LogFileName:   cfg.LogFile,
			LogLevel:      cfg.GetLogLevel(),
			LogFormatJSON: cfg.LogJSON,
		})

		closeStore()
		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		svc = training.New(store, training.WithLogger(logrus.StandardLogger()))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		closeStore()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (default ~/.local/share/fitness/fitness.db)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// closeStore releases the store and log file; safe to call repeatedly.
func closeStore() {
	if store != nil {
		if err := store.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close database")
		}
		store, svc = nil, nil
	}
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

// printOut writes rendered output to the command's stdout.
func printOut(cmd *cobra.Command, text string) {
	fmt.Fprintln(cmd.OutOrStdout(), text)
}

// printRendered prints text unless rendering failed.
func printRendered(cmd *cobra.Command, text string, err error) error {
	if err != nil {
		return err
	}
	printOut(cmd, text)
	return nil
}
