// ABOUTME: Tests for CLI command wiring and execution.
// ABOUTME: Runs the root command end to end against a temp SQLite ledger.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/fitness/internal/training"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// setupTestCLI points the CLI at a fresh database and an empty config dir.
func setupTestCLI(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("FITNESS_DATA_DIR", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("FITNESS_LOG_FILE", "")
	t.Setenv("FITNESS_LOG_LEVEL", "error")
	t.Cleanup(closeStore)

	return filepath.Join(tmpDir, "fitness.db")
}

// resetFlags restores every flag to its default so runs don't leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCLI executes the root command and returns what it printed.
func runCLI(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--db", db}, args...))

	err := rootCmd.Execute()
	closeStore()
	return out.String(), err
}

func mustRun(t *testing.T, db string, args ...string) string {
	t.Helper()
	out, err := runCLI(t, db, args...)
	if err != nil {
		t.Fatalf("fitness %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func assertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("output missing %q:\n%s", want, got)
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "fitness" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "fitness")
	}
	if rootCmd.PersistentFlags().Lookup("db") == nil {
		t.Error("Expected persistent --db flag")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{
		"workout", "lift", "protein", "weight", "readiness", "mobility",
		"today", "program", "review", "summary", "import", "mcp", "install-skill",
	}
	have := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("Expected %s command to be registered", name)
		}
	}
}

func TestWorkoutCmdSubcommands(t *testing.T) {
	want := map[string]bool{"log": false, "list": false, "update": false, "delete": false, "history": false}
	for _, sub := range workoutCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Expected workout %s subcommand", name)
		}
	}
}

func TestWorkoutLogAndList(t *testing.T) {
	db := setupTestCLI(t)

	out := mustRun(t, db, "workout", "log", "Fran", "--result", "4:32", "--score-type", "time", "--date", "2024-01-08")
	assertContains(t, out, "✅ Logged: **Fran** on 2024-01-08")
	assertContains(t, out, "- Result: 4:32")
	assertContains(t, out, "- RX")

	out = mustRun(t, db, "workout", "log", "Cindy", "--scaled", "--date", "2024-01-09")
	assertContains(t, out, "- Result: N/A")
	assertContains(t, out, "- Scaled")

	out = mustRun(t, db, "workout", "list")
	assertContains(t, out, "## Recent Workouts")
	assertContains(t, out, "| 1 | 2024-01-08 | Fran | 4:32 |")
	assertContains(t, out, "Cindy")

	out = mustRun(t, db, "workout", "list", "--date", "2024-01-09")
	if strings.Contains(out, "Fran") {
		t.Errorf("date filter leaked other days:\n%s", out)
	}
}

func TestWorkoutLogDuplicate(t *testing.T) {
	db := setupTestCLI(t)

	mustRun(t, db, "workout", "log", "Fran", "--result", "4:32", "--date", "2024-01-08")
	_, err := runCLI(t, db, "workout", "log", "Fran", "--result", "4:32", "--date", "2024-01-08")
	if !errors.Is(err, training.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestWorkoutUpdateOnlyChangedFlags(t *testing.T) {
	db := setupTestCLI(t)

	mustRun(t, db, "workout", "log", "Fran", "--result", "4:32", "--notes", "felt good", "--date", "2024-01-08")

	out := mustRun(t, db, "workout", "update", "1", "--result", "4:28")
	assertContains(t, out, "✅ Updated workout #1 (Fran on 2024-01-08)")

	out = mustRun(t, db, "workout", "list")
	assertContains(t, out, "4:28")

	_, err := runCLI(t, db, "workout", "update", "1")
	if !errors.Is(err, training.ErrNoChanges) {
		t.Errorf("expected ErrNoChanges, got %v", err)
	}

	_, err = runCLI(t, db, "workout", "update", "abc", "--result", "1:00")
	if !training.IsUserError(err) {
		t.Errorf("expected a user error for a bad id, got %v", err)
	}
}

func TestWorkoutDeleteRequiresYes(t *testing.T) {
	db := setupTestCLI(t)

	mustRun(t, db, "workout", "log", "Fran", "--date", "2024-01-08")

	_, err := runCLI(t, db, "workout", "delete", "1")
	if !errors.Is(err, training.ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}

	out := mustRun(t, db, "workout", "delete", "1", "--yes")
	assertContains(t, out, "🗑️ Deleted workout #1 (Fran on 2024-01-08)")

	_, err = runCLI(t, db, "workout", "delete", "1", "--yes")
	if !errors.Is(err, training.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLiftLogDetectsPR(t *testing.T) {
	db := setupTestCLI(t)

	out := mustRun(t, db, "lift", "log", "Back Squat", "225", "-r", "5", "--date", "2024-01-08")
	assertContains(t, out, "✅ Logged: **Back Squat** - 225 lbs x 5 reps on 2024-01-08")
	assertContains(t, out, "Previous best: None")

	out = mustRun(t, db, "lift", "log", "Back Squat", "230", "-r", "5", "--date", "2024-01-15")
	assertContains(t, out, "NEW PR!")
	assertContains(t, out, "Previous best: 225 lbs")

	out = mustRun(t, db, "lift", "log", "Back Squat", "230", "-r", "5", "--sets", "3", "--date", "2024-01-16")
	if strings.Contains(out, "NEW PR") {
		t.Errorf("matching the best should not be a PR:\n%s", out)
	}

	out = mustRun(t, db, "lift", "prs")
	assertContains(t, out, "## 🏆 Personal Records")
	assertContains(t, out, "Back Squat")
	assertContains(t, out, "230")

	out = mustRun(t, db, "lift", "history", "squat", "--format", "json")
	var h map[string]any
	if err := json.Unmarshal([]byte(out), &h); err != nil {
		t.Fatalf("lift history is not JSON: %v\n%s", err, out)
	}
	if h["pr"] != 230.0 {
		t.Errorf("pr = %v, want 230", h["pr"])
	}
}

func TestLiftLogInvalidWeight(t *testing.T) {
	db := setupTestCLI(t)

	_, err := runCLI(t, db, "lift", "log", "Deadlift", "heavy")
	var ve *training.ValidationError
	if !errors.As(err, &ve) || ve.Field != "weight" {
		t.Errorf("expected weight validation error, got %v", err)
	}
}

func TestLiftLogRejectsZeroReps(t *testing.T) {
	db := setupTestCLI(t)

	_, err := runCLI(t, db, "lift", "log", "Deadlift", "315", "--reps", "0")
	var ve *training.ValidationError
	if !errors.As(err, &ve) || ve.Field != "reps" {
		t.Errorf("expected reps validation error, got %v", err)
	}
}

func TestProteinAddAccumulates(t *testing.T) {
	db := setupTestCLI(t)

	out := mustRun(t, db, "protein", "add", "40", "chicken", "breast")
	assertContains(t, out, "**Today's total: 40g**")

	out = mustRun(t, db, "protein", "add", "30")
	assertContains(t, out, "**Today's total: 70g**")
	assertContains(t, out, "90g remaining")
}

func TestProteinSetAndUpdate(t *testing.T) {
	db := setupTestCLI(t)

	out := mustRun(t, db, "protein", "set", "150", "--date", "2024-01-09")
	assertContains(t, out, "✅ Protein logged: **150g** on 2024-01-09")

	mustRun(t, db, "protein", "update", "2024-01-09", "--grams", "165")

	_, err := runCLI(t, db, "protein", "update", "2024-01-09")
	if !errors.Is(err, training.ErrNoChanges) {
		t.Errorf("expected ErrNoChanges, got %v", err)
	}

	_, err = runCLI(t, db, "protein", "update", "2024-01-10", "--grams", "10")
	if !errors.Is(err, training.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	_, err = runCLI(t, db, "protein", "set", "lots")
	if !training.IsUserError(err) {
		t.Errorf("expected a user error for non-numeric grams, got %v", err)
	}
}

func TestWeightLogShowsChange(t *testing.T) {
	db := setupTestCLI(t)

	mustRun(t, db, "weight", "log", "185", "--date", "2024-01-08")
	out := mustRun(t, db, "weight", "log", "183.5", "--date", "2024-01-10")
	assertContains(t, out, "Change from 2024-01-08: ↓ 1.5 lbs")
}

func TestReadinessLogAndDelete(t *testing.T) {
	db := setupTestCLI(t)

	out := mustRun(t, db, "readiness", "log", "4", "4", "2", "2", "--date", "2024-01-08")
	assertContains(t, out, "## Readiness Check-in: 2024-01-08")
	assertContains(t, out, "**Readiness Score:** 4.0/5")

	_, err := runCLI(t, db, "readiness", "log", "6", "4", "2", "2")
	if !training.IsUserError(err) {
		t.Errorf("expected a range error, got %v", err)
	}

	_, err = runCLI(t, db, "readiness", "delete", "2024-01-08")
	if !errors.Is(err, training.ErrNotConfirmed) {
		t.Errorf("expected ErrNotConfirmed, got %v", err)
	}

	out = mustRun(t, db, "readiness", "delete", "2024-01-08", "--yes")
	assertContains(t, out, "Deleted readiness entry for 2024-01-08")
}

func TestMobilityLog(t *testing.T) {
	db := setupTestCLI(t)

	mustRun(t, db, "mobility", "log", "15", "--focus", "hips", "--date", "2024-01-08")
	out := mustRun(t, db, "mobility", "log", "20", "--date", "2024-01-09")
	assertContains(t, out, "**This week:** 2 sessions, 35 total minutes")
}

func TestTodayWithoutProgram(t *testing.T) {
	db := setupTestCLI(t)

	out := mustRun(t, db, "today", "--date", "2024-01-01")
	assertContains(t, out, "## Monday, 2024-01-01")
	assertContains(t, out, "No active program")
	assertContains(t, out, "Upper Push")
}

func TestProgramSetAndToday(t *testing.T) {
	db := setupTestCLI(t)

	out := mustRun(t, db, "program", "set", "--start", "2024-01-01")
	assertContains(t, out, "## Program Activated! 🎯")
	assertContains(t, out, "2024-01-01")

	out = mustRun(t, db, "today", "--date", "2024-01-16")
	assertContains(t, out, "### Week 3")
	if strings.Contains(out, "No active program") {
		t.Errorf("expected the activated program:\n%s", out)
	}

	_, err := runCLI(t, db, "program", "set", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, training.ErrNotFound) {
		t.Errorf("expected ErrNotFound for a missing program file, got %v", err)
	}
}

func TestReviewAndSummary(t *testing.T) {
	db := setupTestCLI(t)

	out := mustRun(t, db, "review", "--format", "json")
	var review map[string]any
	if err := json.Unmarshal([]byte(out), &review); err != nil {
		t.Fatalf("review is not JSON: %v\n%s", err, out)
	}

	_, err := runCLI(t, db, "review", "--weeks", "13")
	if !training.IsUserError(err) {
		t.Errorf("expected a range error, got %v", err)
	}

	mustRun(t, db, "summary")

	_, err = runCLI(t, db, "summary", "--format", "xml")
	var ve *training.ValidationError
	if !errors.As(err, &ve) || ve.Field != "response_format" {
		t.Errorf("expected response_format error, got %v", err)
	}
}

func TestHistoryCommands(t *testing.T) {
	db := setupTestCLI(t)

	for _, args := range [][]string{
		{"workout", "history"},
		{"protein", "history"},
		{"weight", "history"},
		{"readiness", "history"},
		{"mobility", "history"},
	} {
		out := mustRun(t, db, args...)
		if !strings.Contains(out, "No ") {
			t.Errorf("%v: expected empty message, got:\n%s", args, out)
		}

		out = mustRun(t, db, append(args, "--format", "json")...)
		if strings.TrimSpace(out) != "[]" {
			t.Errorf("%v: expected [], got %q", args, out)
		}
	}

	_, err := runCLI(t, db, "weight", "history", "--days", "400")
	if !training.IsUserError(err) {
		t.Errorf("expected a range error, got %v", err)
	}
}

func TestImportCmd(t *testing.T) {
	db := setupTestCLI(t)

	csvPath := filepath.Join(t.TempDir(), "workouts.csv")
	csv := "date,title,best_result_display,score_type\n" +
		"01/08/2024,Fran,4:32,Time\n" +
		"01/09/2024,Murph,45:10,Time\n"
	if err := os.WriteFile(csvPath, []byte(csv), 0600); err != nil {
		t.Fatal(err)
	}

	out := mustRun(t, db, "import", csvPath)
	assertContains(t, out, "## Workout Import Complete")
	assertContains(t, out, "- **Imported:** 2 workouts")

	out = mustRun(t, db, "import", csvPath)
	assertContains(t, out, "- **Imported:** 0 workouts")
	assertContains(t, out, "- **Skipped (duplicates):** 2")

	_, err := runCLI(t, db, "import", filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, training.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
