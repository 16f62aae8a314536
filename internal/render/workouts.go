// ABOUTME: Renders workout ledger and PR results.
// ABOUTME: Covers logging, listing, updates, deletes, lift history and the PR board.
package render

import (
	"fmt"
	"strings"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/training"
)

// WorkoutLogged confirms a new workout.
func WorkoutLogged(w *models.Workout) string {
	rx := "RX"
	if w.RX == models.Scaled {
		rx = "Scaled"
	}
	result := w.ResultDisplay
	if result == "" {
		result = "N/A"
	}
	return fmt.Sprintf("✅ Logged: **%s** on %s\n- Result: %s\n- %s", w.Title, w.Date, result, rx)
}

// WorkoutList is the ID table used to find workouts to edit.
func WorkoutList(ws []*models.Workout) string {
	if len(ws) == 0 {
		return "No workouts found."
	}
	var b strings.Builder
	b.WriteString("## Recent Workouts\n\n")
	b.WriteString("| ID | Date | Title | Result | Source |\n")
	b.WriteString("|-----|------|-------|--------|--------|\n")
	for _, w := range ws {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			w.ID, w.Date, cell(w.Title), cell(orDash(w.ResultDisplay)), w.Source)
	}
	return b.String()
}

func WorkoutUpdated(w *models.Workout) string {
	return fmt.Sprintf("✅ Updated workout #%d (%s on %s)", w.ID, w.Title, w.Date)
}

func WorkoutDeleted(w *models.Workout) string {
	return fmt.Sprintf("🗑️ Deleted workout #%d (%s on %s)", w.ID, w.Title, w.Date)
}

// Lift confirms a lift and announces a new record.
func Lift(r *training.LiftResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Logged: **%s** - %s lbs x %d reps", r.Lift, lbs(r.Weight), r.Reps)
	if r.Sets > 1 {
		fmt.Fprintf(&b, " (%d sets)", r.Sets)
	}
	fmt.Fprintf(&b, " on %s", r.Workout.Date)

	if r.IsPR {
		prev := "None"
		if r.Previous != nil {
			prev = lbs(*r.Previous) + " lbs"
		}
		fmt.Fprintf(&b, "\n\n🎉 **NEW PR!** Previous best: %s", prev)
	}
	return b.String()
}

type liftHistoryJSON struct {
	Lift    string            `json:"lift"`
	PR      *float64          `json:"pr"`
	Records []*models.LiftPR  `json:"records"`
	History []*models.Workout `json:"history"`
}

// LiftHistory renders the workout trail and current records for a lift.
func LiftHistory(h *training.LiftHistory, f Format) (string, error) {
	if f == JSON {
		out := liftHistoryJSON{
			Lift:    h.Lift,
			Records: nonNil(h.Records),
			History: nonNil(h.Workouts),
		}
		if h.Best != nil {
			out.PR = &h.Best.Weight
		}
		return JSONText(out)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s History\n\n", h.Lift)
	if h.Best != nil {
		fmt.Fprintf(&b, "**Current PR: %s lbs**\n\n", lbs(h.Best.Weight))
	}
	if len(h.Records) > 1 {
		b.WriteString("| Lift | Reps | PR | Date |\n|------|------|-----|------|\n")
		for _, pr := range h.Records {
			fmt.Fprintf(&b, "| %s | %d | %s lbs | %s |\n", cell(pr.Lift), pr.Reps, lbs(pr.Weight), pr.Date)
		}
		b.WriteString("\n")
	}

	if len(h.Workouts) == 0 {
		b.WriteString("No history found for this lift.\n")
		return b.String(), nil
	}
	b.WriteString("| Date | Weight | Notes |\n|------|--------|-------|\n")
	for _, w := range h.Workouts {
		marker := ""
		if w.IsPR {
			marker = " 🏆"
		}
		fmt.Fprintf(&b, "| %s | %s lbs%s | %s |\n",
			w.Date, cell(orDash(w.ResultDisplay)), marker, cell(truncate(w.Notes, 30)))
	}
	return b.String(), nil
}

// PRBoard renders the current record for every (lift, reps) pair.
func PRBoard(prs []*models.LiftPR, f Format) (string, error) {
	if f == JSON {
		return JSONText(nonNil(prs))
	}

	var b strings.Builder
	b.WriteString("## 🏆 Personal Records\n\n")
	if len(prs) == 0 {
		b.WriteString("No PRs recorded yet. Start lifting!\n")
		return b.String(), nil
	}
	b.WriteString("| Lift | Reps | PR | Date |\n|------|------|-----|------|\n")
	for _, pr := range prs {
		fmt.Fprintf(&b, "| %s | %d | %s lbs | %s |\n", cell(pr.Lift), pr.Reps, lbs(pr.Weight), pr.Date)
	}
	return b.String(), nil
}
