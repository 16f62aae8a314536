// ABOUTME: Renders daily metric confirmations.
// ABOUTME: Protein progress bars, weight trend arrows, readiness stars and mobility totals.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/training"
)

func proteinProgress(grams int) string {
	bar, pct := ProgressBar(grams, training.ProteinTarget)
	return fmt.Sprintf("[%s] %d%% of %dg goal", bar, pct, training.ProteinTarget)
}

// ProteinLogged confirms a set of the day's protein total.
func ProteinLogged(r *training.ProteinResult) string {
	return fmt.Sprintf("✅ Protein logged: **%dg** on %s\n\nProgress: %s",
		r.Entry.Grams, r.Entry.Date, proteinProgress(r.Entry.Grams))
}

// ProteinAdded confirms an increment to today's running total.
func ProteinAdded(r *training.ProteinResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Added **%dg** protein", r.Added)
	if r.Food != "" {
		fmt.Fprintf(&b, " (%s)", r.Food)
	}
	fmt.Fprintf(&b, "\n\n**Today's total: %dg**\n%s", r.Entry.Grams, proteinProgress(r.Entry.Grams))

	if rem := r.Remaining(); rem == 0 {
		b.WriteString("\n\n🎯 Goal reached!")
	} else {
		fmt.Fprintf(&b, "\n\n%dg remaining", rem)
	}
	return b.String()
}

func ProteinUpdated(r *training.ProteinResult) string {
	return fmt.Sprintf("✅ Updated protein for %s: **%dg**\n%s",
		r.Entry.Date, r.Entry.Grams, proteinProgress(r.Entry.Grams))
}

// Weight confirms a weigh-in with the change since the previous one.
func Weight(r *training.WeightResult) string {
	s := fmt.Sprintf("✅ Weight logged: **%s lbs** on %s", lbs(r.Entry.Weight), r.Entry.Date)

	delta, ok := r.Change()
	if !ok {
		return s
	}
	arrow := "→"
	switch {
	case delta > 0:
		arrow = "↑"
	case delta < 0:
		arrow = "↓"
	}
	return s + fmt.Sprintf("\n\nChange from %s: %s %.1f lbs", r.Previous.Date, arrow, math.Abs(delta))
}

var recommendations = map[training.Recommendation]string{
	training.RecommendGoHard: "💪 **Go hard** - You're well recovered, push it today",
	training.RecommendNormal: "✅ **Normal training** - Good to go with planned workout",
	training.RecommendModify: "⚠️ **Modify** - Consider lighter weights or shorter session",
	training.RecommendRest:   "🛑 **Rest or light movement** - Prioritize recovery today",
}

// Readiness renders a check-in as a star table with its recommendation.
func Readiness(r *training.ReadinessResult) string {
	e := r.Entry
	var b strings.Builder
	fmt.Fprintf(&b, "## Readiness Check-in: %s\n\n", e.Date)
	b.WriteString("| Metric | Score |\n|--------|-------|\n")
	fmt.Fprintf(&b, "| Sleep | %s |\n", Stars(e.SleepQuality))
	fmt.Fprintf(&b, "| Energy | %s |\n", Stars(e.Energy))
	fmt.Fprintf(&b, "| Soreness | %s |\n", Stars(e.Soreness))
	fmt.Fprintf(&b, "| Stress | %s |\n\n", Stars(e.Stress))
	fmt.Fprintf(&b, "**Readiness Score:** %.1f/5\n\n", r.Score)
	b.WriteString(recommendations[r.Recommendation])
	if e.Notes != "" {
		fmt.Fprintf(&b, "\n\nNotes: %s", e.Notes)
	}
	return b.String()
}

func ReadinessDeleted(date models.Date) string {
	return fmt.Sprintf("🗑️ Deleted readiness entry for %s", date)
}

// Mobility confirms a session with the trailing week's totals.
func Mobility(r *training.MobilityResult) string {
	m := r.Session
	var b strings.Builder
	fmt.Fprintf(&b, "✅ Logged: **%d min** mobility work on %s", m.DurationMinutes, m.Date)
	if m.FocusArea != "" {
		fmt.Fprintf(&b, "\n- Focus: %s", m.FocusArea)
	}
	if m.Exercises != "" {
		fmt.Fprintf(&b, "\n- Exercises: %s", m.Exercises)
	}
	fmt.Fprintf(&b, "\n\n**This week:** %d sessions, %d total minutes", r.WeekSessions, r.WeekMinutes)
	return b.String()
}
