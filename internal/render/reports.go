// ABOUTME: Renders the weekly review, the dashboard summary and import results.
// ABOUTME: Each section has an explicit branch for windows with no data.
package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/harperreed/fitness/internal/training"
)

var consistencyNotes = map[training.Consistency]string{
	training.ConsistencyGreat:      "✅ Great consistency!",
	training.ConsistencyImprovable: "⚠️ Room for improvement",
	training.ConsistencyNeedsMore:  "❌ Need more sessions",
}

// WeeklyReview renders the aggregates of a review window.
func WeeklyReview(r *training.WeeklyReview, f Format) (string, error) {
	if f == JSON {
		out := *r
		out.PRs = nonNil(r.PRs)
		return JSONText(out)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Weekly Review: %s to %s\n\n", r.From, r.To)

	b.WriteString("### 💪 Training\n")
	fmt.Fprintf(&b, "- **Workouts completed:** %d\n", r.Workouts)
	fmt.Fprintf(&b, "  %s\n", consistencyNotes[r.Consistency])

	b.WriteString("\n### 🥩 Protein\n")
	if p := r.Protein; p != nil {
		fmt.Fprintf(&b, "- **Days logged:** %d\n", p.DaysLogged)
		fmt.Fprintf(&b, "- **Days hitting %dg+:** %d\n", training.ProteinTarget, p.DaysOnTarget)
		fmt.Fprintf(&b, "- **Average:** %.0fg/day\n", p.Average)
	} else {
		b.WriteString("- No protein logged this week\n")
	}

	b.WriteString("\n### ⚖️ Weight\n")
	if w := r.Weight; w != nil {
		sign := ""
		if w.Delta() > 0 {
			sign = "+"
		}
		fmt.Fprintf(&b, "- **Start:** %s lbs\n", lbs(w.Start))
		fmt.Fprintf(&b, "- **End:** %s lbs\n", lbs(w.End))
		fmt.Fprintf(&b, "- **Change:** %s%.1f lbs\n", sign, w.Delta())
	} else {
		b.WriteString("- No weight logged this week\n")
	}

	b.WriteString("\n### 😴 Recovery (averages)\n")
	if a := r.Readiness; a != nil {
		fmt.Fprintf(&b, "- Sleep: %.1f/5\n", a.SleepQuality)
		fmt.Fprintf(&b, "- Energy: %.1f/5\n", a.Energy)
		fmt.Fprintf(&b, "- Soreness: %.1f/5\n", a.Soreness)
		fmt.Fprintf(&b, "- Stress: %.1f/5\n", a.Stress)
	} else {
		b.WriteString("- No readiness check-ins this week\n")
	}

	b.WriteString("\n### 🧘 Mobility\n")
	fmt.Fprintf(&b, "- **Sessions:** %d\n", r.MobilitySessions)
	fmt.Fprintf(&b, "- **Total time:** %d minutes\n", r.MobilityMinutes)

	if len(r.PRs) > 0 {
		b.WriteString("\n### 🏆 New PRs!\n")
		for _, pr := range r.PRs {
			fmt.Fprintf(&b, "- %s: %s lbs x %d (%s)\n", pr.Lift, lbs(pr.Weight), pr.Reps, pr.Date)
		}
	}
	return b.String(), nil
}

// Summary renders the dashboard.
func Summary(s *training.Summary, f Format) (string, error) {
	if f == JSON {
		return JSONText(s)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Fitness Dashboard: %s\n\n", s.Date)
	if s.Program != nil {
		fmt.Fprintf(&b, "📋 **Program:** %s (started %s)\n\n", s.Program.Name, s.Program.StartDate)
	} else {
		b.WriteString("📋 **No active program** - use `fitness_set_program` to start\n\n")
	}

	b.WriteString("### Today\n")
	fmt.Fprintf(&b, "- Protein: %dg / %dg\n", s.ProteinToday, training.ProteinTarget)
	if s.Readiness != nil {
		fmt.Fprintf(&b, "- Readiness: %.1f/5\n", s.ReadinessScore)
	} else {
		b.WriteString("- Readiness: not logged\n")
	}

	b.WriteString("\n### This Week\n")
	fmt.Fprintf(&b, "- Workouts: %d\n", s.WeekWorkouts)
	if w := s.LatestWeight; w != nil {
		when := "today"
		if w.Date.Before(s.Date) {
			when = humanize.RelTime(w.Date.Time, s.Date.Time, "ago", "from now")
		}
		fmt.Fprintf(&b, "- Latest weight: %s lbs (%s, %s)\n", lbs(w.Weight), w.Date, when)
	}
	return b.String(), nil
}

// maxImportErrors is how many row errors an import summary lists.
const maxImportErrors = 5

// Import renders the outcome of an export import.
func Import(s *training.ImportSummary) string {
	var b strings.Builder
	b.WriteString("## Workout Import Complete\n\n")
	fmt.Fprintf(&b, "- **Imported:** %d workouts\n", s.Imported)
	fmt.Fprintf(&b, "- **Skipped (duplicates):** %d\n", s.Skipped)
	fmt.Fprintf(&b, "- **Lift PRs recorded:** %d\n", s.PRsAdded)

	if len(s.Errors) > 0 {
		fmt.Fprintf(&b, "\n### Errors (%d)\n", len(s.Errors))
		for _, e := range s.Errors[:min(len(s.Errors), maxImportErrors)] {
			fmt.Fprintf(&b, "- %s\n", e)
		}
		if extra := len(s.Errors) - maxImportErrors; extra > 0 {
			fmt.Fprintf(&b, "- ... and %d more\n", extra)
		}
	}
	return b.String()
}
