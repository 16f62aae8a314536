// ABOUTME: Renders the per-metric history queries used for analysis.
// ABOUTME: JSON output is the raw entry list; markdown is a compact table.
package render

import (
	"fmt"
	"strings"

	"github.com/harperreed/fitness/internal/models"
)

// history renders rows as JSON or as a titled table. empty is the
// message shown when there are no rows in markdown mode.
func history[T any](rows []T, f Format, title, empty, header string, row func(T) string) (string, error) {
	if f == JSON {
		return JSONText(nonNil(rows))
	}
	if len(rows) == 0 {
		return empty, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	b.WriteString(header)
	for _, r := range rows {
		b.WriteString(row(r))
	}
	return b.String(), nil
}

func ReadinessHistory(rows []*models.ReadinessEntry, f Format) (string, error) {
	return history(rows, f, "Readiness History",
		"No readiness data found for this period.",
		"| Date | Sleep | Energy | Soreness | Stress | Score |\n|------|-------|--------|----------|--------|-------|\n",
		func(r *models.ReadinessEntry) string {
			return fmt.Sprintf("| %s | %d | %d | %d | %d | %.1f |\n",
				r.Date, r.SleepQuality, r.Energy, r.Soreness, r.Stress, r.Score())
		})
}

func ProteinHistory(rows []*models.ProteinEntry, f Format) (string, error) {
	return history(rows, f, "Protein History",
		"No protein data found for this period.",
		"| Date | Grams | Notes |\n|------|-------|-------|\n",
		func(r *models.ProteinEntry) string {
			return fmt.Sprintf("| %s | %dg | %s |\n", r.Date, r.Grams, cell(truncate(r.Notes, 40)))
		})
}

func WeightHistory(rows []*models.WeightEntry, f Format) (string, error) {
	return history(rows, f, "Weight History",
		"No weight data found for this period.",
		"| Date | Weight (lbs) |\n|------|-------------|\n",
		func(r *models.WeightEntry) string {
			return fmt.Sprintf("| %s | %s |\n", r.Date, lbs(r.Weight))
		})
}

func WorkoutHistory(rows []*models.Workout, f Format) (string, error) {
	return history(rows, f, "Workout History",
		"No workouts found for this period.",
		"| Date | Workout | Result |\n|------|---------|--------|\n",
		func(w *models.Workout) string {
			return fmt.Sprintf("| %s | %s | %s |\n", w.Date, cell(w.Title), cell(orDash(w.ResultDisplay)))
		})
}

func MobilityHistory(rows []*models.MobilitySession, f Format) (string, error) {
	return history(rows, f, "Mobility History",
		"No mobility data found for this period.",
		"| Date | Duration | Focus | Exercises |\n|------|----------|-------|-----------|\n",
		func(m *models.MobilitySession) string {
			return fmt.Sprintf("| %s | %d min | %s | %s |\n",
				m.Date, m.DurationMinutes, cell(orDash(m.FocusArea)), cell(truncate(m.Exercises, 30)))
		})
}
