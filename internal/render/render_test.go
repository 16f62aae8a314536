// ABOUTME: Tests for markdown and JSON rendering of training results.
// ABOUTME: Checks progress bars, stars, trend arrows and empty-data branches.
package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/harperreed/fitness/internal/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		grams  int
		filled int
		pct    int
	}{
		{0, 0, 0},
		{80, 5, 50},
		{155, 9, 97},
		{160, 10, 100},
		{200, 10, 125},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.grams), func(t *testing.T) {
			bar, pct := ProgressBar(tt.grams, training.ProteinTarget)
			assert.Equal(t, tt.pct, pct)
			assert.Equal(t, tt.filled, strings.Count(bar, "█"))
			assert.Equal(t, 10-tt.filled, strings.Count(bar, "░"))
		})
	}
}

func TestStars(t *testing.T) {
	assert.Equal(t, "⭐⭐⭐☆☆", Stars(3))
	assert.Equal(t, "☆☆☆☆☆", Stars(0))
	assert.Equal(t, "⭐⭐⭐⭐⭐", Stars(9))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("", JSON)
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	f, err = ParseFormat(" Markdown ", JSON)
	require.NoError(t, err)
	assert.Equal(t, Markdown, f)

	_, err = ParseFormat("xml", Markdown)
	require.Error(t, err)
	assert.True(t, training.IsUserError(err))
}

func TestError(t *testing.T) {
	assert.Equal(t, "Deletion not confirmed. Set confirm=true to delete.", Error(training.ErrNotConfirmed))
	assert.Equal(t, "Error: no workout found for id 5",
		Error(&training.NotFoundError{Entity: "workout", Key: "id 5"}))
}

func TestLift(t *testing.T) {
	w := &models.Workout{Date: day("2024-01-10")}

	first := Lift(&training.LiftResult{Workout: w, Lift: "Back Squat", Weight: 225, Reps: 5, Sets: 3, IsPR: true})
	assert.Contains(t, first, "**Back Squat** - 225 lbs x 5 reps (3 sets) on 2024-01-10")
	assert.Contains(t, first, "**NEW PR!** Previous best: None")

	prev := 215.0
	next := Lift(&training.LiftResult{Workout: w, Lift: "Back Squat", Weight: 227.5, Reps: 1, Sets: 1, IsPR: true, Previous: &prev})
	assert.Contains(t, next, "227.5 lbs x 1 reps on")
	assert.NotContains(t, next, "sets)")
	assert.Contains(t, next, "Previous best: 215 lbs")

	plain := Lift(&training.LiftResult{Workout: w, Lift: "Deadlift", Weight: 300, Reps: 1, Sets: 1})
	assert.NotContains(t, plain, "NEW PR")
}

func TestProteinAdded(t *testing.T) {
	partial := ProteinAdded(&training.ProteinResult{
		Entry: models.ProteinEntry{Grams: 40},
		Added: 40,
		Food:  "chicken",
	})
	assert.Contains(t, partial, "Added **40g** protein (chicken)")
	assert.Contains(t, partial, "**Today's total: 40g**")
	assert.Contains(t, partial, "120g remaining")

	done := ProteinAdded(&training.ProteinResult{Entry: models.ProteinEntry{Grams: 170}, Added: 30})
	assert.Contains(t, done, "Goal reached!")
	assert.NotContains(t, done, "remaining")
}

func TestWeightTrend(t *testing.T) {
	prev := &models.WeightEntry{Date: day("2024-01-08"), Weight: 200}

	down := Weight(&training.WeightResult{Entry: models.WeightEntry{Date: day("2024-01-14"), Weight: 198.2}, Previous: prev})
	assert.Contains(t, down, "**198.2 lbs** on 2024-01-14")
	assert.Contains(t, down, "Change from 2024-01-08: ↓ 1.8 lbs")

	up := Weight(&training.WeightResult{Entry: models.WeightEntry{Weight: 201}, Previous: prev})
	assert.Contains(t, up, "↑ 1.0 lbs")

	flat := Weight(&training.WeightResult{Entry: models.WeightEntry{Weight: 200}, Previous: prev})
	assert.Contains(t, flat, "→ 0.0 lbs")

	first := Weight(&training.WeightResult{Entry: models.WeightEntry{Weight: 200}})
	assert.NotContains(t, first, "Change from")
}

func TestReadiness(t *testing.T) {
	e := models.ReadinessEntry{Date: day("2024-01-10"), SleepQuality: 5, Energy: 4, Soreness: 2, Stress: 1, Notes: "slept well"}
	out := Readiness(&training.ReadinessResult{Entry: e, Score: e.Score(), Recommendation: training.Recommend(e.Score())})

	assert.Contains(t, out, "| Sleep | ⭐⭐⭐⭐⭐ |")
	assert.Contains(t, out, "| Stress | ⭐☆☆☆☆ |")
	assert.Contains(t, out, "**Readiness Score:** 4.5/5")
	assert.Contains(t, out, "**Go hard**")
	assert.True(t, strings.HasSuffix(out, "Notes: slept well"))
}

func TestTodayFromDefaultProgram(t *testing.T) {
	p := training.Resolve(models.DefaultProgram(), nil, day("2024-01-01"), nil)
	out := Today(&p)

	assert.Contains(t, out, "## Monday, 2024-01-01")
	assert.Contains(t, out, "### Week 1: Foundation")
	assert.Contains(t, out, "No active program")
	assert.Contains(t, out, "## Upper Push")
	assert.Contains(t, out, "### Exercises")
	assert.Contains(t, out, "No protein logged yet today")
}

func TestTodayRestDayWithReadiness(t *testing.T) {
	start := day("2024-01-01")
	low := &models.ReadinessEntry{SleepQuality: 1, Energy: 2, Soreness: 5, Stress: 4}
	grams := 90

	p := training.Resolve(models.DefaultProgram(), &start, day("2024-01-07"), low)
	p.Protein = &grams
	out := Today(&p)

	assert.Contains(t, out, "## Sunday, 2024-01-07")
	assert.Contains(t, out, "## Rest")
	assert.NotContains(t, out, "### Exercises")
	assert.NotContains(t, out, "No active program")
	assert.Contains(t, out, "Low readiness today")
	assert.Contains(t, out, "Protein so far: 90g / 160g")
}

func TestProgramActivated(t *testing.T) {
	end := day("2024-02-05")
	out := ProgramActivated(&models.Program{
		Name:       "Test Block",
		StartDate:  day("2024-01-08"),
		EndDate:    &end,
		Definition: models.ProgramDefinition{Principles: []string{"Eat protein", "Sleep"}},
	})
	assert.Contains(t, out, "**Test Block**")
	assert.Contains(t, out, "- Start: 2024-01-08")
	assert.Contains(t, out, "- End: 2024-02-05")
	assert.Contains(t, out, "### Key Principles\n- Eat protein\n- Sleep\n")
}

func TestWeeklyReviewEmptyWindow(t *testing.T) {
	r := &training.WeeklyReview{
		From:        day("2024-01-07"),
		To:          day("2024-01-14"),
		Consistency: training.GradeConsistency(0),
	}
	out, err := WeeklyReview(r, Markdown)
	require.NoError(t, err)
	assert.Contains(t, out, "## Weekly Review: 2024-01-07 to 2024-01-14")
	assert.Contains(t, out, "Need more sessions")
	assert.Contains(t, out, "No protein logged this week")
	assert.Contains(t, out, "No weight logged this week")
	assert.Contains(t, out, "No readiness check-ins this week")
	assert.NotContains(t, out, "New PRs")

	js, err := WeeklyReview(r, JSON)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(js), &decoded))
	assert.Equal(t, []any{}, decoded["prs"])
	assert.Nil(t, decoded["protein"])
}

func TestWeeklyReviewSections(t *testing.T) {
	r := &training.WeeklyReview{
		From:        day("2024-01-07"),
		To:          day("2024-01-14"),
		Workouts:    5,
		Consistency: training.GradeConsistency(5),
		Protein:     &training.ProteinAdherence{DaysLogged: 3, DaysOnTarget: 2, Average: 150},
		Weight:      &training.WeightChange{Start: 200, End: 198.2},
		Readiness:   &storage.ReadinessAverages{Count: 2, SleepQuality: 4, Energy: 3.5, Soreness: 2, Stress: 2.5},
		PRs: []*models.LiftPR{
			{Lift: "Back Squat", Weight: 315, Reps: 1, Date: day("2024-01-13")},
		},
	}
	out, err := WeeklyReview(r, Markdown)
	require.NoError(t, err)
	assert.Contains(t, out, "Great consistency!")
	assert.Contains(t, out, "- **Days hitting 160g+:** 2")
	assert.Contains(t, out, "- **Average:** 150g/day")
	assert.Contains(t, out, "- **Change:** -1.8 lbs")
	assert.Contains(t, out, "- Energy: 3.5/5")
	assert.Contains(t, out, "- Back Squat: 315 lbs x 1 (2024-01-13)")
}

func TestSummaryRelativeWeightDate(t *testing.T) {
	s := &training.Summary{
		Date:         day("2024-01-14"),
		ProteinToday: 120,
		WeekWorkouts: 3,
		LatestWeight: &models.WeightEntry{Date: day("2024-01-11"), Weight: 199},
	}
	out, err := Summary(s, Markdown)
	require.NoError(t, err)
	assert.Contains(t, out, "No active program")
	assert.Contains(t, out, "- Protein: 120g / 160g")
	assert.Contains(t, out, "- Readiness: not logged")
	assert.Contains(t, out, "- Latest weight: 199 lbs (2024-01-11, 3 days ago)")

	s.LatestWeight.Date = s.Date
	out, err = Summary(s, Markdown)
	require.NoError(t, err)
	assert.Contains(t, out, "(2024-01-14, today)")
}

func TestImportErrorList(t *testing.T) {
	s := &training.ImportSummary{Imported: 3, Skipped: 1, PRsAdded: 1}
	for i := 1; i <= 7; i++ {
		s.Errors = append(s.Errors, fmt.Sprintf("row %d: bad", i))
	}
	out := Import(s)
	assert.Contains(t, out, "- **Imported:** 3 workouts")
	assert.Contains(t, out, "### Errors (7)")
	assert.Contains(t, out, "- row 5: bad")
	assert.NotContains(t, out, "- row 6: bad")
	assert.Contains(t, out, "- ... and 2 more")

	clean := Import(&training.ImportSummary{})
	assert.NotContains(t, clean, "Errors")
}

func TestHistoriesEmpty(t *testing.T) {
	out, err := ProteinHistory(nil, Markdown)
	require.NoError(t, err)
	assert.Equal(t, "No protein data found for this period.", out)

	out, err = WeightHistory(nil, JSON)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestHistoryTables(t *testing.T) {
	out, err := MobilityHistory([]*models.MobilitySession{
		{Date: day("2024-01-02"), DurationMinutes: 20, Exercises: "couch stretch | pigeon"},
	}, Markdown)
	require.NoError(t, err)
	assert.Contains(t, out, "| 2024-01-02 | 20 min | - | couch stretch / pigeon |")

	out, err = ReadinessHistory([]*models.ReadinessEntry{
		{Date: day("2024-01-03"), SleepQuality: 3, Energy: 3, Soreness: 3, Stress: 3},
	}, Markdown)
	require.NoError(t, err)
	assert.Contains(t, out, "| 2024-01-03 | 3 | 3 | 3 | 3 | 3.0 |")

	out, err = WorkoutHistory([]*models.Workout{{Date: day("2024-01-04"), Title: "Fran", ResultDisplay: "4:05"}}, JSON)
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Fran"`)
}

func TestLiftHistory(t *testing.T) {
	best := &models.LiftPR{Lift: "Back Squat", Weight: 315, Reps: 1, Date: day("2024-01-09")}
	h := &training.LiftHistory{
		Lift:    "squat",
		Best:    best,
		Records: []*models.LiftPR{best, {Lift: "Back Squat", Weight: 275, Reps: 5, Date: day("2024-01-05")}},
		Workouts: []*models.Workout{
			{Date: day("2024-01-09"), ResultDisplay: "315", IsPR: true, Notes: "felt great"},
		},
	}
	out, err := LiftHistory(h, Markdown)
	require.NoError(t, err)
	assert.Contains(t, out, "**Current PR: 315 lbs**")
	assert.Contains(t, out, "| Back Squat | 5 | 275 lbs | 2024-01-05 |")
	assert.Contains(t, out, "| 2024-01-09 | 315 lbs 🏆 | felt great |")

	empty, err := LiftHistory(&training.LiftHistory{Lift: "clean"}, JSON)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(empty), &decoded))
	assert.Nil(t, decoded["pr"])
	assert.Equal(t, []any{}, decoded["history"])
}

func TestPRBoard(t *testing.T) {
	out, err := PRBoard(nil, Markdown)
	require.NoError(t, err)
	assert.Contains(t, out, "No PRs recorded yet")

	out, err = PRBoard([]*models.LiftPR{{Lift: "Deadlift", Weight: 405, Reps: 1, Date: day("2024-01-02")}}, Markdown)
	require.NoError(t, err)
	assert.Contains(t, out, "| Deadlift | 1 | 405 lbs | 2024-01-02 |")
}

func TestWorkoutLines(t *testing.T) {
	w := &models.Workout{ID: 7, Date: day("2024-01-02"), Title: "Fran", RX: models.Scaled, Source: models.SourceManual}
	assert.Equal(t, "✅ Logged: **Fran** on 2024-01-02\n- Result: N/A\n- Scaled", WorkoutLogged(w))
	assert.Equal(t, "✅ Updated workout #7 (Fran on 2024-01-02)", WorkoutUpdated(w))
	assert.Contains(t, WorkoutList([]*models.Workout{w}), "| 7 | 2024-01-02 | Fran | - | manual |")
	assert.Equal(t, "No workouts found.", WorkoutList(nil))
}
