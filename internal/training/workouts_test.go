// ABOUTME: Tests for workout ledger operations.
// ABOUTME: Logging, listing, partial updates, confirmed deletes, and lift history.
package training

import (
	"context"
	"strings"
	"testing"

	"github.com/harperreed/fitness/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWorkoutDefaults(t *testing.T) {
	s := newTestService(t, "2024-01-10")
	ctx := context.Background()

	w, err := s.LogWorkout(ctx, WorkoutInput{Title: "Fran", ScoreType: "Time", Result: "3:45"})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-10", w.Date.String())
	assert.Equal(t, models.RX, w.RX)
	assert.Equal(t, models.ScoreTime, w.ScoreKind)
	assert.Equal(t, models.SourceManual, w.Source)
	require.NotNil(t, w.ResultRaw)
	assert.Equal(t, int64(225), *w.ResultRaw)

	scaled := false
	w, err = s.LogWorkout(ctx, WorkoutInput{Title: "Murph", RX: &scaled})
	require.NoError(t, err)
	assert.Equal(t, models.Scaled, w.RX)
	assert.Equal(t, models.ScoreKind(""), w.ScoreKind)
	assert.Nil(t, w.ResultRaw)
}

func TestLogWorkoutValidation(t *testing.T) {
	s := newTestService(t, "2024-01-10")
	ctx := context.Background()

	var ve *ValidationError
	_, err := s.LogWorkout(ctx, WorkoutInput{Title: "  "})
	assert.ErrorAs(t, err, &ve)
	_, err = s.LogWorkout(ctx, WorkoutInput{Title: strings.Repeat("x", 201)})
	assert.ErrorAs(t, err, &ve)
	_, err = s.LogWorkout(ctx, WorkoutInput{Title: "Fran", ScoreType: "calories"})
	assert.ErrorAs(t, err, &ve)
	_, err = s.LogWorkout(ctx, WorkoutInput{Title: "Fran", Date: "01/10/2024"})
	assert.ErrorAs(t, err, &ve)
}

func TestListWorkouts(t *testing.T) {
	s := newTestService(t, "2024-01-10")
	ctx := context.Background()

	for _, in := range []WorkoutInput{
		{Title: "A", Date: "2024-01-08"},
		{Title: "B", Date: "2024-01-09"},
		{Title: "C", Date: "2024-01-09"},
	} {
		_, err := s.LogWorkout(ctx, in)
		require.NoError(t, err)
	}

	all, err := s.ListWorkouts(ctx, ListWorkoutsInput{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "C", all[0].Title)
	assert.Equal(t, "A", all[2].Title)

	day, err := s.ListWorkouts(ctx, ListWorkoutsInput{Date: "2024-01-08"})
	require.NoError(t, err)
	require.Len(t, day, 1)

	_, err = s.ListWorkouts(ctx, ListWorkoutsInput{Limit: 51})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestUpdateWorkout(t *testing.T) {
	s := newTestService(t, "2024-01-10")
	ctx := context.Background()

	w, err := s.LogWorkout(ctx, WorkoutInput{Title: "Grace", Result: "2:30", Notes: "fast"})
	require.NoError(t, err)

	_, err = s.UpdateWorkout(ctx, WorkoutUpdate{ID: w.ID})
	require.ErrorIs(t, err, ErrNoChanges)

	result := "2:20"
	got, err := s.UpdateWorkout(ctx, WorkoutUpdate{ID: w.ID, Result: &result})
	require.NoError(t, err)
	assert.Equal(t, "2:20", got.ResultDisplay)
	assert.Equal(t, "Grace", got.Title)
	assert.Equal(t, "fast", got.Notes)
	require.NotNil(t, got.ResultRaw)
	assert.Equal(t, int64(140), *got.ResultRaw)

	cleared := ""
	got, err = s.UpdateWorkout(ctx, WorkoutUpdate{ID: w.ID, Result: &cleared})
	require.NoError(t, err)
	assert.Nil(t, got.ResultRaw)

	_, err = s.UpdateWorkout(ctx, WorkoutUpdate{ID: w.ID + 100, Result: &result})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteWorkoutRequiresConfirm(t *testing.T) {
	s := newTestService(t, "2024-01-10")
	ctx := context.Background()

	w, err := s.LogWorkout(ctx, WorkoutInput{Title: "Helen"})
	require.NoError(t, err)

	_, err = s.DeleteWorkout(ctx, w.ID, false)
	require.ErrorIs(t, err, ErrNotConfirmed)
	assert.Equal(t, 1, workoutCount(t, s))

	deleted, err := s.DeleteWorkout(ctx, w.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "Helen", deleted.Title)
	assert.Equal(t, 0, workoutCount(t, s))

	_, err = s.DeleteWorkout(ctx, w.ID, true)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLiftHistoryUsesLiveMaximum(t *testing.T) {
	s := newTestService(t, "2024-01-10")
	ctx := context.Background()

	for i, weight := range []float64{300, 320, 310} {
		_, err := s.RecordLift(ctx, LiftInput{
			Lift:   "Back Squat",
			Weight: weight,
			Date:   models.NewDate(2024, 1, 1+i).String(),
		})
		require.NoError(t, err)
	}
	_, err := s.RecordLift(ctx, LiftInput{Lift: "Front Squat", Weight: 250, Date: "2024-01-05"})
	require.NoError(t, err)

	h, err := s.GetLiftHistory(ctx, "back squat", 0)
	require.NoError(t, err)
	require.Len(t, h.Workouts, 3)
	assert.Equal(t, "2024-01-03", h.Workouts[0].Date.String())
	require.NotNil(t, h.Best)
	assert.Equal(t, 320.0, h.Best.Weight)

	squats, err := s.GetLiftHistory(ctx, "squat", 0)
	require.NoError(t, err)
	assert.Len(t, squats.Workouts, 4)
	assert.Len(t, squats.Records, 2)
}

func TestParseResultRaw(t *testing.T) {
	cases := map[string]*int64{
		"3:45":     ptr(int64(225)),
		"1:02:03":  ptr(int64(3723)),
		"225":      ptr(int64(225)),
		"5 rounds": ptr(int64(5)),
		"12.5":     ptr(int64(12)),
		"":         nil,
		"DNF":      nil,
		"1:2:3:4":  nil,
	}
	for in, want := range cases {
		got := parseResultRaw(in)
		if want == nil {
			assert.Nil(t, got, in)
			continue
		}
		require.NotNil(t, got, in)
		assert.Equal(t, *want, *got, in)
	}
}

func ptr[T any](v T) *T {
	return &v
}
