// ABOUTME: PR detection engine. A lift is a record when it strictly beats the
// ABOUTME: live MAX(weight) for the same lift at the exact same rep count.
package training

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/sirupsen/logrus"
)

// LiftInput is one strength entry.
type LiftInput struct {
	Lift   string
	Weight float64
	Reps   *int // nil means 1
	Sets   *int // nil means 1
	Date   string
	Notes  string
}

// LiftResult reports the stored lift and whether it set a record.
type LiftResult struct {
	Workout  *models.Workout
	Lift     string
	Weight   float64
	Reps     int
	Sets     int
	IsPR     bool
	Previous *float64 // prior best at this rep count, nil if none
}

// RecordLift logs a lift as a load workout and records a PR when it
// strictly beats the previous best at the same rep count.
func (s *Service) RecordLift(ctx context.Context, in LiftInput) (*LiftResult, error) {
	lift := strings.TrimSpace(in.Lift)
	if lift == "" {
		return nil, invalid("lift_name", "is required")
	}
	if in.Weight <= 0 || math.IsNaN(in.Weight) || math.IsInf(in.Weight, 0) {
		return nil, invalid("weight", "must be greater than 0")
	}
	reps, err := atLeastOne("reps", in.Reps)
	if err != nil {
		return nil, err
	}
	sets, err := atLeastOne("sets", in.Sets)
	if err != nil {
		return nil, err
	}
	date, err := s.resolveDate("date", in.Date)
	if err != nil {
		return nil, err
	}

	raw := int64(math.Round(in.Weight))
	w := models.NewWorkout(date, fmt.Sprintf("%s %dx%d", lift, sets, reps))
	w.ScoreKind = models.ScoreLoad
	w.ResultRaw = &raw
	w.ResultDisplay = formatWeight(in.Weight)
	w.Lift = lift
	w.Notes = in.Notes
	w.CreatedAt = s.now().UTC()

	res := &LiftResult{Workout: w, Lift: lift, Weight: in.Weight, Reps: reps, Sets: sets}
	err = s.store.Update(ctx, func(tx *storage.Tx) error {
		if err := insertWorkout(ctx, tx, w); err != nil {
			return err
		}
		isPR, prev, err := s.recordPR(ctx, tx, w, in.Weight, reps)
		if err != nil {
			return err
		}
		res.IsPR, res.Previous = isPR, prev
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// atLeastOne resolves an optional count. Omitted means 1; below 1 is rejected.
func atLeastOne(field string, n *int) (int, error) {
	if n == nil {
		return 1, nil
	}
	if *n < 1 {
		return 0, invalid(field, "must be at least 1")
	}
	return *n, nil
}

// recordPR applies the record rule for w's lift and, on a new record,
// appends a LiftPR linked to w and flags w as a PR.
func (s *Service) recordPR(ctx context.Context, tx *storage.Tx, w *models.Workout, weight float64, reps int) (bool, *float64, error) {
	best, ok, err := tx.MaxLiftWeight(ctx, w.Lift, reps)
	if err != nil {
		return false, nil, err
	}
	var prev *float64
	if ok {
		prev = &best
		if weight <= best {
			return false, prev, nil
		}
	}

	pr := &models.LiftPR{
		Lift:      w.Lift,
		Weight:    weight,
		Reps:      reps,
		Date:      w.Date,
		WorkoutID: &w.ID,
		Notes:     w.Notes,
	}
	if err := tx.InsertLiftPR(ctx, pr); err != nil {
		return false, nil, err
	}
	if !w.IsPR {
		if err := tx.MarkWorkoutPR(ctx, w.ID); err != nil {
			return false, nil, err
		}
		w.IsPR = true
	}

	s.log.WithFields(logrus.Fields{
		"lift":   w.Lift,
		"reps":   reps,
		"weight": weight,
	}).Info("new PR")
	return true, prev, nil
}

// PRBoard returns the current record for every (lift, reps) pair,
// optionally filtered by a lift name substring.
func (s *Service) PRBoard(ctx context.Context, lift string) ([]*models.LiftPR, error) {
	var prs []*models.LiftPR
	err := s.store.View(ctx, func(tx *storage.Tx) error {
		var err error
		prs, err = tx.CurrentPRs(ctx, strings.TrimSpace(lift))
		return err
	})
	return prs, err
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
