// ABOUTME: Workout ledger operations: log, list, partial update, confirmed
// ABOUTME: delete, and per-lift history joined with the live PR board.
package training

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/storage"
)

const (
	defaultListLimit        = 10
	maxListLimit            = 50
	defaultLiftHistoryLimit = 20
	maxLiftHistoryLimit     = 100
	maxTitleLength          = 200
)

// WorkoutInput is a manually logged workout.
type WorkoutInput struct {
	Title       string
	Date        string
	Description string
	ScoreType   string
	Result      string
	Notes       string
	RX          *bool // nil means RX
}

// LogWorkout stores a manual workout.
func (s *Service) LogWorkout(ctx context.Context, in WorkoutInput) (*models.Workout, error) {
	title := strings.TrimSpace(in.Title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	date, err := s.resolveDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	kind, ok := models.ParseScoreKind(in.ScoreType)
	if !ok {
		return nil, invalid("score_type", "%q is not one of time, reps, rounds, load, distance, other", in.ScoreType)
	}

	w := models.NewWorkout(date, title)
	w.Description = in.Description
	w.ScoreKind = kind
	w.ResultDisplay = strings.TrimSpace(in.Result)
	w.ResultRaw = parseResultRaw(w.ResultDisplay)
	w.Notes = in.Notes
	w.CreatedAt = s.now().UTC()
	if in.RX != nil && !*in.RX {
		w.RX = models.Scaled
	}

	err = s.store.Update(ctx, func(tx *storage.Tx) error {
		return insertWorkout(ctx, tx, w)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func insertWorkout(ctx context.Context, tx *storage.Tx, w *models.Workout) error {
	err := tx.InsertWorkout(ctx, w)
	if errors.Is(err, storage.ErrDuplicate) {
		return &duplicateError{workout: w}
	}
	return err
}

type duplicateError struct {
	workout *models.Workout
}

func (e *duplicateError) Error() string {
	msg := "workout " + strconv.Quote(e.workout.Title) + " on " + e.workout.Date.String()
	if e.workout.ResultDisplay != "" {
		msg += " with result " + e.workout.ResultDisplay
	}
	return msg + " is already logged"
}

func (e *duplicateError) Unwrap() error {
	return ErrDuplicate
}

// ListWorkoutsInput narrows ListWorkouts.
type ListWorkoutsInput struct {
	Date  string
	Limit int
}

// ListWorkouts returns recent workouts, newest first.
func (s *Service) ListWorkouts(ctx context.Context, in ListWorkoutsInput) ([]*models.Workout, error) {
	limit, err := limitOrDefault(in.Limit, defaultListLimit, maxListLimit)
	if err != nil {
		return nil, err
	}
	f := storage.WorkoutFilter{Limit: limit}
	if in.Date != "" {
		d, err := parseDate("date", in.Date)
		if err != nil {
			return nil, err
		}
		f.On = &d
	}

	var out []*models.Workout
	err = s.store.View(ctx, func(tx *storage.Tx) error {
		var err error
		out, err = tx.ListWorkouts(ctx, f)
		return err
	})
	return out, err
}

// WorkoutUpdate is a partial update; nil fields are left unchanged.
type WorkoutUpdate struct {
	ID          int64
	Date        *string
	Title       *string
	Description *string
	Result      *string
	Notes       *string
	RX          *bool
}

// UpdateWorkout applies the supplied fields and returns the updated row.
func (s *Service) UpdateWorkout(ctx context.Context, in WorkoutUpdate) (*models.Workout, error) {
	if in.ID < 1 {
		return nil, invalid("workout_id", "must be a positive id")
	}

	var p storage.WorkoutPatch
	if in.Date != nil {
		d, err := parseDate("date", *in.Date)
		if err != nil {
			return nil, err
		}
		p.Date = &d
	}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if err := validateTitle(title); err != nil {
			return nil, err
		}
		p.Title = &title
	}
	p.Description = in.Description
	if in.Result != nil {
		p.ResultDisplay = in.Result
		p.ResultRaw = parseResultRaw(*in.Result)
	}
	p.Notes = in.Notes
	if in.RX != nil {
		rx := models.RX
		if !*in.RX {
			rx = models.Scaled
		}
		p.RX = &rx
	}
	if p.Empty() {
		return nil, ErrNoChanges
	}

	var out *models.Workout
	err := s.store.Update(ctx, func(tx *storage.Tx) error {
		err := tx.UpdateWorkout(ctx, in.ID, p)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return workoutNotFound(in.ID)
		case errors.Is(err, storage.ErrDuplicate):
			return ErrDuplicate
		case err != nil:
			return err
		}
		out, err = tx.GetWorkout(ctx, in.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteWorkout hard-deletes a workout. Without confirm nothing changes
// and ErrNotConfirmed is returned.
func (s *Service) DeleteWorkout(ctx context.Context, id int64, confirm bool) (*models.Workout, error) {
	if !confirm {
		return nil, ErrNotConfirmed
	}

	var deleted *models.Workout
	err := s.store.Update(ctx, func(tx *storage.Tx) error {
		w, err := tx.GetWorkout(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return workoutNotFound(id)
		}
		if err != nil {
			return err
		}
		if err := tx.DeleteWorkout(ctx, id); err != nil {
			return err
		}
		deleted = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// LiftHistory is the workout trail for a lift and its current records.
type LiftHistory struct {
	Lift     string
	Best     *models.LiftPR   // heaviest current record across rep counts
	Records  []*models.LiftPR // current record per (lift, reps)
	Workouts []*models.Workout
}

// GetLiftHistory returns workouts whose lift name contains lift, newest
// first, with PRs recomputed from the live maximum.
func (s *Service) GetLiftHistory(ctx context.Context, lift string, limit int) (*LiftHistory, error) {
	lift = strings.TrimSpace(lift)
	if lift == "" {
		return nil, invalid("lift_name", "is required")
	}
	limit, err := limitOrDefault(limit, defaultLiftHistoryLimit, maxLiftHistoryLimit)
	if err != nil {
		return nil, err
	}

	h := &LiftHistory{Lift: lift}
	err = s.store.View(ctx, func(tx *storage.Tx) error {
		var err error
		h.Workouts, err = tx.ListWorkouts(ctx, storage.WorkoutFilter{Lift: lift, Limit: limit})
		if err != nil {
			return err
		}
		h.Records, err = tx.CurrentPRs(ctx, lift)
		return err
	})
	if err != nil {
		return nil, err
	}
	for _, pr := range h.Records {
		if h.Best == nil || pr.Weight > h.Best.Weight {
			h.Best = pr
		}
	}
	return h, nil
}

func workoutNotFound(id int64) error {
	return &NotFoundError{Entity: "workout", Key: "id " + strconv.FormatInt(id, 10)}
}

func validateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n == 0 {
		return invalid("title", "is required")
	}
	if n > maxTitleLength {
		return invalid("title", "must be at most %d characters", maxTitleLength)
	}
	return nil
}

func limitOrDefault(limit, def, hi int) (int, error) {
	if limit == 0 {
		return def, nil
	}
	if err := checkRange("limit", limit, 1, hi); err != nil {
		return 0, err
	}
	return limit, nil
}

// parseResultRaw derives the comparable numeric form of a result:
// seconds for times ("mm:ss" or "h:mm:ss"), the leading number otherwise.
func parseResultRaw(display string) *int64 {
	if display == "" {
		return nil
	}
	if strings.Contains(display, ":") {
		parts := strings.Split(display, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil
		}
		var secs int64
		for _, p := range parts {
			n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
			if err != nil || n < 0 {
				return nil
			}
			secs = secs*60 + n
		}
		return &secs
	}

	fields := strings.Fields(display)
	if len(fields) == 0 {
		return nil
	}
	f, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil
	}
	n := int64(f)
	return &n
}
