// ABOUTME: Metric upsert engine: one row per date for protein, weight, and readiness,
// ABOUTME: incremental protein accumulation, and mobility session logging.
package training

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/storage"
)

// ProteinTarget is the daily protein goal in grams.
const ProteinTarget = 160

// ProteinResult is the stored protein total after a write.
type ProteinResult struct {
	Entry models.ProteinEntry
	Added int    // grams added by AddProtein, zero otherwise
	Food  string // label supplied to AddProtein
}

// Remaining is how many grams are left to reach ProteinTarget.
func (r ProteinResult) Remaining() int {
	return max(ProteinTarget-r.Entry.Grams, 0)
}

// WeightResult is a stored weight entry and the closest earlier one.
type WeightResult struct {
	Entry    models.WeightEntry
	Previous *models.WeightEntry
}

// Change returns the delta against Previous; ok is false without one.
func (r WeightResult) Change() (delta float64, ok bool) {
	if r.Previous == nil {
		return 0, false
	}
	return r.Entry.Weight - r.Previous.Weight, true
}

// Recommendation is the training advice derived from a readiness score.
type Recommendation string

const (
	RecommendGoHard Recommendation = "go_hard"
	RecommendNormal Recommendation = "normal"
	RecommendModify Recommendation = "modify"
	RecommendRest   Recommendation = "rest"
)

// Recommend maps a readiness score onto its training tier.
func Recommend(score float64) Recommendation {
	switch {
	case score >= 4:
		return RecommendGoHard
	case score >= 3:
		return RecommendNormal
	case score >= 2:
		return RecommendModify
	default:
		return RecommendRest
	}
}

// ReadinessResult is a stored check-in with its derived advice.
type ReadinessResult struct {
	Entry          models.ReadinessEntry
	Score          float64
	Recommendation Recommendation
}

// MobilityResult is a stored session plus the trailing 7-day totals.
type MobilityResult struct {
	Session      models.MobilitySession
	WeekSessions int
	WeekMinutes  int
}

// SetDailyMetric upserts the value for kind on date. Repeating the call
// leaves the same single row.
func (s *Service) SetDailyMetric(ctx context.Context, kind models.MetricKind, date models.Date, value float64, notes string) error {
	if err := validateDailyMetric(kind, value); err != nil {
		return err
	}
	return s.store.Update(ctx, func(tx *storage.Tx) error {
		return setDailyMetric(ctx, tx, kind, date, value, notes)
	})
}

func validateDailyMetric(kind models.MetricKind, value float64) error {
	switch kind {
	case models.MetricProtein:
		if value != math.Trunc(value) {
			return invalid("grams", "must be a whole number")
		}
		return checkRange("grams", int(value), 0, 500)
	case models.MetricWeight:
		if value <= 50 || value >= 500 {
			return invalid("weight", "must be between 50 and 500 lbs (exclusive)")
		}
		return nil
	default:
		return invalid("metric", "unknown metric %q", kind)
	}
}

func setDailyMetric(ctx context.Context, tx *storage.Tx, kind models.MetricKind, date models.Date, value float64, notes string) error {
	switch kind {
	case models.MetricProtein:
		return tx.UpsertProtein(ctx, &models.ProteinEntry{Date: date, Grams: int(value), Notes: notes})
	case models.MetricWeight:
		return tx.UpsertWeight(ctx, &models.WeightEntry{Date: date, Weight: value, Notes: notes})
	}
	return fmt.Errorf("unsupported metric %q", kind)
}

// ProteinInput sets a day's protein total.
type ProteinInput struct {
	Date  string
	Grams int
	Notes string
}

// LogProtein sets the protein total for a date, replacing any earlier value.
func (s *Service) LogProtein(ctx context.Context, in ProteinInput) (*ProteinResult, error) {
	date, err := s.resolveDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	if err := validateDailyMetric(models.MetricProtein, float64(in.Grams)); err != nil {
		return nil, err
	}

	var res ProteinResult
	err = s.store.Update(ctx, func(tx *storage.Tx) error {
		if err := setDailyMetric(ctx, tx, models.MetricProtein, date, float64(in.Grams), in.Notes); err != nil {
			return err
		}
		e, err := tx.GetProtein(ctx, date)
		if err != nil {
			return err
		}
		res.Entry = *e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// AddProtein adds grams to today's running total and appends food (or
// "+Ng") to the day's notes. Each call accumulates.
func (s *Service) AddProtein(ctx context.Context, grams int, food string) (*ProteinResult, error) {
	if err := checkRange("grams", grams, 0, 300); err != nil {
		return nil, err
	}
	food = strings.TrimSpace(food)
	today := s.Today()

	label := food
	if label == "" {
		label = fmt.Sprintf("+%dg", grams)
	}

	res := ProteinResult{Added: grams, Food: food}
	err := s.store.Update(ctx, func(tx *storage.Tx) error {
		entry := models.ProteinEntry{Date: today}
		current, err := tx.GetProtein(ctx, today)
		switch {
		case err == nil:
			entry = *current
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}

		entry.Grams += grams
		if entry.Notes == "" {
			entry.Notes = label
		} else {
			entry.Notes = entry.Notes + "; " + label
		}

		if err := tx.UpsertProtein(ctx, &entry); err != nil {
			return err
		}
		res.Entry = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateProteinInput is a partial update of an existing day.
type UpdateProteinInput struct {
	Date  string
	Grams *int
	Notes *string
}

// UpdateProtein changes only the supplied fields of an existing entry.
func (s *Service) UpdateProtein(ctx context.Context, in UpdateProteinInput) (*ProteinResult, error) {
	if in.Date == "" {
		return nil, invalid("date", "is required")
	}
	date, err := parseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	if in.Grams == nil && in.Notes == nil {
		return nil, ErrNoChanges
	}
	if in.Grams != nil {
		if err := checkRange("grams", *in.Grams, 0, 500); err != nil {
			return nil, err
		}
	}

	var res ProteinResult
	err = s.store.Update(ctx, func(tx *storage.Tx) error {
		if err := tx.UpdateProtein(ctx, date, in.Grams, in.Notes); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return &NotFoundError{Entity: "protein entry", Key: date.String()}
			}
			return err
		}
		e, err := tx.GetProtein(ctx, date)
		if err != nil {
			return err
		}
		res.Entry = *e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// WeightInput records a body weight.
type WeightInput struct {
	Date   string
	Weight float64
	Notes  string
}

// LogWeight upserts the weight for a date and reports the change from
// the most recent earlier entry.
func (s *Service) LogWeight(ctx context.Context, in WeightInput) (*WeightResult, error) {
	date, err := s.resolveDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	if err := validateDailyMetric(models.MetricWeight, in.Weight); err != nil {
		return nil, err
	}

	var res WeightResult
	err = s.store.Update(ctx, func(tx *storage.Tx) error {
		if err := setDailyMetric(ctx, tx, models.MetricWeight, date, in.Weight, in.Notes); err != nil {
			return err
		}
		e, err := tx.GetWeight(ctx, date)
		if err != nil {
			return err
		}
		res.Entry = *e
		prev, err := tx.PreviousWeight(ctx, date)
		switch {
		case err == nil:
			res.Previous = prev
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ReadinessInput is a morning check-in. Scores are 1-5.
type ReadinessInput struct {
	Date         string
	SleepQuality int
	Energy       int
	Soreness     int
	Stress       int
	Notes        string
}

// LogReadiness upserts the check-in for a date and scores it.
func (s *Service) LogReadiness(ctx context.Context, in ReadinessInput) (*ReadinessResult, error) {
	date, err := s.resolveDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	for _, f := range []struct {
		name  string
		value int
	}{
		{"sleep_quality", in.SleepQuality},
		{"energy", in.Energy},
		{"soreness", in.Soreness},
		{"stress", in.Stress},
	} {
		if err := checkRange(f.name, f.value, 1, 5); err != nil {
			return nil, err
		}
	}

	entry := models.ReadinessEntry{
		Date:         date,
		SleepQuality: in.SleepQuality,
		Energy:       in.Energy,
		Soreness:     in.Soreness,
		Stress:       in.Stress,
		Notes:        in.Notes,
	}
	err = s.store.Update(ctx, func(tx *storage.Tx) error {
		return tx.UpsertReadiness(ctx, &entry)
	})
	if err != nil {
		return nil, err
	}

	score := entry.Score()
	return &ReadinessResult{Entry: entry, Score: score, Recommendation: Recommend(score)}, nil
}

// DeleteReadiness removes the check-in for a date. It refuses without confirm.
func (s *Service) DeleteReadiness(ctx context.Context, dateStr string, confirm bool) (models.Date, error) {
	date, err := parseDate("date", dateStr)
	if err != nil {
		return models.Date{}, err
	}
	if !confirm {
		return models.Date{}, ErrNotConfirmed
	}

	err = s.store.Update(ctx, func(tx *storage.Tx) error {
		if err := tx.DeleteReadiness(ctx, date); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return &NotFoundError{Entity: "readiness entry", Key: date.String()}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return models.Date{}, err
	}
	return date, nil
}

// MobilityInput is one mobility session.
type MobilityInput struct {
	Date      string
	Minutes   int
	FocusArea string
	Exercises string
	Notes     string
}

// LogMobility stores a session and reports totals for the 7 days ending
// on its date.
func (s *Service) LogMobility(ctx context.Context, in MobilityInput) (*MobilityResult, error) {
	date, err := s.resolveDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	if err := checkRange("duration_minutes", in.Minutes, 1, 120); err != nil {
		return nil, err
	}

	res := MobilityResult{Session: models.MobilitySession{
		Date:            date,
		DurationMinutes: in.Minutes,
		FocusArea:       in.FocusArea,
		Exercises:       in.Exercises,
		Notes:           in.Notes,
	}}
	err = s.store.Update(ctx, func(tx *storage.Tx) error {
		if err := tx.InsertMobility(ctx, &res.Session); err != nil {
			return err
		}
		res.WeekSessions, res.WeekMinutes, err = tx.MobilityTotals(ctx, date.AddDays(-7), date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func checkRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return invalid(field, "must be between %d and %d, got %d", lo, hi, v)
	}
	return nil
}
