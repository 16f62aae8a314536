// ABOUTME: History queries over a trailing window of days, oldest first,
// ABOUTME: for charting readiness, protein, weight, workouts, and mobility.
package training

import (
	"context"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/storage"
)

const (
	defaultHistoryDays       = 30
	defaultWeightHistoryDays = 90
	maxHistoryDays           = 365
)

// historyWindow returns [today-daysBack, today].
func (s *Service) historyWindow(daysBack, def int) (models.Date, models.Date, error) {
	if daysBack == 0 {
		daysBack = def
	}
	if err := checkRange("days_back", daysBack, 1, maxHistoryDays); err != nil {
		return models.Date{}, models.Date{}, err
	}
	to := s.Today()
	return to.AddDays(-daysBack), to, nil
}

// ReadinessHistory returns check-ins from the last daysBack days (default 30).
func (s *Service) ReadinessHistory(ctx context.Context, daysBack int) ([]*models.ReadinessEntry, error) {
	from, to, err := s.historyWindow(daysBack, defaultHistoryDays)
	if err != nil {
		return nil, err
	}
	var out []*models.ReadinessEntry
	err = s.store.View(ctx, func(tx *storage.Tx) error {
		out, err = tx.ListReadiness(ctx, from, to)
		return err
	})
	return out, err
}

// ProteinHistory returns daily totals from the last daysBack days (default 30).
func (s *Service) ProteinHistory(ctx context.Context, daysBack int) ([]*models.ProteinEntry, error) {
	from, to, err := s.historyWindow(daysBack, defaultHistoryDays)
	if err != nil {
		return nil, err
	}
	var out []*models.ProteinEntry
	err = s.store.View(ctx, func(tx *storage.Tx) error {
		out, err = tx.ListProtein(ctx, from, to)
		return err
	})
	return out, err
}

// WeightHistory returns weigh-ins from the last daysBack days (default 90).
func (s *Service) WeightHistory(ctx context.Context, daysBack int) ([]*models.WeightEntry, error) {
	from, to, err := s.historyWindow(daysBack, defaultWeightHistoryDays)
	if err != nil {
		return nil, err
	}
	var out []*models.WeightEntry
	err = s.store.View(ctx, func(tx *storage.Tx) error {
		out, err = tx.ListWeight(ctx, from, to)
		return err
	})
	return out, err
}

// WorkoutHistory returns workouts from the last daysBack days (default 30).
func (s *Service) WorkoutHistory(ctx context.Context, daysBack int) ([]*models.Workout, error) {
	from, to, err := s.historyWindow(daysBack, defaultHistoryDays)
	if err != nil {
		return nil, err
	}
	var out []*models.Workout
	err = s.store.View(ctx, func(tx *storage.Tx) error {
		out, err = tx.ListWorkouts(ctx, storage.WorkoutFilter{From: &from, To: &to, Ascending: true})
		return err
	})
	return out, err
}

// MobilityHistory returns sessions from the last daysBack days (default 30).
func (s *Service) MobilityHistory(ctx context.Context, daysBack int) ([]*models.MobilitySession, error) {
	from, to, err := s.historyWindow(daysBack, defaultHistoryDays)
	if err != nil {
		return nil, err
	}
	var out []*models.MobilitySession
	err = s.store.View(ctx, func(tx *storage.Tx) error {
		out, err = tx.ListMobility(ctx, from, to)
		return err
	})
	return out, err
}
