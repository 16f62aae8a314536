// ABOUTME: Reporting engine: weekly review and dashboard summary aggregates
// ABOUTME: over workouts, protein, weight, readiness, mobility, and PRs.
package training

import (
	"context"
	"errors"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/storage"
)

// Consistency grades a workout count.
type Consistency string

const (
	ConsistencyGreat      Consistency = "great"
	ConsistencyImprovable Consistency = "improvable"
	ConsistencyNeedsMore  Consistency = "needs_more"
)

// GradeConsistency is great at 4+ workouts, improvable at 2+, else needs more.
func GradeConsistency(workouts int) Consistency {
	switch {
	case workouts >= 4:
		return ConsistencyGreat
	case workouts >= 2:
		return ConsistencyImprovable
	default:
		return ConsistencyNeedsMore
	}
}

// ProteinAdherence summarizes logged protein days in a window.
type ProteinAdherence struct {
	DaysLogged   int     `json:"days_logged"`
	DaysOnTarget int     `json:"days_on_target"`
	Average      float64 `json:"average_grams"`
}

// WeightChange is the first and last weight in a window.
type WeightChange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Delta is End minus Start.
func (w WeightChange) Delta() float64 {
	return w.End - w.Start
}

// WeeklyReview aggregates [From, To]. Nil sections had no data.
type WeeklyReview struct {
	From             models.Date                `json:"from"`
	To               models.Date                `json:"to"`
	Workouts         int                        `json:"workouts"`
	Consistency      Consistency                `json:"consistency"`
	Protein          *ProteinAdherence          `json:"protein"`
	Weight           *WeightChange              `json:"weight"`
	Readiness        *storage.ReadinessAverages `json:"readiness"`
	MobilitySessions int                        `json:"mobility_sessions"`
	MobilityMinutes  int                        `json:"mobility_minutes"`
	PRs              []*models.LiftPR           `json:"prs"`
}

// WeeklyReview aggregates the last weeksBack weeks ending today.
func (s *Service) WeeklyReview(ctx context.Context, weeksBack int) (*WeeklyReview, error) {
	if weeksBack == 0 {
		weeksBack = 1
	}
	if err := checkRange("weeks_back", weeksBack, 1, 12); err != nil {
		return nil, err
	}

	to := s.Today()
	from := to.AddDays(-7 * weeksBack)
	r := &WeeklyReview{From: from, To: to}

	err := s.store.View(ctx, func(tx *storage.Tx) error {
		var err error
		if r.Workouts, err = tx.CountWorkouts(ctx, from, to); err != nil {
			return err
		}
		r.Consistency = GradeConsistency(r.Workouts)

		protein, err := tx.ListProtein(ctx, from, to)
		if err != nil {
			return err
		}
		r.Protein = proteinAdherence(protein)

		weights, err := tx.ListWeight(ctx, from, to)
		if err != nil {
			return err
		}
		if len(weights) > 0 {
			r.Weight = &WeightChange{Start: weights[0].Weight, End: weights[len(weights)-1].Weight}
		}

		avg, err := tx.AverageReadiness(ctx, from, to)
		if err != nil {
			return err
		}
		if avg.Count > 0 {
			r.Readiness = &avg
		}

		if r.MobilitySessions, r.MobilityMinutes, err = tx.MobilityTotals(ctx, from, to); err != nil {
			return err
		}

		r.PRs, err = tx.ListPRs(ctx, from, to)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// proteinAdherence returns nil for an empty window.
func proteinAdherence(days []*models.ProteinEntry) *ProteinAdherence {
	if len(days) == 0 {
		return nil
	}
	a := &ProteinAdherence{DaysLogged: len(days)}
	total := 0
	for _, d := range days {
		total += d.Grams
		if d.Grams >= ProteinTarget {
			a.DaysOnTarget++
		}
	}
	a.Average = float64(total) / float64(len(days))
	return a
}

// Summary is the dashboard view: today plus the last 7 days.
type Summary struct {
	Date           models.Date            `json:"date"`
	Program        *models.Program        `json:"program,omitempty"`
	ProteinToday   int                    `json:"protein_today"`
	Readiness      *models.ReadinessEntry `json:"readiness,omitempty"`
	ReadinessScore float64                `json:"readiness_score,omitempty"`
	WeekWorkouts   int                    `json:"week_workouts"`
	LatestWeight   *models.WeightEntry    `json:"latest_weight,omitempty"`
}

// Summary builds the dashboard for today.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	today := s.Today()
	sum := &Summary{Date: today}

	err := s.store.View(ctx, func(tx *storage.Tx) error {
		prog, err := tx.ActiveProgram(ctx)
		switch {
		case err == nil:
			sum.Program = prog
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}

		protein, err := tx.GetProtein(ctx, today)
		switch {
		case err == nil:
			sum.ProteinToday = protein.Grams
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}

		readiness, err := tx.GetReadiness(ctx, today)
		switch {
		case err == nil:
			sum.Readiness = readiness
			sum.ReadinessScore = readiness.Score()
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}

		if sum.WeekWorkouts, err = tx.CountWorkouts(ctx, today.AddDays(-7), today); err != nil {
			return err
		}

		weight, err := tx.LatestWeight(ctx, today)
		switch {
		case err == nil:
			sum.LatestWeight = weight
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sum, nil
}
