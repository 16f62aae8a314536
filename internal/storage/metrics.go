// ABOUTME: Daily metric queries for protein, body weight, and readiness.
// ABOUTME: Each table holds one row per date; writes are upserts keyed on date.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/fitness/internal/models"
)

// GetProtein returns the protein row for date.
func (t *Tx) GetProtein(ctx context.Context, date models.Date) (*models.ProteinEntry, error) {
	row := t.tx.QueryRowContext(ctx,
		`SELECT id, date, grams, notes, created_at FROM protein_log WHERE date = ?`, date.String())
	e, err := scanProtein(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

// UpsertProtein inserts e or overwrites grams and notes of the existing
// row for e.Date.
func (t *Tx) UpsertProtein(ctx context.Context, e *models.ProteinEntry) error {
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO protein_log (date, grams, notes) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET grams = excluded.grams, notes = excluded.notes
		RETURNING id`,
		e.Date.String(), e.Grams, e.Notes,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("upsert protein: %w", err)
	}
	return nil
}

// UpdateProtein changes the supplied fields of an existing row.
func (t *Tx) UpdateProtein(ctx context.Context, date models.Date, grams *int, notes *string) error {
	var sets []string
	var args []any
	if grams != nil {
		sets = append(sets, "grams = ?")
		args = append(args, *grams)
	}
	if notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *notes)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, date.String())

	res, err := t.tx.ExecContext(ctx,
		`UPDATE protein_log SET `+strings.Join(sets, ", ")+` WHERE date = ?`, args...)
	if err != nil {
		return fmt.Errorf("update protein: %w", err)
	}
	return exactlyOne(res)
}

// ListProtein returns protein rows in [from, to], oldest first.
func (t *Tx) ListProtein(ctx context.Context, from, to models.Date) ([]*models.ProteinEntry, error) {
	rows, err := t.tx.QueryContext(ctx, `
		SELECT id, date, grams, notes, created_at FROM protein_log
		WHERE date >= ? AND date <= ? ORDER BY date`,
		from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("list protein: %w", err)
	}
	defer rows.Close()

	var out []*models.ProteinEntry
	for rows.Next() {
		e, err := scanProtein(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanProtein(s scanner) (*models.ProteinEntry, error) {
	var e models.ProteinEntry
	var date, createdAt string
	if err := s.Scan(&e.ID, &date, &e.Grams, &e.Notes, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan protein: %w", err)
	}
	e.Date = parseDate(date)
	e.CreatedAt = parseTimestamp(createdAt)
	return &e, nil
}

// GetWeight returns the weight row for date.
func (t *Tx) GetWeight(ctx context.Context, date models.Date) (*models.WeightEntry, error) {
	return t.oneWeight(ctx, `WHERE date = ?`, date.String())
}

// PreviousWeight returns the most recent weight row strictly before date.
func (t *Tx) PreviousWeight(ctx context.Context, date models.Date) (*models.WeightEntry, error) {
	return t.oneWeight(ctx, `WHERE date < ? ORDER BY date DESC LIMIT 1`, date.String())
}

// LatestWeight returns the most recent weight row on or before date.
func (t *Tx) LatestWeight(ctx context.Context, date models.Date) (*models.WeightEntry, error) {
	return t.oneWeight(ctx, `WHERE date <= ? ORDER BY date DESC LIMIT 1`, date.String())
}

func (t *Tx) oneWeight(ctx context.Context, clause string, args ...any) (*models.WeightEntry, error) {
	row := t.tx.QueryRowContext(ctx,
		`SELECT id, date, weight, notes, created_at FROM weight_log `+clause, args...)
	e, err := scanWeight(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

// UpsertWeight inserts e or overwrites the existing row for e.Date.
func (t *Tx) UpsertWeight(ctx context.Context, e *models.WeightEntry) error {
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO weight_log (date, weight, notes) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET weight = excluded.weight, notes = excluded.notes
		RETURNING id`,
		e.Date.String(), e.Weight, e.Notes,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("upsert weight: %w", err)
	}
	return nil
}

// ListWeight returns weight rows in [from, to], oldest first.
func (t *Tx) ListWeight(ctx context.Context, from, to models.Date) ([]*models.WeightEntry, error) {
	rows, err := t.tx.QueryContext(ctx, `
		SELECT id, date, weight, notes, created_at FROM weight_log
		WHERE date >= ? AND date <= ? ORDER BY date`,
		from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("list weight: %w", err)
	}
	defer rows.Close()

	var out []*models.WeightEntry
	for rows.Next() {
		e, err := scanWeight(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanWeight(s scanner) (*models.WeightEntry, error) {
	var e models.WeightEntry
	var date, createdAt string
	if err := s.Scan(&e.ID, &date, &e.Weight, &e.Notes, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan weight: %w", err)
	}
	e.Date = parseDate(date)
	e.CreatedAt = parseTimestamp(createdAt)
	return &e, nil
}

const readinessColumns = `id, date, sleep_quality, energy, soreness, stress, notes, created_at`

// GetReadiness returns the readiness check-in for date.
func (t *Tx) GetReadiness(ctx context.Context, date models.Date) (*models.ReadinessEntry, error) {
	row := t.tx.QueryRowContext(ctx,
		`SELECT `+readinessColumns+` FROM readiness_log WHERE date = ?`, date.String())
	e, err := scanReadiness(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return e, err
}

// UpsertReadiness inserts e or overwrites the existing row for e.Date.
func (t *Tx) UpsertReadiness(ctx context.Context, e *models.ReadinessEntry) error {
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO readiness_log (date, sleep_quality, energy, soreness, stress, notes)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			sleep_quality = excluded.sleep_quality,
			energy = excluded.energy,
			soreness = excluded.soreness,
			stress = excluded.stress,
			notes = excluded.notes
		RETURNING id`,
		e.Date.String(), e.SleepQuality, e.Energy, e.Soreness, e.Stress, e.Notes,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("upsert readiness: %w", err)
	}
	return nil
}

// DeleteReadiness removes the check-in for date.
func (t *Tx) DeleteReadiness(ctx context.Context, date models.Date) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM readiness_log WHERE date = ?`, date.String())
	if err != nil {
		return fmt.Errorf("delete readiness: %w", err)
	}
	return exactlyOne(res)
}

// ListReadiness returns check-ins in [from, to], oldest first.
func (t *Tx) ListReadiness(ctx context.Context, from, to models.Date) ([]*models.ReadinessEntry, error) {
	rows, err := t.tx.QueryContext(ctx,
		`SELECT `+readinessColumns+` FROM readiness_log WHERE date >= ? AND date <= ? ORDER BY date`,
		from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("list readiness: %w", err)
	}
	defer rows.Close()

	var out []*models.ReadinessEntry
	for rows.Next() {
		e, err := scanReadiness(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ReadinessAverages holds per-score means over a window.
type ReadinessAverages struct {
	Count        int     `json:"count"`
	SleepQuality float64 `json:"sleep_quality"`
	Energy       float64 `json:"energy"`
	Soreness     float64 `json:"soreness"`
	Stress       float64 `json:"stress"`
}

// AverageReadiness computes per-score means over [from, to]. Count is
// zero when the window has no check-ins.
func (t *Tx) AverageReadiness(ctx context.Context, from, to models.Date) (ReadinessAverages, error) {
	var avg ReadinessAverages
	var sleep, energy, soreness, stress sql.NullFloat64
	err := t.tx.QueryRowContext(ctx, `
		SELECT COUNT(*), AVG(sleep_quality), AVG(energy), AVG(soreness), AVG(stress)
		FROM readiness_log WHERE date >= ? AND date <= ?`,
		from.String(), to.String(),
	).Scan(&avg.Count, &sleep, &energy, &soreness, &stress)
	if err != nil {
		return ReadinessAverages{}, fmt.Errorf("average readiness: %w", err)
	}
	avg.SleepQuality = sleep.Float64
	avg.Energy = energy.Float64
	avg.Soreness = soreness.Float64
	avg.Stress = stress.Float64
	return avg, nil
}

func scanReadiness(s scanner) (*models.ReadinessEntry, error) {
	var e models.ReadinessEntry
	var date, createdAt string
	err := s.Scan(&e.ID, &date, &e.SleepQuality, &e.Energy, &e.Soreness, &e.Stress, &e.Notes, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan readiness: %w", err)
	}
	e.Date = parseDate(date)
	e.CreatedAt = parseTimestamp(createdAt)
	return &e, nil
}
