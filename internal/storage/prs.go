// ABOUTME: Lift PR queries. Rows are append-only history; the current record
// ABOUTME: for a (lift, reps) pair is always recomputed as MAX(weight).
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harperreed/fitness/internal/models"
)

// MaxLiftWeight returns the heaviest recorded weight for the exact lift
// and rep count. ok is false when no record exists.
func (t *Tx) MaxLiftWeight(ctx context.Context, lift string, reps int) (weight float64, ok bool, err error) {
	var best sql.NullFloat64
	err = t.tx.QueryRowContext(ctx,
		`SELECT MAX(weight) FROM lift_prs WHERE lift_name = ? AND reps = ?`,
		lift, reps,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("max lift weight: %w", err)
	}
	return best.Float64, best.Valid, nil
}

// InsertLiftPR appends a PR row and sets its ID.
func (t *Tx) InsertLiftPR(ctx context.Context, pr *models.LiftPR) error {
	res, err := t.tx.ExecContext(ctx, `
		INSERT INTO lift_prs (lift_name, weight, reps, date, workout_id, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		pr.Lift, pr.Weight, pr.Reps, pr.Date.String(), nullableInt(pr.WorkoutID), pr.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert lift pr: %w", err)
	}
	pr.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert lift pr: %w", err)
	}
	return nil
}

// CurrentPRs returns the record-holding row of every (lift, reps) pair,
// optionally narrowed to lifts whose name contains like. Ordered by lift
// then reps. When two rows tie at the maximum the earliest one wins.
func (t *Tx) CurrentPRs(ctx context.Context, like string) ([]*models.LiftPR, error) {
	query := `
		SELECT p.id, p.lift_name, p.weight, p.reps, p.date, p.workout_id, p.notes, p.created_at
		FROM lift_prs p
		WHERE p.id = (
			SELECT q.id FROM lift_prs q
			WHERE q.lift_name = p.lift_name AND q.reps = p.reps
			ORDER BY q.weight DESC, q.id ASC
			LIMIT 1
		)`
	var args []any
	if like != "" {
		query += ` AND LOWER(p.lift_name) LIKE LOWER(?)`
		args = append(args, "%"+like+"%")
	}
	query += ` ORDER BY p.lift_name, p.reps`

	return t.queryPRs(ctx, query, args...)
}

// ListPRs returns every PR row dated within [from, to], newest first.
func (t *Tx) ListPRs(ctx context.Context, from, to models.Date) ([]*models.LiftPR, error) {
	return t.queryPRs(ctx, `
		SELECT id, lift_name, weight, reps, date, workout_id, notes, created_at
		FROM lift_prs
		WHERE date >= ? AND date <= ?
		ORDER BY date DESC, id DESC`,
		from.String(), to.String(),
	)
}

func (t *Tx) queryPRs(ctx context.Context, query string, args ...any) ([]*models.LiftPR, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query lift prs: %w", err)
	}
	defer rows.Close()

	var prs []*models.LiftPR
	for rows.Next() {
		var pr models.LiftPR
		var date, createdAt string
		var workoutID sql.NullInt64
		if err := rows.Scan(&pr.ID, &pr.Lift, &pr.Weight, &pr.Reps, &date, &workoutID, &pr.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scan lift pr: %w", err)
		}
		pr.Date = parseDate(date)
		pr.WorkoutID = intPtr(workoutID)
		pr.CreatedAt = parseTimestamp(createdAt)
		prs = append(prs, &pr)
	}
	return prs, rows.Err()
}
