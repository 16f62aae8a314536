// ABOUTME: Workout ledger queries: insert, lookup, filtered listing, update, delete.
// ABOUTME: Listing is newest first (date DESC, id DESC) unless ascending is requested.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/fitness/internal/models"
)

const workoutColumns = `id, date, title, description, score_type, result_raw, result_display,
	barbell_lift, set_details, notes, rx_or_scaled, is_pr, source, created_at`

// WorkoutFilter narrows ListWorkouts. Zero values mean "no constraint".
type WorkoutFilter struct {
	On        *models.Date
	From      *models.Date
	To        *models.Date
	Lift      string // substring match, case-insensitive
	Limit     int
	Ascending bool
}

// WorkoutPatch carries the fields of a partial update. Nil means unchanged.
type WorkoutPatch struct {
	Date          *models.Date
	Title         *string
	Description   *string
	ResultDisplay *string
	ResultRaw     *int64 // written with ResultDisplay; nil clears it
	Notes         *string
	RX            *models.RXStatus
}

// Empty reports whether the patch changes nothing.
func (p WorkoutPatch) Empty() bool {
	return p.Date == nil && p.Title == nil && p.Description == nil && p.ResultDisplay == nil &&
		p.Notes == nil && p.RX == nil
}

// InsertWorkout stores w and sets its ID. A (date, title, result) collision
// returns ErrDuplicate.
func (t *Tx) InsertWorkout(ctx context.Context, w *models.Workout) error {
	res, err := t.tx.ExecContext(ctx, `
		INSERT INTO workouts (date, title, description, score_type, result_raw, result_display,
			barbell_lift, set_details, notes, rx_or_scaled, is_pr, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.Date.String(), w.Title, w.Description, string(w.ScoreKind), nullableInt(w.ResultRaw),
		w.ResultDisplay, w.Lift, w.SetDetails, w.Notes, string(w.RX), w.IsPR, string(w.Source),
	)
	if err != nil {
		return fmt.Errorf("insert workout: %w", mapConstraintErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}
	w.ID = id
	return nil
}

// WorkoutExists reports whether a workout with the same uniqueness key exists.
func (t *Tx) WorkoutExists(ctx context.Context, date models.Date, title, resultDisplay string) (bool, error) {
	var n int
	err := t.tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workouts WHERE date = ? AND title = ? AND result_display = ?`,
		date.String(), title, resultDisplay,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check workout: %w", err)
	}
	return n > 0, nil
}

// GetWorkout retrieves a workout by ID.
func (t *Tx) GetWorkout(ctx context.Context, id int64) (*models.Workout, error) {
	row := t.tx.QueryRowContext(ctx, `SELECT `+workoutColumns+` FROM workouts WHERE id = ?`, id)
	w, err := scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return w, err
}

// ListWorkouts returns workouts matching f.
func (t *Tx) ListWorkouts(ctx context.Context, f WorkoutFilter) ([]*models.Workout, error) {
	var where []string
	var args []any

	if f.On != nil {
		where = append(where, "date = ?")
		args = append(args, f.On.String())
	}
	if f.From != nil {
		where = append(where, "date >= ?")
		args = append(args, f.From.String())
	}
	if f.To != nil {
		where = append(where, "date <= ?")
		args = append(args, f.To.String())
	}
	if f.Lift != "" {
		where = append(where, "LOWER(barbell_lift) LIKE LOWER(?)")
		args = append(args, "%"+f.Lift+"%")
	}

	query := `SELECT ` + workoutColumns + ` FROM workouts`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if f.Ascending {
		query += " ORDER BY date ASC, id ASC"
	} else {
		query += " ORDER BY date DESC, id DESC"
	}
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	var workouts []*models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// CountWorkouts returns the number of workouts dated within [from, to].
func (t *Tx) CountWorkouts(ctx context.Context, from, to models.Date) (int, error) {
	var n int
	err := t.tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workouts WHERE date >= ? AND date <= ?`,
		from.String(), to.String(),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count workouts: %w", err)
	}
	return n, nil
}

// UpdateWorkout applies p to the workout with the given ID.
func (t *Tx) UpdateWorkout(ctx context.Context, id int64, p WorkoutPatch) error {
	var sets []string
	var args []any

	if p.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, p.Date.String())
	}
	if p.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *p.Title)
	}
	if p.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *p.Description)
	}
	if p.ResultDisplay != nil {
		sets = append(sets, "result_display = ?", "result_raw = ?")
		args = append(args, *p.ResultDisplay, nullableInt(p.ResultRaw))
	}
	if p.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *p.Notes)
	}
	if p.RX != nil {
		sets = append(sets, "rx_or_scaled = ?")
		args = append(args, string(*p.RX))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	res, err := t.tx.ExecContext(ctx,
		`UPDATE workouts SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update workout: %w", mapConstraintErr(err))
	}
	return exactlyOne(res)
}

// MarkWorkoutPR sets the PR flag on a workout.
func (t *Tx) MarkWorkoutPR(ctx context.Context, id int64) error {
	res, err := t.tx.ExecContext(ctx, `UPDATE workouts SET is_pr = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark workout pr: %w", err)
	}
	return exactlyOne(res)
}

// DeleteWorkout removes a workout. PR rows keep their history with the
// workout link cleared.
func (t *Tx) DeleteWorkout(ctx context.Context, id int64) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return exactlyOne(res)
}

func scanWorkout(s scanner) (*models.Workout, error) {
	var w models.Workout
	var date, scoreKind, rx, source, createdAt string
	var raw sql.NullInt64

	err := s.Scan(&w.ID, &date, &w.Title, &w.Description, &scoreKind, &raw, &w.ResultDisplay,
		&w.Lift, &w.SetDetails, &w.Notes, &rx, &w.IsPR, &source, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan workout: %w", err)
	}

	w.Date = parseDate(date)
	w.ScoreKind = models.ScoreKind(scoreKind)
	w.ResultRaw = intPtr(raw)
	w.RX = models.RXStatus(rx)
	w.Source = models.Source(source)
	w.CreatedAt = parseTimestamp(createdAt)
	return &w, nil
}
