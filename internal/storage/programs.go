// ABOUTME: Program activation and lookup. At most one row is active; the
// ABOUTME: definition is stored as JSON in program_data.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harperreed/fitness/internal/models"
)

// ActivateProgram deactivates every program and inserts p as the active one.
func (t *Tx) ActivateProgram(ctx context.Context, p *models.Program) error {
	data, err := json.Marshal(p.Definition)
	if err != nil {
		return fmt.Errorf("encode program: %w", err)
	}

	if _, err := t.tx.ExecContext(ctx, `UPDATE programs SET is_active = 0 WHERE is_active = 1`); err != nil {
		return fmt.Errorf("deactivate programs: %w", err)
	}

	var end sql.NullString
	if p.EndDate != nil {
		end = sql.NullString{String: p.EndDate.String(), Valid: true}
	}

	res, err := t.tx.ExecContext(ctx, `
		INSERT INTO programs (name, description, start_date, end_date, is_active, program_data)
		VALUES (?, ?, ?, ?, 1, ?)`,
		p.Name, p.Description, p.StartDate.String(), end, string(data),
	)
	if err != nil {
		return fmt.Errorf("insert program: %w", mapConstraintErr(err))
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert program: %w", err)
	}
	p.Active = true
	return nil
}

// ActiveProgram returns the active program, or ErrNotFound.
func (t *Tx) ActiveProgram(ctx context.Context) (*models.Program, error) {
	var p models.Program
	var start, data, createdAt string
	var end sql.NullString

	err := t.tx.QueryRowContext(ctx, `
		SELECT id, name, description, start_date, end_date, is_active, program_data, created_at
		FROM programs WHERE is_active = 1`,
	).Scan(&p.ID, &p.Name, &p.Description, &start, &end, &p.Active, &data, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("active program: %w", err)
	}

	if err := json.Unmarshal([]byte(data), &p.Definition); err != nil {
		return nil, fmt.Errorf("decode program %d: %w", p.ID, err)
	}
	p.StartDate = parseDate(start)
	if end.Valid {
		d := parseDate(end.String)
		p.EndDate = &d
	}
	p.CreatedAt = parseTimestamp(createdAt)
	return &p, nil
}

// CountPrograms returns the number of stored programs, active or not.
func (t *Tx) CountPrograms(ctx context.Context) (int, error) {
	var n int
	if err := t.tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM programs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count programs: %w", err)
	}
	return n, nil
}
