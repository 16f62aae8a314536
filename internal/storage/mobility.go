// ABOUTME: Mobility session queries. Sessions are plain inserts; several
// ABOUTME: may share a date.
package storage

import (
	"context"
	"fmt"

	"github.com/harperreed/fitness/internal/models"
)

// InsertMobility stores m and sets its ID.
func (t *Tx) InsertMobility(ctx context.Context, m *models.MobilitySession) error {
	res, err := t.tx.ExecContext(ctx, `
		INSERT INTO mobility_log (date, duration_minutes, focus_area, exercises, notes)
		VALUES (?, ?, ?, ?, ?)`,
		m.Date.String(), m.DurationMinutes, m.FocusArea, m.Exercises, m.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert mobility: %w", err)
	}
	m.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert mobility: %w", err)
	}
	return nil
}

// MobilityTotals returns the session count and total minutes in [from, to].
func (t *Tx) MobilityTotals(ctx context.Context, from, to models.Date) (sessions, minutes int, err error) {
	err = t.tx.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(duration_minutes), 0)
		FROM mobility_log WHERE date >= ? AND date <= ?`,
		from.String(), to.String(),
	).Scan(&sessions, &minutes)
	if err != nil {
		return 0, 0, fmt.Errorf("mobility totals: %w", err)
	}
	return sessions, minutes, nil
}

// ListMobility returns sessions in [from, to], oldest first.
func (t *Tx) ListMobility(ctx context.Context, from, to models.Date) ([]*models.MobilitySession, error) {
	rows, err := t.tx.QueryContext(ctx, `
		SELECT id, date, duration_minutes, focus_area, exercises, notes, created_at
		FROM mobility_log WHERE date >= ? AND date <= ? ORDER BY date, id`,
		from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("list mobility: %w", err)
	}
	defer rows.Close()

	var out []*models.MobilitySession
	for rows.Next() {
		var m models.MobilitySession
		var date, createdAt string
		if err := rows.Scan(&m.ID, &date, &m.DurationMinutes, &m.FocusArea, &m.Exercises, &m.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scan mobility: %w", err)
		}
		m.Date = parseDate(date)
		m.CreatedAt = parseTimestamp(createdAt)
		out = append(out, &m)
	}
	return out, rows.Err()
}
