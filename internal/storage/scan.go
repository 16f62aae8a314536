// ABOUTME: Row scanning helpers shared by every table.
// ABOUTME: Converts TEXT dates and timestamps back into model types.
package storage

import (
	"database/sql"
	"time"

	"github.com/harperreed/fitness/internal/models"
)

const timestampLayout = "2006-01-02 15:04:05"

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func parseDate(s string) models.Date {
	d, _ := models.ParseDate(s)
	return d
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		t, _ = time.Parse(time.RFC3339, s)
	}
	return t
}

func nullableInt(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func intPtr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
