// ABOUTME: Import adapter for CSV workout exports (SugarWOD layout).
// ABOUTME: Rows are deduplicated on (date, title, result) and feed the PR engine.
package training

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// ImportSummary reports the outcome of one import.
type ImportSummary struct {
	BatchID  uuid.UUID `json:"batch_id"`
	Imported int       `json:"imported"`
	Skipped  int       `json:"skipped"`
	PRsAdded int       `json:"prs_added"`
	Errors   []string  `json:"errors,omitempty"`
}

// importRow is a parsed export row waiting to be stored.
type importRow struct {
	workout *models.Workout
	weight  float64 // load in the display result; zero if not a load lift
}

// ImportFile imports the export at path.
func (s *Service) ImportFile(ctx context.Context, path string) (*ImportSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Entity: "file", Key: path}
		}
		return nil, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	return s.Import(ctx, f)
}

// Import reads a CSV export. Bad rows are reported in the summary and
// never abort the batch; a store failure rolls back the whole import.
func (s *Service) Import(ctx context.Context, r io.Reader) (*ImportSummary, error) {
	rows, rowErr, err := parseExport(r)
	if err != nil {
		return nil, err
	}

	sum := &ImportSummary{BatchID: uuid.New()}
	for _, e := range multierr.Errors(rowErr) {
		sum.Errors = append(sum.Errors, e.Error())
	}

	created := s.now().UTC()
	err = s.store.Update(ctx, func(tx *storage.Tx) error {
		for _, row := range rows {
			w := row.workout
			exists, err := tx.WorkoutExists(ctx, w.Date, w.Title, w.ResultDisplay)
			if err != nil {
				return err
			}
			if exists {
				sum.Skipped++
				continue
			}

			w.CreatedAt = created
			if err := tx.InsertWorkout(ctx, w); err != nil {
				return err
			}
			sum.Imported++

			if row.weight > 0 {
				isPR, _, err := s.recordPR(ctx, tx, w, row.weight, 1)
				if err != nil {
					return err
				}
				if isPR {
					sum.PRsAdded++
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"batch_id": sum.BatchID.String(),
		"imported": sum.Imported,
		"skipped":  sum.Skipped,
		"prs":      sum.PRsAdded,
		"errors":   len(sum.Errors),
	}).Info("import finished")
	return sum, nil
}

// parseExport reads every row up front. Row failures are combined into
// rowErr; err is set only when the file itself is unreadable.
func parseExport(r io.Reader) (rows []importRow, rowErr error, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, invalid("file", "is empty")
	}
	if err != nil {
		return nil, nil, invalid("file", "unreadable header: %v", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{"date", "title"} {
		if _, ok := cols[required]; !ok {
			return nil, nil, invalid("file", "missing %q column", required)
		}
	}

	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			rowErr = multierr.Append(rowErr, fmt.Errorf("row %d: %w", line, err))
			continue
		}

		get := func(name string) string {
			if i, ok := cols[name]; ok && i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}

		row, err := parseExportRow(get)
		if err != nil {
			rowErr = multierr.Append(rowErr, fmt.Errorf("row %d: %w", line, err))
			continue
		}
		rows = append(rows, row)
	}
	return rows, rowErr, nil
}

func parseExportRow(get func(string) string) (importRow, error) {
	date, err := parseExportDate(get("date"))
	if err != nil {
		return importRow{}, err
	}
	title := get("title")
	if title == "" {
		return importRow{}, errors.New("missing title")
	}

	w := models.NewWorkout(date, title)
	w.Source = models.SourceImported
	w.Description = get("description")
	w.ScoreKind = exportScoreKind(get("score_type"))
	w.ResultDisplay = get("best_result_display")
	w.Lift = get("barbell_lift")
	w.SetDetails = get("set_details")
	w.Notes = get("notes")
	w.RX = models.ParseRXStatus(get("rx_or_scaled"))
	w.IsPR = strings.EqualFold(get("pr"), "PR")

	if raw := get("best_result_raw"); raw != "" {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			n := int64(f)
			w.ResultRaw = &n
		}
	}

	row := importRow{workout: w}
	if w.ScoreKind == models.ScoreLoad && w.Lift != "" {
		if weight, err := strconv.ParseFloat(w.ResultDisplay, 64); err == nil && weight > 0 {
			row.weight = weight
		}
	}
	return row, nil
}

// parseExportDate accepts MM/DD/YYYY (the export's format) or YYYY-MM-DD.
func parseExportDate(s string) (models.Date, error) {
	if s == "" {
		return models.Date{}, errors.New("missing date")
	}
	if t, err := time.Parse("1/2/2006", s); err == nil {
		return models.DateOf(t), nil
	}
	if d, err := models.ParseDate(s); err == nil {
		return d, nil
	}
	return models.Date{}, fmt.Errorf("unrecognized date %q", s)
}

// exportScoreKind maps export labels like "Load", "Time", or
// "Rounds + Reps" onto score kinds; anything unknown is "other".
func exportScoreKind(s string) models.ScoreKind {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	if i := strings.IndexAny(s, " +/"); i > 0 {
		s = s[:i]
	}
	if k, ok := models.ParseScoreKind(s); ok {
		return k
	}
	return models.ScoreOther
}
