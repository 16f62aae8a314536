// ABOUTME: Program scheduler: resolves the prescription for a date from the
// ABOUTME: active (or built-in) program, elapsed week, and readiness.
package training

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/sirupsen/logrus"
)

// ProgramLength is how long an activation runs before its end date.
const ProgramLength = 4 * 7

// ReadinessNote is the intensity annotation folded into a prescription.
type ReadinessNote int

const (
	ReadinessNone ReadinessNote = iota
	ReadinessLow
	ReadinessHigh
)

// ReadinessAdjustment annotates a readiness score: low below 2.5, high
// at 4 or above.
func ReadinessAdjustment(score float64) ReadinessNote {
	switch {
	case score < 2.5:
		return ReadinessLow
	case score >= 4:
		return ReadinessHigh
	default:
		return ReadinessNone
	}
}

// ElapsedWeek is the 1-based program week containing check, clamped to
// [1, totalWeeks].
func ElapsedWeek(start, check models.Date, totalWeeks int) int {
	days := check.DaysSince(start)
	week := floorDiv(days, 7) + 1
	return min(max(week, 1), max(totalWeeks, 1))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// NextMonday is the first Monday strictly after today.
func NextMonday(today models.Date) models.Date {
	days := (int(time.Monday) - int(today.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return today.AddDays(days)
}

// DayPrescription is the resolved plan for one calendar date.
type DayPrescription struct {
	Date       models.Date
	Weekday    string
	Program    string
	Default    bool // no program is active; the built-in one is used
	Week       int
	TotalWeeks int
	Theme      string
	WeekNotes  string
	Principles []string
	Plan       models.DayPlan
	Rest       bool // weekday absent from the schedule
	Readiness  *models.ReadinessEntry
	Score      float64
	Adjustment ReadinessNote
	Protein    *int // grams logged on Date, nil if none
}

// Resolve computes the prescription for check. start is nil when no
// program is active, which pins the week to 1.
func Resolve(def models.ProgramDefinition, start *models.Date, check models.Date, readiness *models.ReadinessEntry) DayPrescription {
	p := DayPrescription{
		Date:       check,
		Weekday:    check.Weekday().String(),
		Program:    def.Name,
		Default:    start == nil,
		Week:       1,
		TotalWeeks: def.TotalWeeks(),
		Principles: def.Principles,
	}
	if start != nil {
		p.Week = ElapsedWeek(*start, check, p.TotalWeeks)
	}
	if p.Week <= len(def.Weeks) {
		week := def.Weeks[p.Week-1]
		p.Theme, p.WeekNotes = week.Theme, week.Notes
	}

	plan, ok := def.DaysForWeek(p.Week)[p.Weekday]
	if !ok {
		plan = models.DayPlan{Name: "Rest"}
		p.Rest = true
	}
	p.Plan = plan

	if readiness != nil {
		p.Readiness = readiness
		p.Score = readiness.Score()
		p.Adjustment = ReadinessAdjustment(p.Score)
	}
	return p
}

// GetToday resolves the prescription for a date (default today).
func (s *Service) GetToday(ctx context.Context, dateStr string) (*DayPrescription, error) {
	check, err := s.resolveDate("date", dateStr)
	if err != nil {
		return nil, err
	}

	var p DayPrescription
	err = s.store.View(ctx, func(tx *storage.Tx) error {
		def := models.DefaultProgram()
		var start *models.Date
		prog, err := tx.ActiveProgram(ctx)
		switch {
		case err == nil:
			def, start = prog.Definition, &prog.StartDate
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}

		readiness, err := tx.GetReadiness(ctx, check)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		p = Resolve(def, start, check, readiness)

		protein, err := tx.GetProtein(ctx, check)
		switch {
		case err == nil:
			p.Protein = &protein.Grams
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SetProgramInput selects the program to activate.
type SetProgramInput struct {
	StartDate   string
	UseDefault  bool
	ProgramFile string // YAML definition, used when UseDefault is false
}

// SetProgram deactivates every program and activates a new one. Without
// an explicit start it begins next Monday and never today.
func (s *Service) SetProgram(ctx context.Context, in SetProgramInput) (*models.Program, error) {
	var start models.Date
	if in.StartDate != "" {
		d, err := parseDate("start_date", in.StartDate)
		if err != nil {
			return nil, err
		}
		start = d
	} else {
		start = NextMonday(s.Today())
	}

	def, err := loadDefinition(in)
	if err != nil {
		return nil, err
	}

	end := start.AddDays(ProgramLength)
	prog := &models.Program{
		Name:        def.Name,
		Description: def.Description,
		StartDate:   start,
		EndDate:     &end,
		Definition:  def,
		CreatedAt:   s.now().UTC(),
	}
	err = s.store.Update(ctx, func(tx *storage.Tx) error {
		return tx.ActivateProgram(ctx, prog)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"program": prog.Name,
		"start":   prog.StartDate.String(),
	}).Info("program activated")
	return prog, nil
}

func loadDefinition(in SetProgramInput) (models.ProgramDefinition, error) {
	switch {
	case in.UseDefault && in.ProgramFile != "":
		return models.ProgramDefinition{}, invalid("program_file", "cannot be combined with use_default")
	case in.UseDefault:
		return models.DefaultProgram(), nil
	case in.ProgramFile == "":
		return models.ProgramDefinition{}, invalid("program_file", "is required when use_default is false")
	}

	data, err := os.ReadFile(in.ProgramFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.ProgramDefinition{}, &NotFoundError{Entity: "program file", Key: in.ProgramFile}
		}
		return models.ProgramDefinition{}, fmt.Errorf("read program file: %w", err)
	}
	def, err := models.ParseProgramYAML(data)
	if err != nil {
		return models.ProgramDefinition{}, invalid("program_file", "%v", err)
	}
	return def, nil
}
