// ABOUTME: Workout and LiftPR models for the training ledger.
// ABOUTME: Defines score kinds, RX status, provenance, and constructors.
package models

import (
	"strings"
	"time"
)

// ScoreKind describes how a workout result is measured.
type ScoreKind string

const (
	ScoreTime     ScoreKind = "time"
	ScoreReps     ScoreKind = "reps"
	ScoreRounds   ScoreKind = "rounds"
	ScoreLoad     ScoreKind = "load"
	ScoreDistance ScoreKind = "distance"
	ScoreOther    ScoreKind = "other"
)

// AllScoreKinds lists every valid score kind.
var AllScoreKinds = []ScoreKind{
	ScoreTime, ScoreReps, ScoreRounds, ScoreLoad, ScoreDistance, ScoreOther,
}

// ParseScoreKind matches s case-insensitively against the known kinds.
// An empty string is valid and means "unset".
func ParseScoreKind(s string) (ScoreKind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", true
	}
	for _, k := range AllScoreKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// RXStatus records whether a workout was done as prescribed.
type RXStatus string

const (
	RX     RXStatus = "RX"
	Scaled RXStatus = "SCALED"
)

// ParseRXStatus normalizes free-form export values ("Rx", "scaled", "RX+").
func ParseRXStatus(s string) RXStatus {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch {
	case s == "":
		return ""
	case strings.HasPrefix(s, "RX"):
		return RX
	default:
		return Scaled
	}
}

// Source is the provenance of a workout row.
type Source string

const (
	SourceManual   Source = "manual"
	SourceImported Source = "imported"
)

// Workout is one logged or imported training session.
type Workout struct {
	ID            int64     `json:"id"`
	Date          Date      `json:"date"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	ScoreKind     ScoreKind `json:"score_type,omitempty"`
	ResultRaw     *int64    `json:"result_raw,omitempty"`
	ResultDisplay string    `json:"result_display,omitempty"`
	Lift          string    `json:"barbell_lift,omitempty"`
	SetDetails    string    `json:"set_details,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	RX            RXStatus  `json:"rx_or_scaled,omitempty"`
	IsPR          bool      `json:"is_pr"`
	Source        Source    `json:"source"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewWorkout creates a manual workout on the given date.
func NewWorkout(date Date, title string) *Workout {
	return &Workout{
		Date:      date,
		Title:     title,
		RX:        RX,
		Source:    SourceManual,
		CreatedAt: time.Now().UTC(),
	}
}

// LiftPR is a personal record row. Rows are append-only; the current
// record for a (lift, reps) pair is the maximum weight across its rows.
type LiftPR struct {
	ID        int64     `json:"id"`
	Lift      string    `json:"lift_name"`
	Weight    float64   `json:"weight"`
	Reps      int       `json:"reps"`
	Date      Date      `json:"date"`
	WorkoutID *int64    `json:"workout_id,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
