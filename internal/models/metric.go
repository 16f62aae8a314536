// ABOUTME: Daily metric models: protein, body weight, readiness, mobility.
// ABOUTME: Protein, weight and readiness are one row per date; mobility is not.
package models

import "time"

// MetricKind names a single-value daily metric that supports upsert.
type MetricKind string

const (
	MetricProtein MetricKind = "protein"
	MetricWeight  MetricKind = "weight"
)

// MetricUnits maps metric kinds to their display units.
var MetricUnits = map[MetricKind]string{
	MetricProtein: "g",
	MetricWeight:  "lbs",
}

// ProteinEntry is the protein total for one day.
type ProteinEntry struct {
	ID        int64     `json:"-"`
	Date      Date      `json:"date"`
	Grams     int       `json:"grams"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"-"`
}

// WeightEntry is the body weight for one day, in pounds.
type WeightEntry struct {
	ID        int64     `json:"-"`
	Date      Date      `json:"date"`
	Weight    float64   `json:"weight"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"-"`
}

// ReadinessEntry is a morning check-in. Each score is 1-5; higher
// soreness and stress are worse.
type ReadinessEntry struct {
	ID           int64     `json:"-"`
	Date         Date      `json:"date"`
	SleepQuality int       `json:"sleep_quality"`
	Energy       int       `json:"energy"`
	Soreness     int       `json:"soreness"`
	Stress       int       `json:"stress"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"-"`
}

// Score is the 1-5 composite with soreness and stress inverted.
func (r ReadinessEntry) Score() float64 {
	return float64(r.SleepQuality+r.Energy+(6-r.Soreness)+(6-r.Stress)) / 4
}

// MobilitySession is one stretching or mobility block.
type MobilitySession struct {
	ID              int64     `json:"id"`
	Date            Date      `json:"date"`
	DurationMinutes int       `json:"duration_minutes"`
	FocusArea       string    `json:"focus_area,omitempty"`
	Exercises       string    `json:"exercises,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"-"`
}
