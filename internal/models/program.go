// ABOUTME: Training program definitions and the stored Program row.
// ABOUTME: A week's schedule is either a full day mapping or a reuse of week 1.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Exercise is one prescribed movement.
type Exercise struct {
	Name  string `yaml:"name" json:"name"`
	Sets  int    `yaml:"sets" json:"sets"`
	Reps  string `yaml:"reps" json:"reps"`
	Notes string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// DayPlan is the prescription for a single weekday.
type DayPlan struct {
	Name         string     `yaml:"name" json:"name"`
	Exercises    []Exercise `yaml:"exercises,omitempty" json:"exercises"`
	Conditioning string     `yaml:"conditioning,omitempty" json:"conditioning,omitempty"`
	Mobility     string     `yaml:"mobility,omitempty" json:"mobility,omitempty"`
}

// WeekSchedule is the day layout of a program week. It is either a
// DayMapping or a ReuseWeekOne reference.
type WeekSchedule interface {
	isWeekSchedule()
}

// DayMapping maps weekday names ("Monday") to their prescriptions.
type DayMapping map[string]DayPlan

// ReuseWeekOne means the week repeats week 1's day mapping. Note is the
// free-text description carried in the definition.
type ReuseWeekOne struct {
	Note string
}

func (DayMapping) isWeekSchedule()   {}
func (ReuseWeekOne) isWeekSchedule() {}

// Week is one entry of a program's ordered week list.
type Week struct {
	Number   int
	Theme    string
	Notes    string
	Schedule WeekSchedule
}

// weekDoc is the serialized shape shared by YAML and JSON.
type weekDoc struct {
	Week  int    `yaml:"week" json:"week"`
	Theme string `yaml:"theme,omitempty" json:"theme,omitempty"`
	Notes string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// UnmarshalYAML decodes "days" as a mapping or as a reuse note.
func (w *Week) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		weekDoc `yaml:",inline"`
		Days    yaml.Node `yaml:"days"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	w.Number, w.Theme, w.Notes = raw.Week, raw.Theme, raw.Notes

	switch raw.Days.Kind {
	case yaml.MappingNode:
		var days DayMapping
		if err := raw.Days.Decode(&days); err != nil {
			return fmt.Errorf("week %d days: %w", raw.Week, err)
		}
		w.Schedule = days
	case yaml.ScalarNode, 0:
		w.Schedule = ReuseWeekOne{Note: raw.Days.Value}
	default:
		return fmt.Errorf("week %d: days must be a mapping or a string", raw.Week)
	}
	return nil
}

// MarshalJSON writes "days" as an object or a string.
func (w Week) MarshalJSON() ([]byte, error) {
	out := struct {
		weekDoc
		Days any `json:"days"`
	}{weekDoc: weekDoc{Week: w.Number, Theme: w.Theme, Notes: w.Notes}}

	switch s := w.Schedule.(type) {
	case DayMapping:
		out.Days = s
	case ReuseWeekOne:
		out.Days = s.Note
	case nil:
		out.Days = ""
	default:
		return nil, fmt.Errorf("unknown week schedule %T", s)
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the shape written by MarshalJSON.
func (w *Week) UnmarshalJSON(data []byte) error {
	var raw struct {
		weekDoc
		Days json.RawMessage `json:"days"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	w.Number, w.Theme, w.Notes = raw.Week, raw.Theme, raw.Notes

	days := bytes.TrimSpace(raw.Days)
	switch {
	case len(days) > 0 && days[0] == '{':
		var m DayMapping
		if err := json.Unmarshal(days, &m); err != nil {
			return fmt.Errorf("week %d days: %w", raw.Week, err)
		}
		w.Schedule = m
	case len(days) > 0 && days[0] == '"':
		var note string
		if err := json.Unmarshal(days, &note); err != nil {
			return err
		}
		w.Schedule = ReuseWeekOne{Note: note}
	default:
		w.Schedule = ReuseWeekOne{}
	}
	return nil
}

// ProgramDefinition is the structured weekly plan of a program.
type ProgramDefinition struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Weeks       []Week   `yaml:"weeks" json:"weeks"`
	Principles  []string `yaml:"principles,omitempty" json:"principles,omitempty"`
}

// Validate checks the invariants the scheduler relies on.
func (p ProgramDefinition) Validate() error {
	if p.Name == "" {
		return errors.New("program name is required")
	}
	if len(p.Weeks) == 0 {
		return errors.New("program must define at least one week")
	}
	if _, ok := p.Weeks[0].Schedule.(DayMapping); !ok {
		return errors.New("week 1 must define its days")
	}
	return nil
}

// TotalWeeks is the number of defined weeks.
func (p ProgramDefinition) TotalWeeks() int {
	return len(p.Weeks)
}

// DaysForWeek returns the day mapping of the 1-based week, resolving a
// reuse reference to week 1.
func (p ProgramDefinition) DaysForWeek(week int) DayMapping {
	if week < 1 || week > len(p.Weeks) {
		return nil
	}
	if days, ok := p.Weeks[week-1].Schedule.(DayMapping); ok {
		return days
	}
	days, _ := p.Weeks[0].Schedule.(DayMapping)
	return days
}

// ParseProgramYAML decodes and validates a YAML program definition.
func ParseProgramYAML(data []byte) (ProgramDefinition, error) {
	var def ProgramDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return ProgramDefinition{}, fmt.Errorf("parse program: %w", err)
	}
	if err := def.Validate(); err != nil {
		return ProgramDefinition{}, err
	}
	return def, nil
}

// Program is a stored program activation.
type Program struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	StartDate   Date              `json:"start_date"`
	EndDate     *Date             `json:"end_date,omitempty"`
	Active      bool              `json:"is_active"`
	Definition  ProgramDefinition `json:"program"`
	CreatedAt   time.Time         `json:"created_at"`
}
