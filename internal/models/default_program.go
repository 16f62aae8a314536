// ABOUTME: Built-in 4-week starter program used when no program is active.
// ABOUTME: Parsed once from the embedded YAML; callers receive a private copy.
package models

import (
	_ "embed"
	"sync"
)

//go:embed default_program.yaml
var defaultProgramYAML []byte

var parseDefaultProgram = sync.OnceValues(func() (ProgramDefinition, error) {
	return ParseProgramYAML(defaultProgramYAML)
})

// DefaultProgram returns the built-in program definition.
// It panics if the embedded definition is invalid, which the tests rule out.
func DefaultProgram() ProgramDefinition {
	def, err := parseDefaultProgram()
	if err != nil {
		panic("models: invalid embedded default program: " + err.Error())
	}
	return def.Clone()
}

// Clone returns a deep copy so callers cannot mutate shared state.
func (p ProgramDefinition) Clone() ProgramDefinition {
	out := p
	out.Principles = append([]string(nil), p.Principles...)
	out.Weeks = make([]Week, len(p.Weeks))
	for i, w := range p.Weeks {
		out.Weeks[i] = w
		if days, ok := w.Schedule.(DayMapping); ok {
			copied := make(DayMapping, len(days))
			for name, plan := range days {
				plan.Exercises = append([]Exercise(nil), plan.Exercises...)
				copied[name] = plan
			}
			out.Weeks[i].Schedule = copied
		}
	}
	return out
}
