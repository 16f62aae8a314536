// ABOUTME: Renders the day prescription and program activation.
// ABOUTME: Includes week theme, readiness note, exercise list and protein footer.
package render

import (
	"fmt"
	"strings"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/training"
)

// Today renders the resolved plan for one date.
func Today(p *training.DayPrescription) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s, %s\n", p.Weekday, p.Date)
	fmt.Fprintf(&b, "### Week %d: %s\n\n", p.Week, p.Theme)
	if p.Default {
		b.WriteString("*No active program, showing the default program. Use `fitness_set_program` to start one.*\n\n")
	}
	if p.WeekNotes != "" {
		fmt.Fprintf(&b, "*%s*\n\n", p.WeekNotes)
	}

	fmt.Fprintf(&b, "## %s\n\n", p.Plan.Name)

	switch p.Adjustment {
	case training.ReadinessLow:
		b.WriteString("⚠️ **Low readiness today** - consider reducing volume or intensity\n\n")
	case training.ReadinessHigh:
		b.WriteString("💪 **High readiness** - push it today!\n\n")
	}

	if len(p.Plan.Exercises) > 0 {
		b.WriteString("### Exercises\n\n")
		for _, ex := range p.Plan.Exercises {
			fmt.Fprintf(&b, "- **%s**: %d x %s", ex.Name, ex.Sets, ex.Reps)
			if ex.Notes != "" {
				fmt.Fprintf(&b, " - *%s*", ex.Notes)
			}
			b.WriteString("\n")
		}
	}
	if p.Plan.Conditioning != "" {
		fmt.Fprintf(&b, "\n### Conditioning\n%s\n", p.Plan.Conditioning)
	}
	if p.Plan.Mobility != "" {
		fmt.Fprintf(&b, "\n### Mobility\n%s\n", p.Plan.Mobility)
	}

	b.WriteString("\n---\n")
	if p.Protein != nil {
		fmt.Fprintf(&b, "📊 Protein so far: %dg / %dg", *p.Protein, training.ProteinTarget)
	} else {
		b.WriteString("📊 No protein logged yet today")
	}
	return b.String()
}

// ProgramActivated confirms a new active program.
func ProgramActivated(p *models.Program) string {
	var b strings.Builder
	b.WriteString("## Program Activated! 🎯\n\n")
	fmt.Fprintf(&b, "**%s**\n\n", p.Name)
	fmt.Fprintf(&b, "- Start: %s\n", p.StartDate)
	if p.EndDate != nil {
		fmt.Fprintf(&b, "- End: %s\n", *p.EndDate)
	}
	if len(p.Definition.Principles) > 0 {
		b.WriteString("\n### Key Principles\n")
		for _, pr := range p.Definition.Principles {
			fmt.Fprintf(&b, "- %s\n", pr)
		}
	}
	b.WriteString("\nUse `fitness_get_today` to see each day's workout!")
	return b.String()
}
