package plan

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	headerRule  = "============================================================"
	sectionRule = "--------------------------------------------------"
)

// Format renders a validated plan as a human-readable review document:
// header, one section per phase, nested week and day sections in document
// order, and a fixed call-to-action trailer. It never fails on a tree that
// passed validation; a nil plan renders as the empty string.
func Format(p *Plan) string {
	if p == nil {
		return ""
	}

	var out []string
	out = append(out, headerRule)
	out = append(out, p.Name)
	out = append(out, headerRule)
	out = append(out, "\nDescription: "+p.Description)
	out = append(out, fmt.Sprintf("Duration: %d weeks", p.DurationWeeks))
	out = append(out, "Difficulty: "+strings.ToUpper(p.Difficulty))
	out = append(out, "Goal: "+titleWords(p.Goal))

	for _, phase := range p.Phases {
		out = append(out, "\n"+sectionRule)
		out = append(out, fmt.Sprintf("PHASE: %s (Weeks %d-%d)", phase.Name, phase.WeekStart, phase.WeekEnd))
		out = append(out, "   Objective: "+phase.Objective)

		for _, week := range phase.Weeks {
			line := fmt.Sprintf("\n   Week %d - Focus: %s", week.WeekNumber, week.Focus)
			if week.IsDeload {
				line += " (DELOAD)"
			}
			out = append(out, line)

			for _, day := range week.Days {
				if day.RestDay {
					out = append(out, fmt.Sprintf("      Day %d: REST DAY", day.DayNumber))
					continue
				}
				out = append(out, fmt.Sprintf("\n      Day %d: %s (%d min)", day.DayNumber, day.Name, day.TargetDuration))
				out = append(out, "      Targets: "+strings.Join(day.MuscleGroups, ", "))

				for _, block := range day.Blocks {
					out = append(out, fmt.Sprintf("\n         %s Block:", strings.ToUpper(block.Type)))
					for _, ex := range block.Exercises {
						out = append(out, formatExercise(&ex)...)
					}
				}
			}
		}
	}

	out = append(out, "\n"+headerRule)
	out = append(out, "Would you like to make any changes to this plan?")
	out = append(out, "   You can ask to:")
	out = append(out, "   - Swap exercises (e.g., 'replace squats with leg press')")
	out = append(out, "   - Adjust sets/reps (e.g., 'make it 4 sets instead of 3')")
	out = append(out, "   - Add/remove exercises")
	out = append(out, "   - Change workout days or duration")
	out = append(out, "   - Or say 'save it' when you're happy with the plan!")
	out = append(out, headerRule)

	return strings.Join(out, "\n")
}

func formatExercise(ex *Exercise) []string {
	lines := []string{
		"            - " + ex.Name,
	}
	equipment := "Bodyweight"
	if len(ex.Equipment) > 0 {
		equipment = strings.Join(ex.Equipment, ", ")
	}
	lines = append(lines, "              Equipment: "+equipment)
	lines = append(lines, fmt.Sprintf("              Sets: %d | Rest: %ds", len(ex.Sets), ex.RestBetweenSets))
	for _, set := range ex.Sets {
		lines = append(lines, "              "+formatSet(&set))
	}
	if len(ex.Alternatives) > 0 {
		alts := ex.Alternatives
		if len(alts) > 2 {
			alts = alts[:2]
		}
		lines = append(lines, "              Alternatives: "+strings.Join(alts, ", "))
	}
	return lines
}

// formatSet renders one set as "{type}: {reps} reps[ @ {weight}[kg]][ RPE {n}]".
func formatSet(set *ExerciseSet) string {
	line := fmt.Sprintf("%s: %s reps", set.Type, set.TargetReps.String())
	if w := set.TargetWeight; w != nil && !w.IsZero() {
		line += " @ " + w.String()
		if w.IsNum {
			line += "kg"
		}
	}
	if set.TargetRPE != nil {
		line += fmt.Sprintf(" RPE %d", *set.TargetRPE)
	}
	return line
}

// titleWords turns a snake_case or spaced phrase into title case, e.g.
// "general_fitness" -> "General Fitness".
func titleWords(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
