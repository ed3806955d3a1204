package profile

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Format renders the profile as the plain-text briefing handed to the plan
// generator. Every section is always present; missing values render as
// "N/A" (or the section's own fallback) so the consumer never has to guess
// whether a field was omitted or empty.
func (p *Profile) Format() string {
	lines := []string{
		"User Information:",
		"- User ID: " + p.ID,
		"- Age: " + intOrNA(p.Age, ""),
		"- Gender: " + orNA(p.Gender),
		"- Height: " + numOrNA(p.Height, "") + " cm",
		"- Weight: " + numOrNA(p.Weight, "") + " kg",
		"- Activity Level: " + orNA(p.ActivityLevel),
		"- Primary Goal: " + orNA(p.PrimaryGoal),
		"- 30-Day Goal: " + orNA(p.ThirtyDayGoal),
		"- Dietary Preference: " + orNA(p.DietaryPreference),
		"",
		"Body Composition:",
		"- Body Fat: " + numOrNA(p.BodyFatPercentage, "%"),
		"- Waist Circumference: " + numOrNA(p.WaistCircumference, " cm"),
		"- Hip Circumference: " + numOrNA(p.HipCircumference, " cm"),
		"- Resting Heart Rate: " + intOrNA(p.RestingHeartRate, " bpm"),
		"",
		"Experience & Skills:",
		"- Training Experience: " + orNA(p.TrainingExperience),
		"- Exercise Familiarity: " + formatFamiliarity(p.ExerciseFamiliarity),
		"",
		"Equipment Available:",
		"- " + formatEquipment(p.EquipmentAvailable),
		"",
		"Workout Preferences:",
		"- Workout Days per Week: " + intOrNA(p.WorkoutDays, ""),
		"- Preferred Duration: " + intOrNA(p.WorkoutDuration, " minutes"),
		"- Training Styles: " + joinOr(p.TrainingStyle, "Not specified"),
		"- Target Body Parts: " + joinOr(p.TargetBodyParts, "Full body"),
		"- Exercise Dislikes: " + joinOr(p.ExerciseDislikes, "None"),
		"",
		"Lifestyle Factors:",
		"- Daily Step Count Target: " + intOrNA(p.StepCount, ""),
		"- Sleep Hours: " + numOrNA(p.SleepHours, " hours"),
		"- Stress Level: " + stressOrNA(p.StressLevel),
		"- Work Type: " + orNA(p.WorkType),
		"",
		"Safety & Restrictions:",
		"- Health Conditions: " + joinOr(p.HealthConditions, "None reported"),
		"- Injuries: " + formatInjuries(p.Injuries),
		"",
		"Motivation:",
		"- Motivation Style: " + orNA(p.MotivationStyle),
	}
	return strings.Join(lines, "\n")
}

// formatEquipment lists the equipment marked available. Entries are either
// a bare boolean or an object like {"available": true, "weightRange":
// "5-30kg"}; anything else is skipped. Keys are sorted so output is stable.
func formatEquipment(equipment map[string]any) string {
	if len(equipment) == 0 {
		return "Not specified"
	}
	names := make([]string, 0, len(equipment))
	for name := range equipment {
		names = append(names, name)
	}
	sort.Strings(names)

	var items []string
	for _, name := range names {
		switch v := equipment[name].(type) {
		case bool:
			if v {
				items = append(items, name)
			}
		case map[string]any:
			if !truthy(v["available"]) {
				continue
			}
			if r, ok := v["weightRange"].(string); ok && r != "" {
				items = append(items, fmt.Sprintf("%s (%s)", name, r))
			} else {
				items = append(items, name)
			}
		}
	}
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

// formatFamiliarity splits exercises into known and unknown buckets based
// on the truthiness of each entry's value.
func formatFamiliarity(familiarity map[string]any) string {
	if len(familiarity) == 0 {
		return "Not specified"
	}
	names := make([]string, 0, len(familiarity))
	for name := range familiarity {
		names = append(names, name)
	}
	sort.Strings(names)

	var familiar, unfamiliar []string
	for _, name := range names {
		if truthy(familiarity[name]) {
			familiar = append(familiar, name)
		} else {
			unfamiliar = append(unfamiliar, name)
		}
	}
	var parts []string
	if len(familiar) > 0 {
		parts = append(parts, "Familiar with: "+strings.Join(familiar, ", "))
	}
	if len(unfamiliar) > 0 {
		parts = append(parts, "Needs guidance: "+strings.Join(unfamiliar, ", "))
	}
	return strings.Join(parts, " | ")
}

// formatInjuries renders each injury as "area (severity) - notes". Records
// come from a free-form backend table, so missing keys get placeholders
// instead of failing.
func formatInjuries(injuries []map[string]any) string {
	if len(injuries) == 0 {
		return "None reported"
	}
	parts := make([]string, 0, len(injuries))
	for _, injury := range injuries {
		area := stringOr(injury["area"], "Unknown")
		severity := stringOr(injury["severity"], "unknown")
		entry := fmt.Sprintf("%s (%s)", area, severity)
		if notes := stringOr(injury["notes"], ""); notes != "" {
			entry += " - " + notes
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, "; ")
}

// Snapshot returns the provided fields as a generic map, suitable for
// embedding in a plan's aiContext.userProfileSnapshot. Round-tripping
// through JSON keeps the omitempty rules authoritative.
func (p *Profile) Snapshot() map[string]any {
	data, err := json.Marshal(p)
	if err != nil {
		// Profile contains only JSON-encodable fields.
		panic(fmt.Sprintf("profile: marshal snapshot: %v", err))
	}
	var snapshot map[string]any
	if err := json.Unmarshal(data, &snapshot); err != nil {
		panic(fmt.Sprintf("profile: unmarshal snapshot: %v", err))
	}
	return snapshot
}

// truthy mirrors the loose boolean semantics of the upstream records:
// false, zero, empty string, and empty collections all count as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func intOrNA(n int, suffix string) string {
	if n == 0 {
		return "N/A"
	}
	return strconv.Itoa(n) + suffix
}

func numOrNA(v float64, suffix string) string {
	if v == 0 {
		return "N/A"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + suffix
}

func stressOrNA(n int) string {
	if n == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d/5", n)
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
