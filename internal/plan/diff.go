package plan

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

const noChangesSummary = "No significant structural changes detected. Minor adjustments may have been made to sets, reps, or weights."

// Diff compares two raw plan documents and reports what changed, as
// human-readable lines in a fixed order: name, duration, difficulty,
// exercise-count delta, workout-day delta. Neither document has to pass
// full validation; comparison is best-effort over whatever fields are
// present. The error is *MalformedInputError when either side is not a
// JSON object.
func Diff(original, updated []byte) ([]string, error) {
	before, err := decodeLoose(original, "original")
	if err != nil {
		return nil, err
	}
	after, err := decodeLoose(updated, "updated")
	if err != nil {
		return nil, err
	}

	var lines []string

	if !reflect.DeepEqual(before["name"], after["name"]) {
		lines = append(lines, fmt.Sprintf("Plan name: '%s' -> '%s'", scalar(before["name"]), scalar(after["name"])))
	}
	if !reflect.DeepEqual(before["durationWeeks"], after["durationWeeks"]) {
		lines = append(lines, fmt.Sprintf("Duration: %s weeks -> %s weeks", scalar(before["durationWeeks"]), scalar(after["durationWeeks"])))
	}
	if !reflect.DeepEqual(before["difficulty"], after["difficulty"]) {
		lines = append(lines, fmt.Sprintf("Difficulty: %s -> %s", scalar(before["difficulty"]), scalar(after["difficulty"])))
	}

	if delta := countExercises(after) - countExercises(before); delta > 0 {
		lines = append(lines, fmt.Sprintf("Added %d exercise(s)", delta))
	} else if delta < 0 {
		lines = append(lines, fmt.Sprintf("Removed %d exercise(s)", -delta))
	}

	if beforeDays, afterDays := countWorkoutDays(before), countWorkoutDays(after); beforeDays != afterDays {
		lines = append(lines, fmt.Sprintf("Workout days: %d -> %d", beforeDays, afterDays))
	}

	return lines, nil
}

// DiffSummary renders a diff as one report string. No detected change is
// stated explicitly rather than implied by empty output.
func DiffSummary(original, updated []byte) (string, error) {
	lines, err := Diff(original, updated)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return noChangesSummary, nil
	}
	return "Changes made:\n" + strings.Join(lines, "\n"), nil
}

func decodeLoose(data []byte, side string) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedInputError{Reason: side + " document is not a JSON object", Err: err}
	}
	if doc == nil {
		return nil, &MalformedInputError{Reason: side + " document is not a JSON object"}
	}
	return doc, nil
}

// scalar renders a decoded value for a change line. Plain unmarshalling
// (without UseNumber) leaves whole numbers as float64 values that print
// without a fraction, matching how the documents spell them.
func scalar(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}

// countExercises totals exercises across every phase, week, day and block,
// skipping nodes that are missing or wrongly shaped.
func countExercises(doc map[string]any) int {
	count := 0
	for _, phase := range objects(doc["phases"]) {
		for _, week := range objects(phase["weeks"]) {
			for _, day := range objects(week["days"]) {
				for _, block := range objects(day["blocks"]) {
					if exercises, ok := block["exercises"].([]any); ok {
						count += len(exercises)
					}
				}
			}
		}
	}
	return count
}

// countWorkoutDays totals days whose restDay flag is not true.
func countWorkoutDays(doc map[string]any) int {
	count := 0
	for _, phase := range objects(doc["phases"]) {
		for _, week := range objects(phase["weeks"]) {
			for _, day := range objects(week["days"]) {
				if rest, _ := day["restDay"].(bool); !rest {
					count++
				}
			}
		}
	}
	return count
}

// objects narrows a decoded value to its object elements, tolerating
// anything that is not a list of objects.
func objects(v any) []map[string]any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, e := range list {
		if m, ok := e.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
