package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Severity classifies a validation issue. Structural and shape problems are
// errors; value drift in open vocabularies (such as a timestamp that parses
// nowhere) is a warning, because upstream generators evolve faster than the
// schema.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single validation finding, located by a dot/bracket path into
// the document, e.g. "phases[0].weeks[1].days[2].blocks[0].exercises[0].sets[0].targetReps".
type Issue struct {
	Path     string   `json:"path"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func (i Issue) String() string {
	return i.Path + ": " + i.Message
}

// Result is the outcome of validating one document. Valid is true when no
// errors were found; Warnings may be non-empty either way. Plan is the typed
// tree with defaults applied, set only when Valid.
type Result struct {
	Valid    bool    `json:"valid"`
	Plan     *Plan   `json:"-"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

// Validate checks a raw JSON document against the plan schema. It walks the
// whole document and reports every violation found, not just the first, so
// a generator can fix all of them in one round trip. The returned error is
// non-nil only for input that cannot be examined at all (not JSON, or not a
// JSON object); those are *MalformedInputError.
func Validate(data []byte) (*Result, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	c := &checker{ids: make(map[string]string)}
	c.checkPlan(doc)

	res := &Result{
		Valid:    len(c.errors) == 0,
		Errors:   c.errors,
		Warnings: c.warnings,
	}
	if !res.Valid {
		return res, nil
	}

	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &MalformedInputError{Reason: "decoding plan", Err: err}
	}
	applyDefaults(&p)
	res.Plan = &p
	return res, nil
}

// Parse validates a raw document and returns the typed tree, folding any
// violations into a *ValidationError. Use Validate directly when warnings
// or the full issue list matter.
func Parse(data []byte) (*Plan, error) {
	res, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return nil, &ValidationError{Issues: res.Errors}
	}
	return res.Plan, nil
}

// decodeDocument unmarshals raw bytes into a generic object tree, using
// json.Number so integer checks can distinguish 4 from 4.5. Anything that
// is not a single JSON object is malformed input; a top-level JSON string
// almost always means the producer double-encoded the document.
func decodeDocument(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &MalformedInputError{Reason: "invalid JSON", Err: err}
	}
	if dec.More() {
		return nil, &MalformedInputError{Reason: "trailing data after JSON document"}
	}

	switch doc := v.(type) {
	case map[string]any:
		return doc, nil
	case string:
		return nil, &MalformedInputError{Reason: "top-level value is a JSON string, not an object (double-encoded document?)"}
	default:
		return nil, &MalformedInputError{Reason: fmt.Sprintf("top-level value must be a JSON object, got %s", jsonTypeName(v))}
	}
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// checker accumulates issues while walking a decoded document in field
// order. ids maps every identifier seen to the path of its first use, for
// document-wide uniqueness checks.
type checker struct {
	errors   []Issue
	warnings []Issue
	ids      map[string]string
}

func (c *checker) errf(path, format string, args ...any) {
	c.errors = append(c.errors, Issue{Path: path, Message: fmt.Sprintf(format, args...), Severity: SeverityError})
}

func (c *checker) warnf(path, format string, args ...any) {
	c.warnings = append(c.warnings, Issue{Path: path, Message: fmt.Sprintf(format, args...), Severity: SeverityWarning})
}

func joinPath(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}

// registerID records an identifier's first location and reports any later
// reuse at the path of the second occurrence.
func (c *checker) registerID(id, path string) {
	if id == "" {
		return
	}
	if first, seen := c.ids[id]; seen {
		c.errf(path, "duplicate id %q (first used at %s)", id, first)
		return
	}
	c.ids[id] = path
}

// intValue reads a decoded JSON value as an integer. Whole-number floats
// like 4.0 are accepted the way lenient producers emit them; 4.5 is not.
func intValue(v any) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	if i, err := n.Int64(); err == nil {
		return i, true
	}
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) {
		return int64(f), true
	}
	return 0, false
}

// strField reads a string field. Missing or null required fields and
// wrongly typed present fields are reported; the bool result is true only
// when a usable string was found.
func (c *checker) strField(obj map[string]any, base, key string, required bool) (string, bool) {
	path := joinPath(base, key)
	v, exists := obj[key]
	if !exists || v == nil {
		if required {
			c.errf(path, "required field is missing")
		}
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		c.errf(path, "must be a string")
		return "", false
	}
	return s, true
}

// intField reads an integer field, with the same contract as strField.
func (c *checker) intField(obj map[string]any, base, key string, required bool) (int64, bool) {
	path := joinPath(base, key)
	v, exists := obj[key]
	if !exists || v == nil {
		if required {
			c.errf(path, "required field is missing")
		}
		return 0, false
	}
	n, ok := intValue(v)
	if !ok {
		c.errf(path, "must be an integer")
		return 0, false
	}
	return n, true
}

// numField reads a numeric field (integer or float).
func (c *checker) numField(obj map[string]any, base, key string, required bool) (float64, bool) {
	path := joinPath(base, key)
	v, exists := obj[key]
	if !exists || v == nil {
		if required {
			c.errf(path, "required field is missing")
		}
		return 0, false
	}
	n, ok := v.(json.Number)
	if !ok {
		c.errf(path, "must be a number")
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		c.errf(path, "must be a number")
		return 0, false
	}
	return f, true
}

// boolField reads an optional boolean field. An absent field yields the
// false default with ok=true; only a wrongly typed present value clears ok,
// so dependent checks can tell "default" from "unknown".
func (c *checker) boolField(obj map[string]any, base, key string) (bool, bool) {
	v, exists := obj[key]
	if !exists || v == nil {
		return false, true
	}
	b, ok := v.(bool)
	if !ok {
		c.errf(joinPath(base, key), "must be a boolean")
		return false, false
	}
	return b, true
}

// listField reads an array field. An absent optional field yields the empty
// default with ok=true; missing required fields and wrong types are reported
// with ok=false.
func (c *checker) listField(obj map[string]any, base, key string, required bool) ([]any, bool) {
	path := joinPath(base, key)
	v, exists := obj[key]
	if !exists || v == nil {
		if required {
			c.errf(path, "required field is missing")
			return nil, false
		}
		return nil, true
	}
	list, ok := v.([]any)
	if !ok {
		c.errf(path, "must be an array")
		return nil, false
	}
	return list, true
}

// objField reads an object field. Absent optional fields return ok=false
// without an error so callers skip the nested walk.
func (c *checker) objField(obj map[string]any, base, key string, required bool) (map[string]any, bool) {
	path := joinPath(base, key)
	v, exists := obj[key]
	if !exists || v == nil {
		if required {
			c.errf(path, "required field is missing")
		}
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		c.errf(path, "must be an object")
		return nil, false
	}
	return m, true
}

// timeField reads a timestamp-typed string field. The string shape is a
// hard requirement; a value ParseTimestamp cannot read is only a warning,
// since producers drift on timestamp conventions long before they drift on
// structure.
func (c *checker) timeField(obj map[string]any, base, key string, required bool) {
	s, ok := c.strField(obj, base, key, required)
	if !ok {
		return
	}
	if _, err := ParseTimestamp(s); err != nil {
		c.warnf(joinPath(base, key), "not a valid UTC timestamp (want %q)", "YYYY-MM-DDTHH:MM:SSZ")
	}
}

func (c *checker) oneOf(path, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	c.errf(path, "must be one of: %s", strings.Join(allowed, ", "))
}

func (c *checker) atLeast(path string, n, min int64) {
	if n < min {
		c.errf(path, "must be at least %d", min)
	}
}

func (c *checker) between(path string, n, lo, hi int64) {
	if n < lo || n > hi {
		c.errf(path, "must be between %d and %d", lo, hi)
	}
}

// stringItems verifies every element of an array is a string.
func (c *checker) stringItems(list []any, base string) {
	for i, v := range list {
		if _, ok := v.(string); !ok {
			c.errf(fmt.Sprintf("%s[%d]", base, i), "must be a string")
		}
	}
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func (c *checker) checkPlan(obj map[string]any) {
	if id, ok := c.strField(obj, "", "id", true); ok {
		c.registerID(id, "id")
	}
	if v, ok := c.intField(obj, "", "version", false); ok {
		c.atLeast("version", v, 1)
	}
	c.timeField(obj, "", "generatedAt", true)
	if s, ok := c.strField(obj, "", "planType", true); ok {
		c.oneOf("planType", s, PlanTypeSingle, PlanTypeWeekly, PlanTypeProgram)
	}
	c.strField(obj, "", "name", true)
	c.strField(obj, "", "description", true)
	if n, ok := c.intField(obj, "", "durationWeeks", true); ok {
		c.between("durationWeeks", n, 1, 52)
	}
	if s, ok := c.strField(obj, "", "difficulty", true); ok {
		c.oneOf("difficulty", s, DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced)
	}
	c.strField(obj, "", "goal", true)

	if ai, ok := c.objField(obj, "", "aiContext", false); ok {
		c.checkAIContext(ai, "aiContext")
	}

	if phases, ok := c.listField(obj, "", "phases", true); ok {
		if len(phases) == 0 {
			c.errf("phases", "must have at least 1 item")
		}
		for i, v := range phases {
			path := fmt.Sprintf("phases[%d]", i)
			phase, ok := asObject(v)
			if !ok {
				c.errf(path, "must be an object")
				continue
			}
			c.checkPhase(phase, path)
		}
	}

	if progress, ok := c.objField(obj, "", "progress", false); ok {
		c.checkProgress(progress, "progress")
	}
}

// checkAIContext only validates the fields it names; userProfileSnapshot is
// an open map whose keys pass through untouched.
func (c *checker) checkAIContext(obj map[string]any, base string) {
	c.objField(obj, base, "userProfileSnapshot", false)
	c.strField(obj, base, "generationPrompt", false)
	c.strField(obj, base, "modelVersion", false)
}

func (c *checker) checkPhase(obj map[string]any, base string) {
	if id, ok := c.strField(obj, base, "id", true); ok {
		c.registerID(id, joinPath(base, "id"))
	}
	c.strField(obj, base, "name", true)
	c.strField(obj, base, "objective", true)

	ws, wsOK := c.intField(obj, base, "weekStart", true)
	if wsOK {
		c.atLeast(joinPath(base, "weekStart"), ws, 1)
	}
	we, weOK := c.intField(obj, base, "weekEnd", true)
	if weOK {
		c.atLeast(joinPath(base, "weekEnd"), we, 1)
	}
	if wsOK && weOK && we < ws {
		c.errf(joinPath(base, "weekEnd"), "must not be less than weekStart")
	}

	if weeks, ok := c.listField(obj, base, "weeks", true); ok {
		if len(weeks) == 0 {
			c.errf(joinPath(base, "weeks"), "must have at least 1 item")
		}
		for i, v := range weeks {
			path := fmt.Sprintf("%s.weeks[%d]", base, i)
			week, ok := asObject(v)
			if !ok {
				c.errf(path, "must be an object")
				continue
			}
			c.checkWeek(week, path)
		}
	}
}

func (c *checker) checkWeek(obj map[string]any, base string) {
	if n, ok := c.intField(obj, base, "weekNumber", true); ok {
		c.atLeast(joinPath(base, "weekNumber"), n, 1)
	}
	c.strField(obj, base, "focus", true)
	c.boolField(obj, base, "isDeload")

	if days, ok := c.listField(obj, base, "days", true); ok {
		if len(days) < 1 || len(days) > 7 {
			c.errf(joinPath(base, "days"), "must have between 1 and 7 items")
		}
		for i, v := range days {
			path := fmt.Sprintf("%s.days[%d]", base, i)
			day, ok := asObject(v)
			if !ok {
				c.errf(path, "must be an object")
				continue
			}
			c.checkDay(day, path)
		}
	}
}

func (c *checker) checkDay(obj map[string]any, base string) {
	if id, ok := c.strField(obj, base, "id", true); ok {
		c.registerID(id, joinPath(base, "id"))
	}
	if n, ok := c.intField(obj, base, "dayNumber", true); ok {
		c.between(joinPath(base, "dayNumber"), n, 1, 7)
	}
	c.strField(obj, base, "name", true)
	if n, ok := c.intField(obj, base, "targetDuration", true); ok {
		c.atLeast(joinPath(base, "targetDuration"), n, 0)
	}
	if groups, ok := c.listField(obj, base, "muscleGroups", true); ok {
		c.stringItems(groups, joinPath(base, "muscleGroups"))
	}

	if warmup, ok := c.objField(obj, base, "warmup", false); ok {
		c.checkBlock(warmup, joinPath(base, "warmup"))
	}

	blocks, blocksOK := c.listField(obj, base, "blocks", false)
	if blocksOK {
		for i, v := range blocks {
			path := fmt.Sprintf("%s.blocks[%d]", base, i)
			block, ok := asObject(v)
			if !ok {
				c.errf(path, "must be an object")
				continue
			}
			c.checkBlock(block, path)
		}
	}

	if cooldown, ok := c.objField(obj, base, "cooldown", false); ok {
		c.checkBlock(cooldown, joinPath(base, "cooldown"))
	}

	restDay, restDayOK := c.boolField(obj, base, "restDay")
	c.strField(obj, base, "notes", false)

	// A day is either a rest day or a workout, never both shapes at once.
	if restDayOK && blocksOK {
		switch {
		case restDay && len(blocks) > 0:
			c.errf(joinPath(base, "blocks"), "rest day must not have workout blocks")
		case !restDay && len(blocks) == 0:
			c.errf(joinPath(base, "blocks"), "non-rest day must have at least one workout block")
		}
	}
}

func (c *checker) checkBlock(obj map[string]any, base string) {
	if id, ok := c.strField(obj, base, "id", true); ok {
		c.registerID(id, joinPath(base, "id"))
	}
	if s, ok := c.strField(obj, base, "type", true); ok {
		c.oneOf(joinPath(base, "type"), s, BlockStraight, BlockSuperset, BlockCircuit, BlockEMOM, BlockAMRAP)
	}

	if exercises, ok := c.listField(obj, base, "exercises", true); ok {
		if len(exercises) == 0 {
			c.errf(joinPath(base, "exercises"), "must have at least 1 item")
		}
		for i, v := range exercises {
			path := fmt.Sprintf("%s.exercises[%d]", base, i)
			ex, ok := asObject(v)
			if !ok {
				c.errf(path, "must be an object")
				continue
			}
			c.checkExercise(ex, path)
		}
	}

	c.intField(obj, base, "restBetweenRounds", false)
	if n, ok := c.intField(obj, base, "rounds", false); ok {
		c.atLeast(joinPath(base, "rounds"), n, 1)
	}
}

func (c *checker) checkExercise(obj map[string]any, base string) {
	if id, ok := c.strField(obj, base, "id", true); ok {
		c.registerID(id, joinPath(base, "id"))
	}
	c.strField(obj, base, "name", true)
	if equipment, ok := c.listField(obj, base, "equipment", false); ok {
		c.stringItems(equipment, joinPath(base, "equipment"))
	}

	if groups, ok := c.objField(obj, base, "muscleGroups", true); ok {
		groupsPath := joinPath(base, "muscleGroups")
		if primary, ok := c.listField(groups, groupsPath, "primary", true); ok {
			c.stringItems(primary, joinPath(groupsPath, "primary"))
		}
		if secondary, ok := c.listField(groups, groupsPath, "secondary", false); ok {
			c.stringItems(secondary, joinPath(groupsPath, "secondary"))
		}
	}

	if sets, ok := c.listField(obj, base, "sets", true); ok {
		if len(sets) == 0 {
			c.errf(joinPath(base, "sets"), "must have at least 1 item")
		}
		for i, v := range sets {
			path := fmt.Sprintf("%s.sets[%d]", base, i)
			set, ok := asObject(v)
			if !ok {
				c.errf(path, "must be an object")
				continue
			}
			c.checkSet(set, path)
		}
	}

	if n, ok := c.intField(obj, base, "restBetweenSets", true); ok {
		c.atLeast(joinPath(base, "restBetweenSets"), n, 0)
	}
	c.strField(obj, base, "tempo", false)
	c.strField(obj, base, "notes", false)
	c.strField(obj, base, "videoUrl", false)
	for _, key := range []string{"alternatives", "cues", "commonMistakes"} {
		if list, ok := c.listField(obj, base, key, false); ok {
			c.stringItems(list, joinPath(base, key))
		}
	}
}

func (c *checker) checkSet(obj map[string]any, base string) {
	if n, ok := c.intField(obj, base, "setNumber", true); ok {
		c.atLeast(joinPath(base, "setNumber"), n, 1)
	}
	if s, ok := c.strField(obj, base, "type", true); ok {
		c.oneOf(joinPath(base, "type"), s, SetWarmup, SetWorking, SetDropset, SetFailure, SetBackoff)
	}

	// targetReps is the one field every generator forgets: a count, a range
	// string like "8-12", or "AMRAP". It is never optional.
	repsPath := joinPath(base, "targetReps")
	if v, exists := obj["targetReps"]; !exists || v == nil {
		c.errf(repsPath, "required field is missing")
	} else {
		switch tv := v.(type) {
		case string:
		case json.Number:
			if _, ok := intValue(tv); !ok {
				c.errf(repsPath, "must be an integer or a string")
			}
		default:
			c.errf(repsPath, "must be an integer or a string")
		}
	}

	if v, exists := obj["targetWeight"]; exists && v != nil {
		switch v.(type) {
		case string, json.Number:
		default:
			c.errf(joinPath(base, "targetWeight"), "must be a number or a string")
		}
	}

	if n, ok := c.intField(obj, base, "targetRpe", false); ok {
		c.between(joinPath(base, "targetRpe"), n, 1, 10)
	}

	if actual, ok := c.objField(obj, base, "actual", false); ok {
		c.checkActual(actual, joinPath(base, "actual"))
	}
}

func (c *checker) checkActual(obj map[string]any, base string) {
	c.intField(obj, base, "reps", true)
	c.numField(obj, base, "weight", true)
	if n, ok := c.intField(obj, base, "rpe", true); ok {
		c.between(joinPath(base, "rpe"), n, 1, 10)
	}
	c.timeField(obj, base, "completedAt", true)
	c.strField(obj, base, "notes", false)
}

func (c *checker) checkProgress(obj map[string]any, base string) {
	c.timeField(obj, base, "startedAt", false)
	if n, ok := c.intField(obj, base, "currentWeek", false); ok {
		c.atLeast(joinPath(base, "currentWeek"), n, 1)
	}
	if n, ok := c.intField(obj, base, "currentDay", false); ok {
		c.atLeast(joinPath(base, "currentDay"), n, 1)
	}
	if done, ok := c.listField(obj, base, "completedWorkouts", false); ok {
		c.stringItems(done, joinPath(base, "completedWorkouts"))
	}

	if records, ok := c.objField(obj, base, "personalRecords", false); ok {
		names := make([]string, 0, len(records))
		for name := range records {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			path := fmt.Sprintf("%s.personalRecords[%q]", base, name)
			rec, ok := asObject(records[name])
			if !ok {
				c.errf(path, "must be an object")
				continue
			}
			c.checkPersonalRecord(rec, path)
		}
	}

	if feedback, ok := c.listField(obj, base, "feedback", false); ok {
		for i, v := range feedback {
			path := fmt.Sprintf("%s.feedback[%d]", base, i)
			entry, ok := asObject(v)
			if !ok {
				c.errf(path, "must be an object")
				continue
			}
			c.checkFeedback(entry, path)
		}
	}
}

func (c *checker) checkPersonalRecord(obj map[string]any, base string) {
	c.strField(obj, base, "exerciseName", true)
	c.numField(obj, base, "weight", true)
	if n, ok := c.intField(obj, base, "reps", true); ok {
		c.atLeast(joinPath(base, "reps"), n, 1)
	}
	c.timeField(obj, base, "achievedAt", true)

	if prev, ok := c.objField(obj, base, "previousRecord", false); ok {
		prevPath := joinPath(base, "previousRecord")
		c.numField(prev, prevPath, "weight", true)
		c.intField(prev, prevPath, "reps", true)
		c.timeField(prev, prevPath, "achievedAt", true)
	}
}

func (c *checker) checkFeedback(obj map[string]any, base string) {
	if id, ok := c.strField(obj, base, "id", true); ok {
		c.registerID(id, joinPath(base, "id"))
	}
	c.timeField(obj, base, "date", true)
	if s, ok := c.strField(obj, base, "type", true); ok {
		c.oneOf(joinPath(base, "type"), s, FeedbackTooEasy, FeedbackTooHard, FeedbackInjury, FeedbackMissed, FeedbackCompleted)
	}
	c.strField(obj, base, "workoutDayId", true)
	c.strField(obj, base, "notes", false)
	c.strField(obj, base, "aiSuggestion", false)
}

// applyDefaults fills the defaulted fields of a freshly decoded tree so a
// validated plan re-serializes with explicit values and empty collections
// instead of nulls.
func applyDefaults(p *Plan) {
	if p.Version == 0 {
		p.Version = 1
	}
	if p.AIContext.ModelVersion == "" {
		p.AIContext.ModelVersion = "1.0"
	}
	if p.AIContext.UserProfileSnapshot == nil {
		p.AIContext.UserProfileSnapshot = map[string]any{}
	}

	for pi := range p.Phases {
		phase := &p.Phases[pi]
		for wi := range phase.Weeks {
			week := &phase.Weeks[wi]
			for di := range week.Days {
				day := &week.Days[di]
				if day.MuscleGroups == nil {
					day.MuscleGroups = []string{}
				}
				if day.Blocks == nil {
					day.Blocks = []ExerciseBlock{}
				}
				if day.Warmup != nil {
					defaultBlock(day.Warmup)
				}
				for bi := range day.Blocks {
					defaultBlock(&day.Blocks[bi])
				}
				if day.Cooldown != nil {
					defaultBlock(day.Cooldown)
				}
			}
		}
	}

	if p.Progress.CurrentWeek == 0 {
		p.Progress.CurrentWeek = 1
	}
	if p.Progress.CurrentDay == 0 {
		p.Progress.CurrentDay = 1
	}
	if p.Progress.CompletedWorkouts == nil {
		p.Progress.CompletedWorkouts = []string{}
	}
	if p.Progress.PersonalRecords == nil {
		p.Progress.PersonalRecords = map[string]PersonalRecord{}
	}
	if p.Progress.Feedback == nil {
		p.Progress.Feedback = []FeedbackEntry{}
	}
}

func defaultBlock(b *ExerciseBlock) {
	for ei := range b.Exercises {
		ex := &b.Exercises[ei]
		if ex.Equipment == nil {
			ex.Equipment = []string{}
		}
		if ex.MuscleGroups.Primary == nil {
			ex.MuscleGroups.Primary = []string{}
		}
		if ex.MuscleGroups.Secondary == nil {
			ex.MuscleGroups.Secondary = []string{}
		}
		if ex.Alternatives == nil {
			ex.Alternatives = []string{}
		}
		if ex.Cues == nil {
			ex.Cues = []string{}
		}
		if ex.CommonMistakes == nil {
			ex.CommonMistakes = []string{}
		}
	}
}
