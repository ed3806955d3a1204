package plan

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Reps is a rep target that is either a count (10) or a descriptor string
// ("8-12", "AMRAP") on the wire. The JSON kind is preserved across a
// round-trip: a number decodes and re-encodes as a number, a string as a
// string.
type Reps struct {
	Num   int
	Str   string
	IsNum bool
}

// RepsCount returns a numeric rep target.
func RepsCount(n int) Reps { return Reps{Num: n, IsNum: true} }

// RepsRange returns a descriptor rep target such as "8-12" or "AMRAP".
func RepsRange(s string) Reps { return Reps{Str: s} }

func (r *Reps) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		r.Num, r.Str, r.IsNum = n, "", true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("targetReps must be an integer or a string, got %s", data)
	}
	r.Num, r.Str, r.IsNum = 0, s, false
	return nil
}

func (r Reps) MarshalJSON() ([]byte, error) {
	if r.IsNum {
		return json.Marshal(r.Num)
	}
	return json.Marshal(r.Str)
}

// String renders the target for human-readable output: "10", "8-12", "AMRAP".
func (r Reps) String() string {
	if r.IsNum {
		return strconv.Itoa(r.Num)
	}
	return r.Str
}

// Weight is a weight target that is either kilograms (60, 62.5) or a
// descriptor string ("bodyweight", "RPE 8") on the wire. Like Reps, the
// JSON kind round-trips unchanged.
type Weight struct {
	Num   float64
	Str   string
	IsNum bool
}

// WeightKg returns a numeric weight target in kilograms.
func WeightKg(kg float64) *Weight { return &Weight{Num: kg, IsNum: true} }

// WeightDesc returns a descriptor weight target such as "bodyweight".
func WeightDesc(s string) *Weight { return &Weight{Str: s} }

func (w *Weight) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		w.Num, w.Str, w.IsNum = n, "", true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("targetWeight must be a number or a string, got %s", data)
	}
	w.Num, w.Str, w.IsNum = 0, s, false
	return nil
}

func (w Weight) MarshalJSON() ([]byte, error) {
	if w.IsNum {
		return json.Marshal(w.Num)
	}
	return json.Marshal(w.Str)
}

// String renders a numeric weight without trailing zeros ("60", "62.5").
// Descriptor weights render as-is.
func (w Weight) String() string {
	if w.IsNum {
		return strconv.FormatFloat(w.Num, 'f', -1, 64)
	}
	return w.Str
}

// IsZero reports whether the weight carries no usable value: a numeric zero
// or an empty descriptor. Formatters skip zero weights.
func (w Weight) IsZero() bool {
	if w.IsNum {
		return w.Num == 0
	}
	return w.Str == ""
}
