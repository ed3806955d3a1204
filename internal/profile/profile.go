// Package profile models the user attributes a plan generator needs:
// goals, experience, equipment, schedule, and restrictions. The backend
// that owns these records evolves its vocabulary faster than this service
// ships, so enumerated fields are open strings checked against a known
// list for warnings, and equipment/familiarity are open maps whose unknown
// keys pass through untouched.
package profile

import (
	"encoding/json"
	"fmt"

	"github.com/UdayRajVadeghar/aevio-agent/internal/plan"
)

// Profile is the slice of a user record relevant to workout planning.
// Numeric zero and empty string mean "not provided"; none of these fields
// are required.
type Profile struct {
	ID                string   `json:"id"`
	Age               int      `json:"age,omitempty"`
	Gender            string   `json:"gender,omitempty"`
	Height            float64  `json:"height,omitempty"`
	Weight            float64  `json:"weight,omitempty"`
	ActivityLevel     string   `json:"activityLevel,omitempty"`
	PrimaryGoal       string   `json:"primaryGoal,omitempty"`
	DietaryPreference string   `json:"dietaryPreference,omitempty"`
	HealthConditions  []string `json:"healthConditions,omitempty"`
	ThirtyDayGoal     string   `json:"thirtyDayGoal,omitempty"`

	BodyFatPercentage  float64 `json:"bodyFatPercentage,omitempty"`
	WaistCircumference float64 `json:"waistCircumference,omitempty"`
	HipCircumference   float64 `json:"hipCircumference,omitempty"`
	RestingHeartRate   int     `json:"restingHeartRate,omitempty"`

	TrainingExperience  string         `json:"trainingExperience,omitempty"`
	ExerciseFamiliarity map[string]any `json:"exerciseFamiliarity,omitempty"`
	EquipmentAvailable  map[string]any `json:"equipmentAvailable,omitempty"`

	WorkoutDays     int `json:"workoutDays,omitempty"`
	WorkoutDuration int `json:"workoutDuration,omitempty"`

	TrainingStyle    []string `json:"trainingStyle,omitempty"`
	TargetBodyParts  []string `json:"targetBodyParts,omitempty"`
	ExerciseDislikes []string `json:"exerciseDislikes,omitempty"`

	StepCount   int     `json:"stepCount,omitempty"`
	SleepHours  float64 `json:"sleepHours,omitempty"`
	StressLevel int     `json:"stressLevel,omitempty"`
	WorkType    string  `json:"workType,omitempty"`

	Injuries        []map[string]any `json:"injuries,omitempty"`
	MotivationStyle string           `json:"motivationStyle,omitempty"`
}

// Decode parses a raw profile record. Unknown top-level keys are ignored;
// only a document that is not JSON at all fails.
func Decode(data []byte) (*Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &p, nil
}

// Parse decodes a raw record and reports vocabulary drift alongside it.
// Warnings never make the profile unusable.
func Parse(data []byte) (*Profile, []plan.Issue, error) {
	p, err := Decode(data)
	if err != nil {
		return nil, nil, err
	}
	return p, p.VocabWarnings(), nil
}

// Vocabulary the upstream backend currently emits for enumerated fields.
// Values outside these lists warn; they never invalidate a profile.
var (
	knownGenders            = []string{"male", "female", "other", "prefer_not_to_say"}
	knownActivityLevels     = []string{"sedentary", "light", "moderate", "active", "athlete"}
	knownTrainingExperience = []string{"beginner", "intermediate", "advanced"}
)

// VocabWarnings reports enumerated fields whose value falls outside the
// known vocabulary. Empty fields are fine; only present, unrecognized
// values are flagged.
func (p *Profile) VocabWarnings() []plan.Issue {
	var warns []plan.Issue
	check := func(field, value string, known []string) {
		if value == "" {
			return
		}
		for _, k := range known {
			if value == k {
				return
			}
		}
		warns = append(warns, plan.Issue{
			Path:     field,
			Message:  fmt.Sprintf("unrecognized value %q", value),
			Severity: plan.SeverityWarning,
		})
	}
	check("gender", p.Gender, knownGenders)
	check("activityLevel", p.ActivityLevel, knownActivityLevels)
	check("trainingExperience", p.TrainingExperience, knownTrainingExperience)
	return warns
}
