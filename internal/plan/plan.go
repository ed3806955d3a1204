// Package plan defines the workout plan document tree and the operations
// that process it: validation, ID generation, timestamps, formatting, and
// structural diffing. Documents are immutable value trees once validated;
// a change produces a new document that is validated again.
package plan

// Plan type values.
const (
	PlanTypeSingle  = "single"
	PlanTypeWeekly  = "weekly"
	PlanTypeProgram = "program"
)

// Difficulty values.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Block type values.
const (
	BlockStraight = "straight"
	BlockSuperset = "superset"
	BlockCircuit  = "circuit"
	BlockEMOM     = "emom"
	BlockAMRAP    = "amrap"
)

// Set type values.
const (
	SetWarmup  = "warmup"
	SetWorking = "working"
	SetDropset = "dropset"
	SetFailure = "failure"
	SetBackoff = "backoff"
)

// Feedback type values.
const (
	FeedbackTooEasy   = "too_easy"
	FeedbackTooHard   = "too_hard"
	FeedbackInjury    = "injury"
	FeedbackMissed    = "missed"
	FeedbackCompleted = "completed"
)

// Plan is the root document: metadata, AI provenance, the phase tree, and
// progress tracking. Field names follow the wire format (camelCase JSON).
type Plan struct {
	ID            string          `json:"id"`
	Version       int             `json:"version"`
	GeneratedAt   string          `json:"generatedAt"`
	PlanType      string          `json:"planType"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	DurationWeeks int             `json:"durationWeeks"`
	Difficulty    string          `json:"difficulty"`
	Goal          string          `json:"goal"`
	AIContext     AIContext       `json:"aiContext"`
	Phases        []Phase         `json:"phases"`
	Progress      ProgressTracker `json:"progress"`
}

// AIContext records how a plan was generated. The profile snapshot is an
// open map: unknown keys pass through untouched.
type AIContext struct {
	UserProfileSnapshot map[string]any `json:"userProfileSnapshot"`
	GenerationPrompt    string         `json:"generationPrompt"`
	ModelVersion        string         `json:"modelVersion"`
}

// Phase is a training mesocycle spanning a contiguous week range.
type Phase struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Objective string `json:"objective"`
	WeekStart int    `json:"weekStart"`
	WeekEnd   int    `json:"weekEnd"`
	Weeks     []Week `json:"weeks"`
}

// Week is one training week inside a phase.
type Week struct {
	WeekNumber int          `json:"weekNumber"`
	Focus      string       `json:"focus"`
	IsDeload   bool         `json:"isDeload"`
	Days       []WorkoutDay `json:"days"`
}

// WorkoutDay is a single day. Rest days carry no main blocks; active days
// carry at least one.
type WorkoutDay struct {
	ID             string          `json:"id"`
	DayNumber      int             `json:"dayNumber"`
	Name           string          `json:"name"`
	TargetDuration int             `json:"targetDuration"`
	MuscleGroups   []string        `json:"muscleGroups"`
	Warmup         *ExerciseBlock  `json:"warmup,omitempty"`
	Blocks         []ExerciseBlock `json:"blocks"`
	Cooldown       *ExerciseBlock  `json:"cooldown,omitempty"`
	RestDay        bool            `json:"restDay"`
	Notes          string          `json:"notes,omitempty"`
}

// ExerciseBlock groups exercises performed together (straight sets,
// supersets, circuits, EMOM, AMRAP).
type ExerciseBlock struct {
	ID                string     `json:"id"`
	Type              string     `json:"type"`
	Exercises         []Exercise `json:"exercises"`
	RestBetweenRounds *int       `json:"restBetweenRounds,omitempty"`
	Rounds            *int       `json:"rounds,omitempty"`
}

// MuscleGroups splits targeted muscles into primary movers and
// secondary/stabilizer groups.
type MuscleGroups struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

// Exercise is one movement with its set prescription and coaching info.
type Exercise struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Equipment       []string      `json:"equipment"`
	MuscleGroups    MuscleGroups  `json:"muscleGroups"`
	Sets            []ExerciseSet `json:"sets"`
	RestBetweenSets int           `json:"restBetweenSets"`
	Tempo           string        `json:"tempo,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	VideoURL        string        `json:"videoUrl,omitempty"`
	Alternatives    []string      `json:"alternatives"`
	Cues            []string      `json:"cues"`
	CommonMistakes  []string      `json:"commonMistakes"`
}

// ExerciseSet is a single set. TargetReps is always present on a valid
// document; time-based work is expressed as 1 rep with the duration in the
// exercise notes.
type ExerciseSet struct {
	SetNumber    int                `json:"setNumber"`
	Type         string             `json:"type"`
	TargetReps   Reps               `json:"targetReps"`
	TargetWeight *Weight            `json:"targetWeight,omitempty"`
	TargetRPE    *int               `json:"targetRpe,omitempty"`
	Actual       *ActualPerformance `json:"actual,omitempty"`
}

// ActualPerformance is the logged result of a completed set.
type ActualPerformance struct {
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight"`
	RPE         int     `json:"rpe"`
	CompletedAt string  `json:"completedAt"`
	Notes       string  `json:"notes,omitempty"`
}

// ProgressTracker records where a user is in the program.
type ProgressTracker struct {
	StartedAt         string                    `json:"startedAt,omitempty"`
	CurrentWeek       int                       `json:"currentWeek"`
	CurrentDay        int                       `json:"currentDay"`
	CompletedWorkouts []string                  `json:"completedWorkouts"`
	PersonalRecords   map[string]PersonalRecord `json:"personalRecords"`
	Feedback          []FeedbackEntry           `json:"feedback"`
}

// PersonalRecord is a best lift for one exercise, keyed by exercise name in
// ProgressTracker.PersonalRecords.
type PersonalRecord struct {
	ExerciseName   string          `json:"exerciseName"`
	Weight         float64         `json:"weight"`
	Reps           int             `json:"reps"`
	AchievedAt     string          `json:"achievedAt"`
	PreviousRecord *PreviousRecord `json:"previousRecord,omitempty"`
}

// PreviousRecord is the record a PersonalRecord superseded.
type PreviousRecord struct {
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
	AchievedAt string  `json:"achievedAt"`
}

// FeedbackEntry is user feedback on a workout day, used for plan adaptation.
type FeedbackEntry struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Type         string `json:"type"`
	WorkoutDayID string `json:"workoutDayId"`
	Notes        string `json:"notes,omitempty"`
	AISuggestion string `json:"aiSuggestion,omitempty"`
}
