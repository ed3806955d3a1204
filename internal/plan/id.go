package plan

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// idAlphabet is the character set for random ID suffixes.
const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// suffixLength is the number of random characters appended to every ID.
// 36^8 ≈ 2.8e12 values keeps the collision probability negligible for any
// realistically sized document.
const suffixLength = 8

// IDPattern is the grammar every generated ID conforms to: a prefix,
// optional descriptive segments, and the random suffix.
var IDPattern = regexp.MustCompile(`^[a-z]+(_[a-z0-9_]+)*_[a-z0-9]{8}$`)

// randomSuffix draws suffixLength characters uniformly from idAlphabet using
// crypto/rand. It panics if the system randomness source fails, the same
// stance uuid.New takes.
func randomSuffix() string {
	max := big.NewInt(int64(len(idAlphabet)))
	b := make([]byte, suffixLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(fmt.Sprintf("plan: reading random suffix: %v", err))
		}
		b[i] = idAlphabet[n.Int64()]
	}
	return string(b)
}

// NewID returns "{prefix}_{suffix}_{random}" or, with an empty suffix,
// "{prefix}_{random}". The random part is drawn fresh on every call; there
// are no shared counters, so concurrent callers never collide beyond the
// suffix entropy bound.
func NewID(prefix, suffix string) string {
	if suffix != "" {
		return prefix + "_" + suffix + "_" + randomSuffix()
	}
	return prefix + "_" + randomSuffix()
}

// NewPlanID returns a plan ID like "wrk_a1b2c3d4".
func NewPlanID() string { return NewID("wrk", "") }

// NewPhaseID returns a phase ID like "phase_1_a1b2c3d4". A phaseNumber of
// zero or less omits the number segment.
func NewPhaseID(phaseNumber int) string {
	if phaseNumber > 0 {
		return NewID("phase", strconv.Itoa(phaseNumber))
	}
	return NewID("phase", "")
}

// NewWeekID returns a week ID like "w3_a1b2c3d4".
func NewWeekID(weekNumber int) string {
	return NewID(fmt.Sprintf("w%d", weekNumber), "")
}

// NewDayID returns a day ID like "w1_d2_push_day_a1b2c3d4". The day name is
// slugged and truncated to 10 characters; an empty name omits the segment.
func NewDayID(weekNumber, dayNumber int, dayName string) string {
	return NewID(fmt.Sprintf("w%d_d%d", weekNumber, dayNumber), slugWords(sanitizeWords(dayName), 0, 10))
}

// NewBlockID returns a block ID like "block_2_a1b2c3d4". A blockNumber of
// zero or less omits the number segment.
func NewBlockID(blockNumber int) string {
	if blockNumber > 0 {
		return NewID("block", strconv.Itoa(blockNumber))
	}
	return NewID("block", "")
}

// NewExerciseID returns an exercise ID like "ex_barbell_bench_a1b2c3d4",
// keeping the first two significant words of the name for traceability.
func NewExerciseID(exerciseName string) string {
	var kept []string
	for _, w := range sanitizeWords(exerciseName) {
		if slugStopWords[w] {
			continue
		}
		kept = append(kept, w)
		if len(kept) == 2 {
			break
		}
	}
	return NewID("ex", slugWords(kept, 0, 15))
}

// NewFeedbackID returns a feedback entry ID like "fb_a1b2c3d4".
func NewFeedbackID() string { return NewID("fb", "") }

// slugStopWords are filler words dropped when slugging exercise names.
var slugStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "with": true, "and": true, "or": true, "to": true,
}

// sanitizeWords lowercases a name, replaces everything outside [a-z0-9]
// with spaces (so the result stays inside the ID grammar), and splits it
// into words.
func sanitizeWords(name string) []string {
	var clean strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			clean.WriteRune(r)
		default:
			clean.WriteByte(' ')
		}
	}
	return strings.Fields(clean.String())
}

// slugWords joins words with underscores and truncates to maxLen characters,
// trimming any underscore the cut leaves dangling. maxWords of 0 keeps all
// words.
func slugWords(words []string, maxWords, maxLen int) string {
	if maxWords > 0 && len(words) > maxWords {
		words = words[:maxWords]
	}
	slug := strings.Join(words, "_")
	if len(slug) > maxLen {
		slug = slug[:maxLen]
	}
	return strings.Trim(slug, "_")
}

// IDShape describes how many of each structural node a planned document
// will contain, for bulk ID pre-allocation.
type IDShape struct {
	Phases            int
	WeeksPerPhase     int
	DaysPerWeek       int
	BlocksPerDay      int
	ExercisesPerBlock int
}

// PlanIDs is a pre-generated ID set for a planned document shape, so a
// caller can cross-reference children before constructing them.
type PlanIDs struct {
	PlanID      string     `json:"workout_id"`
	GeneratedAt string     `json:"generated_at"`
	Phases      []PhaseIDs `json:"phases"`
}

type PhaseIDs struct {
	PhaseID     string    `json:"phase_id"`
	PhaseNumber int       `json:"phase_number"`
	Weeks       []WeekIDs `json:"weeks"`
}

type WeekIDs struct {
	WeekID     string   `json:"week_id"`
	WeekNumber int      `json:"week_number"`
	Days       []DayIDs `json:"days"`
}

type DayIDs struct {
	DayID     string     `json:"day_id"`
	DayNumber int        `json:"day_number"`
	Blocks    []BlockIDs `json:"blocks"`
}

type BlockIDs struct {
	BlockID     string   `json:"block_id"`
	BlockNumber int      `json:"block_number"`
	ExerciseIDs []string `json:"exercise_ids"`
}

// GenerateIDSet pre-allocates every ID for the given shape. Week numbers run
// continuously across phases (phase 1 weeks 1..n, phase 2 continues at n+1),
// matching how week ranges are expressed in the documents themselves. The
// function is pure apart from the randomness source and is safe to call
// concurrently.
func GenerateIDSet(shape IDShape) *PlanIDs {
	ids := &PlanIDs{
		PlanID:      NewPlanID(),
		GeneratedAt: NowTimestamp(),
		Phases:      make([]PhaseIDs, 0, shape.Phases),
	}

	weekCounter := 1
	for phaseNum := 1; phaseNum <= shape.Phases; phaseNum++ {
		phase := PhaseIDs{
			PhaseID:     NewPhaseID(phaseNum),
			PhaseNumber: phaseNum,
			Weeks:       make([]WeekIDs, 0, shape.WeeksPerPhase),
		}

		for w := 0; w < shape.WeeksPerPhase; w++ {
			week := WeekIDs{
				WeekID:     NewWeekID(weekCounter),
				WeekNumber: weekCounter,
				Days:       make([]DayIDs, 0, shape.DaysPerWeek),
			}

			for dayNum := 1; dayNum <= shape.DaysPerWeek; dayNum++ {
				day := DayIDs{
					DayID:     NewDayID(weekCounter, dayNum, ""),
					DayNumber: dayNum,
					Blocks:    make([]BlockIDs, 0, shape.BlocksPerDay),
				}

				for blockNum := 1; blockNum <= shape.BlocksPerDay; blockNum++ {
					block := BlockIDs{
						BlockID:     NewBlockID(blockNum),
						BlockNumber: blockNum,
						ExerciseIDs: make([]string, shape.ExercisesPerBlock),
					}
					for e := range block.ExerciseIDs {
						block.ExerciseIDs[e] = NewExerciseID("")
					}
					day.Blocks = append(day.Blocks, block)
				}

				week.Days = append(week.Days, day)
			}

			phase.Weeks = append(phase.Weeks, week)
			weekCounter++
		}

		ids.Phases = append(ids.Phases, phase)
	}

	return ids
}
