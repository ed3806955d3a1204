package plan

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// TestNewIDFormat verifies generated IDs follow the documented grammar:
// prefix, optional descriptive segment, 8-character random suffix.
func TestNewIDFormat(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		prefix string
	}{
		{"plan", NewPlanID(), "wrk_"},
		{"phase", NewPhaseID(2), "phase_2_"},
		{"phase unnumbered", NewPhaseID(0), "phase_"},
		{"week", NewWeekID(3), "w3_"},
		{"day", NewDayID(1, 2, "Push Day"), "w1_d2_push_day_"},
		{"day unnamed", NewDayID(1, 2, ""), "w1_d2_"},
		{"block", NewBlockID(1), "block_1_"},
		{"exercise", NewExerciseID("Barbell Bench Press"), "ex_barbell_bench_"},
		{"exercise unnamed", NewExerciseID(""), "ex_"},
		{"feedback", NewFeedbackID(), "fb_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasPrefix(tt.id, tt.prefix) {
				t.Errorf("id = %q, want prefix %q", tt.id, tt.prefix)
			}
			if !IDPattern.MatchString(tt.id) {
				t.Errorf("id = %q does not match %v", tt.id, IDPattern)
			}
			suffix := tt.id[strings.LastIndex(tt.id, "_")+1:]
			if len(suffix) != 8 {
				t.Errorf("suffix = %q, want 8 characters", suffix)
			}
		})
	}
}

// TestNewIDUniqueness generates 10,000 IDs with the same prefix and checks
// for collisions. With 36^8 possible suffixes a duplicate here means the
// randomness source is broken, not bad luck.
func TestNewIDUniqueness(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		id := NewID("wrk", "")
		if seen[id] {
			t.Fatalf("duplicate id %q after %d generations", id, i)
		}
		seen[id] = true
	}
}

// TestExerciseIDSlug verifies exercise name slugging: lowercase, stop words
// dropped, first two significant words, truncated to 15 characters, and
// nothing outside the ID grammar survives.
func TestExerciseIDSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Barbell Bench Press", "ex_barbell_bench_"},
		{"Squat with the Barbell", "ex_squat_barbell_"},
		{"The Romanian Deadlift", "ex_romanian_deadli_"},
		{"Push-Up", "ex_push_up_"},
		{"Curls", "ex_curls_"},
		{"", "ex_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := NewExerciseID(tt.name)
			if !strings.HasPrefix(id, tt.want) {
				t.Errorf("NewExerciseID(%q) = %q, want prefix %q", tt.name, id, tt.want)
			}
			if !IDPattern.MatchString(id) {
				t.Errorf("NewExerciseID(%q) = %q does not match %v", tt.name, id, IDPattern)
			}
		})
	}
}

// TestDayIDSlug verifies day name slugging keeps all words (no stop-word
// filtering) and truncates to 10 characters.
func TestDayIDSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Full Body A", "w1_d1_full_body_"},
		{"Push and Pull", "w1_d1_push_and_p_"},
		{"Legs", "w1_d1_legs_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := NewDayID(1, 1, tt.name)
			if !strings.HasPrefix(id, tt.want) {
				t.Errorf("NewDayID(1, 1, %q) = %q, want prefix %q", tt.name, id, tt.want)
			}
			if !IDPattern.MatchString(id) {
				t.Errorf("NewDayID(1, 1, %q) = %q does not match %v", tt.name, id, IDPattern)
			}
		})
	}
}

// TestGenerateIDSet verifies bulk generation produces the requested shape
// with continuous week numbering across phases and no duplicate IDs
// anywhere in the set.
func TestGenerateIDSet(t *testing.T) {
	ids := GenerateIDSet(IDShape{
		Phases:            2,
		WeeksPerPhase:     2,
		DaysPerWeek:       3,
		BlocksPerDay:      2,
		ExercisesPerBlock: 4,
	})

	if len(ids.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(ids.Phases))
	}
	if ids.GeneratedAt == "" {
		t.Error("GeneratedAt is empty")
	}
	if _, err := ParseTimestamp(ids.GeneratedAt); err != nil {
		t.Errorf("GeneratedAt %q does not parse: %v", ids.GeneratedAt, err)
	}

	// Week numbers continue across phases: phase 1 has weeks 1-2, phase 2
	// has weeks 3-4.
	wantWeek := 1
	seen := map[string]bool{ids.PlanID: true}
	record := func(id string) {
		if seen[id] {
			t.Errorf("duplicate id %q in generated set", id)
		}
		seen[id] = true
	}
	for _, phase := range ids.Phases {
		record(phase.PhaseID)
		if len(phase.Weeks) != 2 {
			t.Fatalf("phase %d weeks = %d, want 2", phase.PhaseNumber, len(phase.Weeks))
		}
		for _, week := range phase.Weeks {
			if week.WeekNumber != wantWeek {
				t.Errorf("week number = %d, want %d", week.WeekNumber, wantWeek)
			}
			if !strings.HasPrefix(week.WeekID, fmt.Sprintf("w%d_", wantWeek)) {
				t.Errorf("week id = %q, want prefix w%d_", week.WeekID, wantWeek)
			}
			wantWeek++
			record(week.WeekID)
			if len(week.Days) != 3 {
				t.Fatalf("days = %d, want 3", len(week.Days))
			}
			for _, day := range week.Days {
				record(day.DayID)
				if len(day.Blocks) != 2 {
					t.Fatalf("blocks = %d, want 2", len(day.Blocks))
				}
				for _, block := range day.Blocks {
					record(block.BlockID)
					if len(block.ExerciseIDs) != 4 {
						t.Fatalf("exercise ids = %d, want 4", len(block.ExerciseIDs))
					}
					for _, ex := range block.ExerciseIDs {
						record(ex)
					}
				}
			}
		}
	}
}

// TestGenerateIDSetConcurrent runs bulk generation from multiple goroutines
// to verify there is no shared counter: concurrent sets must not collide.
func TestGenerateIDSetConcurrent(t *testing.T) {
	const workers = 8
	shape := IDShape{Phases: 1, WeeksPerPhase: 2, DaysPerWeek: 2, BlocksPerDay: 1, ExercisesPerBlock: 2}

	results := make([]*PlanIDs, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = GenerateIDSet(shape)
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, ids := range results {
		if seen[ids.PlanID] {
			t.Errorf("plan id %q generated twice", ids.PlanID)
		}
		seen[ids.PlanID] = true
	}
}
