package plan

// ExamplePlan builds a small but complete reference document: one phase,
// one week, an active day with a single straight block and a rest day. It
// is served to generators as a concrete shape to imitate and doubles as a
// fixture in tests.
func ExamplePlan() *Plan {
	return &Plan{
		ID:            "wrk_example_001",
		Version:       1,
		GeneratedAt:   NowTimestamp(),
		PlanType:      PlanTypeProgram,
		Name:          "4-Week Beginner Full Body",
		Description:   "A beginner-friendly program focusing on fundamental movements and building exercise habits.",
		DurationWeeks: 4,
		Difficulty:    DifficultyBeginner,
		Goal:          "general_fitness",
		AIContext: AIContext{
			UserProfileSnapshot: map[string]any{},
			GenerationPrompt:    "",
			ModelVersion:        "1.0",
		},
		Phases: []Phase{
			{
				ID:        "phase_1",
				Name:      "Foundation",
				Objective: "Learn proper form and build training consistency",
				WeekStart: 1,
				WeekEnd:   4,
				Weeks: []Week{
					{
						WeekNumber: 1,
						Focus:      "Technique",
						IsDeload:   false,
						Days: []WorkoutDay{
							{
								ID:             "w1_d1",
								DayNumber:      1,
								Name:           "Full Body A",
								TargetDuration: 45,
								MuscleGroups:   []string{"chest", "back", "legs", "core"},
								RestDay:        false,
								Blocks: []ExerciseBlock{
									{
										ID:   "block_main",
										Type: BlockStraight,
										Exercises: []Exercise{
											{
												ID:        "ex_squat",
												Name:      "Goblet Squat",
												Equipment: []string{"dumbbell"},
												MuscleGroups: MuscleGroups{
													Primary:   []string{"quads", "glutes"},
													Secondary: []string{"core", "hamstrings"},
												},
												Sets: []ExerciseSet{
													{
														SetNumber:    1,
														Type:         SetWarmup,
														TargetReps:   RepsCount(10),
														TargetWeight: WeightDesc("bodyweight"),
													},
													{
														SetNumber:    2,
														Type:         SetWorking,
														TargetReps:   RepsCount(12),
														TargetWeight: WeightKg(10),
														TargetRPE:    intp(6),
													},
													{
														SetNumber:    3,
														Type:         SetWorking,
														TargetReps:   RepsCount(12),
														TargetWeight: WeightKg(10),
														TargetRPE:    intp(7),
													},
												},
												RestBetweenSets: 90,
												Alternatives:    []string{"Bodyweight Squat", "Leg Press"},
												Cues: []string{
													"Keep chest up",
													"Push knees out over toes",
													"Sit back into heels",
												},
												CommonMistakes: []string{
													"Knees caving in",
													"Rounding lower back",
													"Rising on toes",
												},
											},
										},
									},
								},
							},
							{
								ID:             "w1_d2",
								DayNumber:      2,
								Name:           "Rest Day",
								TargetDuration: 0,
								MuscleGroups:   []string{},
								RestDay:        true,
								Blocks:         []ExerciseBlock{},
							},
						},
					},
				},
			},
		},
		Progress: ProgressTracker{
			CurrentWeek:       1,
			CurrentDay:        1,
			CompletedWorkouts: []string{},
			PersonalRecords:   map[string]PersonalRecord{},
			Feedback:          []FeedbackEntry{},
		},
	}
}

func intp(n int) *int { return &n }
