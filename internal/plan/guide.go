package plan

import "encoding/json"

// SchemaGuide is the generation contract handed to plan generators. It is
// prompt text, imperative and repetitive; the failure modes it warns about
// (escaped JSON, missing targetReps, invented fields) are the ones
// generators actually produce.
const SchemaGuide = `You are generating a workout plan. Output ONLY valid, raw JSON matching the plan schema.

CRITICAL JSON FORMAT RULES:
- Output RAW JSON only - no escaped quotes, no string encoding
- NEVER output JSON like this: { \"key\": \"value\" }
- ALWAYS output clean JSON like this: { "key": "value" }
- NO explanatory text before, during, or after the JSON
- NO markdown code blocks around the JSON
- NO messages like "Here is your workout plan:" or "The plan is ready"
- Just output the pure JSON object starting with { and ending with }

SCHEMA OVERVIEW:
- Plan contains phases (mesocycles)
- Each Phase contains weeks
- Each Week contains days (WorkoutDay)
- Each WorkoutDay contains exercise blocks
- Each ExerciseBlock contains exercises
- Each Exercise contains sets

REQUIRED FIELDS FOR EACH LEVEL:
1. Plan: id, generatedAt, planType, name, description, durationWeeks, difficulty, goal, phases
2. Phase: id, name, objective, weekStart, weekEnd, weeks
3. Week: weekNumber, focus, isDeload, days
4. WorkoutDay: id, dayNumber, name, targetDuration, muscleGroups, blocks, restDay
5. ExerciseBlock: id, type, exercises
6. Exercise: id, name, muscleGroups, sets, restBetweenSets, equipment, alternatives, cues, commonMistakes
7. ExerciseSet: setNumber, type, targetReps (ALWAYS REQUIRED)

CRITICAL - targetReps IS ALWAYS REQUIRED:
- Every set MUST have "targetReps" - this field is NEVER optional
- For rep-based exercises: use the number of reps (e.g., "targetReps": 10)
- For time-based/isometric exercises (planks, wall sits, holds): use "targetReps": 1
  * For these exercises, add duration info in the "notes" field of the exercise
  * Example: A 60-second plank hold should have "targetReps": 1 and notes: "Hold for 60 seconds"
- For AMRAP exercises: use "targetReps": "AMRAP"
- For rep ranges: use string format like "targetReps": "8-12"
- DO NOT invent fields like "targetDurationSeconds" - this field does not exist in the schema!

EXERCISE BLOCK TYPES:
- "straight": Complete all sets of one exercise before moving to next
- "superset": Alternate between 2 exercises with minimal rest
- "circuit": Perform all exercises back-to-back, then rest
- "emom": Every Minute On the Minute
- "amrap": As Many Rounds As Possible

SET TYPES:
- "warmup": Light weight, higher reps to prepare
- "working": Main working sets at target intensity
- "dropset": Reduce weight immediately and continue
- "failure": Push to muscular failure
- "backoff": Reduced intensity after heavy sets

MUSCLE GROUPS:
Primary: chest, back, shoulders, biceps, triceps, quads, hamstrings, glutes, calves, abs, core
Secondary: forearms, traps, rear_delts, hip_flexors, obliques

GENERATION RULES:
1. Match exercises to the user's available equipment
2. Respect injuries - avoid exercises that stress injured areas
3. Exclude disliked exercises, use alternatives
4. Scale difficulty to experience level
5. Include 4-6 exercises per workout day
6. 3-5 sets per exercise typically
7. Rest days every 2-3 training days
8. Deload every 4-6 weeks
9. Progressive overload across weeks (increase weight or reps)
10. Balance push/pull movements
11. Include compound movements before isolation
12. Warmup sets before heavy working sets
13. ALWAYS include targetReps for EVERY set - no exceptions!

OUTPUT ONLY THE RAW JSON OBJECT. NO TEXT. NO EXPLANATIONS. NO MARKDOWN.`

// SchemaInfo assembles the full generator briefing: the schema guide, a
// rendered example document, the ID and timestamp conventions, and the
// short list of reminders that keeps coming up.
func SchemaInfo() string {
	example, err := json.MarshalIndent(ExamplePlan(), "", "  ")
	if err != nil {
		// The example is a fixed literal; this cannot fail at runtime.
		panic("plan: marshaling example plan: " + err.Error())
	}

	return SchemaGuide + `

EXAMPLE WORKOUT PLAN STRUCTURE:
` + string(example) + `

ID FORMATS:
- Plan ID: 'wrk_xxxxxxxx'
- Phase ID: 'phase_N_xxxxxxxx' where N is the phase number
- Week ID: 'wN_xxxxxxxx' where N is the week number
- Day ID: 'wN_dM_name_xxxxxxxx' where N is the week, M the day number
- Block ID: 'block_N_xxxxxxxx' where N is the block number
- Exercise ID: 'ex_name_xxxxxxxx' where name is a short version of the exercise name

TIMESTAMP FORMAT:
- Use ISO 8601 format: 'YYYY-MM-DDTHH:MM:SSZ'
- Example: '2024-01-15T10:30:00Z'

REMINDERS:
1. Output CLEAN, RAW JSON only - no escaped quotes, no string encoding
2. Every set MUST have "targetReps" - use 1 for time-based exercises like planks
3. Do NOT invent fields like "targetDurationSeconds" - it doesn't exist
4. Do NOT add commentary before/after the JSON

Use the generate_plan_ids tool to get pre-generated unique IDs for your plan.`
}
