package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/UdayRajVadeghar/aevio-agent/internal/journal"
	"github.com/UdayRajVadeghar/aevio-agent/internal/plan"
	"github.com/UdayRajVadeghar/aevio-agent/internal/profile"
	"github.com/UdayRajVadeghar/aevio-agent/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGetCurrentDatetime = mcp.NewTool("get_current_datetime",
	mcp.WithDescription("Get the current UTC date and time in the canonical plan timestamp format (YYYY-MM-DDTHH:MM:SSZ). Use it for generatedAt, weekStartDate, and other timestamp fields."),
)

var toolGeneratePlanIDs = mcp.NewTool("generate_plan_ids",
	mcp.WithDescription("Generate a complete set of unique IDs for a new workout plan before writing it. Returns a nested JSON structure mirroring the plan tree."),
	mcp.WithNumber("num_phases", mcp.Description("Number of phases. Defaults to 1."), mcp.DefaultNumber(1)),
	mcp.WithNumber("weeks_per_phase", mcp.Description("Weeks in each phase. Defaults to 4."), mcp.DefaultNumber(4)),
	mcp.WithNumber("days_per_week", mcp.Description("Workout days in each week. Defaults to 5."), mcp.DefaultNumber(5)),
	mcp.WithNumber("blocks_per_day", mcp.Description("Exercise blocks in each day. Defaults to 3."), mcp.DefaultNumber(3)),
	mcp.WithNumber("exercises_per_block", mcp.Description("Exercise IDs per block. Defaults to 3."), mcp.DefaultNumber(3)),
)

var toolGetPlanSchema = mcp.NewTool("get_plan_schema",
	mcp.WithDescription("Get the plan document schema guide: generation rules, a complete example plan, and the ID formats."),
)

var toolValidatePlan = mcp.NewTool("validate_plan",
	mcp.WithDescription("Validate a workout plan JSON document against the schema. Reports every violation found, not just the first."),
	mcp.WithString("plan_json", mcp.Required(), mcp.Description("The complete workout plan as a JSON string")),
)

var toolFormatPlan = mcp.NewTool("format_plan",
	mcp.WithDescription("Render a workout plan as a readable review document for the user."),
	mcp.WithString("plan_json", mcp.Required(), mcp.Description("The complete workout plan as a JSON string")),
)

var toolDiffPlans = mcp.NewTool("diff_plans",
	mcp.WithDescription("Summarize the structural changes between two revisions of a plan."),
	mcp.WithString("original_json", mcp.Required(), mcp.Description("The original plan as a JSON string")),
	mcp.WithString("updated_json", mcp.Required(), mcp.Description("The updated plan as a JSON string")),
)

var toolSavePlan = mcp.NewTool("save_plan",
	mcp.WithDescription("Validate a workout plan and save it to the current user's account. Only valid plans are stored."),
	mcp.WithString("plan_json", mcp.Required(), mcp.Description("The complete workout plan as a JSON string")),
)

var toolGetLatestPlan = mcp.NewTool("get_latest_plan",
	mcp.WithDescription("Fetch the most recently saved plan for the current user, including the full plan document."),
)

var toolFetchUserProfile = mcp.NewTool("fetch_user_profile",
	mcp.WithDescription("Fetch the current user's fitness profile (goals, equipment, experience, injuries) for plan personalization."),
)

var toolSaveJournalEntry = mcp.NewTool("save_journal_entry",
	mcp.WithDescription("Store a fact about the user in the long-term journal so later conversations can recall it."),
	mcp.WithString("fact", mcp.Required(), mcp.Description("The fact to remember, phrased as a standalone statement")),
)

var toolGetJournalEntries = mcp.NewTool("get_journal_entries",
	mcp.WithDescription("Get the current user's recent journal entries, newest first."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of entries to return. Defaults to 10."), mcp.DefaultNumber(10)),
)

// --- Tool handlers ---

func (h *handlers) getCurrentDatetime(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(plan.NowTimestamp()), nil
}

func (h *handlers) generatePlanIDs(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	shape := plan.IDShape{
		Phases:            req.GetInt("num_phases", 1),
		WeeksPerPhase:     req.GetInt("weeks_per_phase", 4),
		DaysPerWeek:       req.GetInt("days_per_week", 5),
		BlocksPerDay:      req.GetInt("blocks_per_day", 3),
		ExercisesPerBlock: req.GetInt("exercises_per_block", 3),
	}
	if shape.Phases < 1 || shape.WeeksPerPhase < 1 || shape.DaysPerWeek < 1 ||
		shape.BlocksPerDay < 1 || shape.ExercisesPerBlock < 1 {
		return mcp.NewToolResultError("all counts must be at least 1"), nil
	}

	result, err := mcp.NewToolResultJSON(plan.GenerateIDSet(shape))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPlanSchema(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(plan.SchemaInfo()), nil
}

func (h *handlers) validatePlan(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("plan_json")
	if err != nil {
		return mcp.NewToolResultError("plan_json parameter is required"), nil
	}

	res, err := plan.Validate([]byte(raw))
	if err != nil {
		return mcp.NewToolResultError("Invalid JSON format: " + err.Error()), nil
	}
	return mcp.NewToolResultText(validationReport(res)), nil
}

func (h *handlers) formatPlan(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("plan_json")
	if err != nil {
		return mcp.NewToolResultError("plan_json parameter is required"), nil
	}

	res, err := plan.Validate([]byte(raw))
	if err != nil {
		return mcp.NewToolResultError("Invalid JSON format: " + err.Error()), nil
	}
	if !res.Valid {
		return mcp.NewToolResultText(validationReport(res)), nil
	}
	return mcp.NewToolResultText(plan.Format(res.Plan)), nil
}

func (h *handlers) diffPlans(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	original, err := req.RequireString("original_json")
	if err != nil {
		return mcp.NewToolResultError("original_json parameter is required"), nil
	}
	updated, err := req.RequireString("updated_json")
	if err != nil {
		return mcp.NewToolResultError("updated_json parameter is required"), nil
	}

	summary, err := plan.DiffSummary([]byte(original), []byte(updated))
	if err != nil {
		return mcp.NewToolResultError("Invalid JSON format: " + err.Error()), nil
	}
	return mcp.NewToolResultText(summary), nil
}

func (h *handlers) savePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("plan_json")
	if err != nil {
		return mcp.NewToolResultError("plan_json parameter is required"), nil
	}

	res, err := plan.Validate([]byte(raw))
	if err != nil {
		return mcp.NewToolResultError("Invalid JSON format: " + err.Error()), nil
	}
	if !res.Valid {
		return mcp.NewToolResultText("Workout plan validation failed. Please validate the plan first using the validate_plan tool."), nil
	}

	userID := UserIDFromContext(ctx)
	rec, err := h.store.SavePlan(ctx, userID, json.RawMessage(raw))
	if err != nil {
		h.log.Error("mcp save_plan", "error", err)
		return mcp.NewToolResultError("saving plan failed: " + err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Workout plan saved successfully!\n\n")
	b.WriteString("Database Record:\n")
	fmt.Fprintf(&b, "  Record ID: %s\n", rec.ID)
	fmt.Fprintf(&b, "  User ID: %s\n", rec.UserID)
	fmt.Fprintf(&b, "  Plan Name: %s\n", res.Plan.Name)
	fmt.Fprintf(&b, "  Duration: %d weeks\n", res.Plan.DurationWeeks)
	b.WriteString("\nThe workout plan is now available in the user's account.")
	return mcp.NewToolResultText(b.String()), nil
}

func (h *handlers) getLatestPlan(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID := UserIDFromContext(ctx)

	rec, err := h.store.LatestPlan(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return mcp.NewToolResultText("No saved plans found for this user."), nil
	}
	if err != nil {
		h.log.Error("mcp get_latest_plan", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(rec)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) fetchUserProfile(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID := UserIDFromContext(ctx)

	raw, err := h.store.GetUserProfile(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return mcp.NewToolResultText("Error: User profile not found with identifier: " + userID), nil
	}
	if err != nil {
		h.log.Error("mcp fetch_user_profile", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	prof, issues, err := profile.Parse(raw)
	if err != nil {
		return mcp.NewToolResultError("invalid profile document: " + err.Error()), nil
	}
	for _, issue := range issues {
		h.log.Warn("profile vocabulary", "path", issue.Path, "message", issue.Message)
	}
	return mcp.NewToolResultText(prof.Format()), nil
}

func (h *handlers) saveJournalEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fact, err := req.RequireString("fact")
	if err != nil {
		return mcp.NewToolResultError("fact parameter is required"), nil
	}
	if strings.TrimSpace(fact) == "" {
		return mcp.NewToolResultError("fact must not be empty"), nil
	}

	userID := UserIDFromContext(ctx)
	entry, err := h.journal.Save(ctx, userID, fact)
	if err != nil {
		h.log.Error("mcp save_journal_entry", "error", err)
		return mcp.NewToolResultError("saving journal entry failed: " + err.Error()), nil
	}
	return mcp.NewToolResultText("Journal entry saved with ID: " + entry.ID), nil
}

func (h *handlers) getJournalEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 10)
	if limit < 1 {
		return mcp.NewToolResultError("limit must be at least 1"), nil
	}

	userID := UserIDFromContext(ctx)
	entries, err := h.journal.Recent(ctx, userID, limit)
	if err != nil {
		h.log.Error("mcp get_journal_entries", "error", err)
		return mcp.NewToolResultText("Error fetching journal entries: " + err.Error()), nil
	}
	return mcp.NewToolResultText(journal.FormatEntries(entries)), nil
}

// validationReport renders a validation outcome as the conversational
// report the agent relays to the user.
func validationReport(res *plan.Result) string {
	var b strings.Builder

	if res.Valid {
		p := res.Plan
		stats := plan.Stats(p)

		b.WriteString("Workout plan is VALID!\n\n")
		b.WriteString("Plan Summary:\n")
		fmt.Fprintf(&b, "  ID: %s\n", p.ID)
		fmt.Fprintf(&b, "  Name: %s\n", p.Name)
		fmt.Fprintf(&b, "  Duration: %d weeks\n", p.DurationWeeks)
		fmt.Fprintf(&b, "  Difficulty: %s\n", p.Difficulty)
		fmt.Fprintf(&b, "  Goal: %s\n\n", p.Goal)
		b.WriteString("Structure:\n")
		fmt.Fprintf(&b, "  Phases: %d\n", stats.Phases)
		fmt.Fprintf(&b, "  Total Weeks: %d\n", stats.Weeks)
		fmt.Fprintf(&b, "  Total Workout Days: %d\n", stats.Days)
		fmt.Fprintf(&b, "  Total Exercises: %d\n", stats.Exercises)
		writeIssueList(&b, "Warnings", res.Warnings)
		b.WriteString("\nThe plan is ready to be saved to the database.")
		return b.String()
	}

	b.WriteString("Workout plan validation FAILED!\n\nErrors found:\n")
	for _, issue := range res.Errors {
		b.WriteString("  - " + issue.String() + "\n")
	}
	writeIssueList(&b, "Warnings", res.Warnings)
	b.WriteString("\nPlease fix these issues and try again.")
	return b.String()
}

func writeIssueList(b *strings.Builder, title string, issues []plan.Issue) {
	if len(issues) == 0 {
		return
	}
	b.WriteString("\n" + title + ":\n")
	for _, issue := range issues {
		b.WriteString("  - " + issue.String() + "\n")
	}
}
