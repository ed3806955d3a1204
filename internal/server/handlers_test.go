package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/UdayRajVadeghar/aevio-agent/internal/journal"
	"github.com/UdayRajVadeghar/aevio-agent/internal/plan"
)

const testAPIKey = "test-key"

// newTestServer builds a Server backed by a temporary journal database.
// The Postgres store is nil; tests that hit plan or profile storage need
// a live database and live elsewhere.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	jnl, err := journal.Open(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { jnl.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(nil, jnl, testAPIKey, log)
}

// examplePlanJSON marshals the reference plan for use as a request body.
func examplePlanJSON(t *testing.T) []byte {
	t.Helper()
	data, err := json.Marshal(plan.ExamplePlan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return data
}

// TestValidateEndpointValid verifies that a well-formed plan comes back
// tagged valid with its summary and stats.
func TestValidateEndpointValid(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/validate", bytes.NewReader(examplePlanJSON(t)))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res validateResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !res.Valid {
		t.Fatalf("valid = false, want true; errors: %v", res.Errors)
	}
	if res.Plan == nil || res.Plan.Name != "4-Week Beginner Full Body" {
		t.Errorf("plan = %+v, want name %q", res.Plan, "4-Week Beginner Full Body")
	}
	if res.Stats == nil || res.Stats.Exercises != 1 {
		t.Errorf("stats = %+v, want 1 exercise", res.Stats)
	}
}

// TestValidateEndpointInvalid verifies that a structurally broken plan
// comes back tagged invalid with its error list, still as a 200.
func TestValidateEndpointInvalid(t *testing.T) {
	s := newTestServer(t)

	body := strings.NewReader(`{"id": "wrk_bad_plan"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/validate", body)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res validateResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if res.Valid {
		t.Fatal("valid = true, want false")
	}
	if len(res.Errors) == 0 {
		t.Error("errors is empty, want at least one")
	}
	if res.Plan != nil {
		t.Errorf("plan = %+v, want nil for invalid input", res.Plan)
	}
}

// TestValidateEndpointMalformed verifies that non-JSON input is a 400, not
// a validation verdict.
func TestValidateEndpointMalformed(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/validate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["error"] == "" {
		t.Error("error message is empty")
	}
}

// TestFormatEndpoint verifies that a valid plan renders as plain text.
func TestFormatEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/format", bytes.NewReader(examplePlanJSON(t)))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q, want text/plain", ct)
	}

	text := rec.Body.String()
	if !strings.Contains(text, "4-Week Beginner Full Body") {
		t.Error("formatted output missing plan name")
	}
	if !strings.Contains(text, "Duration: 4 weeks") {
		t.Error("formatted output missing duration line")
	}
}

// TestFormatEndpointInvalid verifies that an invalid plan is rejected with
// 422 and the validation result instead of a rendering.
func TestFormatEndpointInvalid(t *testing.T) {
	s := newTestServer(t)

	body := strings.NewReader(`{"id": "wrk_bad_plan"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/format", body)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var res validateResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if res.Valid {
		t.Error("valid = true, want false")
	}
}

// TestDiffEndpoint verifies that a renamed plan produces a change line and
// a summary.
func TestDiffEndpoint(t *testing.T) {
	s := newTestServer(t)

	original := examplePlanJSON(t)
	renamed := plan.ExamplePlan()
	renamed.Name = "5-Week Intermediate Split"
	updated, err := json.Marshal(renamed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body, err := json.Marshal(map[string]json.RawMessage{
		"original": original,
		"updated":  updated,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/diff", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res struct {
		Changes []string `json:"changes"`
		Summary string   `json:"summary"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(res.Changes) != 1 {
		t.Fatalf("changes = %v, want one line", res.Changes)
	}
	if !strings.Contains(res.Changes[0], "5-Week Intermediate Split") {
		t.Errorf("change line = %q, want new name mentioned", res.Changes[0])
	}
	if !strings.HasPrefix(res.Summary, "Changes made:") {
		t.Errorf("summary = %q, want Changes made prefix", res.Summary)
	}
}

// TestDiffEndpointIdentical verifies that identical documents produce an
// empty change list, not null.
func TestDiffEndpointIdentical(t *testing.T) {
	s := newTestServer(t)

	doc := examplePlanJSON(t)
	body, err := json.Marshal(map[string]json.RawMessage{
		"original": doc,
		"updated":  doc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/diff", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"changes":[]`) {
		t.Errorf("body = %s, want empty changes array", rec.Body.String())
	}
}

// TestDiffEndpointMissingDocument verifies that omitting either side is a 400.
func TestDiffEndpointMissingDocument(t *testing.T) {
	s := newTestServer(t)

	body := strings.NewReader(`{"original": {"name": "only one side"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/diff", body)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// TestGenerateIDsDefaults verifies that an empty request body produces a
// full ID set with the default shape.
func TestGenerateIDsDefaults(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/ids", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var ids plan.PlanIDs
	if err := json.NewDecoder(rec.Body).Decode(&ids); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !plan.IDPattern.MatchString(ids.PlanID) {
		t.Errorf("plan ID %q does not match the ID grammar", ids.PlanID)
	}
	if len(ids.Phases) != 1 {
		t.Fatalf("phases = %d, want 1", len(ids.Phases))
	}
	if len(ids.Phases[0].Weeks) != 4 {
		t.Fatalf("weeks = %d, want 4", len(ids.Phases[0].Weeks))
	}
	if len(ids.Phases[0].Weeks[0].Days) != 5 {
		t.Fatalf("days = %d, want 5", len(ids.Phases[0].Weeks[0].Days))
	}
	if got := len(ids.Phases[0].Weeks[0].Days[0].Blocks); got != 3 {
		t.Fatalf("blocks = %d, want 3", got)
	}
	if got := len(ids.Phases[0].Weeks[0].Days[0].Blocks[0].ExerciseIDs); got != 3 {
		t.Errorf("exercise IDs = %d, want 3", got)
	}
}

// TestGenerateIDsCustomShape verifies that explicit counts override the
// defaults.
func TestGenerateIDsCustomShape(t *testing.T) {
	s := newTestServer(t)

	body := strings.NewReader(`{"numPhases": 2, "weeksPerPhase": 1, "daysPerWeek": 2, "blocksPerDay": 1, "exercisesPerBlock": 4}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/ids", body)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var ids plan.PlanIDs
	if err := json.NewDecoder(rec.Body).Decode(&ids); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(ids.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(ids.Phases))
	}
	if got := ids.Phases[1].Weeks[0].WeekNumber; got != 2 {
		t.Errorf("second phase starts at week %d, want 2", got)
	}
	if got := len(ids.Phases[0].Weeks[0].Days[0].Blocks[0].ExerciseIDs); got != 4 {
		t.Errorf("exercise IDs = %d, want 4", got)
	}
}

// TestGenerateIDsNegativeCount verifies that negative counts are rejected.
func TestGenerateIDsNegativeCount(t *testing.T) {
	s := newTestServer(t)

	body := strings.NewReader(`{"numPhases": -1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/ids", body)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// TestUserRoutesRequireAPIKey verifies that the per-user store routes sit
// behind the API key middleware.
func TestUserRoutesRequireAPIKey(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/alice/journal", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

// TestJournalRoundTrip verifies saving a fact and reading it back through
// the HTTP API.
func TestJournalRoundTrip(t *testing.T) {
	s := newTestServer(t)

	body := strings.NewReader(`{"fact": "prefers morning workouts"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/alice/journal", body)
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}

	var saved journal.Entry
	if err := json.NewDecoder(rec.Body).Decode(&saved); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if saved.Fact != "prefers morning workouts" {
		t.Errorf("fact = %q, want %q", saved.Fact, "prefers morning workouts")
	}
	if saved.UserID != "alice" {
		t.Errorf("userID = %q, want %q", saved.UserID, "alice")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/alice/journal", nil)
	req.Header.Set("X-API-Key", testAPIKey)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var entries []journal.Entry
	if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].ID != saved.ID {
		t.Errorf("entry ID = %q, want %q", entries[0].ID, saved.ID)
	}
}

// TestJournalEmptyFact verifies that a blank fact is rejected.
func TestJournalEmptyFact(t *testing.T) {
	s := newTestServer(t)

	body := strings.NewReader(`{"fact": "   "}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/alice/journal", body)
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// TestJournalListEmpty verifies that a user with no entries gets an empty
// array, not null.
func TestJournalListEmpty(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/nobody/journal", nil)
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want empty array", got)
	}
}

// TestJournalBadLimit verifies that a non-numeric limit is rejected.
func TestJournalBadLimit(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/alice/journal?limit=abc", nil)
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
