package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/UdayRajVadeghar/aevio-agent/internal/journal"
	"github.com/UdayRajVadeghar/aevio-agent/internal/plan"
	"github.com/UdayRajVadeghar/aevio-agent/internal/storage"
	"github.com/go-chi/chi/v5"
)

// validateResult is the JSON body returned by the validate endpoint and
// by write endpoints that reject an invalid plan.
type validateResult struct {
	Valid    bool            `json:"valid"`
	Plan     *planSummary    `json:"plan,omitempty"`
	Stats    *plan.PlanStats `json:"stats,omitempty"`
	Errors   []plan.Issue    `json:"errors,omitempty"`
	Warnings []plan.Issue    `json:"warnings,omitempty"`
}

// planSummary carries the identifying fields of a validated plan.
type planSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DurationWeeks int    `json:"durationWeeks"`
	Difficulty    string `json:"difficulty"`
	Goal          string `json:"goal"`
}

func newValidateResult(res *plan.Result) validateResult {
	out := validateResult{
		Valid:    res.Valid,
		Errors:   res.Errors,
		Warnings: res.Warnings,
	}
	if res.Valid {
		stats := plan.Stats(res.Plan)
		out.Stats = &stats
		out.Plan = &planSummary{
			ID:            res.Plan.ID,
			Name:          res.Plan.Name,
			DurationWeeks: res.Plan.DurationWeeks,
			Difficulty:    res.Plan.Difficulty,
			Goal:          res.Plan.Goal,
		}
	}
	return out
}

func (s *Server) handleValidatePlan(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return
	}

	res, err := plan.Validate(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, newValidateResult(res))
}

func (s *Server) handleFormatPlan(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return
	}

	res, err := plan.Validate(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if !res.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, newValidateResult(res))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(plan.Format(res.Plan)))
}

func (s *Server) handleDiffPlans(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Original json.RawMessage `json:"original"`
		Updated  json.RawMessage `json:"updated"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if len(req.Original) == 0 || len(req.Updated) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "original and updated documents required"})
		return
	}

	changes, err := plan.Diff(req.Original, req.Updated)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	summary, err := plan.DiffSummary(req.Original, req.Updated)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if changes == nil {
		changes = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"changes": changes,
		"summary": summary,
	})
}

func (s *Server) handleGenerateIDs(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NumPhases         int `json:"numPhases"`
		WeeksPerPhase     int `json:"weeksPerPhase"`
		DaysPerWeek       int `json:"daysPerWeek"`
		BlocksPerDay      int `json:"blocksPerDay"`
		ExercisesPerBlock int `json:"exercisesPerBlock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	shape := plan.IDShape{
		Phases:            countOrDefault(req.NumPhases, 1),
		WeeksPerPhase:     countOrDefault(req.WeeksPerPhase, 4),
		DaysPerWeek:       countOrDefault(req.DaysPerWeek, 5),
		BlocksPerDay:      countOrDefault(req.BlocksPerDay, 3),
		ExercisesPerBlock: countOrDefault(req.ExercisesPerBlock, 3),
	}
	if shape.Phases < 1 || shape.WeeksPerPhase < 1 || shape.DaysPerWeek < 1 ||
		shape.BlocksPerDay < 1 || shape.ExercisesPerBlock < 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "all counts must be at least 1"})
		return
	}

	writeJSON(w, http.StatusOK, plan.GenerateIDSet(shape))
}

func (s *Server) handleSavePlan(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return
	}

	res, err := plan.Validate(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if !res.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, newValidateResult(res))
		return
	}

	rec, err := s.db.SavePlan(r.Context(), userID, json.RawMessage(body))
	if err != nil {
		s.log.Error("save plan error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	limit, err := parseLimit(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	recs, err := s.db.ListPlans(r.Context(), userID, limit)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no plans found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleLatestPlan(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	rec, err := s.db.LatestPlan(r.Context(), userID)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no plans found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	raw, err := s.db.GetUserProfile(r.Context(), userID)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "profile not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	// The profile column already holds JSON, pass it through untouched.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}

func (s *Server) handleSaveJournalEntry(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req struct {
		Fact string `json:"fact"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Fact) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "fact is required"})
		return
	}

	entry, err := s.journal.Save(r.Context(), userID, req.Fact)
	if err != nil {
		s.log.Error("save journal entry error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleListJournalEntries(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	limit, err := parseLimit(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	entries, err := s.journal.Recent(r.Context(), userID, limit)
	if err != nil {
		s.log.Error("list journal entries error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []journal.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseLimit reads the optional limit query parameter. Zero means the
// store's default.
func parseLimit(r *http.Request) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(v)
	if err != nil || limit < 1 {
		return 0, errors.New("limit must be a positive integer")
	}
	return limit, nil
}

func countOrDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
