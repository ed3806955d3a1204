package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/UdayRajVadeghar/aevio-agent/internal/journal"
	"github.com/UdayRajVadeghar/aevio-agent/internal/storage"
	"github.com/google/uuid"
)

// newTestServer creates an httptest server that routes requests to handler
// functions keyed by path. Verifies the HTTP client sends correct paths and
// query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestSavePlan verifies the client POSTs the raw plan document with the
// API key header and decodes the created record.
func TestSavePlan(t *testing.T) {
	planJSON := json.RawMessage(`{"id":"wrk_test_plan","name":"Test"}`)
	recID := uuid.New()

	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/users/user-1/plans": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			if got := r.Header.Get("X-API-Key"); got != "secret" {
				t.Errorf("X-API-Key = %q, want %q", got, "secret")
			}
			body, err := io.ReadAll(r.Body)
			if err != nil {
				t.Fatal(err)
			}
			if string(body) != string(planJSON) {
				t.Errorf("body = %s, want %s", body, planJSON)
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(storage.PlanRecord{
				ID:        recID,
				UserID:    "user-1",
				RawPlan:   planJSON,
				CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "secret")
	rec, err := client.SavePlan(context.Background(), "user-1", planJSON)
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != recID {
		t.Errorf("ID = %s, want %s", rec.ID, recID)
	}
	if rec.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", rec.UserID, "user-1")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
}

// TestLatestPlan verifies the latest-plan endpoint path and record decoding.
func TestLatestPlan(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/users/user-1/plans/latest": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("method = %s, want GET", r.Method)
			}
			writeTestJSON(t, w, storage.PlanRecord{
				ID:        uuid.New(),
				UserID:    "user-1",
				RawPlan:   json.RawMessage(`{"id":"wrk_test_plan"}`),
				CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "secret")
	rec, err := client.LatestPlan(context.Background(), "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(rec.RawPlan), "wrk_test_plan") {
		t.Errorf("RawPlan = %s, want it to contain wrk_test_plan", rec.RawPlan)
	}
}

// TestLatestPlanNotFound verifies a 404 maps to storage.ErrNotFound so
// callers can branch on it the same way as with the local store.
func TestLatestPlanNotFound(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/users/user-1/plans/latest": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"no plans found"}`))
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "secret")
	_, err := client.LatestPlan(context.Background(), "user-1")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want storage.ErrNotFound", err)
	}
}

// TestGetUserProfile verifies the profile document passes through as raw
// JSON.
func TestGetUserProfile(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/users/user-1/profile": func(w http.ResponseWriter, _ *http.Request) {
			writeTestJSON(t, w, map[string]any{"age": 30, "gender": "male"})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "secret")
	raw, err := client.GetUserProfile(context.Background(), "user-1")
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	if m["gender"] != "male" {
		t.Errorf("gender = %v, want male", m["gender"])
	}
}

// TestJournalSave verifies the journal save endpoint receives the fact as
// a JSON body and the created entry decodes.
func TestJournalSave(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/users/user-1/journal": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			var body struct {
				Fact string `json:"fact"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Fact != "prefers dumbbells" {
				t.Errorf("fact = %q, want %q", body.Fact, "prefers dumbbells")
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(journal.Entry{
				ID:        "entry-1",
				UserID:    "user-1",
				Fact:      body.Fact,
				CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "secret")
	entry, err := client.Save(context.Background(), "user-1", "prefers dumbbells")
	if err != nil {
		t.Fatal(err)
	}
	if entry.ID != "entry-1" {
		t.Errorf("ID = %q, want %q", entry.ID, "entry-1")
	}
	if entry.Fact != "prefers dumbbells" {
		t.Errorf("Fact = %q, want %q", entry.Fact, "prefers dumbbells")
	}
}

// TestJournalRecent verifies the limit query param and entry list decoding.
func TestJournalRecent(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/users/user-1/journal": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("method = %s, want GET", r.Method)
			}
			if got := r.URL.Query().Get("limit"); got != "5" {
				t.Errorf("limit = %q, want %q", got, "5")
			}
			writeTestJSON(t, w, []journal.Entry{
				{ID: "e2", Fact: "newest"},
				{ID: "e1", Fact: "older"},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "secret")
	entries, err := client.Recent(context.Background(), "user-1", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Fact != "newest" {
		t.Errorf("first entry = %q, want %q", entries[0].Fact, "newest")
	}
}

// TestHTTPClientServerError verifies the client returns an error on non-2xx
// responses that is not mistaken for a missing record.
func TestHTTPClientServerError(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/users/user-1/plans/latest": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"database down"}`))
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "secret")
	_, err := client.LatestPlan(context.Background(), "user-1")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if errors.Is(err, storage.ErrNotFound) {
		t.Error("500 response should not map to ErrNotFound")
	}
}
