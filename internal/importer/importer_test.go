package importer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/UdayRajVadeghar/aevio-agent/internal/plan"
)

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeFile puts content at dir/name, creating parent directories.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func examplePlanJSON(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(plan.ExamplePlan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return string(data)
}

// TestImportMixedDirectory runs a dry-run over a directory holding one
// valid plan, one invalid plan, one broken file, and one non-JSON file,
// and checks every counter.
func TestImportMixedDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.json", examplePlanJSON(t))
	writeFile(t, dir, "invalid.json", `{"id": "wrk_missing_everything"}`)
	writeFile(t, dir, "broken.json", `{not json`)
	writeFile(t, dir, "notes.txt", "not a plan")

	imp := New(nil, discardLog(), "alice", true)
	stats, err := imp.Import(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.FilesProcessed != 3 {
		t.Errorf("FilesProcessed = %d, want 3", stats.FilesProcessed)
	}
	if stats.FilesInvalid != 1 {
		t.Errorf("FilesInvalid = %d, want 1", stats.FilesInvalid)
	}
	if stats.FilesErrored != 1 {
		t.Errorf("FilesErrored = %d, want 1", stats.FilesErrored)
	}
	if stats.PlansInserted != 1 {
		t.Errorf("PlansInserted = %d, want 1", stats.PlansInserted)
	}
	if len(stats.InvalidFiles) != 1 || stats.InvalidFiles[0] != "invalid.json" {
		t.Errorf("InvalidFiles = %v, want [invalid.json]", stats.InvalidFiles)
	}
}

// TestImportNestedDirectories verifies that plan files in subdirectories
// are picked up by the walk.
func TestImportNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.json", examplePlanJSON(t))
	writeFile(t, dir, filepath.Join("2025", "august", "deep.json"), examplePlanJSON(t))

	imp := New(nil, discardLog(), "alice", true)
	stats, err := imp.Import(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.FilesProcessed != 2 {
		t.Errorf("FilesProcessed = %d, want 2", stats.FilesProcessed)
	}
	if stats.PlansInserted != 2 {
		t.Errorf("PlansInserted = %d, want 2", stats.PlansInserted)
	}
}

// TestImportEmptyDirectory verifies that an empty directory yields zero
// stats and no error.
func TestImportEmptyDirectory(t *testing.T) {
	imp := New(nil, discardLog(), "alice", true)
	stats, err := imp.Import(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.FilesProcessed != 0 || stats.PlansInserted != 0 {
		t.Errorf("stats = %+v, want all zero", stats)
	}
}

// TestImportMissingDirectory verifies that a nonexistent directory is an
// error rather than a silent zero-stat run.
func TestImportMissingDirectory(t *testing.T) {
	imp := New(nil, discardLog(), "alice", true)
	if _, err := imp.Import(context.Background(), filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
