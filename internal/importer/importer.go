// Package importer loads plan documents from disk into the plan store.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/UdayRajVadeghar/aevio-agent/internal/plan"
	"github.com/UdayRajVadeghar/aevio-agent/internal/storage"
)

// Stats tracks import progress.
type Stats struct {
	FilesProcessed int
	FilesInvalid   int
	FilesErrored   int
	PlansInserted  int

	InvalidFiles []string
}

// Importer reads .json plan files from a directory tree and inserts the
// ones that validate.
type Importer struct {
	db     *storage.DB
	log    *slog.Logger
	userID string
	dryRun bool
	stats  Stats
}

// New creates a new Importer. In dry-run mode files are validated and
// counted but nothing is written.
func New(db *storage.DB, log *slog.Logger, userID string, dryRun bool) *Importer {
	return &Importer{db: db, log: log, userID: userID, dryRun: dryRun}
}

// Import walks dir and processes every .json file under it. It keeps
// going past unreadable or invalid files and stops only when the store
// rejects an insert.
func (imp *Importer) Import(ctx context.Context, dir string) (*Stats, error) {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		return imp.importFile(ctx, path)
	})
	if err != nil {
		return &imp.stats, fmt.Errorf("walking %s: %w", dir, err)
	}
	return &imp.stats, nil
}

// importFile validates a single plan file and inserts it unless the run
// is dry. Read and validation failures are counted, not fatal.
func (imp *Importer) importFile(ctx context.Context, path string) error {
	imp.stats.FilesProcessed++
	base := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		imp.log.Warn("read failed", "file", base, "error", err)
		imp.stats.FilesErrored++
		return nil
	}

	res, err := plan.Validate(data)
	if err != nil {
		imp.log.Warn("parse failed", "file", base, "error", err)
		imp.stats.FilesErrored++
		return nil
	}

	if !res.Valid {
		imp.log.Info("skipping invalid plan", "file", base, "errors", len(res.Errors))
		imp.stats.FilesInvalid++
		imp.stats.InvalidFiles = append(imp.stats.InvalidFiles, base)
		return nil
	}

	if imp.dryRun {
		imp.stats.PlansInserted++
		return nil
	}

	if _, err := imp.db.SavePlan(ctx, imp.userID, json.RawMessage(data)); err != nil {
		return fmt.Errorf("inserting plan from %s: %w", base, err)
	}
	imp.stats.PlansInserted++
	return nil
}
