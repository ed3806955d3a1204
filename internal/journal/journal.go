// Package journal persists user facts in an embedded sqlite database so
// that later conversations can recall them.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// timeLayout matches sqlite's CURRENT_TIMESTAMP rendering so rows written
// by Save and rows written with the column default read back identically.
const timeLayout = "2006-01-02 15:04:05"

const defaultLimit = 10

// Entry is one remembered fact about a user.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Fact      string    `json:"fact"`
	CreatedAt time.Time `json:"createdAt"`
}

// DB is a handle to the journal database.
type DB struct {
	db *sql.DB
}

// Open creates dir if needed and opens the journal database inside it,
// creating the schema on first use.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}

	dbPath := filepath.Join(dir, "journal.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		fact TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_entries_user ON entries (user_id, created_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating journal schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (j *DB) Close() error {
	return j.db.Close()
}

// Save stores a fact for a user and returns the stored entry.
func (j *DB) Save(ctx context.Context, userID, fact string) (*Entry, error) {
	entry := &Entry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Fact:      fact,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	_, err := j.db.ExecContext(ctx,
		`INSERT INTO entries (id, user_id, fact, created_at) VALUES (?, ?, ?, ?)`,
		entry.ID, entry.UserID, entry.Fact, entry.CreatedAt.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("inserting journal entry: %w", err)
	}
	return entry, nil
}

// Recent returns up to limit entries for a user, newest first. A limit of
// zero or less falls back to a small default.
func (j *DB) Recent(ctx context.Context, userID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := j.db.QueryContext(ctx,
		`SELECT id, user_id, fact, created_at FROM entries
		 WHERE user_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying journal entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Fact, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		e.CreatedAt = parseStoredTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading journal entries: %w", err)
	}
	return entries, nil
}

// parseStoredTime reads timestamps in the column-default format as well as
// RFC 3339, which drivers that report typed time values produce.
func parseStoredTime(s string) time.Time {
	for _, layout := range []string{timeLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// FormatEntries renders entries as numbered blocks for conversational
// display.
func FormatEntries(entries []Entry) string {
	if len(entries) == 0 {
		return "No journal entries found."
	}
	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = fmt.Sprintf("Entry %d (%s):\n%s", i+1, e.CreatedAt.UTC().Format(time.RFC3339), e.Fact)
	}
	return strings.Join(blocks, "\n\n")
}
