package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetUserProfile returns the stored profile document for a user, or
// ErrNotFound when none exists.
func (db *DB) GetUserProfile(ctx context.Context, userID string) (json.RawMessage, error) {
	var raw json.RawMessage
	err := db.Pool.QueryRow(ctx,
		`SELECT profile FROM user_profiles WHERE user_id = $1`, userID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user profile: %w", err)
	}
	return raw, nil
}
