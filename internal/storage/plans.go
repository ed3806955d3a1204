package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const defaultListLimit = 20

// PlanRecord is one persisted plan document.
type PlanRecord struct {
	ID        uuid.UUID       `json:"id"`
	UserID    string          `json:"userId"`
	RawPlan   json.RawMessage `json:"rawPlan"`
	CreatedAt time.Time       `json:"createdAt"`
}

// SavePlan inserts a plan document for a user and returns the stored row
// with its server-assigned creation time. Validating the document is the
// caller's job.
func (db *DB) SavePlan(ctx context.Context, userID string, raw json.RawMessage) (*PlanRecord, error) {
	var rec PlanRecord
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO plans (id, user_id, raw_plan)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, raw_plan, created_at
	`, uuid.New(), userID, raw).Scan(&rec.ID, &rec.UserID, &rec.RawPlan, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting plan: %w", err)
	}
	return &rec, nil
}

// LatestPlan returns the most recently saved plan for a user, or
// ErrNotFound when the user has none.
func (db *DB) LatestPlan(ctx context.Context, userID string) (*PlanRecord, error) {
	var rec PlanRecord
	err := db.Pool.QueryRow(ctx, `
		SELECT id, user_id, raw_plan, created_at
		FROM plans
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID).Scan(&rec.ID, &rec.UserID, &rec.RawPlan, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying latest plan: %w", err)
	}
	return &rec, nil
}

// ListPlans returns up to limit plans for a user, newest first, or
// ErrNotFound when the user has none. A limit of zero or less falls back
// to a small default.
func (db *DB) ListPlans(ctx context.Context, userID string, limit int) ([]PlanRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := db.Pool.Query(ctx, `
		SELECT id, user_id, raw_plan, created_at
		FROM plans
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	var result []PlanRecord
	for rows.Next() {
		var rec PlanRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.RawPlan, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading plans: %w", err)
	}
	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result, nil
}
