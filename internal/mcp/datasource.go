package mcp

import (
	"context"
	"encoding/json"

	"github.com/UdayRajVadeghar/aevio-agent/internal/journal"
	"github.com/UdayRajVadeghar/aevio-agent/internal/storage"
)

// PlanStore abstracts plan and profile persistence for MCP tools. Both
// *storage.DB (local) and HTTPClient (remote via REST API) satisfy this
// interface.
type PlanStore interface {
	SavePlan(ctx context.Context, userID string, raw json.RawMessage) (*storage.PlanRecord, error)
	LatestPlan(ctx context.Context, userID string) (*storage.PlanRecord, error)
	GetUserProfile(ctx context.Context, userID string) (json.RawMessage, error)
}

// JournalStore abstracts the long-term fact journal. Both *journal.DB
// (local) and HTTPClient satisfy this interface.
type JournalStore interface {
	Save(ctx context.Context, userID, fact string) (*journal.Entry, error)
	Recent(ctx context.Context, userID string, limit int) ([]journal.Entry, error)
}

// Compile-time checks: the local stores satisfy the interfaces.
var (
	_ PlanStore    = (*storage.DB)(nil)
	_ JournalStore = (*journal.DB)(nil)
)
