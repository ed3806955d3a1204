package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// defaultUserID scopes data when the transport injects no user.
const defaultUserID = "default_user"

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok && id != "" {
		return id
	}
	return defaultUserID
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(store PlanStore, jnl JournalStore, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Aevio", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Aevio workout planning server. Generate plan IDs, validate and format plan documents, diff revisions, and manage saved plans, user profiles, and journal facts. All data is scoped to the session user."),
	)

	h := &handlers{store: store, journal: jnl, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetCurrentDatetime, Handler: h.getCurrentDatetime},
		server.ServerTool{Tool: toolGeneratePlanIDs, Handler: h.generatePlanIDs},
		server.ServerTool{Tool: toolGetPlanSchema, Handler: h.getPlanSchema},
		server.ServerTool{Tool: toolValidatePlan, Handler: h.validatePlan},
		server.ServerTool{Tool: toolFormatPlan, Handler: h.formatPlan},
		server.ServerTool{Tool: toolDiffPlans, Handler: h.diffPlans},
		server.ServerTool{Tool: toolSavePlan, Handler: h.savePlan},
		server.ServerTool{Tool: toolGetLatestPlan, Handler: h.getLatestPlan},
		server.ServerTool{Tool: toolFetchUserProfile, Handler: h.fetchUserProfile},
		server.ServerTool{Tool: toolSaveJournalEntry, Handler: h.saveJournalEntry},
		server.ServerTool{Tool: toolGetJournalEntries, Handler: h.getJournalEntries},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resPlanSchema, Handler: h.planSchema},
		server.ServerResource{Resource: resExamplePlan, Handler: h.examplePlan},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	store   PlanStore
	journal JournalStore
	log     *slog.Logger
}

// --- Resource definitions ---

var resPlanSchema = mcp.NewResource(
	"aevio://plan_schema",
	"Plan Schema Guide",
	mcp.WithResourceDescription("Plan document schema with generation rules, a complete example, and ID formats"),
	mcp.WithMIMEType("text/plain"),
)

var resExamplePlan = mcp.NewResource(
	"aevio://example_plan",
	"Example Plan",
	mcp.WithResourceDescription("A compact valid plan document exercising every structural level"),
	mcp.WithMIMEType("application/json"),
)
