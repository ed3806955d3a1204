// Package server provides the HTTP API for plan validation and the
// per-user plan, profile, and journal stores.
package server

import (
	"log/slog"
	"net/http"

	"github.com/UdayRajVadeghar/aevio-agent/internal/journal"
	"github.com/UdayRajVadeghar/aevio-agent/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db      *storage.DB
	journal *journal.DB
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, jnl *journal.DB, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:      db,
		journal: jnl,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Stateless plan operations (no auth, they touch no stored data)
	s.router.Route("/api/v1/plans", func(r chi.Router) {
		r.Post("/validate", s.handleValidatePlan)
		r.Post("/format", s.handleFormatPlan)
		r.Post("/diff", s.handleDiffPlans)
		r.Post("/ids", s.handleGenerateIDs)
	})

	// Per-user stores (API key required)
	s.router.Route("/api/v1/users/{userID}", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/plans", s.handleSavePlan)
		r.Get("/plans", s.handleListPlans)
		r.Get("/plans/latest", s.handleLatestPlan)
		r.Get("/profile", s.handleGetProfile)
		r.Post("/journal", s.handleSaveJournalEntry)
		r.Get("/journal", s.handleListJournalEntries)
	})
}
