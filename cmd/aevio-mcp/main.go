package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/UdayRajVadeghar/aevio-agent/internal/config"
	"github.com/UdayRajVadeghar/aevio-agent/internal/journal"
	"github.com/UdayRajVadeghar/aevio-agent/internal/mcp"
	"github.com/UdayRajVadeghar/aevio-agent/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	serverURL := flag.String("server", "", "Aevio server URL; when set, store calls go through the REST API instead of a local database")
	apiKey := flag.String("api-key", "", "API key for the REST API (remote mode)")
	user := flag.String("user", "", "user ID this session's plans and journal entries are scoped to")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("aevio-mcp", Version)
		return
	}

	// stdout carries the JSON-RPC stream, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var (
		store mcp.PlanStore
		jnl   mcp.JournalStore
	)

	if *serverURL != "" {
		client := mcp.NewHTTPClient(*serverURL, *apiKey)
		store, jnl = client, client
		log.Info("remote mode", "server", *serverURL)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		// Local mode assumes a provisioned database; schema changes are
		// applied by the aevio server binary.
		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		j, err := journal.Open(cfg.Journal.Dir)
		if err != nil {
			log.Error("failed to open journal", "error", err)
			os.Exit(1)
		}
		defer j.Close()

		store, jnl = db, j
		log.Info("local mode", "database", cfg.Database.Name, "journal", cfg.Journal.Dir)
	}

	s := mcp.New(store, jnl, Version, log)

	log.Info("Aevio MCP server starting", "version", Version)
	err := server.ServeStdio(s, server.WithStdioContextFunc(func(ctx context.Context) context.Context {
		if *user != "" {
			return mcp.WithUserID(ctx, *user)
		}
		return ctx
	}))
	if err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
