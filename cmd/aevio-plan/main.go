package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/UdayRajVadeghar/aevio-agent/internal/config"
	"github.com/UdayRajVadeghar/aevio-agent/internal/importer"
	"github.com/UdayRajVadeghar/aevio-agent/internal/plan"
	"github.com/UdayRajVadeghar/aevio-agent/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "validate":
		runValidate(args)
	case "format":
		runFormat(args)
	case "diff":
		runDiff(args)
	case "ids":
		runIDs(args)
	case "import":
		runImport(args)
	case "version":
		fmt.Println("aevio-plan", Version)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: aevio-plan <command> [arguments]

Commands:
  validate <file>            check a plan document and report issues
  format <file>              render a plan document as review text
  diff <original> <updated>  report changes between two plan documents
  ids [flags]                pre-generate an ID set for a plan shape
  import [flags]             import plan files into the database
  version                    print version and exit
`)
}

func runValidate(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: aevio-plan validate <file>")
		os.Exit(1)
	}

	res := validateFile(args[0])
	if res.Valid {
		stats := plan.Stats(res.Plan)
		fmt.Printf("VALID: %s (%q)\n", res.Plan.ID, res.Plan.Name)
		fmt.Printf("  %d phase(s), %d week(s), %d day(s), %d exercise(s)\n",
			stats.Phases, stats.Weeks, stats.Days, stats.Exercises)
		printIssues("warning", res.Warnings)
		return
	}

	fmt.Printf("INVALID: %d error(s)\n", len(res.Errors))
	printIssues("error", res.Errors)
	printIssues("warning", res.Warnings)
	os.Exit(1)
}

func runFormat(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: aevio-plan format <file>")
		os.Exit(1)
	}

	res := validateFile(args[0])
	if !res.Valid {
		fmt.Fprintf(os.Stderr, "plan is invalid, %d error(s):\n", len(res.Errors))
		for _, issue := range res.Errors {
			fmt.Fprintln(os.Stderr, "  "+issue.String())
		}
		os.Exit(1)
	}

	fmt.Println(plan.Format(res.Plan))
}

func runDiff(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: aevio-plan diff <original> <updated>")
		os.Exit(1)
	}

	original := readFile(args[0])
	updated := readFile(args[1])

	summary, err := plan.DiffSummary(original, updated)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(summary)
}

func runIDs(args []string) {
	fs := flag.NewFlagSet("ids", flag.ExitOnError)
	phases := fs.Int("phases", 1, "number of phases")
	weeks := fs.Int("weeks", 4, "weeks per phase")
	days := fs.Int("days", 5, "days per week")
	blocks := fs.Int("blocks", 3, "blocks per day")
	exercises := fs.Int("exercises", 3, "exercises per block")
	fs.Parse(args)

	if *phases < 1 || *weeks < 1 || *days < 1 || *blocks < 1 || *exercises < 1 {
		fmt.Fprintln(os.Stderr, "error: all counts must be at least 1")
		os.Exit(1)
	}

	ids := plan.GenerateIDSet(plan.IDShape{
		Phases:            *phases,
		WeeksPerPhase:     *weeks,
		DaysPerWeek:       *days,
		BlocksPerDay:      *blocks,
		ExercisesPerBlock: *exercises,
	})

	out, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func runImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to config file")
	dir := fs.String("path", "", "directory of plan .json files (required)")
	user := fs.String("user", "default_user", "user ID imported plans belong to")
	dryRun := fs.Bool("dry-run", false, "validate and count without inserting into database")
	fs.Parse(args)

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Usage: aevio-plan import -path /path/to/plans [-config config.yaml] [-user id] [-dry-run]")
		fs.PrintDefaults()
		os.Exit(1)
	}

	info, err := os.Stat(*dir)
	if err != nil || !info.IsDir() {
		log.Error("plan directory does not exist or is not a directory", "path", *dir)
		os.Exit(1)
	}

	ctx := context.Background()

	// Dry runs never touch the database, so skip config and connection.
	var db *storage.DB
	if *dryRun {
		log.Info("DRY RUN mode, no plans will be written to the database")
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		dsn := cfg.Database.DSN()
		if err := storage.RunMigrations(dsn, "migrations"); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("migrations applied")

		db, err = storage.New(ctx, dsn)
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		log.Info("database connected")
	}

	imp := importer.New(db, log, *user, *dryRun)
	stats, err := imp.Import(ctx, *dir)
	if err != nil {
		log.Error("import failed", "error", err)
		printStats(stats)
		os.Exit(1)
	}

	printStats(stats)
	log.Info("import complete")
}

func printStats(stats *importer.Stats) {
	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("  Files processed:  %d\n", stats.FilesProcessed)
	fmt.Printf("  Files invalid:    %d\n", stats.FilesInvalid)
	fmt.Printf("  Files errored:    %d\n", stats.FilesErrored)
	fmt.Printf("  Plans inserted:   %d\n", stats.PlansInserted)

	if len(stats.InvalidFiles) > 0 {
		fmt.Printf("\n  Invalid files:\n")
		for _, f := range stats.InvalidFiles {
			fmt.Printf("    - %s\n", f)
		}
	}
	fmt.Println()
}

// validateFile reads and validates one plan document, exiting on
// malformed input.
func validateFile(path string) *plan.Result {
	res, err := plan.Validate(readFile(path))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	return res
}

func readFile(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	return data
}

func printIssues(kind string, issues []plan.Issue) {
	for _, issue := range issues {
		fmt.Printf("  %s: %s\n", kind, issue.String())
	}
}
