package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"aiseek/internal/config"
	"aiseek/internal/console"
	"aiseek/internal/logging"
	"aiseek/internal/repository"
	"aiseek/internal/service"

	log "github.com/sirupsen/logrus"
)

func main() {
	// Define subcommands
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: scores_YYYYMMDD_HHMMSS.json)")

	// Import flags
	importInput := importCmd.String("input", "", "Input file path (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()
	if err := logging.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	ctx := context.Background()
	scores, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open score store: %v", err)
	}
	defer scores.Close()

	scoreService := service.NewScoreService(scores)

	switch os.Args[1] {
	case "list":
		listCmd.Parse(os.Args[2:])
		handleList(ctx, scoreService)

	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(ctx, scoreService, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(ctx, scoreService, *importInput)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleList(ctx context.Context, scoreService *service.ScoreService) {
	entries, err := scoreService.List(ctx)
	if err != nil {
		log.Fatalf("Failed to read scores: %v", err)
	}
	for i, e := range entries {
		fmt.Printf("%3d  %-12s %-7s %s\n", i+1, e.Word, e.Difficulty, e.Date)
	}

	summary, err := scoreService.Summary(ctx)
	if err != nil {
		log.Fatalf("Failed to summarise scores: %v", err)
	}
	console.RenderSummary(os.Stdout, summary)
}

func handleExport(ctx context.Context, scoreService *service.ScoreService, outputPath string) {
	// Generate default filename if not provided
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("scores_%s.json", timestamp)
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	if err := scoreService.Export(ctx, outputPath); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
}

func handleImport(ctx context.Context, scoreService *service.ScoreService, inputPath string) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		log.Fatalf("Input file does not exist: %s", inputPath)
	}

	if err := scoreService.Import(ctx, inputPath); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
}

func printUsage() {
	fmt.Println("AI SEEK Score Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  scores list                List won games and totals")
	fmt.Println("  scores export [options]    Export the score log to a JSON file")
	fmt.Println("  scores import [options]    Append scores from a JSON export file")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: scores_YYYYMMDD_HHMMSS.json)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  SCORE_STORE      file, sqlite, postgres, mysql or redis (default: file)")
	fmt.Println("  SCORES_PATH      Score file path (default: ./hangman_scores.json)")
	fmt.Println("  DB_PATH          SQLite database path (default: ./hangman.db)")
	fmt.Println("  DATABASE_URL     PostgreSQL or MySQL connection URL")
	fmt.Println("  REDIS_ADDR       Redis address for the redis store")
}
