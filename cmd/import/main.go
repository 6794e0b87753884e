package main

import (
	"context"
	"log"
	"os"

	"compliance-audit-be/internal/config"
	"compliance-audit-be/internal/dto"
	"compliance-audit-be/internal/pkg/logger"
	"compliance-audit-be/internal/repository/unitofwork"
	"compliance-audit-be/internal/service"
	"compliance-audit-be/pkg/database"
	"compliance-audit-be/pkg/extractor"

	"github.com/fatih/color"
)

// Imports every markdown regulation from the configured directory. Pass a
// directory as the first argument to override REGULATION_IMPORT_DIR.
func main() {
	cfg := config.Load()

	dir := cfg.Ingestion.ImportDir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer sysLogger.Sync()

	// No publisher here: the CLI import links rules explicitly via the
	// seed command instead of the background consumer.
	ingestion := service.NewIngestionService(uowFactory, nil, extractor.Extract, sysLogger)

	log.Printf("Importing regulations from %s ...", dir)
	report, err := ingestion.ImportDirectory(context.Background(), dir)
	if err != nil {
		log.Fatal("Error: import failed:", err)
	}

	for _, result := range report.Results {
		switch result.Status {
		case dto.ImportStatusImported:
			color.Green("✓ %s (%d clauses)", result.File, result.ClauseCount)
		case dto.ImportStatusSkipped:
			color.Yellow("- %s: %s", result.File, result.Reason)
		default:
			color.Red("✗ %s: %s", result.File, result.Reason)
		}
	}

	log.Printf("Done: %d imported, %d skipped, %d failed", report.Imported, report.Skipped, report.Failed)
}
