package main

import (
	"context"
	"log"
	"os"

	"compliance-audit-be/internal/constant"
	"compliance-audit-be/internal/pkg/logger"
	"compliance-audit-be/internal/repository/unitofwork"
	"compliance-audit-be/internal/service"
	"compliance-audit-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	logPath := os.Getenv("LOG_FILE_PATH")
	if logPath == "" {
		logPath = "logs/app.log"
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(logPath, false)
	defer sysLogger.Sync()

	seeder := service.NewRuleSeederService(uowFactory, sysLogger)

	log.Println("Seeding auditor roles...")
	if err := seeder.SeedRoles(ctx, constant.SeedRoles); err != nil {
		color.Red("✗ role seeding failed: %v", err)
		os.Exit(1)
	}
	color.Green("✓ %d auditor roles ensured", len(constant.SeedRoles))

	log.Println("Seeding document types...")
	if err := seeder.SeedDocumentTypes(ctx, constant.SeedDocumentTypes); err != nil {
		color.Red("✗ document type seeding failed: %v", err)
		os.Exit(1)
	}
	color.Green("✓ %d document types ensured", len(constant.SeedDocumentTypes))

	log.Println("Seeding audit rules from exemplar keywords...")
	created, err := seeder.SeedRules(ctx, constant.SeedRuleMappings, service.DefaultSeedOptions())
	if err != nil {
		color.Red("✗ rule seeding failed: %v", err)
		os.Exit(1)
	}
	color.Green("✓ %d audit rules created", created)

	log.Println("Seeding completed!")
}
