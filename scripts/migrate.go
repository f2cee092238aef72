package main

import (
	"context"
	"log"

	"campus-event-catalog/internal/config"
	"campus-event-catalog/internal/models"
	"campus-event-catalog/internal/repositories"
	"campus-event-catalog/internal/seed"
	"campus-event-catalog/internal/services"
	"campus-event-catalog/pkg/database"
	"campus-event-catalog/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Load configuration
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.Env)

	// Initialize database
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// Run migrations
	if err := repositories.AutoMigrate(db); err != nil {
		log.Fatalf("Migration error: %v", err)
	}

	log.Println("Database migrations completed successfully")

	// Seed the catalog slot if it does not exist yet
	clock := services.SystemClock(cfg.Location())
	repo := repositories.NewRepository(repositories.NewGormSlotStore(db), repositories.Seeds{
		Events: func() []models.Event { return seed.Events(clock()) },
		Users:  func() []models.User { return seed.Users(cfg.InstitutionDomain) },
	})

	events, version, err := repo.EventRepo.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Printf("Catalog ready: %d events (slot version %d)", len(events), version)
}
