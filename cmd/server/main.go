package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"campus-event-catalog/internal/config"
	"campus-event-catalog/internal/handlers"
	"campus-event-catalog/internal/models"
	"campus-event-catalog/internal/repositories"
	"campus-event-catalog/internal/seed"
	"campus-event-catalog/internal/services"
	"campus-event-catalog/pkg/database"
	"campus-event-catalog/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
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

	// Initialize logger
	logger.Init(cfg.LogLevel, cfg.Env)

	// Initialize slot storage
	slots, cleanup, err := newSlotStore(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("storage initialization failed")
	}
	defer cleanup()

	clock := services.SystemClock(cfg.Location())

	// Initialize repositories
	repo := repositories.NewRepository(slots, repositories.Seeds{
		Events: func() []models.Event { return seed.Events(clock()) },
		Users:  func() []models.User { return seed.Users(cfg.InstitutionDomain) },
	})

	// Initialize services
	authSvc := services.NewAuthService(repo, cfg, clock)
	eventSvc := services.NewEventService(repo, clock)

	// Initialize handlers
	handler := handlers.NewHandler(authSvc, eventSvc, cfg)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Campus Event Catalog API",
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Register routes
	api := app.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logrus.WithFields(logrus.Fields{
			"addr":    addr,
			"storage": cfg.StorageDriver,
		}).Info("server starting")
		if err := app.Listen(addr); err != nil {
			logrus.WithError(err).Fatal("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server")

	if err := app.Shutdown(); err != nil {
		logrus.WithError(err).Error("server shutdown error")
	}
	logrus.Info("server stopped gracefully")
}

func newSlotStore(cfg *config.Config) (repositories.SlotStore, func(), error) {
	switch cfg.StorageDriver {
	case "postgres":
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.AutoMigrate(db); err != nil {
			return nil, nil, fmt.Errorf("migration error: %w", err)
		}
		cleanup := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return repositories.NewGormSlotStore(db), cleanup, nil
	case "redis":
		rdb, err := database.NewRedisClient(cfg)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewRedisSlotStore(rdb), func() { rdb.Close() }, nil
	default:
		return repositories.NewMemorySlotStore(), func() {}, nil
	}
}
