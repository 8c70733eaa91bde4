package bootstrap

import (
	"context"
	"log"

	"github.com/fraudshield/backend-go/internal/config"
	"github.com/fraudshield/backend-go/internal/database"
	"github.com/fraudshield/backend-go/internal/kafka"
	"github.com/fraudshield/backend-go/internal/logger"
	"github.com/fraudshield/backend-go/internal/storage"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// App encapsulates lifecycle resources that need to be cleaned up on
// shutdown.
type App struct {
	cleanupTasks []func() error
}

// Init bootstraps configuration, logger, database connections and other
// shared infrastructure components required by the application.
func Init() (*App, error) {
	// Load environment variables from .env if present (non-fatal if missing).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if err := logger.InitLogger(); err != nil {
		return nil, err
	}

	if err := config.LoadConfig(); err != nil {
		return nil, err
	}

	app := &App{}

	if _, err := database.InitDB(); err != nil {
		return nil, err
	}
	app.cleanupTasks = append(app.cleanupTasks, func() error {
		return database.CloseDB()
	})

	// Background connection monitoring with retry.
	if sqlDB, err := database.DB.DB(); err == nil {
		checker := database.NewHealthChecker(sqlDB, logrus.New())
		go checker.Start(context.Background())
		app.cleanupTasks = append(app.cleanupTasks, func() error {
			checker.Stop()
			return nil
		})
	}

	// Redis is optional; sessions degrade to token-only auth without it.
	if _, err := database.InitRedis(); err != nil {
		logger.Warn("Failed to initialize Redis", zap.Error(err))
	} else {
		app.cleanupTasks = append(app.cleanupTasks, func() error {
			return database.CloseRedis()
		})
	}

	// Object storage is optional; detection uploads are not archived
	// without it.
	if _, err := storage.InitObjectStore(); err != nil {
		logger.Warn("Failed to initialize object storage", zap.Error(err))
	}

	// Kafka auditing is optional.
	if config.AppConfig.Kafka.Enabled {
		if err := kafka.InitProducer(config.AppConfig.Kafka.Brokers, config.AppConfig.Kafka.Topic); err != nil {
			logger.Warn("Failed to initialize Kafka producer", zap.Error(err))
		} else {
			app.cleanupTasks = append(app.cleanupTasks, kafka.Close)
		}
	}

	if config.AppConfig.AI.APIKey == "" {
		logger.Warn("AI API key not configured, chat replies will fail upstream")
	}
	if config.AppConfig.Detection.APIKey == "" {
		logger.Info("Detection vendor key not configured, running in simulation mode")
	}

	return app, nil
}

// Shutdown flushes logs and closes resources gracefully.
func (a *App) Shutdown() {
	// Execute cleanup tasks in reverse order (best effort).
	for i := len(a.cleanupTasks) - 1; i >= 0; i-- {
		if err := a.cleanupTasks[i](); err != nil {
			log.Printf("Cleanup error: %v\n", err)
		}
	}

	logger.Sync()
}
