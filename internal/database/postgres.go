package database

import (
	"fmt"
	"log"

	"github.com/fraudshield/backend-go/internal/config"
	"github.com/fraudshield/backend-go/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB() (*gorm.DB, error) {
	cfg := config.AppConfig
	if cfg == nil {
		return nil, fmt.Errorf("config not loaded")
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := autoMigrate(db); err != nil {
		log.Printf("database migration warning: %v", err)
	}

	DB = db
	return db, nil
}

// autoMigrate creates the application tables in dependency order.
// Messages carry an ON DELETE CASCADE foreign key so deleting a
// conversation removes its thread.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Conversation{},
		&models.Message{},
		&models.GameQuestion{},
		&models.GameScore{},
		&models.ScamReport{},
		&models.DetectionRecord{},
		&models.SafetyEffect{},
		&models.MentalEffect{},
		&models.RealStory{},
	)
}

func CloseDB() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
