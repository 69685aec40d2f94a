package database

import (
	"fmt"
	"log"

	"github.com/arturxdev/interview-helper/internal/config"
	"github.com/arturxdev/interview-helper/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the results database. It returns nil when results are disabled
// or the database cannot be reached, so practice keeps working without history.
func Connect(cfg *config.Config) *gorm.DB {
	if !cfg.ResultsEnabled {
		log.Println("database: results disabled")
		return nil
	}

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("database: failed to connect, results disabled: %v", err)
		return nil
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	if db == nil {
		return
	}
	if err := db.AutoMigrate(&models.PracticeResult{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	log.Println("database migrated")
}
