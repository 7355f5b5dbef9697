package database

import (
	"fmt"
	"log"

	"github.com/pageza/kcalsnap/backend/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the embedded SQLite database for the given configuration.
func New(cfg *config.Config) (*gorm.DB, error) {
	log.Printf("Opening database at %s", cfg.DBPath)

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Single-writer embedded store; one connection avoids SQLITE_BUSY
	// during transactional read-modify-write cycles.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error accessing database pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
