package database

import (
	"fmt"

	"github.com/pageza/kcalsnap/backend/internal/model"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all persisted models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Meal{},
		&model.MealItem{},
		&model.DailyLog{},
		&model.UserProfile{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
