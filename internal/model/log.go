package model

import (
	"time"
)

// DailyLog is the per-day aggregate, keyed by the local calendar date of
// the meals it covers. Totals are a cached sum of the day's meal totals;
// Targets are the snapshot of the goals active that day. Meals are loaded
// by date key, not stored on the row.
type DailyLog struct {
	ID        uint             `gorm:"primarykey" json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DateKey   string           `gorm:"size:10;uniqueIndex;not null" json:"date_key"`
	Totals    Nutrients        `gorm:"embedded;embeddedPrefix:total_" json:"totals"`
	Targets   NutritionTargets `gorm:"embedded;embeddedPrefix:target_" json:"targets"`
	Meals     []Meal           `gorm:"-" json:"meals"`
}

// UserProfile holds the active nutrition targets. Single-user deployment,
// so at most one row exists.
type UserProfile struct {
	ID        uint             `gorm:"primarykey" json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	Targets   NutritionTargets `gorm:"embedded;embeddedPrefix:target_" json:"targets"`
}
