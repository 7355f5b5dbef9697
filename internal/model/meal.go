package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Meal type tags.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// Confidence tags for a resolved meal item.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Entry origins for a meal item.
const (
	OriginManual = "manual"
	OriginAI     = "ai"
	OriginScan   = "scan"
)

// Meal is a timestamped collection of meal items with a cached total.
// Immutable once persisted, except for deletion.
type Meal struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Type      string     `gorm:"size:16;not null" json:"type"`
	AteAt     time.Time  `gorm:"not null" json:"ate_at"`
	DateKey   string     `gorm:"size:10;index;not null" json:"date_key"`
	Items     []MealItem `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"items"`
	Totals    Nutrients  `gorm:"embedded;embeddedPrefix:total_" json:"totals"`
}

// BeforeCreate assigns an ID when one was not supplied.
func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MealItem is one resolved food entry within a meal. FoodID references a
// catalog entry for catalog-derived items and is empty for AI-estimated
// fallbacks. Metadata keeps the raw upstream candidate for auditing.
type MealItem struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	MealID     uuid.UUID      `gorm:"type:uuid;index;not null" json:"meal_id"`
	FoodID     string         `gorm:"size:64" json:"food_id,omitempty"`
	Label      string         `gorm:"size:255;not null" json:"label"`
	Grams      float64        `gorm:"not null" json:"grams"`
	Nutrients  Nutrients      `gorm:"embedded" json:"nutrients"`
	Confidence string         `gorm:"size:8;not null" json:"confidence"`
	Origin     string         `gorm:"size:8;not null" json:"origin"`
	Metadata   datatypes.JSON `json:"metadata,omitempty"`
}
