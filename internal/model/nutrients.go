package model

import (
	"database/sql/driver"
	"encoding/json"
)

// Provenance values for a Nutrients record.
const (
	SourceCatalog     = "catalog"
	SourceAIEstimated = "ai_estimated"
	SourceCustom      = "custom"
)

// StringArray is a custom type for storing string slices as JSON columns.
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if err := json.Unmarshal(bytes, a); err != nil {
		return err
	}
	if len(*a) == 0 {
		*a = nil
	}
	return nil
}

// Nutrients is a computed nutrient breakdown. Calories are whole kcal,
// macros are grams rounded to one decimal place. Micros holds free-text
// micronutrient annotations, deduplicated by exact string match.
type Nutrients struct {
	Calories       int         `gorm:"not null" json:"calories"`
	Protein        float64     `gorm:"not null" json:"protein"`
	Carbs          float64     `gorm:"not null" json:"carbs"`
	Fat            float64     `gorm:"not null" json:"fat"`
	Fiber          float64     `gorm:"not null" json:"fiber"`
	Micros         StringArray `gorm:"type:json" json:"micros,omitempty"`
	SourceDatabase string      `gorm:"size:32" json:"source_database,omitempty"`
}

// NutritionTargets holds daily calorie and macro goals. They live on the
// user profile and are snapshotted onto each day's log.
type NutritionTargets struct {
	Calories int         `json:"calories"`
	Protein  float64     `json:"protein"`
	Carbs    float64     `json:"carbs"`
	Fat      float64     `json:"fat"`
	Fiber    float64     `json:"fiber"`
	Micros   StringArray `gorm:"type:json" json:"micros,omitempty"`
}
