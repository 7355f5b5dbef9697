package model

// PerGram holds nutrient coefficients expressed per one gram of food.
type PerGram struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// FoodItem is a catalog entry. The catalog is static reference data,
// loaded once and read-only at runtime; meal items reference entries by
// ID and never copy them.
type FoodItem struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	Aliases             []string           `json:"aliases,omitempty"`
	Category            string             `json:"category,omitempty"`
	PerGram             PerGram            `json:"per_gram"`
	DefaultPortionGrams float64            `json:"default_portion_grams"`
	Portions            map[string]float64 `json:"portions,omitempty"`
	Micros              []string           `json:"micros,omitempty"`
	Source              string             `json:"source,omitempty"`
}
