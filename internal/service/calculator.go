package service

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/pageza/kcalsnap/backend/internal/catalog"
	"github.com/pageza/kcalsnap/backend/internal/model"
)

var (
	// ErrFoodNotFound means the food id does not exist in the catalog.
	ErrFoodNotFound = errors.New("food not found in catalog")
	// ErrInvalidPortion means the portion weight is not a positive number.
	ErrInvalidPortion = errors.New("portion must be a positive number of grams")
	// ErrDataIntegrity means the computed breakdown grossly violates the
	// calorie/macro relationship and must not be used.
	ErrDataIntegrity = errors.New("nutrient data failed integrity check")
)

// Atwater sanity-check policy: calories should approximate
// 4*protein + 4*carbs + 9*fat. Deviations beyond the soft band are
// logged; beyond the hard band the calculation fails.
const (
	atwaterSkipFloorKcal = 10.0
	atwaterSoftPct       = 0.2
	atwaterSoftFloorKcal = 20.0
	atwaterHardPct       = 0.5
	atwaterHardFloorKcal = 50.0
)

// CalculatorService converts a food id and a portion weight into a
// verified nutrient breakdown.
type CalculatorService struct {
	catalog *catalog.Catalog
	logger  *log.Logger
}

// NewCalculatorService creates a new CalculatorService instance.
func NewCalculatorService(cat *catalog.Catalog, logger *log.Logger) *CalculatorService {
	if logger == nil {
		logger = log.Default()
	}
	return &CalculatorService{catalog: cat, logger: logger}
}

// Calculate computes the nutrient breakdown for grams of the given food.
// Rounding (whole kcal, one-decimal macros) is applied exactly once here;
// downstream aggregation never re-rounds per-item values.
func (s *CalculatorService) Calculate(foodID string, grams float64) (model.Nutrients, error) {
	item, ok := s.catalog.Get(foodID)
	if !ok {
		return model.Nutrients{}, fmt.Errorf("%w: %q", ErrFoodNotFound, foodID)
	}
	if math.IsNaN(grams) || math.IsInf(grams, 0) || grams <= 0 {
		return model.Nutrients{}, fmt.Errorf("%w: got %v", ErrInvalidPortion, grams)
	}

	n := model.Nutrients{
		Calories:       int(math.Round(item.PerGram.Calories * grams)),
		Protein:        roundTenth(item.PerGram.Protein * grams),
		Carbs:          roundTenth(item.PerGram.Carbs * grams),
		Fat:            roundTenth(item.PerGram.Fat * grams),
		Fiber:          roundTenth(item.PerGram.Fiber * grams),
		Micros:         append(model.StringArray{}, item.Micros...),
		SourceDatabase: model.SourceCatalog,
	}

	if err := s.checkAtwater(foodID, n); err != nil {
		return model.Nutrients{}, err
	}
	return n, nil
}

// checkAtwater validates the calorie/macro relationship. Near-zero items
// (water, black coffee) are trivially valid.
func (s *CalculatorService) checkAtwater(foodID string, n model.Nutrients) error {
	calories := float64(n.Calories)
	expected := 4*n.Protein + 4*n.Carbs + 9*n.Fat
	if calories < atwaterSkipFloorKcal && expected < atwaterSkipFloorKcal {
		return nil
	}

	diff := math.Abs(calories - expected)
	hard := math.Max(calories*atwaterHardPct, atwaterHardFloorKcal)
	if diff > hard {
		return fmt.Errorf("%w: food %q calories=%d expected=%.1f", ErrDataIntegrity, foodID, n.Calories, expected)
	}

	soft := math.Max(calories*atwaterSoftPct, atwaterSoftFloorKcal)
	if diff > soft {
		s.logger.Printf("warning: food %q calories=%d deviate from macro estimate %.1f kcal", foodID, n.Calories, expected)
	}
	return nil
}

// roundTenth rounds to one decimal place.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
