package service

import (
	"bytes"
	"io"
	"log"
	"math"
	"testing"

	"github.com/pageza/kcalsnap/backend/internal/catalog"
	"github.com/pageza/kcalsnap/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator(t *testing.T) *CalculatorService {
	t.Helper()
	return NewCalculatorService(catalog.Default(), log.New(io.Discard, "", 0))
}

func TestCalculateRoti(t *testing.T) {
	calc := newTestCalculator(t)

	n, err := calc.Calculate("roti", 40)
	require.NoError(t, err)

	assert.Equal(t, 120, n.Calories)
	assert.Equal(t, 4.0, n.Protein)
	assert.Equal(t, 24.0, n.Carbs)
	assert.Equal(t, 2.0, n.Fat)
	assert.Equal(t, 4.0, n.Fiber)
	assert.Equal(t, model.SourceCatalog, n.SourceDatabase)
}

func TestCalculateUnknownFood(t *testing.T) {
	calc := newTestCalculator(t)

	_, err := calc.Calculate("unknown_id", 100)
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestCalculateInvalidPortion(t *testing.T) {
	calc := newTestCalculator(t)

	for _, grams := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := calc.Calculate("roti", grams)
		assert.ErrorIs(t, err, ErrInvalidPortion, "grams=%v", grams)
	}
}

func TestCalculateDeterminism(t *testing.T) {
	calc := newTestCalculator(t)

	first, err := calc.Calculate("dal_cooked", 150)
	require.NoError(t, err)
	second, err := calc.Calculate("dal_cooked", 150)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateLinearity(t *testing.T) {
	calc := newTestCalculator(t)

	for _, item := range catalog.Default().All() {
		single, err := calc.Calculate(item.ID, 80)
		require.NoError(t, err, "food %s", item.ID)
		double, err := calc.Calculate(item.ID, 160)
		require.NoError(t, err, "food %s", item.ID)

		assert.InDelta(t, 2*single.Calories, double.Calories, 1, "food %s", item.ID)
	}
}

func TestAtwaterBoundAcrossCatalog(t *testing.T) {
	calc := newTestCalculator(t)

	for _, item := range catalog.Default().All() {
		for _, grams := range []float64{25, 100, 250} {
			n, err := calc.Calculate(item.ID, grams)
			require.NoError(t, err, "food %s grams %v", item.ID, grams)

			calories := float64(n.Calories)
			expected := 4*n.Protein + 4*n.Carbs + 9*n.Fat
			if calories < atwaterSkipFloorKcal && expected < atwaterSkipFloorKcal {
				continue
			}
			diff := math.Abs(calories - expected)
			assert.LessOrEqual(t, diff, math.Max(calories*0.2, 20),
				"food %s grams %v calories %d expected %.1f", item.ID, grams, n.Calories, expected)
		}
	}
}

func TestCalculateDataIntegrityFailure(t *testing.T) {
	// A unit-conversion style corruption: calories per gram off by 10x.
	cat, err := catalog.New([]model.FoodItem{{
		ID:                  "bad_row",
		Name:                "Bad Row",
		PerGram:             model.PerGram{Calories: 10.0, Protein: 0.02, Carbs: 0.05, Fat: 0.01},
		DefaultPortionGrams: 100,
	}})
	require.NoError(t, err)

	calc := NewCalculatorService(cat, log.New(io.Discard, "", 0))
	_, err = calc.Calculate("bad_row", 100)
	assert.ErrorIs(t, err, ErrDataIntegrity)
}

func TestCalculateSoftWarningDoesNotFail(t *testing.T) {
	// Deviation lands between the soft and hard bands: warn, don't fail.
	cat, err := catalog.New([]model.FoodItem{{
		ID:                  "fiber_heavy",
		Name:                "Fiber Heavy",
		PerGram:             model.PerGram{Calories: 3.0, Protein: 0.5, Fiber: 0.3},
		DefaultPortionGrams: 100,
	}})
	require.NoError(t, err)

	var buf bytes.Buffer
	calc := NewCalculatorService(cat, log.New(&buf, "", 0))

	n, err := calc.Calculate("fiber_heavy", 100)
	require.NoError(t, err)
	assert.Equal(t, 300, n.Calories)
	assert.Contains(t, buf.String(), "warning")
}

func TestCalculateZeroCalorieItem(t *testing.T) {
	calc := newTestCalculator(t)

	n, err := calc.Calculate("water", 250)
	require.NoError(t, err)
	assert.Equal(t, 0, n.Calories)
	assert.Zero(t, n.Protein)
	assert.Zero(t, n.Fat)
}
