package service

import (
	"math"

	"github.com/pageza/kcalsnap/backend/internal/model"
)

// Macro sums are carried in an integer centi-gram domain. Repeated float
// addition of one-decimal quantities (0.1 + 0.2 ...) accumulates visible
// error over many meals; scaled integer addition does not.
const centiScale = 100

func toCenti(v float64) int64 {
	return int64(math.Round(v * centiScale))
}

func fromCenti(n int64) float64 {
	return float64(n) / centiScale
}

// addNutrients returns a+b with drift-free macro arithmetic and the
// micronutrient lists unioned. Calories are integers and add directly.
func addNutrients(a, b model.Nutrients) model.Nutrients {
	return model.Nutrients{
		Calories: a.Calories + b.Calories,
		Protein:  fromCenti(toCenti(a.Protein) + toCenti(b.Protein)),
		Carbs:    fromCenti(toCenti(a.Carbs) + toCenti(b.Carbs)),
		Fat:      fromCenti(toCenti(a.Fat) + toCenti(b.Fat)),
		Fiber:    fromCenti(toCenti(a.Fiber) + toCenti(b.Fiber)),
		Micros:   unionMicros(a.Micros, b.Micros),
	}
}

// sumNutrients is the full-recompute path: a from-scratch sum over every
// record. Used on delete, where correctness beats the cost of re-summing.
func sumNutrients(records []model.Nutrients) model.Nutrients {
	var calories int
	var protein, carbs, fat, fiber int64
	micros := model.StringArray{}
	for _, r := range records {
		calories += r.Calories
		protein += toCenti(r.Protein)
		carbs += toCenti(r.Carbs)
		fat += toCenti(r.Fat)
		fiber += toCenti(r.Fiber)
		micros = unionMicros(micros, r.Micros)
	}
	return model.Nutrients{
		Calories: calories,
		Protein:  fromCenti(protein),
		Carbs:    fromCenti(carbs),
		Fat:      fromCenti(fat),
		Fiber:    fromCenti(fiber),
		Micros:   micros,
	}
}

// unionMicros merges annotation lists, deduplicating by exact string
// match and preserving first-seen order.
func unionMicros(a, b model.StringArray) model.StringArray {
	out := model.StringArray{}
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, list := range []model.StringArray{a, b} {
		for _, m := range list {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}
