package catalog

import "github.com/pageza/kcalsnap/backend/internal/model"

// seedFoods is the bundled reference set. Coefficients are per gram;
// portion presets use common household measures.
var seedFoods = []model.FoodItem{
	{
		ID:      "roti",
		Name:    "Roti",
		Aliases: []string{"chapati", "phulka", "whole wheat flatbread"},
		Category: "grains",
		PerGram: model.PerGram{Calories: 3.0, Protein: 0.10, Carbs: 0.60, Fat: 0.05, Fiber: 0.10},
		DefaultPortionGrams: 40,
		Portions:            map[string]float64{"1 roti": 40, "2 rotis": 80},
		Micros:              []string{"iron", "b-vitamins"},
		Source:              model.SourceCatalog,
	},
	{
		ID:      "rice_cooked",
		Name:    "Steamed Rice",
		Aliases: []string{"cooked rice", "white rice", "chawal"},
		Category: "grains",
		PerGram: model.PerGram{Calories: 1.30, Protein: 0.024, Carbs: 0.28, Fat: 0.003, Fiber: 0.004},
		DefaultPortionGrams: 150,
		Portions:            map[string]float64{"1 katori": 150, "1 cup": 160},
		Source:              model.SourceCatalog,
	},
	{
		ID:      "dal_cooked",
		Name:    "Dal",
		Aliases: []string{"toor dal", "lentil curry", "cooked lentils"},
		Category: "proteins",
		PerGram: model.PerGram{Calories: 1.16, Protein: 0.07, Carbs: 0.20, Fat: 0.004, Fiber: 0.028},
		DefaultPortionGrams: 150,
		Portions:            map[string]float64{"1 katori": 150},
		Micros:              []string{"iron", "folate"},
		Source:              model.SourceCatalog,
	},
	{
		ID:      "paneer",
		Name:    "Paneer",
		Aliases: []string{"cottage cheese", "indian cheese"},
		Category: "proteins",
		PerGram: model.PerGram{Calories: 2.96, Protein: 0.18, Carbs: 0.04, Fat: 0.22},
		DefaultPortionGrams: 100,
		Portions:            map[string]float64{"1 cube": 20, "1 katori": 100},
		Micros:              []string{"calcium"},
		Source:              model.SourceCatalog,
	},
	{
		ID:      "chicken_curry",
		Name:    "Chicken Curry",
		Aliases: []string{"murgh curry", "chicken gravy"},
		Category: "proteins",
		PerGram: model.PerGram{Calories: 1.60, Protein: 0.12, Carbs: 0.06, Fat: 0.09},
		DefaultPortionGrams: 180,
		Portions:            map[string]float64{"1 katori": 180},
		Source:              model.SourceCatalog,
	},
	{
		ID:      "egg_boiled",
		Name:    "Boiled Egg",
		Aliases: []string{"hard boiled egg", "egg"},
		Category: "proteins",
		PerGram: model.PerGram{Calories: 1.55, Protein: 0.13, Carbs: 0.011, Fat: 0.11},
		DefaultPortionGrams: 50,
		Portions:            map[string]float64{"1 egg": 50, "2 eggs": 100},
		Micros:              []string{"vitamin d", "b12"},
		Source:              model.SourceCatalog,
	},
	{
		ID:      "curd",
		Name:    "Curd",
		Aliases: []string{"dahi", "plain yogurt", "yoghurt"},
		Category: "dairy",
		PerGram: model.PerGram{Calories: 0.98, Protein: 0.10, Carbs: 0.036, Fat: 0.04},
		DefaultPortionGrams: 100,
		Portions:            map[string]float64{"1 katori": 100},
		Micros:              []string{"calcium", "probiotics"},
		Source:              model.SourceCatalog,
	},
	{
		ID:      "milk_whole",
		Name:    "Whole Milk",
		Aliases: []string{"milk", "full fat milk", "doodh"},
		Category: "dairy",
		PerGram: model.PerGram{Calories: 0.61, Protein: 0.032, Carbs: 0.047, Fat: 0.033},
		DefaultPortionGrams: 250,
		Portions:            map[string]float64{"1 glass": 250, "1 cup": 240},
		Micros:              []string{"calcium", "vitamin d"},
		Source:              model.SourceCatalog,
	},
	{
		ID:      "banana",
		Name:    "Banana",
		Aliases: []string{"kela", "ripe banana"},
		Category: "fruits",
		PerGram: model.PerGram{Calories: 0.89, Protein: 0.011, Carbs: 0.23, Fat: 0.003, Fiber: 0.026},
		DefaultPortionGrams: 120,
		Portions:            map[string]float64{"1 medium": 120, "1 small": 90},
		Micros:              []string{"potassium", "b6"},
		Source:              model.SourceCatalog,
	},
	{
		ID:      "apple",
		Name:    "Apple",
		Aliases: []string{"seb"},
		Category: "fruits",
		PerGram: model.PerGram{Calories: 0.52, Protein: 0.003, Carbs: 0.14, Fat: 0.002, Fiber: 0.024},
		DefaultPortionGrams: 180,
		Portions:            map[string]float64{"1 medium": 180},
		Source:              model.SourceCatalog,
	},
	{
		ID:      "idli",
		Name:    "Idli",
		Aliases: []string{"steamed rice cake"},
		Category: "grains",
		PerGram: model.PerGram{Calories: 1.35, Protein: 0.04, Carbs: 0.28, Fat: 0.002, Fiber: 0.009},
		DefaultPortionGrams: 60,
		Portions:            map[string]float64{"1 idli": 60, "2 idlis": 120},
		Source:              model.SourceCatalog,
	},
	{
		ID:      "dosa",
		Name:    "Dosa",
		Aliases: []string{"plain dosa", "rice crepe"},
		Category: "grains",
		PerGram: model.PerGram{Calories: 1.68, Protein: 0.038, Carbs: 0.29, Fat: 0.04, Fiber: 0.011},
		DefaultPortionGrams: 85,
		Portions:            map[string]float64{"1 dosa": 85},
		Source:              model.SourceCatalog,
	},
	{
		ID:      "ghee",
		Name:    "Ghee",
		Aliases: []string{"clarified butter"},
		Category: "fats",
		PerGram: model.PerGram{Calories: 9.0, Fat: 1.0},
		DefaultPortionGrams: 5,
		Portions:            map[string]float64{"1 tsp": 5, "1 tbsp": 15},
		Source:              model.SourceCatalog,
	},
	{
		ID:      "water",
		Name:    "Water",
		Aliases: []string{"plain water", "paani"},
		Category: "beverages",
		PerGram: model.PerGram{},
		DefaultPortionGrams: 250,
		Portions:            map[string]float64{"1 glass": 250},
		Source:              model.SourceCatalog,
	},
}
