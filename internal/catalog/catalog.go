package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pageza/kcalsnap/backend/internal/model"
)

// Catalog is the static set of known foods. It is built once and
// read-only afterwards; lookups never mutate it.
type Catalog struct {
	items []model.FoodItem
	byID  map[string]*model.FoodItem
}

// New builds a catalog from the given entries, validating each one.
func New(items []model.FoodItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]model.FoodItem, len(items)),
		byID:  make(map[string]*model.FoodItem, len(items)),
	}
	copy(c.items, items)

	for i := range c.items {
		item := &c.items[i]
		if err := validate(item); err != nil {
			return nil, err
		}
		if _, exists := c.byID[item.ID]; exists {
			return nil, fmt.Errorf("duplicate food id %q", item.ID)
		}
		c.byID[item.ID] = item
	}
	return c, nil
}

// Default returns a catalog built from the bundled seed foods.
func Default() *Catalog {
	c, err := New(seedFoods)
	if err != nil {
		// The seed set is compiled in; a validation failure here is a bug.
		panic(fmt.Sprintf("catalog: invalid seed data: %v", err))
	}
	return c
}

// LoadFile reads a JSON catalog file and appends its entries to the seed
// set. File entries may not reuse seed ids.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var extra []model.FoodItem
	if err := json.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}
	for i := range extra {
		if extra[i].Source == "" {
			extra[i].Source = model.SourceCustom
		}
	}

	return New(append(append([]model.FoodItem{}, seedFoods...), extra...))
}

// Get returns the catalog entry for id.
func (c *Catalog) Get(id string) (*model.FoodItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// All returns every catalog entry.
func (c *Catalog) All() []model.FoodItem {
	return c.items
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.items)
}

func validate(item *model.FoodItem) error {
	if strings.TrimSpace(item.ID) == "" {
		return fmt.Errorf("food entry %q has an empty id", item.Name)
	}
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("food %q has an empty name", item.ID)
	}
	if item.PerGram.Calories < 0 || item.PerGram.Protein < 0 ||
		item.PerGram.Carbs < 0 || item.PerGram.Fat < 0 || item.PerGram.Fiber < 0 {
		return fmt.Errorf("food %q has a negative nutrient coefficient", item.ID)
	}
	if item.DefaultPortionGrams <= 0 {
		return fmt.Errorf("food %q has non-positive default portion %v", item.ID, item.DefaultPortionGrams)
	}
	for name, grams := range item.Portions {
		if grams <= 0 {
			return fmt.Errorf("food %q portion %q has non-positive weight %v", item.ID, name, grams)
		}
	}
	return nil
}
