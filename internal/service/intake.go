package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pageza/kcalsnap/backend/internal/model"
	"gorm.io/datatypes"
)

// ErrUnresolvedCandidate means a candidate matched nothing in the
// catalog and carried no usable nutrient estimate to fall back on.
var ErrUnresolvedCandidate = errors.New("candidate could not be resolved")

// RawCandidate is the untrusted upstream payload shape (AI guess or
// manual entry). Numeric fields arrive as whatever the producer sent, so
// they are typed loosely and coerced during parsing.
type RawCandidate struct {
	Name     string      `json:"name"`
	Grams    interface{} `json:"grams"`
	Origin   string      `json:"origin"`
	Calories interface{} `json:"calories"`
	Protein  interface{} `json:"protein"`
	Carbs    interface{} `json:"carbs"`
	Fat      interface{} `json:"fat"`
	Fiber    interface{} `json:"fiber"`
	Micros   []string    `json:"micros"`
}

// Candidate is the validated intermediate representation handed to the
// resolver.
type Candidate struct {
	Name         string
	Grams        float64
	GramsCoerced bool
	Origin       string
	Estimate     *model.Nutrients
	raw          *RawCandidate
}

// IntakeService turns untrusted candidate tuples into verified meal
// items. A catalog match always wins: nutrients are recomputed from the
// catalog coefficients and any supplied numbers are discarded. Supplied
// numbers are only used verbatim when no catalog match exists.
type IntakeService struct {
	search *SearchService
	calc   *CalculatorService
}

// NewIntakeService creates a new IntakeService instance.
func NewIntakeService(search *SearchService, calc *CalculatorService) *IntakeService {
	return &IntakeService{search: search, calc: calc}
}

// ParseCandidate validates and coerces one raw payload. Malformed gram
// values are stripped down to their numeric content; a value that yields
// nothing usable is recorded as coerced and later defaulted to the
// matched food's default portion.
func ParseCandidate(raw RawCandidate) (Candidate, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return Candidate{}, fmt.Errorf("%w: candidate has no name", ErrUnresolvedCandidate)
	}

	c := Candidate{Name: name, Origin: raw.Origin, raw: &raw}
	if c.Origin == "" {
		c.Origin = model.OriginAI
	}

	grams, ok := coerceNumber(raw.Grams)
	if !ok || grams <= 0 {
		c.Grams = 0
		c.GramsCoerced = true
	} else {
		c.Grams = grams
	}

	if est, ok := coerceEstimate(raw); ok {
		c.Estimate = est
	}
	return c, nil
}

// Resolve turns a candidate into a meal item. Catalog hits are
// recomputed and tagged high confidence; fallbacks keep the supplied
// estimate tagged as AI-estimated. A defaulted portion lowers confidence.
func (s *IntakeService) Resolve(c Candidate) (model.MealItem, error) {
	if matches := s.search.Search(c.Name); len(matches) > 0 {
		food := matches[0]
		confidence := model.ConfidenceHigh
		grams := c.Grams
		if c.GramsCoerced || grams <= 0 {
			grams = food.DefaultPortionGrams
			confidence = model.ConfidenceLow
		}

		nutrients, err := s.calc.Calculate(food.ID, grams)
		if err != nil {
			return model.MealItem{}, err
		}
		return model.MealItem{
			FoodID:     food.ID,
			Label:      food.Name,
			Grams:      grams,
			Nutrients:  nutrients,
			Confidence: confidence,
			Origin:     c.Origin,
			Metadata:   rawMetadata(c),
		}, nil
	}

	if c.Estimate == nil {
		return model.MealItem{}, fmt.Errorf("%w: %q has no catalog match and no nutrient estimate", ErrUnresolvedCandidate, c.Name)
	}

	confidence := model.ConfidenceMedium
	grams := c.Grams
	if c.GramsCoerced || grams <= 0 {
		grams = 100
		confidence = model.ConfidenceLow
	}

	estimate := *c.Estimate
	estimate.SourceDatabase = model.SourceAIEstimated
	return model.MealItem{
		Label:      c.Name,
		Grams:      grams,
		Nutrients:  estimate,
		Confidence: confidence,
		Origin:     c.Origin,
		Metadata:   rawMetadata(c),
	}, nil
}

// ResolveAll parses and resolves a batch of raw candidates.
func (s *IntakeService) ResolveAll(raws []RawCandidate) ([]model.MealItem, error) {
	items := make([]model.MealItem, 0, len(raws))
	for _, raw := range raws {
		c, err := ParseCandidate(raw)
		if err != nil {
			return nil, err
		}
		item, err := s.Resolve(c)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// coerceEstimate extracts an externally supplied nutrient record, valid
// only when at least the calorie figure parses. Negative values are
// clamped to zero; macros get the canonical one-decimal rounding.
func coerceEstimate(raw RawCandidate) (*model.Nutrients, bool) {
	calories, ok := coerceNumber(raw.Calories)
	if !ok || calories < 0 {
		return nil, false
	}
	est := &model.Nutrients{
		Calories: int(math.Round(calories)),
		Protein:  roundTenth(clampNonNegative(raw.Protein)),
		Carbs:    roundTenth(clampNonNegative(raw.Carbs)),
		Fat:      roundTenth(clampNonNegative(raw.Fat)),
		Fiber:    roundTenth(clampNonNegative(raw.Fiber)),
		Micros:   dedupe(raw.Micros),
	}
	return est, true
}

func clampNonNegative(v interface{}) float64 {
	n, ok := coerceNumber(v)
	if !ok || n < 0 {
		return 0
	}
	return n
}

// coerceNumber accepts the numeric shapes seen in real AI payloads:
// JSON numbers, and strings like "150", "150g", "about 150 grams".
// Non-numeric characters are stripped before parsing.
func coerceNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		var b strings.Builder
		for _, r := range n {
			if (r >= '0' && r <= '9') || r == '.' {
				b.WriteRune(r)
			}
		}
		f, err := strconv.ParseFloat(b.String(), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func dedupe(values []string) model.StringArray {
	return unionMicros(model.StringArray{}, model.StringArray(values))
}

func rawMetadata(c Candidate) datatypes.JSON {
	if c.raw == nil {
		return nil
	}
	data, err := json.Marshal(c.raw)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}
