package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/kcalsnap/backend/internal/model"
	"gorm.io/gorm"
)

var (
	// ErrMealNotFound means the meal id does not exist.
	ErrMealNotFound = errors.New("meal not found")
	// ErrEmptyMeal means a meal was submitted with no items.
	ErrEmptyMeal = errors.New("meal has no items")
)

// LogService is the daily aggregation engine. It maintains per-day
// cached totals: adds are incremental (meal lists only grow on add),
// deletes trigger a from-scratch recompute. Each operation runs in a
// single transaction so a read-modify-write of the cached total can
// never interleave with another writer for the same date.
type LogService struct {
	db *gorm.DB
}

// NewLogService creates a new LogService instance.
func NewLogService(db *gorm.DB) *LogService {
	return &LogService{db: db}
}

// SaveMeal persists the meal and folds its totals into the day's cached
// total incrementally. The day's log row is created on first meal,
// snapshotting the profile targets active at that moment.
func (s *LogService) SaveMeal(ctx context.Context, meal *model.Meal) (*model.Meal, error) {
	if len(meal.Items) == 0 {
		return nil, ErrEmptyMeal
	}
	if meal.AteAt.IsZero() {
		meal.AteAt = time.Now()
	}
	if meal.Type == "" {
		meal.Type = model.MealSnack
	}
	if meal.ID == uuid.Nil {
		meal.ID = uuid.New()
	}
	meal.DateKey = LocalDateKey(meal.AteAt)

	itemNutrients := make([]model.Nutrients, len(meal.Items))
	for i, item := range meal.Items {
		itemNutrients[i] = item.Nutrients
	}
	meal.Totals = sumNutrients(itemNutrients)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return fmt.Errorf("create meal: %w", err)
		}

		dayLog, err := loadOrInitLog(tx, meal.DateKey)
		if err != nil {
			return err
		}
		dayLog.Totals = addNutrients(dayLog.Totals, meal.Totals)
		return tx.Save(dayLog).Error
	})
	if err != nil {
		return nil, err
	}
	return meal, nil
}

// DeleteMeal removes a meal and rebuilds its day's total from the
// remaining meals. Deletion is rare, so the full recompute's correctness
// outweighs the cost of incremental subtraction.
func (s *LogService) DeleteMeal(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meal model.Meal
		if err := tx.First(&meal, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrMealNotFound, id)
			}
			return err
		}

		if err := tx.Where("meal_id = ?", id).Delete(&model.MealItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Meal{}, "id = ?", id).Error; err != nil {
			return err
		}

		var dayLog model.DailyLog
		if err := tx.Where("date_key = ?", meal.DateKey).First(&dayLog).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// No cached row for the day; nothing to rebuild.
				return nil
			}
			return err
		}

		remaining, err := mealsForDate(tx, meal.DateKey)
		if err != nil {
			return err
		}
		totals := make([]model.Nutrients, len(remaining))
		for i, m := range remaining {
			totals[i] = m.Totals
		}
		dayLog.Totals = sumNutrients(totals)
		return tx.Save(&dayLog).Error
	})
}

// UpdateDailyTargets replaces the targets snapshot on the given day's
// record only. Past days keep the snapshots that were active then. A
// target edit may create the day's log, like a first meal does.
func (s *LogService) UpdateDailyTargets(ctx context.Context, day time.Time, targets model.NutritionTargets) (*model.DailyLog, error) {
	key := LocalDateKey(day)
	var dayLog *model.DailyLog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		dayLog, err = loadOrInitLog(tx, key)
		if err != nil {
			return err
		}
		dayLog.Targets = targets
		return tx.Save(dayLog).Error
	})
	if err != nil {
		return nil, err
	}
	return dayLog, nil
}

// GetTodayLog returns today's log. If no row exists it synthesizes a
// zero-total record from the current profile targets without persisting
// anything: passive reads must never create database rows.
func (s *LogService) GetTodayLog(ctx context.Context) (*model.DailyLog, error) {
	return s.GetLogByDate(ctx, time.Now())
}

// GetLogByDate returns the log for the local calendar day of t, with the
// day's meals attached. Missing days are synthesized, not persisted.
func (s *LogService) GetLogByDate(ctx context.Context, t time.Time) (*model.DailyLog, error) {
	key := LocalDateKey(t)
	db := s.db.WithContext(ctx)

	var dayLog model.DailyLog
	if err := db.Where("date_key = ?", key).First(&dayLog).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		targets, terr := currentTargets(db)
		if terr != nil {
			return nil, terr
		}
		dayLog = model.DailyLog{DateKey: key, Targets: targets, Meals: []model.Meal{}}
		return &dayLog, nil
	}

	meals, err := mealsForDate(db, key)
	if err != nil {
		return nil, err
	}
	dayLog.Meals = meals
	return &dayLog, nil
}

// ListLogs returns the persisted logs whose date keys fall inside the
// inclusive [from, to] day window, oldest first.
func (s *LogService) ListLogs(ctx context.Context, from, to time.Time) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	err := s.db.WithContext(ctx).
		Where("date_key >= ? AND date_key <= ?", LocalDateKey(from), LocalDateKey(to)).
		Order("date_key ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// loadOrInitLog fetches the day's log inside tx, creating an in-memory
// zero-total record with the current profile targets when none exists.
func loadOrInitLog(tx *gorm.DB, dateKey string) (*model.DailyLog, error) {
	var dayLog model.DailyLog
	err := tx.Where("date_key = ?", dateKey).First(&dayLog).Error
	if err == nil {
		return &dayLog, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	targets, err := currentTargets(tx)
	if err != nil {
		return nil, err
	}
	return &model.DailyLog{DateKey: dateKey, Targets: targets}, nil
}

func mealsForDate(tx *gorm.DB, dateKey string) ([]model.Meal, error) {
	var meals []model.Meal
	err := tx.Preload("Items").
		Where("date_key = ?", dateKey).
		Order("ate_at ASC").
		Find(&meals).Error
	return meals, err
}
