package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/kcalsnap/backend/internal/database"
	"github.com/pageza/kcalsnap/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"), testDBSeq.Add(1))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func testMeal(ateAt time.Time, mealType string, items ...model.MealItem) *model.Meal {
	return &model.Meal{
		Type:  mealType,
		AteAt: ateAt,
		Items: items,
	}
}

func rotiItem() model.MealItem {
	return model.MealItem{
		FoodID: "roti",
		Label:  "Roti",
		Grams:  40,
		Nutrients: model.Nutrients{
			Calories: 120, Protein: 4.0, Carbs: 24.0, Fat: 2.0, Fiber: 4.0,
			Micros: model.StringArray{"iron", "b-vitamins"}, SourceDatabase: model.SourceCatalog,
		},
		Confidence: model.ConfidenceHigh,
		Origin:     model.OriginManual,
	}
}

func dalItem() model.MealItem {
	return model.MealItem{
		FoodID: "dal_cooked",
		Label:  "Dal",
		Grams:  150,
		Nutrients: model.Nutrients{
			Calories: 174, Protein: 10.5, Carbs: 30.0, Fat: 0.6, Fiber: 4.2,
			Micros: model.StringArray{"iron", "folate"}, SourceDatabase: model.SourceCatalog,
		},
		Confidence: model.ConfidenceHigh,
		Origin:     model.OriginManual,
	}
}

func TestSaveMealCreatesDayLog(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)
	ctx := context.Background()

	ateAt := time.Date(2026, 3, 14, 13, 0, 0, 0, time.Local)
	saved, err := svc.SaveMeal(ctx, testMeal(ateAt, model.MealLunch, rotiItem(), dalItem()))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, "2026-03-14", saved.DateKey)
	assert.Equal(t, 294, saved.Totals.Calories)
	assert.Equal(t, 14.5, saved.Totals.Protein)

	dayLog, err := svc.GetLogByDate(ctx, ateAt)
	require.NoError(t, err)
	assert.Equal(t, 294, dayLog.Totals.Calories)
	assert.Equal(t, 54.0, dayLog.Totals.Carbs)
	assert.Equal(t, model.StringArray{"iron", "b-vitamins", "folate"}, dayLog.Totals.Micros)
	require.Len(t, dayLog.Meals, 1)
	require.Len(t, dayLog.Meals[0].Items, 2)

	// First meal snapshots the default targets.
	assert.Equal(t, DefaultTargets(), dayLog.Targets)
}

func TestSaveMealRejectsEmptyMeal(t *testing.T) {
	svc := NewLogService(setupTestDB(t))

	_, err := svc.SaveMeal(context.Background(), testMeal(time.Now(), model.MealSnack))
	assert.ErrorIs(t, err, ErrEmptyMeal)
}

func TestIncrementalMatchesFullRecompute(t *testing.T) {
	ctx := context.Background()
	ateAt := time.Date(2026, 3, 14, 8, 0, 0, 0, time.Local)

	meals := [][]model.MealItem{
		{rotiItem()},
		{dalItem()},
		{rotiItem(), dalItem()},
		{dalItem(), dalItem()},
	}

	// Two databases, the meals added in opposite orders, must agree.
	forward := NewLogService(setupTestDB(t))
	for _, items := range meals {
		_, err := forward.SaveMeal(ctx, testMeal(ateAt, model.MealSnack, items...))
		require.NoError(t, err)
	}

	backward := NewLogService(setupTestDB(t))
	for i := len(meals) - 1; i >= 0; i-- {
		_, err := backward.SaveMeal(ctx, testMeal(ateAt, model.MealSnack, meals[i]...))
		require.NoError(t, err)
	}

	a, err := forward.GetLogByDate(ctx, ateAt)
	require.NoError(t, err)
	b, err := backward.GetLogByDate(ctx, ateAt)
	require.NoError(t, err)

	assert.Equal(t, a.Totals.Calories, b.Totals.Calories)
	assert.Equal(t, a.Totals.Protein, b.Totals.Protein)
	assert.Equal(t, a.Totals.Carbs, b.Totals.Carbs)
	assert.Equal(t, a.Totals.Fat, b.Totals.Fat)
	assert.Equal(t, a.Totals.Fiber, b.Totals.Fiber)
	assert.ElementsMatch(t, a.Totals.Micros, b.Totals.Micros)
}

func TestNoDriftOverManyAdditions(t *testing.T) {
	svc := NewLogService(setupTestDB(t))
	ctx := context.Background()
	ateAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

	for i := 0; i < 100; i++ {
		item := model.MealItem{
			Label: "Pinch of Protein", Grams: 1,
			Nutrients:  model.Nutrients{Calories: 0, Protein: 0.1},
			Confidence: model.ConfidenceHigh, Origin: model.OriginManual,
		}
		_, err := svc.SaveMeal(ctx, testMeal(ateAt, model.MealSnack, item))
		require.NoError(t, err)
	}

	dayLog, err := svc.GetLogByDate(ctx, ateAt)
	require.NoError(t, err)
	assert.Equal(t, 10.0, dayLog.Totals.Protein)
}

func TestDeleteMealRecomputes(t *testing.T) {
	svc := NewLogService(setupTestDB(t))
	ctx := context.Background()
	ateAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)

	kept, err := svc.SaveMeal(ctx, testMeal(ateAt, model.MealLunch, rotiItem()))
	require.NoError(t, err)
	doomed, err := svc.SaveMeal(ctx, testMeal(ateAt, model.MealSnack, dalItem()))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMeal(ctx, doomed.ID))

	dayLog, err := svc.GetLogByDate(ctx, ateAt)
	require.NoError(t, err)
	assert.Equal(t, kept.Totals.Calories, dayLog.Totals.Calories)
	assert.Equal(t, kept.Totals.Protein, dayLog.Totals.Protein)
	require.Len(t, dayLog.Meals, 1)
	assert.Equal(t, kept.ID, dayLog.Meals[0].ID)
}

func TestDeleteThenReAddMatchesNeverDeleted(t *testing.T) {
	ctx := context.Background()
	ateAt := time.Date(2026, 3, 14, 19, 0, 0, 0, time.Local)

	churned := NewLogService(setupTestDB(t))
	_, err := churned.SaveMeal(ctx, testMeal(ateAt, model.MealDinner, rotiItem()))
	require.NoError(t, err)
	victim, err := churned.SaveMeal(ctx, testMeal(ateAt, model.MealDinner, dalItem()))
	require.NoError(t, err)
	require.NoError(t, churned.DeleteMeal(ctx, victim.ID))
	_, err = churned.SaveMeal(ctx, testMeal(ateAt, model.MealDinner, dalItem()))
	require.NoError(t, err)

	pristine := NewLogService(setupTestDB(t))
	_, err = pristine.SaveMeal(ctx, testMeal(ateAt, model.MealDinner, rotiItem()))
	require.NoError(t, err)
	_, err = pristine.SaveMeal(ctx, testMeal(ateAt, model.MealDinner, dalItem()))
	require.NoError(t, err)

	a, err := churned.GetLogByDate(ctx, ateAt)
	require.NoError(t, err)
	b, err := pristine.GetLogByDate(ctx, ateAt)
	require.NoError(t, err)

	assert.Equal(t, b.Totals.Calories, a.Totals.Calories)
	assert.Equal(t, b.Totals.Protein, a.Totals.Protein)
	assert.Equal(t, b.Totals.Fiber, a.Totals.Fiber)
	assert.Len(t, a.Meals, 2)
}

func TestDeleteMealNotFound(t *testing.T) {
	svc := NewLogService(setupTestDB(t))

	err := svc.DeleteMeal(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrMealNotFound)
}

func TestGetTodayLogDoesNotPersist(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)

	dayLog, err := svc.GetTodayLog(context.Background())
	require.NoError(t, err)
	assert.Zero(t, dayLog.Totals.Calories)
	assert.Equal(t, DefaultTargets(), dayLog.Targets)
	assert.Equal(t, LocalDateKey(time.Now()), dayLog.DateKey)

	var count int64
	require.NoError(t, db.Model(&model.DailyLog{}).Count(&count).Error)
	assert.Zero(t, count, "passive reads must not create rows")
}

func TestMealAttachesToLocalDay(t *testing.T) {
	svc := NewLogService(setupTestDB(t))
	ctx := context.Background()

	ist := time.FixedZone("IST", 5*3600+1800)
	justAfterMidnight := time.Date(2026, 3, 14, 0, 15, 0, 0, ist)

	saved, err := svc.SaveMeal(ctx, testMeal(justAfterMidnight, model.MealSnack, rotiItem()))
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", saved.DateKey, "stays on the local calendar day, not UTC's prior day")

	dayLog, err := svc.GetLogByDate(ctx, justAfterMidnight)
	require.NoError(t, err)
	assert.Equal(t, 120, dayLog.Totals.Calories)
}

func TestUpdateDailyTargetsCreatesRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)
	day := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)

	targets := model.NutritionTargets{Calories: 1800, Protein: 90, Carbs: 180, Fat: 60, Fiber: 25}
	dayLog, err := svc.UpdateDailyTargets(context.Background(), day, targets)
	require.NoError(t, err)
	assert.Equal(t, targets, dayLog.Targets)
	assert.Zero(t, dayLog.Totals.Calories)

	var count int64
	require.NoError(t, db.Model(&model.DailyLog{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateDailyTargetsDoesNotTouchOtherDays(t *testing.T) {
	svc := NewLogService(setupTestDB(t))
	ctx := context.Background()

	day1 := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 1)

	old := model.NutritionTargets{Calories: 1800, Protein: 90}
	_, err := svc.UpdateDailyTargets(ctx, day1, old)
	require.NoError(t, err)
	_, err = svc.UpdateDailyTargets(ctx, day2, model.NutritionTargets{Calories: 2200, Protein: 110})
	require.NoError(t, err)

	got, err := svc.GetLogByDate(ctx, day1)
	require.NoError(t, err)
	assert.Equal(t, 1800, got.Targets.Calories)
}

func TestFirstMealSnapshotsProfileTargets(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLogService(db)
	profiles := NewProfileService(db)
	ctx := context.Background()

	custom := model.NutritionTargets{Calories: 2400, Protein: 120, Carbs: 260, Fat: 80, Fiber: 35}
	_, err := profiles.UpdateTargets(ctx, custom)
	require.NoError(t, err)

	ateAt := time.Date(2026, 3, 14, 8, 30, 0, 0, time.Local)
	_, err = svc.SaveMeal(ctx, testMeal(ateAt, model.MealBreakfast, rotiItem()))
	require.NoError(t, err)

	// Changing the profile afterwards must not rewrite the snapshot.
	_, err = profiles.UpdateTargets(ctx, model.NutritionTargets{Calories: 1500, Protein: 60})
	require.NoError(t, err)

	dayLog, err := svc.GetLogByDate(ctx, ateAt)
	require.NoError(t, err)
	assert.Equal(t, 2400, dayLog.Targets.Calories)
	assert.Equal(t, 120.0, dayLog.Targets.Protein)
}

func TestListLogsRange(t *testing.T) {
	svc := NewLogService(setupTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		_, err := svc.SaveMeal(ctx, testMeal(base.AddDate(0, 0, i), model.MealLunch, rotiItem()))
		require.NoError(t, err)
	}

	logs, err := svc.ListLogs(ctx, base.AddDate(0, 0, 1), base.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "2026-03-11", logs[0].DateKey)
	assert.Equal(t, "2026-03-13", logs[2].DateKey)
}
