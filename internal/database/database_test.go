package database

import (
	"path/filepath"
	"testing"

	"github.com/pageza/kcalsnap/backend/config"
	"github.com/pageza/kcalsnap/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndMigrate(t *testing.T) {
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}

	db, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, table := range []interface{}{
		&model.Meal{}, &model.MealItem{}, &model.DailyLog{}, &model.UserProfile{},
	} {
		assert.True(t, db.Migrator().HasTable(table))
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}

	db, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}
