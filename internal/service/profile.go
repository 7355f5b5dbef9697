package service

import (
	"context"
	"errors"

	"github.com/pageza/kcalsnap/backend/internal/model"
	"gorm.io/gorm"
)

// ProfileService handles the user's nutrition targets.
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// DefaultTargets is the fallback target set used before a profile exists.
func DefaultTargets() model.NutritionTargets {
	return model.NutritionTargets{
		Calories: 2000,
		Protein:  50,
		Carbs:    250,
		Fat:      70,
		Fiber:    30,
	}
}

// GetTargets returns the profile targets, or the defaults if no profile
// row exists yet. Reading never creates the row.
func (s *ProfileService) GetTargets(ctx context.Context) (model.NutritionTargets, error) {
	return currentTargets(s.db.WithContext(ctx))
}

// UpdateTargets replaces the profile targets, creating the single
// profile row on first use.
func (s *ProfileService) UpdateTargets(ctx context.Context, targets model.NutritionTargets) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&profile).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			profile = model.UserProfile{}
		}
		profile.Targets = targets
		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// currentTargets reads the active targets inside an existing transaction
// or session, falling back to the defaults when no profile exists.
func currentTargets(tx *gorm.DB) (model.NutritionTargets, error) {
	var profile model.UserProfile
	if err := tx.First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultTargets(), nil
		}
		return model.NutritionTargets{}, err
	}
	return profile.Targets, nil
}
