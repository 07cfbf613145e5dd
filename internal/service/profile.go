package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/fitsync-pro/backend/internal/models"
	"github.com/pageza/fitsync-pro/backend/internal/types"
)

// ErrProfileNotFound is returned when the user has not saved a profile yet
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService stores fitness profiles and the targets derived from them
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.FitnessProfile, error) {
	var profile models.FitnessProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// SaveProfile creates or replaces the user's profile and recomputes its targets.
// Targets are always derived from the profile fields, never taken from the caller.
func (s *ProfileService) SaveProfile(ctx context.Context, userID uuid.UUID, profile *types.Profile) (*models.FitnessProfile, error) {
	if profile.FitnessLevel == "" {
		profile.FitnessLevel = types.Intermediate
	}
	targets := CalculateTargets(profile.Gender, profile.Age, profile.HeightCm, profile.WeightKg, profile.Goal)

	record := &models.FitnessProfile{
		UserID:             userID,
		Gender:             profile.Gender,
		Age:                profile.Age,
		HeightCm:           profile.HeightCm,
		WeightKg:           profile.WeightKg,
		Goal:               profile.Goal,
		FitnessLevel:       profile.FitnessLevel,
		DietaryPreferences: profile.DietaryPreferences,
		BMR:                targets.BMR,
		TDEE:               targets.TDEE,
		DailyCalories:      targets.DailyCalories,
		DailyProteinG:      targets.DailyProteinG,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var previous models.FitnessProfile
		err := tx.Where("user_id = ?", userID).First(&previous).Error
		switch {
		case err == nil:
			for _, change := range diffProfile(&previous, record) {
				if err := tx.Create(change).Error; err != nil {
					return err
				}
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"gender", "age", "height_cm", "weight_kg", "goal", "fitness_level",
				"dietary_preferences", "bmr", "tdee", "daily_calories", "daily_protein_g", "updated_at",
			}),
		}).Create(record).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	log.Printf("[ProfileService] Saved profile for user %s (daily calories %.1f)", userID, targets.DailyCalories)
	return s.GetProfile(ctx, userID)
}

// History returns the recorded profile changes, newest first
func (s *ProfileService) History(ctx context.Context, userID uuid.UUID) ([]*models.ProfileChange, error) {
	var changes []*models.ProfileChange
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("changed_at DESC").
		Find(&changes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load profile history: %w", err)
	}
	return changes, nil
}

// diffProfile lists the user-entered fields that differ between old and updated.
// Computed targets are not tracked.
func diffProfile(old, updated *models.FitnessProfile) []*models.ProfileChange {
	now := time.Now()
	fields := []struct {
		name     string
		from, to string
	}{
		{"gender", string(old.Gender), string(updated.Gender)},
		{"age", strconv.Itoa(old.Age), strconv.Itoa(updated.Age)},
		{"height_cm", formatFloat(old.HeightCm), formatFloat(updated.HeightCm)},
		{"weight_kg", formatFloat(old.WeightKg), formatFloat(updated.WeightKg)},
		{"goal", string(old.Goal), string(updated.Goal)},
		{"fitness_level", string(old.FitnessLevel), string(updated.FitnessLevel)},
		{"dietary_preferences", old.DietaryPreferences, updated.DietaryPreferences},
	}

	var changes []*models.ProfileChange
	for _, f := range fields {
		if f.from == f.to {
			continue
		}
		changes = append(changes, &models.ProfileChange{
			UserID:    updated.UserID,
			Field:     f.name,
			OldValue:  f.from,
			NewValue:  f.to,
			ChangedAt: now,
		})
	}
	return changes
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
