package testhelpers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/fitsync-pro/backend/internal/models"
	"github.com/pageza/fitsync-pro/backend/internal/types"
)

// CreateTestUser inserts a user with a placeholder password hash
func CreateTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestProfile stores a profile with the given targets without going through the profile service
func CreateTestProfile(t *testing.T, db *gorm.DB, userID uuid.UUID, profile types.Profile, targets types.Targets) *models.FitnessProfile {
	t.Helper()

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
	require.NoError(t, db.Create(record).Error)
	return record
}

// SampleProfile is a 30 year old, 170 cm, 70 kg man trying to lose weight
func SampleProfile() types.Profile {
	return types.Profile{
		Gender:       types.Male,
		Age:          30,
		HeightCm:     170,
		WeightKg:     70,
		Goal:         types.GoalLose,
		FitnessLevel: types.Intermediate,
	}
}
