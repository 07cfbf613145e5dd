package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fitsync-pro/backend/internal/models"
	"github.com/pageza/fitsync-pro/backend/internal/types"
)

func TestDatabaseSetup(t *testing.T) {
	db := SetupTestDatabase(t)
	require.NotNil(t, db)

	user := CreateTestUser(t, db, "test@example.com")
	assert.NotZero(t, user.ID)

	record := CreateTestProfile(t, db, user.ID, SampleProfile(), types.Targets{DailyCalories: 2007.1})
	assert.NotZero(t, record.ID)

	var loaded models.FitnessProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&loaded).Error)
	assert.Equal(t, types.GoalLose, loaded.Goal)
	assert.Equal(t, 2007.1, loaded.DailyCalories)
}

func TestDatabasesAreIsolated(t *testing.T) {
	first := SetupTestDatabase(t)
	second := SetupTestDatabase(t)

	CreateTestUser(t, first, "only-in-first@example.com")

	var count int64
	require.NoError(t, second.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
