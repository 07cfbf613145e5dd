package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fitsync-pro/backend/internal/mocks"
	"github.com/pageza/fitsync-pro/backend/internal/models"
	"github.com/pageza/fitsync-pro/backend/internal/service"
	"github.com/pageza/fitsync-pro/backend/internal/testdb"
	"github.com/pageza/fitsync-pro/backend/internal/testhelpers"
	"github.com/pageza/fitsync-pro/backend/internal/types"
)

func TestPostgresProfileAndPlans(t *testing.T) {
	td := testdb.SetupTestDB(t)
	db := td.DB
	ctx := context.Background()

	auth := service.NewAuthService(db, td.Config.JWTSecret)
	token, err := auth.Register(ctx, &types.RegisterRequest{Name: "Pat", Email: "pat@example.com", Password: "password123"})
	require.NoError(t, err)
	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)

	profiles := service.NewProfileService(db)
	profile := testhelpers.SampleProfile()
	first, err := profiles.SaveProfile(ctx, claims.UserID, &profile)
	require.NoError(t, err)

	profile.WeightKg = 72
	second, err := profiles.SaveProfile(ctx, claims.UserID, &profile)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 72.0, second.WeightKg)

	changes, err := profiles.History(ctx, claims.UserID)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "weight_kg", changes[0].Field)

	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, true).
		Return(`{"meals": [{"meal_time": "Breakfast", "options": [{"option_name": "Oats", "calories": 400}]}], "daily_totals": {"total_calories": 400}}`, nil)
	plans := service.NewPlanService(db, service.NewLLMService(gen, nil), nil, nil)

	result, err := plans.GenerateMealPlan(ctx, claims.UserID, types.DetailedStyle)
	require.NoError(t, err)

	loaded, err := plans.GetPlan(ctx, claims.UserID, result.Plan.ID)
	require.NoError(t, err)
	assert.Contains(t, loaded.Data, "meals")
	require.NotNil(t, loaded.Summary)
	assert.Equal(t, 400.0, loaded.Summary.Meal.TotalCalories)

	var messages int64
	require.NoError(t, db.Model(&models.ChatMessage{}).Where("plan_id = ?", result.Plan.ID).Count(&messages).Error)
	assert.Equal(t, int64(1), messages)
}
