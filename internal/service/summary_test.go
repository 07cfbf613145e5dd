package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fitsync-pro/backend/internal/types"
)

func TestSummarizeBasicMealPlan(t *testing.T) {
	raw := `{"meals": [
		{"meal": "Breakfast", "food": "Oats", "calories": 400, "protein_g": 20, "carbs_g": 60, "fats_g": 10},
		{"meal": "Lunch", "food": "Chicken rice", "calories": "600", "protein_g": "45g", "carbs_g": 70, "fats_g": 15},
		{"meal": "Snack", "food": "Apple", "calories": 100, "protein_g": 0, "carbs_g": 25, "fats_g": 0}
	]}`

	summary := Summarize(types.MealPlanKind, types.BasicStyle, raw)
	require.NotNil(t, summary)
	require.NotNil(t, summary.Meal)
	assert.Nil(t, summary.Workout)

	meal := summary.Meal
	assert.Equal(t, 1100.0, meal.TotalCalories)
	assert.Equal(t, 65.0, meal.TotalProteinG)
	assert.Equal(t, 155.0, meal.TotalCarbsG)
	assert.Equal(t, 25.0, meal.TotalFatsG)

	require.Len(t, meal.Macros, 3)
	assert.Equal(t, "Protein", meal.Macros[0].Macro)
	assert.InDelta(t, 26.5, meal.Macros[0].Percent, 1e-9)
	assert.InDelta(t, 63.3, meal.Macros[1].Percent, 1e-9)
	assert.InDelta(t, 10.2, meal.Macros[2].Percent, 1e-9)
}

func TestSummarizeDetailedMealPlanPrefersDailyTotals(t *testing.T) {
	summary := Summarize(types.MealPlanKind, types.DetailedStyle, detailedMealSchema)
	require.NotNil(t, summary)
	require.NotNil(t, summary.Meal)

	assert.Equal(t, 2100.0, summary.Meal.TotalCalories)
	assert.Equal(t, 165.0, summary.Meal.TotalProteinG)
}

func TestSummarizeDetailedMealPlanUsesFirstOption(t *testing.T) {
	raw := `{"meals": [
		{"meal_time": "Breakfast", "options": [
			{"option_name": "A", "calories": 450, "protein_g": 35, "carbs_g": 55, "fats_g": 12},
			{"option_name": "B", "calories": 999, "protein_g": 99, "carbs_g": 99, "fats_g": 99}
		]},
		{"meal_time": "Dinner", "options": [
			{"option_name": "A", "calories": 650, "protein_g": 50, "carbs_g": 60, "fats_g": 20}
		]},
		{"meal_time": "Empty", "options": []}
	]}`

	summary := Summarize(types.MealPlanKind, types.DetailedStyle, raw)
	require.NotNil(t, summary)
	assert.Equal(t, 1100.0, summary.Meal.TotalCalories)
	assert.Equal(t, 85.0, summary.Meal.TotalProteinG)
}

func TestSummarizeEmptyMealPlan(t *testing.T) {
	summary := Summarize(types.MealPlanKind, types.BasicStyle, `{"meals": []}`)
	require.NotNil(t, summary)
	for _, m := range summary.Meal.Macros {
		assert.Zero(t, m.Percent)
	}
}

func TestSummarizeWorkoutPlanOrdersDays(t *testing.T) {
	raw := `{"workouts": [
		{"day": "Wednesday", "focus": "Legs", "total_sets": 20, "intensity_score": 9},
		{"day": "Sunday", "focus": "Rest", "total_sets": 0, "intensity_score": 0},
		{"day": "monday", "focus": "Push", "total_sets": 18, "intensity_score": 8},
		{"day": "Friday", "focus": "Pull", "total_sets": "16", "intensity_score": 7}
	]}`

	summary := Summarize(types.WorkoutPlanKind, types.BasicStyle, raw)
	require.NotNil(t, summary)
	require.NotNil(t, summary.Workout)

	w := summary.Workout
	days := make([]string, 0, len(w.Days))
	for _, d := range w.Days {
		days = append(days, d.Day)
	}
	assert.Equal(t, []string{"monday", "Wednesday", "Friday", "Sunday"}, days)
	assert.Equal(t, 3, w.TrainingDays)
	assert.Equal(t, 54.0, w.TotalSets)
	assert.InDelta(t, 8.0, w.MeanIntensity, 1e-9)
}

func TestSummarizeDetailedWorkoutCountsExerciseSets(t *testing.T) {
	raw := `{"weekly_plan": [
		{"day": "Tuesday", "focus": "Pull", "exercises": [{"exercise_name": "Row", "sets": 4}, {"exercise_name": "Curl", "sets": 3}], "intensity_score": 6},
		{"day": "Monday", "focus": "Push", "exercises": [], "total_sets": 16, "intensity_score": 8}
	]}`

	summary := Summarize(types.WorkoutPlanKind, types.DetailedStyle, raw)
	require.NotNil(t, summary)

	w := summary.Workout
	require.Len(t, w.Days, 2)
	assert.Equal(t, "Monday", w.Days[0].Day)
	assert.Equal(t, 7.0, w.Days[1].TotalSets)
	assert.Equal(t, 23.0, w.TotalSets)
}

func TestSummarizeSchemaMismatchReturnsNil(t *testing.T) {
	assert.Nil(t, Summarize(types.MealPlanKind, types.BasicStyle, `{"meals": "not a list"}`))
	assert.Nil(t, Summarize(types.WorkoutPlanKind, types.DetailedStyle, `not json`))
}

func TestSummarizeMealPlanFormattedNumbers(t *testing.T) {
	raw := `{"meals": [
		{"meal": "Dinner", "food": "Steak and potatoes", "calories": "1,200 kcal", "protein_g": "60g", "carbs_g": "80", "fats_g": "40"},
		{"meal": "Snack", "food": "Mixed nuts", "calories": "350-400", "protein_g": "10-12g", "carbs_g": 10, "fats_g": "30 g"}
	]}`

	summary := Summarize(types.MealPlanKind, types.BasicStyle, raw)
	require.NotNil(t, summary)
	require.NotNil(t, summary.Meal)

	// thousands separators are dropped and ranges read as their lower bound
	assert.Equal(t, 1550.0, summary.Meal.TotalCalories)
	assert.Equal(t, 70.0, summary.Meal.TotalProteinG)
	assert.Equal(t, 90.0, summary.Meal.TotalCarbsG)
	assert.Equal(t, 70.0, summary.Meal.TotalFatsG)
}
