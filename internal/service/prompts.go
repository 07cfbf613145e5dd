package service

import (
	"fmt"
	"strings"

	"github.com/pageza/fitsync-pro/backend/internal/types"
)

const basicMealSchema = `{
  "meals": [
    {
      "meal": "Breakfast",
      "food": "Oatmeal with berries and almonds",
      "calories": 350,
      "protein_g": 12,
      "carbs_g": 55,
      "fats_g": 8
    }
  ]
}`

const detailedMealSchema = `{
  "meals": [
    {
      "meal_time": "Breakfast",
      "options": [
        {
          "option_name": "Option 1: High Protein Oatmeal Bowl",
          "foods": [
            {"item": "Oatmeal", "quantity": "1 cup cooked"},
            {"item": "Whey protein powder", "quantity": "1 scoop"},
            {"item": "Banana", "quantity": "1 medium"},
            {"item": "Almonds", "quantity": "10 pieces"},
            {"item": "Honey", "quantity": "1 tsp"}
          ],
          "calories": 450,
          "protein_g": 35,
          "carbs_g": 55,
          "fats_g": 12
        },
        {
          "option_name": "Option 2: Egg White Scramble",
          "foods": [
            {"item": "Egg whites", "quantity": "4 eggs"},
            {"item": "Whole wheat toast", "quantity": "2 slices"},
            {"item": "Avocado", "quantity": "1/4 piece"},
            {"item": "Spinach", "quantity": "1 cup"},
            {"item": "Cherry tomatoes", "quantity": "5 pieces"}
          ],
          "calories": 420,
          "protein_g": 32,
          "carbs_g": 48,
          "fats_g": 10
        }
      ]
    }
  ],
  "daily_totals": {
    "total_calories": 2100,
    "total_protein_g": 165,
    "total_carbs_g": 220,
    "total_fats_g": 65
  },
  "hydration_tip": "Drink 3-4 liters of water throughout the day",
  "meal_timing_tips": [
    "Eat breakfast within 1 hour of waking",
    "Space meals 3-4 hours apart",
    "Have your last meal 2-3 hours before bed"
  ]
}`

const basicWorkoutSchema = `{
  "workouts": [
    {
      "day": "Monday",
      "focus": "Upper Body Push",
      "total_sets": 18,
      "intensity_score": 8
    }
  ]
}`

const detailedWorkoutSchema = `{
  "weekly_plan": [
    {
      "day": "Monday",
      "focus": "Upper Body Push (Chest, Shoulders, Triceps)",
      "warm_up": "5 min cardio + dynamic stretching",
      "exercises": [
        {
          "exercise_name": "Barbell Bench Press",
          "sets": 4,
          "reps": "8-10",
          "rest_seconds": 90,
          "tempo": "2-0-2-0",
          "notes": "Focus on controlled descent, explosive push"
        },
        {
          "exercise_name": "Incline Dumbbell Press",
          "sets": 3,
          "reps": "10-12",
          "rest_seconds": 60,
          "tempo": "2-0-2-0",
          "notes": "30-45 degree incline"
        },
        {
          "exercise_name": "Cable Lateral Raises",
          "sets": 3,
          "reps": "12-15",
          "rest_seconds": 45,
          "tempo": "2-1-2-0",
          "notes": "Control the weight, no swinging"
        }
      ],
      "cool_down": "5 min stretching focusing on chest and shoulders",
      "total_sets": 16,
      "estimated_duration_minutes": 60,
      "intensity_score": 8
    }
  ],
  "weekly_summary": {
    "total_training_days": 5,
    "rest_days": 2,
    "total_sets_per_week": 95,
    "focus_areas": ["Upper Body", "Lower Body", "Core"]
  },
  "progression_tips": [
    "Increase weight by 2.5-5% when you can complete all sets with good form",
    "Track your workouts in a journal",
    "Prioritize progressive overload"
  ],
  "recovery_tips": [
    "Get 7-9 hours of sleep",
    "Stay hydrated",
    "Consider foam rolling after workouts"
  ]
}`

// formatNumber prints a target with one decimal, e.g. 154.0
func formatNumber(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// BuildMealPlanPrompt returns the nutritionist prompt for the given style.
// The result depends only on its arguments.
func BuildMealPlanPrompt(style types.PlanStyle, profile *types.Profile, targets types.Targets) string {
	var b strings.Builder

	if style == types.BasicStyle {
		b.WriteString("You are a professional nutritionist. Create a detailed 1-day meal plan for:\n")
	} else {
		b.WriteString("You are a professional nutritionist. Create a comprehensive meal plan for:\n")
	}
	fmt.Fprintf(&b, "- Gender: %s\n", profile.Gender.Label())
	fmt.Fprintf(&b, "- Age: %d\n", profile.Age)
	fmt.Fprintf(&b, "- Goal: %s\n", profile.Goal.Label())
	fmt.Fprintf(&b, "- Daily Calorie Target: %s kcal\n", formatNumber(targets.DailyCalories))
	fmt.Fprintf(&b, "- Daily Protein Target: %sg\n", formatNumber(targets.DailyProteinG))

	if style == types.BasicStyle {
		b.WriteString("\nGenerate a meal plan with 4 meals (Breakfast, Lunch, Snack, Dinner).\n\n")
		b.WriteString("Return ONLY valid JSON in this exact format:\n")
		b.WriteString(basicMealSchema)
		b.WriteString("\n\nEnsure the total calories and protein match the targets closely.")
		return b.String()
	}

	if profile.DietaryPreferences != "" {
		fmt.Fprintf(&b, "- Dietary Preferences: %s\n", profile.DietaryPreferences)
	}
	b.WriteString("\nGenerate a detailed meal plan with 5 meals (Breakfast, Mid-Morning Snack, Lunch, Evening Snack, Dinner).\n")
	b.WriteString("For EACH meal, provide 3-4 different food options so the user has variety and choices.\n\n")
	b.WriteString("Return ONLY valid JSON in this exact format:\n")
	b.WriteString(detailedMealSchema)
	b.WriteString("\n\nMake sure to provide diverse, realistic food options with specific quantities.")
	return b.String()
}

// BuildWorkoutPlanPrompt returns the fitness coach prompt for the given style
func BuildWorkoutPlanPrompt(style types.PlanStyle, profile *types.Profile) string {
	var b strings.Builder

	if style == types.BasicStyle {
		b.WriteString("You are a professional fitness coach. Create a 7-day workout split for:\n")
	} else {
		b.WriteString("You are a professional fitness coach. Create a detailed 7-day workout split for:\n")
	}
	fmt.Fprintf(&b, "- Gender: %s\n", profile.Gender.Label())
	fmt.Fprintf(&b, "- Age: %d\n", profile.Age)
	fmt.Fprintf(&b, "- Goal: %s\n", profile.Goal.Label())

	if style == types.BasicStyle {
		b.WriteString("\nGenerate a balanced weekly workout plan with varied focus areas.\n\n")
		b.WriteString("Return ONLY valid JSON in this exact format:\n")
		b.WriteString(basicWorkoutSchema)
		b.WriteString("\n\nInclude all 7 days. Intensity score should be 1-10. Total sets should vary between 12-24.")
		return b.String()
	}

	fmt.Fprintf(&b, "- Fitness Level: %s\n", profile.FitnessLevel.Label())
	b.WriteString("\nGenerate a complete weekly workout plan with specific exercises, sets, reps, rest periods, and tempo.\n\n")
	b.WriteString("Return ONLY valid JSON in this exact format:\n")
	b.WriteString(detailedWorkoutSchema)
	b.WriteString("\n\nInclude all 7 days with varied exercises. Tempo format: eccentric-pause-concentric-pause (in seconds).")
	return b.String()
}

// BuildChatPrompt wraps a user question with the coach persona and, when available, the user's profile
func BuildChatPrompt(message string, profile *types.Profile, targets *types.Targets) string {
	var b strings.Builder

	if profile != nil && targets != nil {
		b.WriteString("User Profile:\n")
		fmt.Fprintf(&b, "- Gender: %s\n", profile.Gender.Label())
		fmt.Fprintf(&b, "- Age: %d\n", profile.Age)
		fmt.Fprintf(&b, "- Height: %s cm\n", formatNumber(profile.HeightCm))
		fmt.Fprintf(&b, "- Weight: %s kg\n", formatNumber(profile.WeightKg))
		fmt.Fprintf(&b, "- Goal: %s\n", profile.Goal.Label())
		fmt.Fprintf(&b, "- Daily Calorie Target: %s kcal\n", formatNumber(targets.DailyCalories))
		fmt.Fprintf(&b, "- Daily Protein Target: %sg\n", formatNumber(targets.DailyProteinG))
	}

	b.WriteString("\n\nYou are FitSync Pro AI, an expert fitness and nutrition coach. Answer the user's question with:\n")
	b.WriteString("- Specific, actionable advice\n")
	b.WriteString("- Scientific backing when relevant\n")
	b.WriteString("- Personalized recommendations based on their profile\n")
	b.WriteString("- Encouragement and motivation\n\n")
	fmt.Fprintf(&b, "User Question: %s\n\n", message)
	b.WriteString("Provide a helpful, detailed response.")
	return b.String()
}
