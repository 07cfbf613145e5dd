package service

import (
	"math"

	"github.com/pageza/fitsync-pro/backend/internal/types"
)

const (
	// moderate activity; no other activity levels are offered
	activityMultiplier = 1.55

	loseCalorieOffset = -500.0
	gainCalorieOffset = 300.0

	loseProteinPerKg     = 2.2
	gainProteinPerKg     = 2.0
	maintainProteinPerKg = 1.8
)

// CalculateTargets estimates BMR with the Mifflin-St Jeor equation and derives the daily
// calorie and protein targets for the goal. Outputs are rounded to one decimal.
func CalculateTargets(gender types.Gender, age int, heightCm, weightKg float64, goal types.Goal) types.Targets {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == types.Male {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * activityMultiplier

	var calories, protein float64
	switch goal {
	case types.GoalLose:
		calories = tdee + loseCalorieOffset
		protein = weightKg * loseProteinPerKg
	case types.GoalGain:
		calories = tdee + gainCalorieOffset
		protein = weightKg * gainProteinPerKg
	default:
		calories = tdee
		protein = weightKg * maintainProteinPerKg
	}

	return types.Targets{
		BMR:           round1(bmr),
		TDEE:          round1(tdee),
		DailyCalories: round1(calories),
		DailyProteinG: round1(protein),
	}
}

// TargetsForProfile is CalculateTargets applied to a whole profile
func TargetsForProfile(p *types.Profile) types.Targets {
	return CalculateTargets(p.Gender, p.Age, p.HeightCm, p.WeightKg, p.Goal)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
