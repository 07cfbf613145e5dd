package service

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/pageza/fitsync-pro/backend/internal/types"
)

var weekdayOrder = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

// Summarize computes the chart data for a plan. It returns nil when the
// response does not decode into the documented schema.
func Summarize(kind types.PlanKind, style types.PlanStyle, raw string) *types.PlanSummary {
	body := []byte(stripCodeFence(raw))

	if kind == types.MealPlanKind {
		summary, err := summarizeMeals(style, body)
		if err != nil {
			return nil
		}
		return &types.PlanSummary{Meal: summary}
	}

	summary, err := summarizeWorkouts(style, body)
	if err != nil {
		return nil
	}
	return &types.PlanSummary{Workout: summary}
}

func summarizeMeals(style types.PlanStyle, body []byte) (*types.MealSummary, error) {
	summary := &types.MealSummary{}

	if style == types.BasicStyle {
		var plan struct {
			Meals []types.BasicMeal `json:"meals"`
		}
		if err := json.Unmarshal(body, &plan); err != nil {
			return nil, err
		}
		for _, m := range plan.Meals {
			summary.TotalCalories += float64(m.Calories)
			summary.TotalProteinG += float64(m.ProteinG)
			summary.TotalCarbsG += float64(m.CarbsG)
			summary.TotalFatsG += float64(m.FatsG)
		}
	} else {
		var plan struct {
			Meals       []types.DetailedMeal `json:"meals"`
			DailyTotals *types.DailyTotals   `json:"daily_totals"`
		}
		if err := json.Unmarshal(body, &plan); err != nil {
			return nil, err
		}
		if plan.DailyTotals != nil {
			summary.TotalCalories = float64(plan.DailyTotals.TotalCalories)
			summary.TotalProteinG = float64(plan.DailyTotals.TotalProteinG)
			summary.TotalCarbsG = float64(plan.DailyTotals.TotalCarbsG)
			summary.TotalFatsG = float64(plan.DailyTotals.TotalFatsG)
		} else {
			// one option per meal time is eaten; the first is the default
			for _, m := range plan.Meals {
				if len(m.Options) == 0 {
					continue
				}
				o := m.Options[0]
				summary.TotalCalories += float64(o.Calories)
				summary.TotalProteinG += float64(o.ProteinG)
				summary.TotalCarbsG += float64(o.CarbsG)
				summary.TotalFatsG += float64(o.FatsG)
			}
		}
	}

	summary.Macros = macroShares(summary.TotalProteinG, summary.TotalCarbsG, summary.TotalFatsG)
	return summary, nil
}

func macroShares(protein, carbs, fats float64) []types.MacroShare {
	total := protein + carbs + fats
	share := func(g float64) float64 {
		if total == 0 {
			return 0
		}
		return round1(g / total * 100)
	}
	return []types.MacroShare{
		{Macro: "Protein", Grams: protein, Percent: share(protein)},
		{Macro: "Carbs", Grams: carbs, Percent: share(carbs)},
		{Macro: "Fats", Grams: fats, Percent: share(fats)},
	}
}

func summarizeWorkouts(style types.PlanStyle, body []byte) (*types.WorkoutSummary, error) {
	var days []types.DayVolume

	if style == types.BasicStyle {
		var plan struct {
			Workouts []types.BasicWorkoutDay `json:"workouts"`
		}
		if err := json.Unmarshal(body, &plan); err != nil {
			return nil, err
		}
		for _, d := range plan.Workouts {
			days = append(days, types.DayVolume{
				Day:            d.Day,
				Focus:          d.Focus,
				TotalSets:      float64(d.TotalSets),
				IntensityScore: float64(d.IntensityScore),
			})
		}
	} else {
		var plan struct {
			WeeklyPlan []types.WorkoutDay `json:"weekly_plan"`
		}
		if err := json.Unmarshal(body, &plan); err != nil {
			return nil, err
		}
		for _, d := range plan.WeeklyPlan {
			sets := float64(d.TotalSets)
			if sets == 0 {
				for _, ex := range d.Exercises {
					sets += float64(ex.Sets)
				}
			}
			days = append(days, types.DayVolume{
				Day:            d.Day,
				Focus:          d.Focus,
				TotalSets:      sets,
				IntensityScore: float64(d.IntensityScore),
			})
		}
	}

	sort.SliceStable(days, func(i, j int) bool {
		return dayIndex(days[i].Day) < dayIndex(days[j].Day)
	})

	summary := &types.WorkoutSummary{Days: days}
	var intensity float64
	for _, d := range days {
		summary.TotalSets += d.TotalSets
		if d.TotalSets > 0 {
			summary.TrainingDays++
			intensity += d.IntensityScore
		}
	}
	if summary.TrainingDays > 0 {
		summary.MeanIntensity = round1(intensity / float64(summary.TrainingDays))
	}
	return summary, nil
}

// dayIndex orders unknown day names after Sunday
func dayIndex(day string) int {
	if i, ok := weekdayOrder[strings.ToLower(strings.TrimSpace(day))]; ok {
		return i
	}
	return len(weekdayOrder)
}
