package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PlanKind distinguishes meal plans from workout plans
type PlanKind string

const (
	MealPlanKind    PlanKind = "meal"
	WorkoutPlanKind PlanKind = "workout"
)

// PlanStyle selects the prompt template and response schema
type PlanStyle string

const (
	// BasicStyle is a single-option day of meals or a 7-day split without exercises
	BasicStyle PlanStyle = "basic"
	// DetailedStyle has several options per meal, or full exercise prescriptions per day
	DetailedStyle PlanStyle = "detailed"
)

// ParsePlanStyle defaults to detailed when s is empty
func ParsePlanStyle(s string) (PlanStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "detailed":
		return DetailedStyle, nil
	case "basic":
		return BasicStyle, nil
	}
	return "", fmt.Errorf("invalid plan style %q", s)
}

// SectionKey is the top-level key a plan of this kind and style must contain
func SectionKey(kind PlanKind, style PlanStyle) string {
	switch {
	case kind == MealPlanKind:
		return "meals"
	case style == BasicStyle:
		return "workouts"
	default:
		return "weekly_plan"
	}
}

// PlanRequest is the request body for plan generation
type PlanRequest struct {
	Style string `json:"style"`
}

// FlexNumber accepts both JSON numbers and numeric strings such as "350", "35g",
// "1,200 kcal" or a range like "350-400", which reads as its lower bound.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*n = FlexNumber(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		token := leadingNumber(strings.ReplaceAll(strings.TrimSpace(str), ",", ""))
		if strings.Trim(token, "-.") == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return fmt.Errorf("invalid number format %q", str)
		}
		*n = FlexNumber(v)
		return nil
	}

	return fmt.Errorf("invalid number format")
}

// leadingNumber returns the numeric prefix of s: an optional sign, digits and at most
// one decimal point. A '-' after the first character ends the number.
func leadingNumber(s string) string {
	seenDot := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '-' && i == 0:
		case c == '.' && !seenDot:
			seenDot = true
		default:
			return s[:i]
		}
	}
	return s
}

// BasicMeal is one entry of a basic meal plan
type BasicMeal struct {
	Meal     string     `json:"meal"`
	Food     string     `json:"food"`
	Calories FlexNumber `json:"calories"`
	ProteinG FlexNumber `json:"protein_g"`
	CarbsG   FlexNumber `json:"carbs_g"`
	FatsG    FlexNumber `json:"fats_g"`
}

// FoodItem is one food with its quantity
type FoodItem struct {
	Item     string `json:"item"`
	Quantity string `json:"quantity"`
}

// MealOption is one alternative for a meal time
type MealOption struct {
	OptionName string     `json:"option_name"`
	Foods      []FoodItem `json:"foods"`
	Calories   FlexNumber `json:"calories"`
	ProteinG   FlexNumber `json:"protein_g"`
	CarbsG     FlexNumber `json:"carbs_g"`
	FatsG      FlexNumber `json:"fats_g"`
}

// DetailedMeal is one meal time with its options
type DetailedMeal struct {
	MealTime string       `json:"meal_time"`
	Options  []MealOption `json:"options"`
}

// DailyTotals as reported by the model
type DailyTotals struct {
	TotalCalories FlexNumber `json:"total_calories"`
	TotalProteinG FlexNumber `json:"total_protein_g"`
	TotalCarbsG   FlexNumber `json:"total_carbs_g"`
	TotalFatsG    FlexNumber `json:"total_fats_g"`
}

// BasicWorkoutDay is one day of a basic workout split
type BasicWorkoutDay struct {
	Day            string     `json:"day"`
	Focus          string     `json:"focus"`
	TotalSets      FlexNumber `json:"total_sets"`
	IntensityScore FlexNumber `json:"intensity_score"`
}

// Exercise is one prescribed exercise
type Exercise struct {
	ExerciseName string     `json:"exercise_name"`
	Sets         FlexNumber `json:"sets"`
	Reps         string     `json:"reps"`
	RestSeconds  FlexNumber `json:"rest_seconds"`
	Tempo        string     `json:"tempo"`
	Notes        string     `json:"notes"`
}

// WorkoutDay is one day of a detailed workout plan
type WorkoutDay struct {
	Day                      string     `json:"day"`
	Focus                    string     `json:"focus"`
	WarmUp                   string     `json:"warm_up"`
	Exercises                []Exercise `json:"exercises"`
	CoolDown                 string     `json:"cool_down"`
	TotalSets                FlexNumber `json:"total_sets"`
	EstimatedDurationMinutes FlexNumber `json:"estimated_duration_minutes"`
	IntensityScore           FlexNumber `json:"intensity_score"`
}

// MacroShare is one slice of the macronutrient distribution chart
type MacroShare struct {
	Macro   string  `json:"macro"`
	Grams   float64 `json:"grams"`
	Percent float64 `json:"percent"`
}

// MealSummary holds the daily totals and macro distribution of a meal plan
type MealSummary struct {
	TotalCalories float64      `json:"total_calories"`
	TotalProteinG float64      `json:"total_protein_g"`
	TotalCarbsG   float64      `json:"total_carbs_g"`
	TotalFatsG    float64      `json:"total_fats_g"`
	Macros        []MacroShare `json:"macros"`
}

// DayVolume is one bar of the training volume chart
type DayVolume struct {
	Day            string  `json:"day"`
	Focus          string  `json:"focus"`
	TotalSets      float64 `json:"total_sets"`
	IntensityScore float64 `json:"intensity_score"`
}

// WorkoutSummary holds the weekly training volume of a workout plan
type WorkoutSummary struct {
	Days          []DayVolume `json:"days"`
	TrainingDays  int         `json:"training_days"`
	TotalSets     float64     `json:"total_sets"`
	MeanIntensity float64     `json:"mean_intensity"`
}

// PlanSummary carries whichever summary applies to the plan kind
type PlanSummary struct {
	Meal    *MealSummary    `json:"meal,omitempty"`
	Workout *WorkoutSummary `json:"workout,omitempty"`
}
