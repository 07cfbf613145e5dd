package types

import (
	"fmt"
	"strings"
)

// Gender selects the sex-specific constant of the BMR equation
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Goal is the user's body composition goal
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// FitnessLevel is the user's training experience
type FitnessLevel string

const (
	Beginner     FitnessLevel = "beginner"
	Intermediate FitnessLevel = "intermediate"
	Advanced     FitnessLevel = "advanced"
)

// ParseGender accepts "male"/"female" in any case
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	}
	return "", fmt.Errorf("invalid gender %q", s)
}

// ParseGoal accepts the short goal names as well as the UI labels "Lose Weight" and "Gain Muscle"
func ParseGoal(s string) (Goal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lose", "lose weight", "lose_weight":
		return GoalLose, nil
	case "maintain", "maintain weight":
		return GoalMaintain, nil
	case "gain", "gain muscle", "gain_muscle":
		return GoalGain, nil
	}
	return "", fmt.Errorf("invalid goal %q", s)
}

// ParseFitnessLevel accepts beginner/intermediate/advanced in any case; empty means intermediate
func ParseFitnessLevel(s string) (FitnessLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "intermediate":
		return Intermediate, nil
	case "beginner":
		return Beginner, nil
	case "advanced":
		return Advanced, nil
	}
	return "", fmt.Errorf("invalid fitness level %q", s)
}

// Label returns the display name used in prompts
func (g Gender) Label() string {
	if g == Male {
		return "Male"
	}
	return "Female"
}

// Label returns the display name used in prompts
func (g Goal) Label() string {
	switch g {
	case GoalLose:
		return "Lose Weight"
	case GoalGain:
		return "Gain Muscle"
	default:
		return "Maintain"
	}
}

// Label returns the display name used in prompts
func (l FitnessLevel) Label() string {
	switch l {
	case Beginner:
		return "Beginner"
	case Advanced:
		return "Advanced"
	default:
		return "Intermediate"
	}
}

// Profile is a user's biometric profile
type Profile struct {
	Gender             Gender       `json:"gender"`
	Age                int          `json:"age"`
	HeightCm           float64      `json:"height_cm"`
	WeightKg           float64      `json:"weight_kg"`
	Goal               Goal         `json:"goal"`
	FitnessLevel       FitnessLevel `json:"fitness_level"`
	DietaryPreferences string       `json:"dietary_preferences"`
}

// Targets are the daily energy and protein targets derived from a Profile
type Targets struct {
	BMR           float64 `json:"bmr"`
	TDEE          float64 `json:"tdee"`
	DailyCalories float64 `json:"daily_calories"`
	DailyProteinG float64 `json:"daily_protein_g"`
}

// ProfileRequest is the request body for saving a profile
type ProfileRequest struct {
	Gender             string  `json:"gender" binding:"required"`
	Age                int     `json:"age" binding:"required,min=15,max=100"`
	HeightCm           float64 `json:"height_cm" binding:"required,min=120,max=250"`
	WeightKg           float64 `json:"weight_kg" binding:"required,min=30,max=200"`
	Goal               string  `json:"goal" binding:"required"`
	FitnessLevel       string  `json:"fitness_level"`
	DietaryPreferences string  `json:"dietary_preferences" binding:"max=500"`
}

// ToProfile normalizes the enum fields of the request
func (r *ProfileRequest) ToProfile() (*Profile, error) {
	gender, err := ParseGender(r.Gender)
	if err != nil {
		return nil, err
	}
	goal, err := ParseGoal(r.Goal)
	if err != nil {
		return nil, err
	}
	level, err := ParseFitnessLevel(r.FitnessLevel)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Gender:             gender,
		Age:                r.Age,
		HeightCm:           r.HeightCm,
		WeightKg:           r.WeightKg,
		Goal:               goal,
		FitnessLevel:       level,
		DietaryPreferences: strings.TrimSpace(r.DietaryPreferences),
	}, nil
}

// ProfileResponse is a saved profile together with its targets
type ProfileResponse struct {
	Profile Profile `json:"profile"`
	Targets Targets `json:"targets"`
}
