package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fitsync-pro/backend/internal/types"
)

// FitnessProfile is the stored profile of a user together with the targets computed from it.
// Target columns are only written by the profile service.
type FitnessProfile struct {
	ID                 uuid.UUID          `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID             uuid.UUID          `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Gender             types.Gender       `gorm:"size:10;not null" json:"gender"`
	Age                int                `gorm:"not null" json:"age"`
	HeightCm           float64            `gorm:"not null" json:"height_cm"`
	WeightKg           float64            `gorm:"not null" json:"weight_kg"`
	Goal               types.Goal         `gorm:"size:10;not null" json:"goal"`
	FitnessLevel       types.FitnessLevel `gorm:"size:20;not null;default:'intermediate'" json:"fitness_level"`
	DietaryPreferences string             `gorm:"type:text" json:"dietary_preferences"`
	BMR                float64            `json:"bmr"`
	TDEE               float64            `json:"tdee"`
	DailyCalories      float64            `json:"daily_calories"`
	DailyProteinG      float64            `json:"daily_protein_g"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (FitnessProfile) TableName() string {
	return "fitness_profiles"
}

// BeforeCreate assigns a UUID when none was set
func (p *FitnessProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Profile returns the biometric part of the record
func (p *FitnessProfile) Profile() types.Profile {
	return types.Profile{
		Gender:             p.Gender,
		Age:                p.Age,
		HeightCm:           p.HeightCm,
		WeightKg:           p.WeightKg,
		Goal:               p.Goal,
		FitnessLevel:       p.FitnessLevel,
		DietaryPreferences: p.DietaryPreferences,
	}
}

// Targets returns the stored targets
func (p *FitnessProfile) Targets() types.Targets {
	return types.Targets{
		BMR:           p.BMR,
		TDEE:          p.TDEE,
		DailyCalories: p.DailyCalories,
		DailyProteinG: p.DailyProteinG,
	}
}
