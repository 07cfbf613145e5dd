package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fitsync-pro/backend/internal/types"
)

// GeneratedPlan is a meal or workout plan returned by the model, kept verbatim
type GeneratedPlan struct {
	ID         uuid.UUID       `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID     uuid.UUID       `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Kind       types.PlanKind  `gorm:"size:10;not null;index" json:"kind"`
	Style      types.PlanStyle `gorm:"size:10;not null" json:"style"`
	Model      string          `gorm:"size:100" json:"model"`
	Prompt     string          `gorm:"type:text" json:"-"`
	RawJSON    string          `gorm:"type:text;not null" json:"raw_json"`
	ArchiveKey string          `gorm:"size:255" json:"archive_key,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (GeneratedPlan) TableName() string {
	return "generated_plans"
}

// BeforeCreate assigns a UUID when none was set
func (p *GeneratedPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
