package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	KindText        = "text"
	KindMealPlan    = "meal_plan"
	KindWorkoutPlan = "workout_plan"
)

// ChatMessage is one entry of a user's conversation with the coach.
// Plan messages reference the generated plan instead of carrying text.
type ChatMessage struct {
	ID        uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Role      string     `gorm:"size:10;not null" json:"role"`
	Kind      string     `gorm:"size:20;not null;default:'text'" json:"kind"`
	Content   string     `gorm:"type:text" json:"content"`
	PlanID    *uuid.UUID `gorm:"type:varchar(36)" json:"plan_id,omitempty"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// BeforeCreate assigns a UUID when none was set
func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
