package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileChange records one field of a profile changing value
type ProfileChange struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Field     string    `gorm:"size:40;not null" json:"field"` // json name of the profile field
	OldValue  string    `gorm:"type:text" json:"old_value"`
	NewValue  string    `gorm:"type:text" json:"new_value"`
	ChangedAt time.Time `gorm:"not null;index" json:"changed_at"`
}

// TableName specifies the table name for ProfileChange
func (ProfileChange) TableName() string {
	return "profile_history"
}

// BeforeCreate assigns a UUID when none was set
func (c *ProfileChange) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
