package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill is a named track grouping an ordered list of challenges.
// Deactivated skills stop accepting completions but keep their history.
type Skill struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(80);not null" json:"name"`
	Description string    `gorm:"type:varchar(1000);not null" json:"description"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Challenges []Challenge `gorm:"foreignKey:SkillID" json:"challenges,omitempty"`
}
