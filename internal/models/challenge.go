package models

import (
	"time"

	"github.com/google/uuid"
)

// Challenge is a single ordered unit of practice belonging to one skill.
// OrderIndex starts at 1 and is unique within the owning skill.
type Challenge struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SkillID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_skill_order" json:"skillId"`
	Title       string    `gorm:"type:varchar(120);not null" json:"title"`
	Description string    `gorm:"type:varchar(1000);not null" json:"description"`
	OrderIndex  int       `gorm:"not null;uniqueIndex:idx_skill_order" json:"orderIndex"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Skill Skill `gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE" json:"skill,omitempty"`
}
