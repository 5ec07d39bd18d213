package models

import (
	"time"

	"github.com/google/uuid"
)

// SkillAssessment stores a user's self-assessed score for one skill.
// ScoreInitial is written once on first submission; later submissions
// only move ScoreCurrent.
type SkillAssessment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_skill" json:"userId"`
	SkillID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_skill" json:"skillId"`
	ScoreInitial int       `gorm:"not null" json:"scoreInitial"`
	ScoreCurrent int       `gorm:"not null" json:"scoreCurrent"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Skill Skill `gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE" json:"skill,omitempty"`
}
