package models

import (
	"time"

	"github.com/google/uuid"
)

type ProgressStatus string

const (
	ProgressPending ProgressStatus = "pending"
	ProgressDone    ProgressStatus = "done"
)

// ChallengeProgress is the per-user, per-challenge completion record.
// The composite unique index makes the complete-challenge upsert atomic:
// two concurrent completions for the same pair cannot both insert.
// A reopened row is kept with status=pending so "attempted then reopened"
// stays distinguishable from "never attempted".
type ChallengeProgress struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_user_challenge" json:"userId"`
	ChallengeID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_user_challenge" json:"challengeId"`
	Status      ProgressStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	DoneAt      *time.Time     `json:"doneAt"`
	CreatedAt   time.Time      `json:"createdAt"`

	Challenge Challenge `gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE" json:"challenge,omitempty"`
}
