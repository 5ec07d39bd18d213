package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a long-lived opaque credential. The token value is 96 hex
// characters (48 random bytes) and is meaningless without a store lookup.
// A user may hold several live tokens at once (one per login / device).
type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Token     string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
