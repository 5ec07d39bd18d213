package testutil

import (
	"testing"
	"time"

	"github.com/skillgrove/skillgrove/internal/models"
	"github.com/skillgrove/skillgrove/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTestUser inserts a user with a real Argon2id hash so login paths
// can verify the password.
func CreateTestUser(t *testing.T, db *gorm.DB, name, email, password string, role models.Role) *models.User {
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// CreateTestSkill inserts a skill.
func CreateTestSkill(t *testing.T, db *gorm.DB, name string, isActive bool) *models.Skill {
	skill := &models.Skill{
		ID:          uuid.New(),
		Name:        name,
		Description: "test skill",
		IsActive:    isActive,
	}
	if err := db.Create(skill).Error; err != nil {
		t.Fatalf("Failed to create test skill: %v", err)
	}
	return skill
}

// CreateTestChallenge inserts a challenge under the given skill.
func CreateTestChallenge(t *testing.T, db *gorm.DB, skillID uuid.UUID, title string, orderIndex int) *models.Challenge {
	challenge := &models.Challenge{
		ID:          uuid.New(),
		SkillID:     skillID,
		Title:       title,
		Description: "test challenge",
		OrderIndex:  orderIndex,
	}
	if err := db.Create(challenge).Error; err != nil {
		t.Fatalf("Failed to create test challenge: %v", err)
	}
	return challenge
}

// CreateTestRefreshToken inserts a refresh token row with the given expiry.
func CreateTestRefreshToken(t *testing.T, db *gorm.DB, userID uuid.UUID, expiresAt time.Time) *models.RefreshToken {
	token, err := utils.NewRefreshToken()
	if err != nil {
		t.Fatalf("Failed to generate refresh token: %v", err)
	}

	stored := &models.RefreshToken{
		ID:        uuid.New(),
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	if err := db.Create(stored).Error; err != nil {
		t.Fatalf("Failed to create test refresh token: %v", err)
	}
	return stored
}
