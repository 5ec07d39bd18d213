package database

import (
	"fmt"

	"github.com/skillgrove/skillgrove/internal/config"
	"github.com/skillgrove/skillgrove/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the PostgreSQL connection and returns the handle.
// The handle is threaded through the repositories explicitly; there is
// no package-level DB.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

// Migrate runs auto-migration for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Skill{},
		&models.Challenge{},
		&models.ChallengeProgress{},
		&models.SkillAssessment{},
	)
}
