package main

import (
	"log"
	"os"

	"github.com/skillgrove/skillgrove/internal/config"
	"github.com/skillgrove/skillgrove/internal/database"
	"github.com/skillgrove/skillgrove/internal/models"
	"github.com/skillgrove/skillgrove/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seeds an admin account and a small demo catalog. Safe to re-run: existing
// rows are left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := seedAdmin(db); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	if err := seedCatalog(db); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Println("Seed completed")
}

func seedAdmin(db *gorm.DB) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@skillgrove.dev"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Admin %s already exists, skipping", email)
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		ID:           uuid.New(),
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Created admin %s", email)
	return nil
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Skill{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Catalog not empty, skipping demo skills")
		return nil
	}

	catalog := []struct {
		name        string
		description string
		challenges  []string
	}{
		{
			name:        "Active Listening",
			description: "Hearing what people actually say, not what you expect them to say.",
			challenges: []string{
				"Summarize a colleague's point before replying",
				"Hold a five-minute conversation without interrupting",
				"Ask three clarifying questions in your next meeting",
			},
		},
		{
			name:        "Giving Feedback",
			description: "Delivering observations that help instead of hurt.",
			challenges: []string{
				"Give one piece of specific, behavior-focused praise",
				"Deliver constructive feedback using a situation-behavior-impact frame",
			},
		},
		{
			name:        "Time Management",
			description: "Deciding what not to do, and when.",
			challenges: []string{
				"Plan tomorrow in time blocks before leaving today",
				"Say no to one low-priority request",
				"Run one full day without checking mail before noon",
			},
		},
	}

	for _, entry := range catalog {
		skill := &models.Skill{
			ID:          uuid.New(),
			Name:        entry.name,
			Description: entry.description,
			IsActive:    true,
		}
		if err := db.Create(skill).Error; err != nil {
			return err
		}

		for i, title := range entry.challenges {
			challenge := &models.Challenge{
				ID:          uuid.New(),
				SkillID:     skill.ID,
				Title:       title,
				Description: "Complete this exercise and reflect on how it went.",
				OrderIndex:  i + 1,
			}
			if err := db.Create(challenge).Error; err != nil {
				return err
			}
		}

		log.Printf("Created skill %q with %d challenges", entry.name, len(entry.challenges))
	}

	return nil
}
