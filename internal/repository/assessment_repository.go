package repository

import (
	"errors"

	"github.com/skillgrove/skillgrove/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Upsert records a self-assessment. The first submission fixes the initial
// score; later ones only move the current score.
func (r *AssessmentRepository) Upsert(userID, skillID uuid.UUID, score int) (*models.SkillAssessment, error) {
	assessment := models.SkillAssessment{
		ID:           uuid.New(),
		UserID:       userID,
		SkillID:      skillID,
		ScoreInitial: score,
		ScoreCurrent: score,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "skill_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"score_current": score,
		}),
	}).Create(&assessment).Error
	if err != nil {
		return nil, err
	}

	return r.GetByUserAndSkill(userID, skillID)
}

func (r *AssessmentRepository) GetByUserAndSkill(userID, skillID uuid.UUID) (*models.SkillAssessment, error) {
	var assessment models.SkillAssessment
	err := r.db.Preload("Skill").
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		First(&assessment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assessment, nil
}

func (r *AssessmentRepository) ListByUser(userID uuid.UUID) ([]*models.SkillAssessment, error) {
	var assessments []*models.SkillAssessment
	err := r.db.Preload("Skill").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}
