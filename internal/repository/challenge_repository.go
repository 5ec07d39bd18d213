package repository

import (
	"errors"

	"github.com/skillgrove/skillgrove/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChallengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

// SortOrderIndex lists challenges in their configured order; anything else
// falls back to newest-first.
const SortOrderIndex = "orderIndex"

func (r *ChallengeRepository) ListBySkill(skillID uuid.UUID, sort string, offset, limit int) ([]*models.Challenge, int64, error) {
	query := r.db.Model(&models.Challenge{}).Where("skill_id = ?", skillID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if sort == SortOrderIndex {
		order = "order_index ASC"
	}

	var challenges []*models.Challenge
	err := query.Order(order).Offset(offset).Limit(limit).Find(&challenges).Error
	if err != nil {
		return nil, 0, err
	}

	return challenges, total, nil
}

// GetByID loads a challenge with its owning skill so callers can check the
// skill's active state without a second query.
func (r *ChallengeRepository) GetByID(id uuid.UUID) (*models.Challenge, error) {
	var challenge models.Challenge
	err := r.db.Preload("Skill").Where("id = ?", id).First(&challenge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &challenge, nil
}

func (r *ChallengeRepository) Create(challenge *models.Challenge) error {
	return r.db.Create(challenge).Error
}

func (r *ChallengeRepository) Update(challenge *models.Challenge) error {
	return r.db.Save(challenge).Error
}

func (r *ChallengeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Challenge{}, "id = ?", id).Error
}

// ExistsOrderIndex reports whether the skill already has a challenge at the
// given position.
func (r *ChallengeRepository) ExistsOrderIndex(skillID uuid.UUID, orderIndex int, excludeID uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Challenge{}).
		Where("skill_id = ? AND order_index = ?", skillID, orderIndex)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ChallengeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Challenge{}).Count(&count).Error
	return count, err
}
