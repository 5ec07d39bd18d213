package repository

import (
	"errors"

	"github.com/skillgrove/skillgrove/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

type SkillFilter struct {
	IsActive *bool
	Offset   int
	Limit    int
}

func (r *SkillRepository) List(filter SkillFilter) ([]*models.Skill, int64, error) {
	query := r.db.Model(&models.Skill{})
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var skills []*models.Skill
	err := query.Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&skills).Error
	if err != nil {
		return nil, 0, err
	}

	return skills, total, nil
}

func (r *SkillRepository) GetByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.Where("id = ?", id).First(&skill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &skill, nil
}

// ListActiveWithChallenges loads every active skill together with its full
// challenge list. This supplies the denominators for progress aggregation.
func (r *SkillRepository) ListActiveWithChallenges() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Preload("Challenges", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC")
	}).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *SkillRepository) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

func (r *SkillRepository) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Deactivate is the catalog's soft delete: the skill row survives so that
// existing progress stays legible, but it stops accepting completions.
func (r *SkillRepository) Deactivate(id uuid.UUID) error {
	return r.db.Model(&models.Skill{}).Where("id = ?", id).Update("is_active", false).Error
}

// ExistsByName reports whether another skill already uses the name,
// case-insensitive.
func (r *SkillRepository) ExistsByName(name string, excludeID uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Skill{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SkillRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Skill{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
