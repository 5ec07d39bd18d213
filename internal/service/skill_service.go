package service

import (
	"strings"

	"github.com/skillgrove/skillgrove/internal/models"
	"github.com/skillgrove/skillgrove/internal/repository"
	"github.com/skillgrove/skillgrove/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SkillService struct {
	skillRepo *repository.SkillRepository
}

func NewSkillService(skillRepo *repository.SkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

type CreateSkillInput struct {
	Name        string
	Description string
	IsActive    *bool
}

type UpdateSkillInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

func (s *SkillService) List(isActive *bool, offset, limit int) ([]*models.Skill, int64, error) {
	skills, total, err := s.skillRepo.List(repository.SkillFilter{
		IsActive: isActive,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		logger.Log.Error("Failed to list skills", zap.Error(err))
		return nil, 0, InternalError("failed to list skills", err)
	}
	return skills, total, nil
}

func (s *SkillService) GetByID(id uuid.UUID) (*models.Skill, error) {
	skill, err := s.skillRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to load skill",
			zap.String("skill_id", id.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to load skill", err)
	}
	if skill == nil {
		return nil, NotFoundError("skill not found")
	}
	return skill, nil
}

func (s *SkillService) Create(input CreateSkillInput) (*models.Skill, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)

	if err := validateSkillName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	exists, err := s.skillRepo.ExistsByName(name, uuid.Nil)
	if err != nil {
		logger.Log.Error("Failed to check skill name", zap.Error(err))
		return nil, InternalError("failed to check skill name", err)
	}
	if exists {
		return nil, ConflictError("skill with this name already exists")
	}

	skill := &models.Skill{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		IsActive:    true,
	}
	if input.IsActive != nil {
		skill.IsActive = *input.IsActive
	}

	if err := s.skillRepo.Create(skill); err != nil {
		logger.Log.Error("Failed to create skill", zap.Error(err))
		return nil, InternalError("failed to create skill", err)
	}

	logger.Log.Info("Skill created",
		zap.String("skill_id", skill.ID.String()),
		zap.String("name", skill.Name),
	)

	return skill, nil
}

func (s *SkillService) Update(id uuid.UUID, input UpdateSkillInput) (*models.Skill, error) {
	skill, err := s.skillRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to load skill",
			zap.String("skill_id", id.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to load skill", err)
	}
	if skill == nil {
		return nil, NotFoundError("skill not found")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validateSkillName(name); err != nil {
			return nil, err
		}
		exists, err := s.skillRepo.ExistsByName(name, id)
		if err != nil {
			return nil, InternalError("failed to check skill name", err)
		}
		if exists {
			return nil, ConflictError("skill with this name already exists")
		}
		skill.Name = name
	}

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if err := validateDescription(description); err != nil {
			return nil, err
		}
		skill.Description = description
	}

	if input.IsActive != nil {
		skill.IsActive = *input.IsActive
	}

	if err := s.skillRepo.Update(skill); err != nil {
		logger.Log.Error("Failed to update skill",
			zap.String("skill_id", id.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to update skill", err)
	}

	return skill, nil
}

// Deactivate soft-deletes a skill. Completed progress against it stays in
// the store; the skill just disappears from aggregates and stops accepting
// completions.
func (s *SkillService) Deactivate(id uuid.UUID) error {
	skill, err := s.skillRepo.GetByID(id)
	if err != nil {
		return InternalError("failed to load skill", err)
	}
	if skill == nil {
		return NotFoundError("skill not found")
	}

	if err := s.skillRepo.Deactivate(id); err != nil {
		logger.Log.Error("Failed to deactivate skill",
			zap.String("skill_id", id.String()),
			zap.Error(err),
		)
		return InternalError("failed to deactivate skill", err)
	}

	logger.Log.Info("Skill deactivated",
		zap.String("skill_id", id.String()),
	)

	return nil
}

func validateSkillName(name string) error {
	if len(name) < 2 || len(name) > 80 {
		return ValidationError("name must be between 2 and 80 characters")
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > 1000 {
		return ValidationError("description must be at most 1000 characters")
	}
	return nil
}
