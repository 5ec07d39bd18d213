package service

import (
	"strings"

	"github.com/skillgrove/skillgrove/internal/models"
	"github.com/skillgrove/skillgrove/internal/repository"
	"github.com/skillgrove/skillgrove/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChallengeService struct {
	challengeRepo *repository.ChallengeRepository
	skillRepo     *repository.SkillRepository
}

func NewChallengeService(
	challengeRepo *repository.ChallengeRepository,
	skillRepo *repository.SkillRepository,
) *ChallengeService {
	return &ChallengeService{
		challengeRepo: challengeRepo,
		skillRepo:     skillRepo,
	}
}

type CreateChallengeInput struct {
	Title       string
	Description string
	OrderIndex  int
}

type UpdateChallengeInput struct {
	Title       *string
	Description *string
	OrderIndex  *int
}

func (s *ChallengeService) ListBySkill(skillID uuid.UUID, sort string, offset, limit int) ([]*models.Challenge, int64, error) {
	skill, err := s.skillRepo.GetByID(skillID)
	if err != nil {
		logger.Log.Error("Failed to load skill",
			zap.String("skill_id", skillID.String()),
			zap.Error(err),
		)
		return nil, 0, InternalError("failed to load skill", err)
	}
	if skill == nil {
		return nil, 0, NotFoundError("skill not found")
	}

	challenges, total, err := s.challengeRepo.ListBySkill(skillID, sort, offset, limit)
	if err != nil {
		logger.Log.Error("Failed to list challenges",
			zap.String("skill_id", skillID.String()),
			zap.Error(err),
		)
		return nil, 0, InternalError("failed to list challenges", err)
	}

	return challenges, total, nil
}

func (s *ChallengeService) GetByID(id uuid.UUID) (*models.Challenge, error) {
	challenge, err := s.challengeRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to load challenge",
			zap.String("challenge_id", id.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to load challenge", err)
	}
	if challenge == nil {
		return nil, NotFoundError("challenge not found")
	}
	return challenge, nil
}

func (s *ChallengeService) Create(skillID uuid.UUID, input CreateChallengeInput) (*models.Challenge, error) {
	skill, err := s.skillRepo.GetByID(skillID)
	if err != nil {
		return nil, InternalError("failed to load skill", err)
	}
	if skill == nil {
		return nil, NotFoundError("skill not found")
	}
	if !skill.IsActive {
		return nil, NotFoundError("skill is not active")
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)

	if err := validateChallengeTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if err := validateOrderIndex(input.OrderIndex); err != nil {
		return nil, err
	}

	exists, err := s.challengeRepo.ExistsOrderIndex(skillID, input.OrderIndex, uuid.Nil)
	if err != nil {
		return nil, InternalError("failed to check order index", err)
	}
	if exists {
		return nil, ConflictError("challenge with this orderIndex already exists for this skill")
	}

	challenge := &models.Challenge{
		ID:          uuid.New(),
		SkillID:     skillID,
		Title:       title,
		Description: description,
		OrderIndex:  input.OrderIndex,
	}

	if err := s.challengeRepo.Create(challenge); err != nil {
		logger.Log.Error("Failed to create challenge",
			zap.String("skill_id", skillID.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to create challenge", err)
	}

	logger.Log.Info("Challenge created",
		zap.String("challenge_id", challenge.ID.String()),
		zap.String("skill_id", skillID.String()),
		zap.Int("order_index", challenge.OrderIndex),
	)

	return challenge, nil
}

func (s *ChallengeService) Update(id uuid.UUID, input UpdateChallengeInput) (*models.Challenge, error) {
	challenge, err := s.challengeRepo.GetByID(id)
	if err != nil {
		return nil, InternalError("failed to load challenge", err)
	}
	if challenge == nil {
		return nil, NotFoundError("challenge not found")
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if err := validateChallengeTitle(title); err != nil {
			return nil, err
		}
		challenge.Title = title
	}

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if err := validateDescription(description); err != nil {
			return nil, err
		}
		challenge.Description = description
	}

	if input.OrderIndex != nil {
		if err := validateOrderIndex(*input.OrderIndex); err != nil {
			return nil, err
		}
		exists, err := s.challengeRepo.ExistsOrderIndex(challenge.SkillID, *input.OrderIndex, id)
		if err != nil {
			return nil, InternalError("failed to check order index", err)
		}
		if exists {
			return nil, ConflictError("challenge with this orderIndex already exists for this skill")
		}
		challenge.OrderIndex = *input.OrderIndex
	}

	if err := s.challengeRepo.Update(challenge); err != nil {
		logger.Log.Error("Failed to update challenge",
			zap.String("challenge_id", id.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to update challenge", err)
	}

	return challenge, nil
}

func (s *ChallengeService) Delete(id uuid.UUID) error {
	challenge, err := s.challengeRepo.GetByID(id)
	if err != nil {
		return InternalError("failed to load challenge", err)
	}
	if challenge == nil {
		return NotFoundError("challenge not found")
	}

	if err := s.challengeRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete challenge",
			zap.String("challenge_id", id.String()),
			zap.Error(err),
		)
		return InternalError("failed to delete challenge", err)
	}

	logger.Log.Info("Challenge deleted",
		zap.String("challenge_id", id.String()),
	)

	return nil
}

func validateChallengeTitle(title string) error {
	if len(title) < 2 || len(title) > 120 {
		return ValidationError("title must be between 2 and 120 characters")
	}
	return nil
}

func validateOrderIndex(orderIndex int) error {
	if orderIndex < 1 {
		return ValidationError("orderIndex must be an integer >= 1")
	}
	return nil
}
