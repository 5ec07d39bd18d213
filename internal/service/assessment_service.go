package service

import (
	"github.com/skillgrove/skillgrove/internal/models"
	"github.com/skillgrove/skillgrove/internal/repository"
	"github.com/skillgrove/skillgrove/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AssessmentService struct {
	assessmentRepo *repository.AssessmentRepository
	skillRepo      *repository.SkillRepository
}

func NewAssessmentService(
	assessmentRepo *repository.AssessmentRepository,
	skillRepo *repository.SkillRepository,
) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		skillRepo:      skillRepo,
	}
}

type AssessmentInput struct {
	SkillID uuid.UUID
	Score   int
}

// Submit records one self-assessment against an active skill.
func (s *AssessmentService) Submit(userID uuid.UUID, input AssessmentInput) (*models.SkillAssessment, error) {
	if err := validateScore(input.Score); err != nil {
		return nil, err
	}

	skill, err := s.skillRepo.GetByID(input.SkillID)
	if err != nil {
		return nil, InternalError("failed to load skill", err)
	}
	if skill == nil {
		return nil, NotFoundError("skill not found")
	}
	if !skill.IsActive {
		return nil, NotFoundError("skill is not active")
	}

	assessment, err := s.assessmentRepo.Upsert(userID, input.SkillID, input.Score)
	if err != nil {
		logger.Log.Error("Failed to save assessment",
			zap.String("user_id", userID.String()),
			zap.String("skill_id", input.SkillID.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to save assessment", err)
	}

	return assessment, nil
}

// SubmitMany records a batch of self-assessments, as submitted by the
// onboarding flow. Unknown or inactive skills are skipped rather than
// failing the whole batch.
func (s *AssessmentService) SubmitMany(userID uuid.UUID, inputs []AssessmentInput) ([]*models.SkillAssessment, error) {
	results := make([]*models.SkillAssessment, 0, len(inputs))

	for _, input := range inputs {
		if err := validateScore(input.Score); err != nil {
			return nil, err
		}

		skill, err := s.skillRepo.GetByID(input.SkillID)
		if err != nil {
			return nil, InternalError("failed to load skill", err)
		}
		if skill == nil || !skill.IsActive {
			continue
		}

		assessment, err := s.assessmentRepo.Upsert(userID, input.SkillID, input.Score)
		if err != nil {
			logger.Log.Error("Failed to save assessment in batch",
				zap.String("user_id", userID.String()),
				zap.String("skill_id", input.SkillID.String()),
				zap.Error(err),
			)
			return nil, InternalError("failed to save assessment", err)
		}
		results = append(results, assessment)
	}

	logger.Log.Info("Assessments submitted",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(results)),
	)

	return results, nil
}

func (s *AssessmentService) ListMine(userID uuid.UUID) ([]*models.SkillAssessment, error) {
	assessments, err := s.assessmentRepo.ListByUser(userID)
	if err != nil {
		logger.Log.Error("Failed to list assessments",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to list assessments", err)
	}
	return assessments, nil
}

// GetMineBySkill returns the caller's assessment for one skill, or NotFound
// when none was ever submitted.
func (s *AssessmentService) GetMineBySkill(userID, skillID uuid.UUID) (*models.SkillAssessment, error) {
	assessment, err := s.assessmentRepo.GetByUserAndSkill(userID, skillID)
	if err != nil {
		return nil, InternalError("failed to load assessment", err)
	}
	if assessment == nil {
		return nil, NotFoundError("assessment not found")
	}
	return assessment, nil
}

func validateScore(score int) error {
	if score < 0 || score > 100 {
		return ValidationError("score must be between 0 and 100")
	}
	return nil
}
