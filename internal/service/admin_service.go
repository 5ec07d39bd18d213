package service

import (
	"time"

	"github.com/skillgrove/skillgrove/internal/repository"
	"github.com/skillgrove/skillgrove/pkg/logger"

	"go.uber.org/zap"
)

// Overview is the admin dashboard's headline numbers.
type Overview struct {
	Users             int64 `json:"users"`
	Skills            int64 `json:"skills"`
	Challenges        int64 `json:"challenges"`
	CompletionsLast30 int64 `json:"completionsLast30d"`
}

type AdminService struct {
	userRepo      *repository.UserRepository
	skillRepo     *repository.SkillRepository
	challengeRepo *repository.ChallengeRepository
	progressRepo  *repository.ProgressRepository
}

func NewAdminService(
	userRepo *repository.UserRepository,
	skillRepo *repository.SkillRepository,
	challengeRepo *repository.ChallengeRepository,
	progressRepo *repository.ProgressRepository,
) *AdminService {
	return &AdminService{
		userRepo:      userRepo,
		skillRepo:     skillRepo,
		challengeRepo: challengeRepo,
		progressRepo:  progressRepo,
	}
}

// GetOverview counts users, active skills, challenges and completions over
// the trailing 30 days.
func (s *AdminService) GetOverview() (*Overview, error) {
	users, err := s.userRepo.Count()
	if err != nil {
		logger.Log.Error("Failed to count users", zap.Error(err))
		return nil, InternalError("failed to count users", err)
	}

	skills, err := s.skillRepo.CountActive()
	if err != nil {
		logger.Log.Error("Failed to count skills", zap.Error(err))
		return nil, InternalError("failed to count skills", err)
	}

	challenges, err := s.challengeRepo.Count()
	if err != nil {
		logger.Log.Error("Failed to count challenges", zap.Error(err))
		return nil, InternalError("failed to count challenges", err)
	}

	completions, err := s.progressRepo.CountCompletionsSince(time.Now().AddDate(0, 0, -30))
	if err != nil {
		logger.Log.Error("Failed to count completions", zap.Error(err))
		return nil, InternalError("failed to count completions", err)
	}

	return &Overview{
		Users:             users,
		Skills:            skills,
		Challenges:        challenges,
		CompletionsLast30: completions,
	}, nil
}
