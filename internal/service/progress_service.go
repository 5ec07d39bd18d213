package service

import (
	"math"
	"time"

	"github.com/skillgrove/skillgrove/internal/models"
	"github.com/skillgrove/skillgrove/internal/repository"
	"github.com/skillgrove/skillgrove/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SkillProgress is the per-skill rollup of a user's completions. Percent is
// precomputed so clients never have to derive it from the counts.
type SkillProgress struct {
	SkillID             uuid.UUID `json:"skillId"`
	SkillName           string    `json:"skillName"`
	TotalChallenges     int       `json:"totalChallenges"`
	CompletedChallenges int       `json:"completedChallenges"`
	ProgressPercent     int       `json:"progressPercent"`
}

// HistoryEntry is one completed challenge in the recent-activity feed.
type HistoryEntry struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	ChallengeID uuid.UUID  `json:"challengeId"`
	Status      string     `json:"status"`
	DoneAt      *time.Time `json:"doneAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	Challenge   struct {
		ID          uuid.UUID `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		OrderIndex  int       `json:"orderIndex"`
		SkillID     uuid.UUID `json:"skillId"`
		SkillName   string    `json:"skillName"`
	} `json:"challenge"`
}

type ProgressService struct {
	progressRepo  *repository.ProgressRepository
	challengeRepo *repository.ChallengeRepository
	skillRepo     *repository.SkillRepository
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	challengeRepo *repository.ChallengeRepository,
	skillRepo *repository.SkillRepository,
) *ProgressService {
	return &ProgressService{
		progressRepo:  progressRepo,
		challengeRepo: challengeRepo,
		skillRepo:     skillRepo,
	}
}

// CompleteChallenge marks a challenge done for the user. Completing an
// already-done challenge is a no-op returning the stored row, so clients
// can retry the call freely. Challenges of inactive skills do not accept
// new completions.
func (s *ProgressService) CompleteChallenge(userID, challengeID uuid.UUID) (*models.ChallengeProgress, error) {
	challenge, err := s.challengeRepo.GetByID(challengeID)
	if err != nil {
		logger.Log.Error("Failed to load challenge",
			zap.String("challenge_id", challengeID.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to load challenge", err)
	}
	if challenge == nil {
		return nil, NotFoundError("challenge not found")
	}
	if !challenge.Skill.IsActive {
		logger.Log.Warn("Completion rejected: skill inactive",
			zap.String("challenge_id", challengeID.String()),
			zap.String("skill_id", challenge.SkillID.String()),
		)
		return nil, NotFoundError("skill is not active")
	}

	existing, err := s.progressRepo.GetByUserAndChallenge(userID, challengeID)
	if err != nil {
		logger.Log.Error("Failed to load progress row",
			zap.String("user_id", userID.String()),
			zap.String("challenge_id", challengeID.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to load progress", err)
	}
	if existing != nil && existing.Status == models.ProgressDone {
		// Already done: leave the original timestamp untouched.
		return existing, nil
	}

	progress, err := s.progressRepo.UpsertDone(userID, challengeID, time.Now())
	if err != nil {
		logger.Log.Error("Failed to record completion",
			zap.String("user_id", userID.String()),
			zap.String("challenge_id", challengeID.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to record completion", err)
	}

	logger.Log.Info("Challenge completed",
		zap.String("user_id", userID.String()),
		zap.String("challenge_id", challengeID.String()),
	)

	return progress, nil
}

// ReopenChallenge flips a completion back to pending. The skill's active
// state is deliberately not checked: a user may reopen work in a skill
// that has since been deactivated. Reopening a challenge that was never
// attempted succeeds without creating a row.
func (s *ProgressService) ReopenChallenge(userID, challengeID uuid.UUID) error {
	challenge, err := s.challengeRepo.GetByID(challengeID)
	if err != nil {
		logger.Log.Error("Failed to load challenge",
			zap.String("challenge_id", challengeID.String()),
			zap.Error(err),
		)
		return InternalError("failed to load challenge", err)
	}
	if challenge == nil {
		return NotFoundError("challenge not found")
	}

	existing, err := s.progressRepo.GetByUserAndChallenge(userID, challengeID)
	if err != nil {
		logger.Log.Error("Failed to load progress row",
			zap.String("user_id", userID.String()),
			zap.String("challenge_id", challengeID.String()),
			zap.Error(err),
		)
		return InternalError("failed to load progress", err)
	}
	if existing == nil {
		return nil
	}

	if err := s.progressRepo.Reopen(userID, challengeID); err != nil {
		logger.Log.Error("Failed to reopen challenge",
			zap.String("user_id", userID.String()),
			zap.String("challenge_id", challengeID.String()),
			zap.Error(err),
		)
		return InternalError("failed to reopen challenge", err)
	}

	logger.Log.Info("Challenge reopened",
		zap.String("user_id", userID.String()),
		zap.String("challenge_id", challengeID.String()),
	)

	return nil
}

// GetUserProgress aggregates the user's completions into per-skill
// summaries. Inactive skills are excluded entirely; completions against
// them simply stop being counted. Percentages round half up.
func (s *ProgressService) GetUserProgress(userID uuid.UUID) ([]SkillProgress, error) {
	skills, err := s.skillRepo.ListActiveWithChallenges()
	if err != nil {
		logger.Log.Error("Failed to load active skills", zap.Error(err))
		return nil, InternalError("failed to load skills", err)
	}

	done, err := s.progressRepo.ListDoneByUser(userID)
	if err != nil {
		logger.Log.Error("Failed to load user completions",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to load progress", err)
	}

	completedBySkill := make(map[uuid.UUID]int, len(skills))
	for _, row := range done {
		completedBySkill[row.Challenge.SkillID]++
	}

	summaries := make([]SkillProgress, 0, len(skills))
	for _, skill := range skills {
		total := len(skill.Challenges)
		completed := completedBySkill[skill.ID]

		percent := 0
		if total > 0 {
			percent = int(math.Round(float64(completed) / float64(total) * 100))
		}

		summaries = append(summaries, SkillProgress{
			SkillID:             skill.ID,
			SkillName:           skill.Name,
			TotalChallenges:     total,
			CompletedChallenges: completed,
			ProgressPercent:     percent,
		})
	}

	return summaries, nil
}

// GetHistory lists the user's completions newest-first. Reopened rows are
// pending and therefore absent. Callers clamp the limit before calling.
func (s *ProgressService) GetHistory(userID uuid.UUID, limit int) ([]HistoryEntry, error) {
	rows, err := s.progressRepo.ListRecent(userID, limit)
	if err != nil {
		logger.Log.Error("Failed to load history",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to load history", err)
	}

	entries := make([]HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entry := HistoryEntry{
			ID:          row.ID,
			UserID:      row.UserID,
			ChallengeID: row.ChallengeID,
			Status:      string(row.Status),
			DoneAt:      row.DoneAt,
			CreatedAt:   row.CreatedAt,
		}
		entry.Challenge.ID = row.Challenge.ID
		entry.Challenge.Title = row.Challenge.Title
		entry.Challenge.Description = row.Challenge.Description
		entry.Challenge.OrderIndex = row.Challenge.OrderIndex
		entry.Challenge.SkillID = row.Challenge.SkillID
		entry.Challenge.SkillName = row.Challenge.Skill.Name
		entries = append(entries, entry)
	}

	return entries, nil
}
