package repository

import (
	"errors"
	"time"

	"github.com/skillgrove/skillgrove/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) GetByUserAndChallenge(userID, challengeID uuid.UUID) (*models.ChallengeProgress, error) {
	var progress models.ChallengeProgress
	err := r.db.Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

// UpsertDone records a completion in a single atomic statement keyed on the
// unique (user_id, challenge_id) index. Two concurrent completions for the
// same pair therefore collapse into one row: one request inserts, the other
// updates. The resulting row is re-read so callers always see stored state.
func (r *ProgressRepository) UpsertDone(userID, challengeID uuid.UUID, doneAt time.Time) (*models.ChallengeProgress, error) {
	progress := models.ChallengeProgress{
		ID:          uuid.New(),
		UserID:      userID,
		ChallengeID: challengeID,
		Status:      models.ProgressDone,
		DoneAt:      &doneAt,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "challenge_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":  models.ProgressDone,
			"done_at": doneAt,
		}),
	}).Create(&progress).Error
	if err != nil {
		return nil, err
	}

	return r.GetByUserAndChallenge(userID, challengeID)
}

// Reopen flips an existing row back to pending and clears its timestamp.
// The row is retained, never deleted.
func (r *ProgressRepository) Reopen(userID, challengeID uuid.UUID) error {
	return r.db.Model(&models.ChallengeProgress{}).
		Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		Updates(map[string]interface{}{
			"status":  models.ProgressPending,
			"done_at": nil,
		}).Error
}

// ListDoneByUser returns all of a user's completed rows with the owning
// challenge loaded, for grouping by skill.
func (r *ProgressRepository) ListDoneByUser(userID uuid.UUID) ([]*models.ChallengeProgress, error) {
	var rows []*models.ChallengeProgress
	err := r.db.Preload("Challenge").
		Where("user_id = ? AND status = ?", userID, models.ProgressDone).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListRecent returns the user's completions newest-first, joined with the
// challenge and its skill. Pending (reopened) rows are excluded.
func (r *ProgressRepository) ListRecent(userID uuid.UUID, limit int) ([]*models.ChallengeProgress, error) {
	var rows []*models.ChallengeProgress
	err := r.db.Preload("Challenge.Skill").
		Where("user_id = ? AND status = ?", userID, models.ProgressDone).
		Order("done_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountCompletionsSince counts done rows across all users, for the admin
// overview.
func (r *ProgressRepository) CountCompletionsSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.ChallengeProgress{}).
		Where("status = ? AND done_at >= ?", models.ProgressDone, since).
		Count(&count).Error
	return count, err
}
