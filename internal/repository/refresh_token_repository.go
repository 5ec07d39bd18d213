package repository

import (
	"errors"

	"github.com/skillgrove/skillgrove/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *RefreshTokenRepository) GetByToken(token string) (*models.RefreshToken, error) {
	var stored models.RefreshToken
	err := r.db.Where("token = ?", token).First(&stored).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stored, nil
}

func (r *RefreshTokenRepository) DeleteByID(id uuid.UUID) error {
	return r.db.Delete(&models.RefreshToken{}, "id = ?", id).Error
}

// DeleteByToken removes a token row. Deleting a token that does not exist
// is not an error; logout relies on that.
func (r *RefreshTokenRepository) DeleteByToken(token string) error {
	return r.db.Delete(&models.RefreshToken{}, "token = ?", token).Error
}

// DeleteAllForUser revokes every session a user holds. Used when a refresh
// attempt finds the owner deactivated.
func (r *RefreshTokenRepository) DeleteAllForUser(userID uuid.UUID) error {
	return r.db.Delete(&models.RefreshToken{}, "user_id = ?", userID).Error
}

func (r *RefreshTokenRepository) CountForUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.RefreshToken{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
