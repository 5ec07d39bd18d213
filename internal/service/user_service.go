package service

import (
	"strings"

	"github.com/skillgrove/skillgrove/internal/models"
	"github.com/skillgrove/skillgrove/internal/repository"
	"github.com/skillgrove/skillgrove/internal/utils"
	"github.com/skillgrove/skillgrove/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService covers the admin-side user management paths. Self-service
// registration lives in AuthService.
type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
	IsActive *bool
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Role     *models.Role
	IsActive *bool
}

func (s *UserService) List(search string, isActive *bool, offset, limit int) ([]*models.PublicUser, int64, error) {
	users, total, err := s.userRepo.List(repository.UserFilter{
		Search:   search,
		IsActive: isActive,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		logger.Log.Error("Failed to list users", zap.Error(err))
		return nil, 0, InternalError("failed to list users", err)
	}

	public := make([]*models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public, total, nil
}

// GetByID returns a user's public profile. Non-admins may only read their
// own record.
func (s *UserService) GetByID(id, requesterID uuid.UUID, requesterRole models.Role) (*models.PublicUser, error) {
	if requesterRole != models.RoleAdmin && requesterID != id {
		return nil, ForbiddenError("forbidden")
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to load user",
			zap.String("user_id", id.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to load user", err)
	}
	if user == nil {
		return nil, NotFoundError("user not found")
	}

	return user.Public(), nil
}

func (s *UserService) Create(input CreateUserInput) (*models.PublicUser, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < 2 || len(name) > 80 {
		return nil, ValidationError("name must be between 2 and 80 characters")
	}
	if !emailRegex.MatchString(input.Email) {
		return nil, ValidationError("invalid email format")
	}
	if len(input.Password) < 6 {
		return nil, ValidationError("password must be at least 6 characters")
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, ValidationError("role must be user or admin")
	}

	exists, err := s.userRepo.ExistsByEmail(input.Email, uuid.Nil)
	if err != nil {
		return nil, InternalError("failed to check email", err)
	}
	if exists {
		return nil, ConflictError("user with this email already exists")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, InternalError("failed to hash password", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Create(user); err != nil {
		logger.Log.Error("Failed to create user",
			zap.String("email", input.Email),
			zap.Error(err),
		)
		return nil, InternalError("failed to create user", err)
	}

	logger.Log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	return user.Public(), nil
}

func (s *UserService) Update(id uuid.UUID, input UpdateUserInput) (*models.PublicUser, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, InternalError("failed to load user", err)
	}
	if user == nil {
		return nil, NotFoundError("user not found")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if len(name) < 2 || len(name) > 80 {
			return nil, ValidationError("name must be between 2 and 80 characters")
		}
		user.Name = name
	}

	if input.Email != nil {
		if !emailRegex.MatchString(*input.Email) {
			return nil, ValidationError("invalid email format")
		}
		exists, err := s.userRepo.ExistsByEmail(*input.Email, id)
		if err != nil {
			return nil, InternalError("failed to check email", err)
		}
		if exists {
			return nil, ConflictError("user with this email already exists")
		}
		user.Email = *input.Email
	}

	if input.Role != nil {
		if *input.Role != models.RoleUser && *input.Role != models.RoleAdmin {
			return nil, ValidationError("role must be user or admin")
		}
		user.Role = *input.Role
	}

	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(user); err != nil {
		logger.Log.Error("Failed to update user",
			zap.String("user_id", id.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to update user", err)
	}

	logger.Log.Info("User updated",
		zap.String("user_id", id.String()),
		zap.Bool("is_active", user.IsActive),
	)

	return user.Public(), nil
}
