package service

import (
	"regexp"
	"time"

	"github.com/skillgrove/skillgrove/internal/models"
	"github.com/skillgrove/skillgrove/internal/repository"
	"github.com/skillgrove/skillgrove/internal/utils"
	"github.com/skillgrove/skillgrove/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// LoginResult bundles what a successful login returns.
type LoginResult struct {
	User         *models.PublicUser
	AccessToken  string
	RefreshToken string
}

type AuthService struct {
	userRepo        *repository.UserRepository
	tokenRepo       *repository.RefreshTokenRepository
	jwtSecret       string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

func NewAuthService(
	userRepo *repository.UserRepository,
	tokenRepo *repository.RefreshTokenRepository,
	jwtSecret string,
	accessTokenTTL, refreshTokenTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		jwtSecret:       jwtSecret,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
	}
}

// Register creates a new user with the default role. The password hash
// never leaves the service.
func (s *AuthService) Register(name, email, password string) (*models.PublicUser, error) {
	logger.Log.Debug("Processing user registration",
		zap.String("email", email),
	)

	if err := s.validateRegisterInput(name, email, password); err != nil {
		logger.Log.Warn("Registration validation failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(email, uuid.Nil)
	if err != nil {
		logger.Log.Error("Failed to check email existence",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, InternalError("failed to check email", err)
	}
	if exists {
		logger.Log.Warn("Email already exists",
			zap.String("email", email),
		)
		return nil, ConflictError("user with this email already exists")
	}

	hashStart := time.Now()
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, InternalError("failed to hash password", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         models.RoleUser,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		logger.Log.Error("Failed to create user in database",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, InternalError("failed to create user", err)
	}

	logger.Log.Info("User registered successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email),
		zap.Duration("hash_duration", time.Since(hashStart)),
	)

	return user.Public(), nil
}

// Login verifies the credentials and issues both token types. Each login
// persists a fresh refresh token and leaves earlier ones untouched, so a
// user may stay signed in on several devices at once.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	logger.Log.Debug("Processing user login",
		zap.String("email", email),
	)

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to get user by email",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, InternalError("failed to look up user", err)
	}
	if user == nil {
		logger.Log.Warn("Login failed: user not found",
			zap.String("email", email),
		)
		return nil, UnauthorizedError("invalid credentials")
	}
	if !user.IsActive {
		logger.Log.Warn("Login failed: user inactive",
			zap.String("user_id", user.ID.String()),
		)
		return nil, UnauthorizedError("user is inactive")
	}

	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Failed to verify password",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, InternalError("failed to verify password", err)
	}
	if !valid {
		logger.Log.Warn("Login failed: invalid password",
			zap.String("user_id", user.ID.String()),
		)
		return nil, UnauthorizedError("invalid credentials")
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, s.jwtSecret, s.accessTokenTTL)
	if err != nil {
		logger.Log.Error("Failed to generate access token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to generate access token", err)
	}

	refreshToken, err := utils.NewRefreshToken()
	if err != nil {
		logger.Log.Error("Failed to generate refresh token", zap.Error(err))
		return nil, InternalError("failed to generate refresh token", err)
	}

	stored := &models.RefreshToken{
		ID:        uuid.New(),
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}
	if err := s.tokenRepo.Create(stored); err != nil {
		logger.Log.Error("Failed to persist refresh token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to persist refresh token", err)
	}

	logger.Log.Info("User logged in successfully",
		zap.String("user_id", user.ID.String()),
	)

	return &LoginResult{
		User:         user.Public(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a live refresh token for a new access token. The
// refresh token itself is not rotated; it stays valid until logout, expiry
// or forced revocation. Expired tokens are deleted lazily on first use.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	stored, err := s.tokenRepo.GetByToken(refreshToken)
	if err != nil {
		logger.Log.Error("Failed to look up refresh token", zap.Error(err))
		return "", InternalError("failed to look up refresh token", err)
	}
	if stored == nil {
		logger.Log.Warn("Refresh failed: token not found")
		return "", UnauthorizedError("invalid refresh token")
	}

	if !stored.ExpiresAt.After(time.Now()) {
		if err := s.tokenRepo.DeleteByID(stored.ID); err != nil {
			logger.Log.Error("Failed to delete expired refresh token",
				zap.String("token_id", stored.ID.String()),
				zap.Error(err),
			)
		}
		logger.Log.Warn("Refresh failed: token expired",
			zap.String("user_id", stored.UserID.String()),
		)
		return "", UnauthorizedError("refresh token expired")
	}

	user, err := s.userRepo.GetByID(stored.UserID)
	if err != nil {
		logger.Log.Error("Failed to load refresh token owner",
			zap.String("user_id", stored.UserID.String()),
			zap.Error(err),
		)
		return "", InternalError("failed to load user", err)
	}
	if user == nil {
		if err := s.tokenRepo.DeleteByID(stored.ID); err != nil {
			logger.Log.Error("Failed to delete orphaned refresh token", zap.Error(err))
		}
		return "", UnauthorizedError("invalid refresh token")
	}
	if !user.IsActive {
		// Deactivation revokes every session the user holds.
		if err := s.tokenRepo.DeleteAllForUser(user.ID); err != nil {
			logger.Log.Error("Failed to revoke sessions of inactive user",
				zap.String("user_id", user.ID.String()),
				zap.Error(err),
			)
		}
		logger.Log.Warn("Refresh failed: user inactive, sessions revoked",
			zap.String("user_id", user.ID.String()),
		)
		return "", UnauthorizedError("user is inactive")
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, s.jwtSecret, s.accessTokenTTL)
	if err != nil {
		logger.Log.Error("Failed to generate access token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return "", InternalError("failed to generate access token", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token. Unknown tokens succeed silently so that
// retried logouts stay idempotent.
func (s *AuthService) Logout(refreshToken string) error {
	if err := s.tokenRepo.DeleteByToken(refreshToken); err != nil {
		logger.Log.Error("Failed to delete refresh token on logout", zap.Error(err))
		return InternalError("failed to delete refresh token", err)
	}
	return nil
}

// GetProfile returns the caller's public profile.
func (s *AuthService) GetProfile(userID uuid.UUID) (*models.PublicUser, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		logger.Log.Error("Failed to load user profile",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return nil, InternalError("failed to load user", err)
	}
	if user == nil {
		return nil, NotFoundError("user not found")
	}
	return user.Public(), nil
}

func (s *AuthService) validateRegisterInput(name, email, password string) error {
	if len(name) < 2 || len(name) > 80 {
		return ValidationError("name must be between 2 and 80 characters")
	}
	if !emailRegex.MatchString(email) {
		return ValidationError("invalid email format")
	}
	if len(email) > 100 {
		return ValidationError("email too long")
	}
	if len(password) < 6 {
		return ValidationError("password must be at least 6 characters")
	}
	if len(password) > 128 {
		return ValidationError("password too long")
	}
	return nil
}
