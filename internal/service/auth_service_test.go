package service

import (
	"testing"
	"time"

	"github.com/skillgrove/skillgrove/internal/models"
	"github.com/skillgrove/skillgrove/internal/repository"
	"github.com/skillgrove/skillgrove/internal/testutil"
	"github.com/skillgrove/skillgrove/internal/utils"
	"github.com/skillgrove/skillgrove/pkg/logger"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

const authTestSecret = "auth-service-test-secret"

type AuthServiceTestSuite struct {
	suite.Suite
	testDB    *testutil.TestDatabase
	userRepo  *repository.UserRepository
	tokenRepo *repository.RefreshTokenRepository
	service   *AuthService
}

func (s *AuthServiceTestSuite) SetupSuite() {
	logger.Log = zap.NewNop()
	s.testDB = testutil.SetupTestDatabase(s.T())

	s.userRepo = repository.NewUserRepository(s.testDB.DB)
	s.tokenRepo = repository.NewRefreshTokenRepository(s.testDB.DB)
	s.service = NewAuthService(s.userRepo, s.tokenRepo, authTestSecret, 15*time.Minute, 7*24*time.Hour)
}

func (s *AuthServiceTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *AuthServiceTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

func (s *AuthServiceTestSuite) requireKind(err error, kind ErrorKind) {
	var svcErr *Error
	s.Require().ErrorAs(err, &svcErr)
	s.Equal(kind, svcErr.Kind)
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	user, err := s.service.Register("Ada Lovelace", "ada@example.com", "secret1")
	s.Require().NoError(err)
	s.Equal("ada@example.com", user.Email)
	s.Equal(models.RoleUser, user.Role)
	s.True(user.IsActive)

	stored, err := s.userRepo.GetByEmail("ada@example.com")
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.NotEqual("secret1", stored.PasswordHash)
}

func (s *AuthServiceTestSuite) TestRegister_Validation() {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"short name", "A", "a@example.com", "secret1"},
		{"bad email", "Ada Lovelace", "not-an-email", "secret1"},
		{"short password", "Ada Lovelace", "ada@example.com", "12345"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.Register(tt.userName, tt.email, tt.password)
			s.requireKind(err, KindValidation)
		})
	}
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	_, err := s.service.Register("Ada Lovelace", "ada@example.com", "secret1")
	s.Require().NoError(err)

	_, err = s.service.Register("Other Ada", "ada@example.com", "secret2")
	s.requireKind(err, KindConflict)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	testutil.CreateTestUser(s.T(), s.testDB.DB, "Ada Lovelace", "ada@example.com", "secret1", models.RoleUser)

	result, err := s.service.Login("ada@example.com", "secret1")
	s.Require().NoError(err)
	s.NotEmpty(result.AccessToken)
	s.Len(result.RefreshToken, utils.RefreshTokenBytes*2)
	s.Equal("ada@example.com", result.User.Email)

	subject, err := utils.ValidateAccessToken(result.AccessToken, authTestSecret)
	s.Require().NoError(err)
	s.Equal(result.User.ID, subject)

	stored, err := s.tokenRepo.GetByToken(result.RefreshToken)
	s.Require().NoError(err)
	s.Require().NotNil(stored, "login must persist the refresh token")
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	testutil.CreateTestUser(s.T(), s.testDB.DB, "Ada Lovelace", "ada@example.com", "secret1", models.RoleUser)

	_, err := s.service.Login("ada@example.com", "wrong")
	s.requireKind(err, KindUnauthorized)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	_, err := s.service.Login("nobody@example.com", "secret1")
	s.requireKind(err, KindUnauthorized)
}

func (s *AuthServiceTestSuite) TestLogin_InactiveUser() {
	user := testutil.CreateTestUser(s.T(), s.testDB.DB, "Ada Lovelace", "ada@example.com", "secret1", models.RoleUser)
	s.Require().NoError(s.testDB.DB.Model(user).Update("is_active", false).Error)

	_, err := s.service.Login("ada@example.com", "secret1")
	s.requireKind(err, KindUnauthorized)
}

func (s *AuthServiceTestSuite) TestLogin_MultipleSessions() {
	user := testutil.CreateTestUser(s.T(), s.testDB.DB, "Ada Lovelace", "ada@example.com", "secret1", models.RoleUser)

	first, err := s.service.Login("ada@example.com", "secret1")
	s.Require().NoError(err)
	second, err := s.service.Login("ada@example.com", "secret1")
	s.Require().NoError(err)
	s.NotEqual(first.RefreshToken, second.RefreshToken)

	count, err := s.tokenRepo.CountForUser(user.ID)
	s.Require().NoError(err)
	s.Equal(int64(2), count, "a second login must not revoke the first session")
}

func (s *AuthServiceTestSuite) TestRefresh_Success() {
	testutil.CreateTestUser(s.T(), s.testDB.DB, "Ada Lovelace", "ada@example.com", "secret1", models.RoleUser)
	result, err := s.service.Login("ada@example.com", "secret1")
	s.Require().NoError(err)

	accessToken, err := s.service.Refresh(result.RefreshToken)
	s.Require().NoError(err)
	s.NotEmpty(accessToken)

	// The refresh token is not rotated and stays usable.
	stored, err := s.tokenRepo.GetByToken(result.RefreshToken)
	s.Require().NoError(err)
	s.NotNil(stored)
}

func (s *AuthServiceTestSuite) TestRefresh_UnknownToken() {
	_, err := s.service.Refresh("deadbeef")
	s.requireKind(err, KindUnauthorized)
}

func (s *AuthServiceTestSuite) TestRefresh_ExpiredTokenDeletedLazily() {
	user := testutil.CreateTestUser(s.T(), s.testDB.DB, "Ada Lovelace", "ada@example.com", "secret1", models.RoleUser)
	expired := testutil.CreateTestRefreshToken(s.T(), s.testDB.DB, user.ID, time.Now().Add(-time.Hour))

	_, err := s.service.Refresh(expired.Token)
	s.requireKind(err, KindUnauthorized)

	stored, err := s.tokenRepo.GetByToken(expired.Token)
	s.Require().NoError(err)
	s.Nil(stored, "expired token must be deleted on first use")
}

func (s *AuthServiceTestSuite) TestRefresh_InactiveOwnerRevokesAllSessions() {
	user := testutil.CreateTestUser(s.T(), s.testDB.DB, "Ada Lovelace", "ada@example.com", "secret1", models.RoleUser)

	first, err := s.service.Login("ada@example.com", "secret1")
	s.Require().NoError(err)
	_, err = s.service.Login("ada@example.com", "secret1")
	s.Require().NoError(err)

	s.Require().NoError(s.testDB.DB.Model(user).Update("is_active", false).Error)

	_, err = s.service.Refresh(first.RefreshToken)
	s.requireKind(err, KindUnauthorized)

	count, err := s.tokenRepo.CountForUser(user.ID)
	s.Require().NoError(err)
	s.Equal(int64(0), count, "deactivation must revoke every session")
}

func (s *AuthServiceTestSuite) TestLogout_Idempotent() {
	testutil.CreateTestUser(s.T(), s.testDB.DB, "Ada Lovelace", "ada@example.com", "secret1", models.RoleUser)
	result, err := s.service.Login("ada@example.com", "secret1")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Logout(result.RefreshToken))

	stored, err := s.tokenRepo.GetByToken(result.RefreshToken)
	s.Require().NoError(err)
	s.Nil(stored)

	s.NoError(s.service.Logout(result.RefreshToken), "repeated logout must succeed")

	_, err = s.service.Refresh(result.RefreshToken)
	s.requireKind(err, KindUnauthorized)
}

func (s *AuthServiceTestSuite) TestGetProfile() {
	user := testutil.CreateTestUser(s.T(), s.testDB.DB, "Ada Lovelace", "ada@example.com", "secret1", models.RoleUser)

	profile, err := s.service.GetProfile(user.ID)
	s.Require().NoError(err)
	s.Equal(user.Email, profile.Email)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
