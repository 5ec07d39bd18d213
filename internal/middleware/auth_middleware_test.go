package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skillgrove/skillgrove/internal/models"
	"github.com/skillgrove/skillgrove/internal/repository"
	"github.com/skillgrove/skillgrove/internal/testutil"
	"github.com/skillgrove/skillgrove/internal/utils"
	"github.com/skillgrove/skillgrove/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

const middlewareTestSecret = "middleware-test-secret"

type AuthMiddlewareTestSuite struct {
	suite.Suite
	testDB   *testutil.TestDatabase
	userRepo *repository.UserRepository
	router   *gin.Engine
}

func (s *AuthMiddlewareTestSuite) SetupSuite() {
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)
	s.testDB = testutil.SetupTestDatabase(s.T())
	s.userRepo = repository.NewUserRepository(s.testDB.DB)

	s.router = gin.New()
	protected := s.router.Group("/", AuthMiddleware(s.userRepo, middlewareTestSecret))
	protected.GET("/me", func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	admin := protected.Group("/admin", AdminMiddleware())
	admin.GET("/overview", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func (s *AuthMiddlewareTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

func (s *AuthMiddlewareTestSuite) get(path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) tokenFor(userID uuid.UUID) string {
	token, err := utils.GenerateAccessToken(userID, middlewareTestSecret, time.Hour)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestMissingHeader() {
	w := s.get("/me", "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"error":{"code":"UNAUTHORIZED","message":"Unauthorized"}}`, w.Body.String())
}

func (s *AuthMiddlewareTestSuite) TestMalformedHeader() {
	user := testutil.CreateTestUser(s.T(), s.testDB.DB, "Auth User", "auth@example.com", "secret1", models.RoleUser)
	token := s.tokenFor(user.ID)

	for _, header := range []string{token, "Basic " + token, "Bearer"} {
		w := s.get("/me", header)
		s.Equal(http.StatusUnauthorized, w.Code, "header %q must be rejected", header)
	}
}

func (s *AuthMiddlewareTestSuite) TestInvalidToken() {
	w := s.get("/me", "Bearer not-a-token")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestExpiredToken() {
	user := testutil.CreateTestUser(s.T(), s.testDB.DB, "Auth User", "auth@example.com", "secret1", models.RoleUser)
	token, err := utils.GenerateAccessToken(user.ID, middlewareTestSecret, -time.Minute)
	s.Require().NoError(err)

	w := s.get("/me", "Bearer "+token)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestValidToken() {
	user := testutil.CreateTestUser(s.T(), s.testDB.DB, "Auth User", "auth@example.com", "secret1", models.RoleUser)

	w := s.get("/me", "Bearer "+s.tokenFor(user.ID))
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), user.ID.String())
}

func (s *AuthMiddlewareTestSuite) TestCaseInsensitiveScheme() {
	user := testutil.CreateTestUser(s.T(), s.testDB.DB, "Auth User", "auth@example.com", "secret1", models.RoleUser)

	w := s.get("/me", "bearer "+s.tokenFor(user.ID))
	s.Equal(http.StatusOK, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestDeactivatedUserLockedOut() {
	user := testutil.CreateTestUser(s.T(), s.testDB.DB, "Auth User", "auth@example.com", "secret1", models.RoleUser)
	token := s.tokenFor(user.ID)

	w := s.get("/me", "Bearer "+token)
	s.Equal(http.StatusOK, w.Code)

	s.Require().NoError(s.testDB.DB.Model(user).Update("is_active", false).Error)

	// The token is still validly signed, but the user is gone.
	w = s.get("/me", "Bearer "+token)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestUnknownSubject() {
	w := s.get("/me", "Bearer "+s.tokenFor(uuid.New()))
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthMiddlewareTestSuite) TestAdminGate() {
	user := testutil.CreateTestUser(s.T(), s.testDB.DB, "Plain User", "user@example.com", "secret1", models.RoleUser)
	admin := testutil.CreateTestUser(s.T(), s.testDB.DB, "Admin User", "admin@example.com", "secret1", models.RoleAdmin)

	w := s.get("/admin/overview", "Bearer "+s.tokenFor(user.ID))
	s.Equal(http.StatusForbidden, w.Code)
	s.JSONEq(`{"error":{"code":"FORBIDDEN","message":"Forbidden"}}`, w.Body.String())

	w = s.get("/admin/overview", "Bearer "+s.tokenFor(admin.ID))
	s.Equal(http.StatusOK, w.Code)

	w = s.get("/admin/overview", "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
