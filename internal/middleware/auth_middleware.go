package middleware

import (
	"net/http"
	"strings"

	"github.com/skillgrove/skillgrove/internal/models"
	"github.com/skillgrove/skillgrove/internal/repository"
	"github.com/skillgrove/skillgrove/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

func unauthorized(c *gin.Context) {
	// One generic body for every failure mode: absent header, bad scheme,
	// invalid or expired token, unknown or deactivated user. Callers must
	// not learn which check failed.
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{"code": "UNAUTHORIZED", "message": "Unauthorized"},
	})
	c.Abort()
}

// AuthMiddleware resolves a bearer access token to a live user identity.
// The token is verified statelessly, but the subject is re-checked against
// the store on every request so that deactivating a user locks them out
// immediately, before their access token expires.
func AuthMiddleware(userRepo *repository.UserRepository, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			unauthorized(c)
			return
		}

		userID, err := utils.ValidateAccessToken(parts[1], jwtSecret)
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := userRepo.GetByID(userID)
		if err != nil || user == nil || !user.IsActive {
			unauthorized(c)
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)

		c.Next()
	}
}

// AdminMiddleware gates admin-only routes. It must run after
// AuthMiddleware: a missing identity is an authentication failure (401),
// a non-admin identity is an authorization failure (403).
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextUserRole)
		if !exists {
			unauthorized(c)
			return
		}

		if role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{"code": "FORBIDDEN", "message": "Forbidden"},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the gin context.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok
}

// CurrentUserRole returns the authenticated user's role from the gin context.
func CurrentUserRole(c *gin.Context) (models.Role, bool) {
	val, exists := c.Get(ContextUserRole)
	if !exists {
		return "", false
	}
	role, ok := val.(models.Role)
	return role, ok
}
