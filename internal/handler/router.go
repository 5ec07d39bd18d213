package handler

import (
	"net/http"

	"github.com/skillgrove/skillgrove/internal/middleware"
	"github.com/skillgrove/skillgrove/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Skill      *SkillHandler
	Challenge  *ChallengeHandler
	Progress   *ProgressHandler
	Assessment *AssessmentHandler
	User       *UserHandler
	Admin      *AdminHandler
}

// RouterOptions carries the cross-cutting pieces the route table needs.
type RouterOptions struct {
	UserRepo     *repository.UserRepository
	JWTSecret    string
	RateLimiter  *middleware.RateLimiter
	IsProduction bool
}

// NewRouter assembles the full route table. The rate limiter is optional;
// when nil (tests, local runs without Redis) the credential endpoints are
// simply unthrottled.
func NewRouter(h Handlers, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(opts.IsProduction))
	router.Use(cors.Default())

	authRequired := middleware.AuthMiddleware(opts.UserRepo, opts.JWTSecret)
	adminOnly := middleware.AdminMiddleware()

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Credential endpoints, throttled when a limiter is wired.
	auth := api.Group("/auth")
	if opts.RateLimiter != nil {
		auth.POST("/register", opts.RateLimiter.Middleware(), h.Auth.Register)
		auth.POST("/login", opts.RateLimiter.Middleware(), h.Auth.Login)
		auth.POST("/refresh", opts.RateLimiter.Middleware(), h.Auth.Refresh)
	} else {
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/me", authRequired, h.Auth.Me)

	// Public catalog reads
	api.GET("/skills", h.Skill.List)
	api.GET("/skills/:skillId", h.Skill.Get)
	api.GET("/skills/:skillId/challenges", h.Challenge.ListBySkill)
	api.GET("/challenges/:id", h.Challenge.Get)

	// Catalog administration
	api.POST("/skills", authRequired, adminOnly, h.Skill.Create)
	api.PUT("/skills/:skillId", authRequired, adminOnly, h.Skill.Update)
	api.DELETE("/skills/:skillId", authRequired, adminOnly, h.Skill.Delete)
	api.POST("/skills/:skillId/challenges", authRequired, adminOnly, h.Challenge.Create)
	api.PUT("/challenges/:id", authRequired, adminOnly, h.Challenge.Update)
	api.DELETE("/challenges/:id", authRequired, adminOnly, h.Challenge.Delete)

	// Progress ledger
	api.POST("/challenges/:id/complete", authRequired, h.Progress.CompleteChallenge)
	api.DELETE("/challenges/:id/complete", authRequired, h.Progress.ReopenChallenge)
	api.GET("/me/progress", authRequired, h.Progress.GetUserProgress)
	api.GET("/me/history", authRequired, h.Progress.GetHistory)

	// Self-assessments
	api.POST("/assessments/submit", authRequired, h.Assessment.Submit)
	api.POST("/assessments/submit-multiple", authRequired, h.Assessment.SubmitMany)
	api.GET("/assessments/me", authRequired, h.Assessment.ListMine)
	api.GET("/assessments/skill/:skillId", authRequired, h.Assessment.GetMineBySkill)

	// User management
	api.GET("/users", authRequired, adminOnly, h.User.List)
	api.POST("/users", authRequired, adminOnly, h.User.Create)
	api.GET("/users/:id", authRequired, h.User.Get)
	api.PUT("/users/:id", authRequired, adminOnly, h.User.Update)

	// Admin dashboard
	api.GET("/admin/overview", authRequired, adminOnly, h.Admin.GetOverview)

	return router
}
