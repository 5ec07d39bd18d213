package main

import (
	"log"

	"github.com/skillgrove/skillgrove/internal/config"
	"github.com/skillgrove/skillgrove/internal/database"
	"github.com/skillgrove/skillgrove/internal/handler"
	"github.com/skillgrove/skillgrove/internal/middleware"
	"github.com/skillgrove/skillgrove/internal/repository"
	"github.com/skillgrove/skillgrove/internal/service"
	"github.com/skillgrove/skillgrove/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to connect database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}
	logger.Log.Info("Database ready")

	// Rate limiting is optional: without Redis the API still runs, just
	// unthrottled.
	var rateLimiter *middleware.RateLimiter
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Log.Fatal("Invalid REDIS_URL", zap.Error(err))
		}
		rateLimiter = middleware.NewRateLimiter(redis.NewClient(opt), middleware.RateLimiterConfig{
			MaxRequests: cfg.RateLimitMaxRequests,
			Window:      cfg.RateLimitWindow,
			BlockTime:   cfg.RateLimitBlockTime,
		})
		logger.Log.Info("Rate limiter enabled")
	} else {
		logger.Log.Warn("REDIS_URL not set, rate limiting disabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, tokenRepo, cfg.JWTAccessSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	skillService := service.NewSkillService(skillRepo)
	challengeService := service.NewChallengeService(challengeRepo, skillRepo)
	progressService := service.NewProgressService(progressRepo, challengeRepo, skillRepo)
	assessmentService := service.NewAssessmentService(assessmentRepo, skillRepo)
	userService := service.NewUserService(userRepo)
	adminService := service.NewAdminService(userRepo, skillRepo, challengeRepo, progressRepo)

	router := handler.NewRouter(handler.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Skill:      handler.NewSkillHandler(skillService),
		Challenge:  handler.NewChallengeHandler(challengeService),
		Progress:   handler.NewProgressHandler(progressService),
		Assessment: handler.NewAssessmentHandler(assessmentService),
		User:       handler.NewUserHandler(userService),
		Admin:      handler.NewAdminHandler(adminService),
	}, handler.RouterOptions{
		UserRepo:     userRepo,
		JWTSecret:    cfg.JWTAccessSecret,
		RateLimiter:  rateLimiter,
		IsProduction: cfg.IsProduction(),
	})

	logger.Log.Info("Server starting", zap.String("addr", cfg.ServerPort))
	if err := router.Run(cfg.ServerPort); err != nil {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
