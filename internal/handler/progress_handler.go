package handler

import (
	"net/http"
	"strconv"

	"github.com/skillgrove/skillgrove/internal/middleware"
	"github.com/skillgrove/skillgrove/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	historyDefaultLimit = 20
	historyMaxLimit     = 20
)

type ProgressHandler struct {
	progressService *service.ProgressService
}

func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

// CompleteChallengeRequest carries an optional status field for forward
// compatibility; only "done" is meaningful today so the value is ignored.
type CompleteChallengeRequest struct {
	Status string `json:"status"`
}

// CompleteChallenge handles POST /api/challenges/:id/complete
func (h *ProgressHandler) CompleteChallenge(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondErrorCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid challenge id")
		return
	}

	// The body is optional; an empty or absent body means "done".
	var req CompleteChallengeRequest
	_ = c.ShouldBindJSON(&req)

	progress, err := h.progressService.CompleteChallenge(userID, challengeID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, progress)
}

// ReopenChallenge handles DELETE /api/challenges/:id/complete
func (h *ProgressHandler) ReopenChallenge(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondErrorCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid challenge id")
		return
	}

	if err := h.progressService.ReopenChallenge(userID, challengeID); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"success": true})
}

// GetUserProgress handles GET /api/me/progress
func (h *ProgressHandler) GetUserProgress(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondErrorCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	skills, err := h.progressService.GetUserProgress(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"skills": skills})
}

// GetHistory handles GET /api/me/history?limit=N
func (h *ProgressHandler) GetHistory(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondErrorCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	limit := historyDefaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil {
			limit = parsed
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > historyMaxLimit {
		limit = historyMaxLimit
	}

	history, err := h.progressService.GetHistory(userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, history)
}
