package handler

import (
	"net/http"

	"github.com/skillgrove/skillgrove/internal/repository"
	"github.com/skillgrove/skillgrove/internal/service"
	"github.com/skillgrove/skillgrove/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChallengeHandler struct {
	challengeService *service.ChallengeService
}

func NewChallengeHandler(challengeService *service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

type CreateChallengeRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	OrderIndex  int    `json:"orderIndex" binding:"required"`
}

type UpdateChallengeRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"orderIndex"`
}

// ListBySkill handles GET /api/skills/:skillId/challenges
func (h *ChallengeHandler) ListBySkill(c *gin.Context) {
	skillID, err := uuid.Parse(c.Param("skillId"))
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid skill id")
		return
	}

	page := utils.ParsePagination(c.Query("page"), c.Query("limit"))

	sort := c.DefaultQuery("sort", repository.SortOrderIndex)

	challenges, total, err := h.challengeService.ListBySkill(skillID, sort, page.Offset(), page.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, paginated{
		Items: challenges,
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	})
}

// Get handles GET /api/challenges/:id
func (h *ChallengeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid challenge id")
		return
	}

	challenge, err := h.challengeService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, challenge)
}

// Create handles POST /api/skills/:skillId/challenges (admin)
func (h *ChallengeHandler) Create(c *gin.Context) {
	skillID, err := uuid.Parse(c.Param("skillId"))
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid skill id")
		return
	}

	var req CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	challenge, err := h.challengeService.Create(skillID, service.CreateChallengeInput{
		Title:       req.Title,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, challenge)
}

// Update handles PUT /api/challenges/:id (admin)
func (h *ChallengeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid challenge id")
		return
	}

	var req UpdateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	challenge, err := h.challengeService.Update(id, service.UpdateChallengeInput{
		Title:       req.Title,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, challenge)
}

// Delete handles DELETE /api/challenges/:id (admin)
func (h *ChallengeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid challenge id")
		return
	}

	if err := h.challengeService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"success": true})
}
