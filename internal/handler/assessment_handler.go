package handler

import (
	"net/http"

	"github.com/skillgrove/skillgrove/internal/middleware"
	"github.com/skillgrove/skillgrove/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssessmentHandler struct {
	assessmentService *service.AssessmentService
}

func NewAssessmentHandler(assessmentService *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

type SubmitAssessmentRequest struct {
	SkillID string `json:"skillId" binding:"required"`
	Score   int    `json:"score"`
}

type SubmitAssessmentsRequest struct {
	Assessments []SubmitAssessmentRequest `json:"assessments" binding:"required"`
}

// Submit handles POST /api/assessments/submit
func (h *AssessmentHandler) Submit(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondErrorCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	var req SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	skillID, err := uuid.Parse(req.SkillID)
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid skill id")
		return
	}

	assessment, err := h.assessmentService.Submit(userID, service.AssessmentInput{
		SkillID: skillID,
		Score:   req.Score,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, assessment)
}

// SubmitMany handles POST /api/assessments/submit-multiple
func (h *AssessmentHandler) SubmitMany(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondErrorCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	var req SubmitAssessmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	inputs := make([]service.AssessmentInput, 0, len(req.Assessments))
	for _, a := range req.Assessments {
		skillID, err := uuid.Parse(a.SkillID)
		if err != nil {
			respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid skill id")
			return
		}
		inputs = append(inputs, service.AssessmentInput{SkillID: skillID, Score: a.Score})
	}

	assessments, err := h.assessmentService.SubmitMany(userID, inputs)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, assessments)
}

// ListMine handles GET /api/assessments/me
func (h *AssessmentHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondErrorCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	assessments, err := h.assessmentService.ListMine(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, assessments)
}

// GetMineBySkill handles GET /api/assessments/skill/:skillId
func (h *AssessmentHandler) GetMineBySkill(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondErrorCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	skillID, err := uuid.Parse(c.Param("skillId"))
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid skill id")
		return
	}

	assessment, err := h.assessmentService.GetMineBySkill(userID, skillID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, assessment)
}
