package handler

import (
	"net/http"

	"github.com/skillgrove/skillgrove/internal/service"
	"github.com/skillgrove/skillgrove/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SkillHandler struct {
	skillService *service.SkillService
}

func NewSkillHandler(skillService *service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

type CreateSkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

type UpdateSkillRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// List handles GET /api/skills
func (h *SkillHandler) List(c *gin.Context) {
	page := utils.ParsePagination(c.Query("page"), c.Query("limit"))

	var isActive *bool
	switch c.Query("isActive") {
	case "true":
		v := true
		isActive = &v
	case "false":
		v := false
		isActive = &v
	}

	skills, total, err := h.skillService.List(isActive, page.Offset(), page.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, paginated{
		Items: skills,
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	})
}

// Get handles GET /api/skills/:id
func (h *SkillHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("skillId"))
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid skill id")
		return
	}

	skill, err := h.skillService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, skill)
}

// Create handles POST /api/skills (admin)
func (h *SkillHandler) Create(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	skill, err := h.skillService.Create(service.CreateSkillInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, skill)
}

// Update handles PUT /api/skills/:id (admin)
func (h *SkillHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("skillId"))
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid skill id")
		return
	}

	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	skill, err := h.skillService.Update(id, service.UpdateSkillInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, skill)
}

// Delete handles DELETE /api/skills/:id (admin). Skills are deactivated,
// never hard-deleted.
func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("skillId"))
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid skill id")
		return
	}

	if err := h.skillService.Deactivate(id); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"success": true})
}
