package handler

import (
	"net/http"

	"github.com/skillgrove/skillgrove/internal/middleware"
	"github.com/skillgrove/skillgrove/internal/models"
	"github.com/skillgrove/skillgrove/internal/service"
	"github.com/skillgrove/skillgrove/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type CreateUserRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role"`
	IsActive *bool       `json:"isActive"`
}

type UpdateUserRequest struct {
	Name     *string      `json:"name"`
	Email    *string      `json:"email"`
	Role     *models.Role `json:"role"`
	IsActive *bool        `json:"isActive"`
}

// List handles GET /api/users (admin)
func (h *UserHandler) List(c *gin.Context) {
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

	users, total, err := h.userService.List(c.Query("search"), isActive, page.Offset(), page.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, paginated{
		Items: users,
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	})
}

// Get handles GET /api/users/:id (self or admin)
func (h *UserHandler) Get(c *gin.Context) {
	requesterID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondErrorCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}
	requesterRole, _ := middleware.CurrentUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user id")
		return
	}

	user, err := h.userService.GetByID(id, requesterID, requesterRole)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, user)
}

// Create handles POST /api/users (admin)
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.userService.Create(service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, user)
}

// Update handles PUT /api/users/:id (admin)
func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user id")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.userService.Update(id, service.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, user)
}
