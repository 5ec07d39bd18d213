package handler

import (
	"net/http"

	"github.com/skillgrove/skillgrove/internal/service"
	"github.com/skillgrove/skillgrove/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// GetOverview handles GET /api/admin/overview (admin)
func (h *AdminHandler) GetOverview(c *gin.Context) {
	logger.Log.Debug("Admin fetching overview")

	overview, err := h.adminService.GetOverview()
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, overview)
}
