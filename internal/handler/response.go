package handler

import (
	"errors"
	"net/http"

	"github.com/skillgrove/skillgrove/internal/service"

	"github.com/gin-gonic/gin"
)

// Every successful response is wrapped as {"data": ...}; every failure as
// {"error": {"code": ..., "message": ...}}. Clients key behavior off the
// code string, never off the message text.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

func respondErrorCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}

// respondError maps a service error to its HTTP status and stable code.
// Unexpected error values fall through to 500 without leaking details.
func respondError(c *gin.Context, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		respondErrorCode(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	switch svcErr.Kind {
	case service.KindValidation:
		respondErrorCode(c, http.StatusBadRequest, "VALIDATION_ERROR", svcErr.Message)
	case service.KindUnauthorized:
		respondErrorCode(c, http.StatusUnauthorized, "UNAUTHORIZED", svcErr.Message)
	case service.KindForbidden:
		respondErrorCode(c, http.StatusForbidden, "FORBIDDEN", svcErr.Message)
	case service.KindNotFound:
		respondErrorCode(c, http.StatusNotFound, "NOT_FOUND", svcErr.Message)
	case service.KindConflict:
		respondErrorCode(c, http.StatusConflict, "CONFLICT", svcErr.Message)
	case service.KindInternal:
		respondErrorCode(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	default:
		respondErrorCode(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

// paginated is the standard list payload.
type paginated struct {
	Items interface{} `json:"items"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Total int64       `json:"total"`
}
