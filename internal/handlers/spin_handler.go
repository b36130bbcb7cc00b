package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luckytaka/earning-app-backend/internal/middleware"
	"github.com/luckytaka/earning-app-backend/internal/services"
)

// SpinHandler handles spin wheel HTTP requests
type SpinHandler struct {
	spinService *services.SpinService
}

// NewSpinHandler creates a new SpinHandler
func NewSpinHandler(spinService *services.SpinService) *SpinHandler {
	return &SpinHandler{
		spinService: spinService,
	}
}

// GetSegments handles GET /spin/segments
func (h *SpinHandler) GetSegments(c *gin.Context) {
	c.JSON(http.StatusOK, h.spinService.Segments())
}

// Spin handles POST /spin
func (h *SpinHandler) Spin(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.spinService.Spin(c, accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
