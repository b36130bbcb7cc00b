package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luckytaka/earning-app-backend/internal/middleware"
	"github.com/luckytaka/earning-app-backend/internal/services"
)

// InvestHandler handles investment plan HTTP requests
type InvestHandler struct {
	investService *services.InvestService
}

// NewInvestHandler creates a new InvestHandler
func NewInvestHandler(investService *services.InvestService) *InvestHandler {
	return &InvestHandler{
		investService: investService,
	}
}

// GetPlans handles GET /invest/plans
func (h *InvestHandler) GetPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.investService.Plans())
}

// Invest handles POST /invest
func (h *InvestHandler) Invest(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request struct {
		PlanID string `json:"planId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	investment, err := h.investService.Invest(c, accountID, request.PlanID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, investment)
}

// ClaimProfit handles POST /invest/:id/claim
func (h *InvestHandler) ClaimProfit(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	amount, err := h.investService.ClaimDailyProfit(c, accountID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"credited": amount})
}
