package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luckytaka/earning-app-backend/internal/middleware"
	"github.com/luckytaka/earning-app-backend/internal/services"
)

// GiftBoxHandler handles won-item resale and delivery HTTP requests
type GiftBoxHandler struct {
	giftBoxService *services.GiftBoxService
}

// NewGiftBoxHandler creates a new GiftBoxHandler
func NewGiftBoxHandler(giftBoxService *services.GiftBoxService) *GiftBoxHandler {
	return &GiftBoxHandler{
		giftBoxService: giftBoxService,
	}
}

// Sell handles POST /giftbox/sell
func (h *GiftBoxHandler) Sell(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sale, err := h.giftBoxService.SellItem(c, accountID, request.ItemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sale)
}

// Claim handles POST /giftbox/claim
func (h *GiftBoxHandler) Claim(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	credited, err := h.giftBoxService.ClaimMaturedSales(c, accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"credited": credited})
}

// Delivery handles POST /giftbox/delivery
func (h *GiftBoxHandler) Delivery(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request struct {
		ItemID  string `json:"itemId" binding:"required"`
		Name    string `json:"name" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
		Address string `json:"address" binding:"required"`
		Method  string `json:"method" binding:"required"`
		TrxID   string `json:"trxId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.giftBoxService.RequestDelivery(c, accountID, request.ItemID, request.Name, request.Phone, request.Address, request.Method, request.TrxID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Delivery requested"})
}
