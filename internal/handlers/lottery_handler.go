package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luckytaka/earning-app-backend/internal/middleware"
	"github.com/luckytaka/earning-app-backend/internal/services"
)

// LotteryHandler handles lottery card HTTP requests
type LotteryHandler struct {
	lotteryService *services.LotteryService
}

// NewLotteryHandler creates a new LotteryHandler
func NewLotteryHandler(lotteryService *services.LotteryService) *LotteryHandler {
	return &LotteryHandler{
		lotteryService: lotteryService,
	}
}

// GetCards handles GET /lottery/cards
func (h *LotteryHandler) GetCards(c *gin.Context) {
	c.JSON(http.StatusOK, h.lotteryService.Cards())
}

// GetSession handles GET /lottery/session
func (h *LotteryHandler) GetSession(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.lotteryService.ActiveSession(c, accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"active": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"active": true, "session": session})
}

// Purchase handles POST /lottery/purchase
func (h *LotteryHandler) Purchase(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request struct {
		CardID string `json:"cardId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.lotteryService.Purchase(c, accountID, request.CardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// Draw handles POST /lottery/draw
func (h *LotteryHandler) Draw(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.lotteryService.Draw(c, accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
