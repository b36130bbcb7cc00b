package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luckytaka/earning-app-backend/internal/middleware"
	"github.com/luckytaka/earning-app-backend/internal/services"
)

// TradeHandler handles crypto paper-trading and game top-up HTTP requests
type TradeHandler struct {
	tradeService *services.TradeService
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(tradeService *services.TradeService) *TradeHandler {
	return &TradeHandler{
		tradeService: tradeService,
	}
}

// GetQuotes handles GET /trade/quotes
func (h *TradeHandler) GetQuotes(c *gin.Context) {
	c.JSON(http.StatusOK, h.tradeService.Quotes())
}

// Buy handles POST /trade/buy
func (h *TradeHandler) Buy(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request struct {
		Symbol string  `json:"symbol" binding:"required"`
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	holding, err := h.tradeService.Buy(c, accountID, request.Symbol, request.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, holding)
}

// Sell handles POST /trade/sell
func (h *TradeHandler) Sell(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request struct {
		Symbol string  `json:"symbol" binding:"required"`
		Tokens float64 `json:"tokens" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proceeds, err := h.tradeService.Sell(c, accountID, request.Symbol, request.Tokens)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"credited": proceeds})
}

// GetProducts handles GET /games/products
func (h *TradeHandler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.tradeService.Products())
}

// Topup handles POST /games/topup
func (h *TradeHandler) Topup(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request struct {
		ProductID string `json:"productId" binding:"required"`
		PlayerID  string `json:"playerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.tradeService.GameTopup(c, accountID, request.ProductID, request.PlayerID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Top-up order placed"})
}
