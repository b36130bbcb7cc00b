package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luckytaka/earning-app-backend/internal/middleware"
	"github.com/luckytaka/earning-app-backend/internal/services"
)

// WalletHandler handles deposit, withdraw and loan HTTP requests
type WalletHandler struct {
	walletService *services.WalletService
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(walletService *services.WalletService) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// Deposit handles POST /wallet/deposit
func (h *WalletHandler) Deposit(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request struct {
		Amount float64 `json:"amount" binding:"required"`
		Method string  `json:"method" binding:"required"`
		Sender string  `json:"sender" binding:"required"`
		TrxID  string  `json:"trxId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.walletService.RequestDeposit(c, accountID, request.Amount, request.Method, request.Sender, request.TrxID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// Withdraw handles POST /wallet/withdraw
func (h *WalletHandler) Withdraw(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request struct {
		Amount float64 `json:"amount" binding:"required"`
		Method string  `json:"method" binding:"required"`
		Number string  `json:"number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.walletService.RequestWithdraw(c, accountID, request.Amount, request.Method, request.Number)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// Loan handles POST /wallet/loan
func (h *WalletHandler) Loan(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request struct {
		Amount float64 `json:"amount" binding:"required"`
		Reason string  `json:"reason"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.walletService.RequestLoan(c, accountID, request.Amount, request.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}
