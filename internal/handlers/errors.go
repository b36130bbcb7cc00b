package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luckytaka/earning-app-backend/internal/repositories"
	"github.com/luckytaka/earning-app-backend/internal/services"
)

// respondError maps service errors to HTTP status codes. Unrecognized
// errors are reported as 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionInProgress),
		errors.Is(err, services.ErrAlreadyClaimed),
		errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrMinimumBalance),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrUnknownCard),
		errors.Is(err, services.ErrUnknownPlan),
		errors.Is(err, services.ErrUnknownProduct),
		errors.Is(err, services.ErrUnknownToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNoActiveSession),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, repositories.ErrVersionConflict):
		// The command was not applied; a fresh attempt will re-read the account.
		c.JSON(http.StatusConflict, gin.H{"error": "account was modified concurrently, please retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
