package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/luckytaka/earning-app-backend/internal/config"
	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/repositories/memory"
	"github.com/luckytaka/earning-app-backend/pkg/lock"
)

func testConfig() *config.Config {
	return &config.Config{
		Game: config.GameConfig{
			DailyFreeSpins:     3,
			SpinCost:           20,
			MinWithdrawBalance: 1000,
			SaleUnlockMinutes:  120,
			DeliveryFee:        150,
		},
		JWT: config.JWTConfig{
			Secret:    "test-secret",
			ExpiresIn: 3600,
		},
	}
}

func testLocks() lock.Manager {
	return lock.NewMemoryManager()
}

// seedAccount stores the given account and returns its generated id.
func seedAccount(t *testing.T, repo *memory.AccountRepository, account *models.Account) primitive.ObjectID {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), account))
	return account.ID
}
