package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckytaka/earning-app-backend/internal/catalog"
	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/repositories/memory"
	"github.com/luckytaka/earning-app-backend/pkg/notify"
)

func newSpinEnv(t *testing.T, seed int64) (*SpinService, *memory.AccountRepository) {
	t.Helper()
	repo := memory.NewAccountRepository()
	svc := NewSpinService(repo, testLocks(), &notify.NoopNotifier{}, testConfig(), rand.New(rand.NewSource(seed)))
	return svc, repo
}

func TestSpinFreeQuotaThenPaid(t *testing.T) {
	svc, repo := newSpinEnv(t, 1)
	id := seedAccount(t, repo, &models.Account{Name: "Asha", Email: "asha@example.com", Balance: 20})

	var winnings float64
	for i := 0; i < 3; i++ {
		result, err := svc.Spin(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, result.FreeSpin, "spin %d should be free", i+1)
		winnings += result.Amount
	}

	// Quota used up; the fourth spin costs the fee.
	result, err := svc.Spin(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, result.FreeSpin)
	winnings += result.Amount

	account, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0.0, account.Balance)
	assert.Equal(t, winnings, account.EarningBalance)
	assert.Equal(t, 4, account.SpinCount)
	assert.Len(t, account.History, 4)
	for _, rec := range account.History {
		assert.Equal(t, models.HistorySpin, rec.Type)
		assert.Equal(t, models.HistorySuccess, rec.Status)
	}
}

func TestSpinPaidRequiresBalance(t *testing.T) {
	svc, repo := newSpinEnv(t, 2)
	id := seedAccount(t, repo, &models.Account{Name: "Babu", Email: "babu@example.com", Balance: 0})

	for i := 0; i < 3; i++ {
		_, err := svc.Spin(context.Background(), id)
		require.NoError(t, err)
	}

	_, err := svc.Spin(context.Background(), id)
	assert.True(t, errors.Is(err, ErrInsufficientFunds))

	account, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 3, account.SpinCount)
	assert.Len(t, account.History, 3)
}

func TestSpinResultWithinWheel(t *testing.T) {
	svc, repo := newSpinEnv(t, 3)
	id := seedAccount(t, repo, &models.Account{Name: "Chitra", Email: "chitra@example.com"})

	result, err := svc.Spin(context.Background(), id)
	require.NoError(t, err)
	require.GreaterOrEqual(t, result.SegmentIndex, 0)
	require.Less(t, result.SegmentIndex, len(catalog.SpinSegments))
	assert.Equal(t, catalog.SpinSegments[result.SegmentIndex].Label, result.Label)
	assert.Equal(t, catalog.SpinSegments[result.SegmentIndex].Value, result.Amount)
	assert.Equal(t, 2, result.FreeSpinsLeft)
}
