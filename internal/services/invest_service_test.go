package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/repositories/memory"
	"github.com/luckytaka/earning-app-backend/pkg/notify"
)

func newInvestEnv(t *testing.T) (*InvestService, *memory.AccountRepository) {
	t.Helper()
	repo := memory.NewAccountRepository()
	svc := NewInvestService(repo, testLocks(), &notify.NoopNotifier{})
	return svc, repo
}

func TestInvest(t *testing.T) {
	svc, repo := newInvestEnv(t)
	id := seedAccount(t, repo, &models.Account{Name: "Opu", Email: "opu@example.com", Balance: 500})

	inv, err := svc.Invest(context.Background(), id, "plan1")
	require.NoError(t, err)
	assert.Equal(t, "Starter Plan", inv.PlanName)
	assert.Equal(t, 50.0, inv.DailyReturn)
	assert.Equal(t, models.InvestmentActive, inv.Status)
	assert.True(t, inv.EndDate.After(inv.StartDate))

	account, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0.0, account.Balance)
	require.Len(t, account.Investments, 1)
	require.Len(t, account.History, 1)
	assert.Equal(t, models.HistoryInvestment, account.History[0].Type)
	assert.Equal(t, models.HistorySuccess, account.History[0].Status)
}

func TestInvestInsufficientFunds(t *testing.T) {
	svc, repo := newInvestEnv(t)
	id := seedAccount(t, repo, &models.Account{Name: "Piya", Email: "piya@example.com", Balance: 100})

	_, err := svc.Invest(context.Background(), id, "plan1")
	assert.True(t, errors.Is(err, ErrInsufficientFunds))
}

func TestInvestUnknownPlan(t *testing.T) {
	svc, repo := newInvestEnv(t)
	id := seedAccount(t, repo, &models.Account{Name: "Qadir", Email: "qadir@example.com", Balance: 5000})

	_, err := svc.Invest(context.Background(), id, "plan99")
	assert.True(t, errors.Is(err, ErrUnknownPlan))
}

func TestClaimDailyProfit(t *testing.T) {
	svc, repo := newInvestEnv(t)
	id := seedAccount(t, repo, &models.Account{Name: "Rima", Email: "rima@example.com", Balance: 2000})

	inv, err := svc.Invest(context.Background(), id, "plan2")
	require.NoError(t, err)

	amount, err := svc.ClaimDailyProfit(context.Background(), id, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 250.0, amount)

	account, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 250.0, account.EarningBalance)

	// Once per calendar day.
	_, err = svc.ClaimDailyProfit(context.Background(), id, inv.ID)
	assert.True(t, errors.Is(err, ErrAlreadyClaimed))
}

func TestClaimDailyProfitExpired(t *testing.T) {
	svc, repo := newInvestEnv(t)
	id := seedAccount(t, repo, &models.Account{Name: "Sumi", Email: "sumi@example.com", Balance: 500})

	inv, err := svc.Invest(context.Background(), id, "plan1")
	require.NoError(t, err)

	account, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	account.Investments[0].EndDate = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Update(context.Background(), account))

	_, err = svc.ClaimDailyProfit(context.Background(), id, inv.ID)
	assert.True(t, errors.Is(err, ErrAlreadyClaimed))

	account, err = repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.InvestmentCompleted, account.Investments[0].Status)
	assert.Equal(t, 0.0, account.EarningBalance)
}

func TestClaimDailyProfitUnknownInvestment(t *testing.T) {
	svc, repo := newInvestEnv(t)
	id := seedAccount(t, repo, &models.Account{Name: "Tuhin", Email: "tuhin@example.com"})

	_, err := svc.ClaimDailyProfit(context.Background(), id, "missing")
	assert.True(t, errors.Is(err, ErrItemNotFound))
}
