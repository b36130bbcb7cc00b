package services

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckytaka/earning-app-backend/internal/catalog"
	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/repositories/memory"
	"github.com/luckytaka/earning-app-backend/pkg/notify"
)

func newTradeEnv(t *testing.T, seed int64) (*TradeService, *memory.AccountRepository, *PriceFeed) {
	t.Helper()
	repo := memory.NewAccountRepository()
	feed := NewPriceFeed(rand.New(rand.NewSource(seed)))
	svc := NewTradeService(repo, testLocks(), &notify.NoopNotifier{}, feed)
	return svc, repo, feed
}

func TestPriceFeedRandomWalk(t *testing.T) {
	feed := NewPriceFeed(rand.New(rand.NewSource(1)))

	price, ok := feed.Price("BTC")
	require.True(t, ok)
	assert.Equal(t, 65000.0, price)

	prev := map[string]float64{}
	for _, token := range catalog.CryptoTokens {
		prev[token.Symbol] = token.BasePrice
	}
	for i := 0; i < 50; i++ {
		for _, q := range feed.Quotes() {
			step := math.Abs(q.Price-prev[q.Symbol]) / prev[q.Symbol]
			assert.LessOrEqual(t, step, 0.005+1e-9)
			assert.Greater(t, q.Price, 0.0)
			prev[q.Symbol] = q.Price
		}
	}

	_, ok = feed.Price("DOGE")
	assert.False(t, ok)
}

func TestTradeBuy(t *testing.T) {
	svc, repo, feed := newTradeEnv(t, 2)
	id := seedAccount(t, repo, &models.Account{Name: "Uday", Email: "uday@example.com", Balance: 1000})

	price, _ := feed.Price("BTC")
	holding, err := svc.Buy(context.Background(), id, "BTC", 1000)
	require.NoError(t, err)
	assert.InDelta(t, (1000/price)*0.98, holding.Amount, 1e-9)
	assert.Equal(t, price, holding.AvgBuyPrice)

	account, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0.0, account.Balance)
	require.Len(t, account.CryptoHoldings, 1)
	require.Len(t, account.History, 1)
	assert.Equal(t, models.HistoryTradeBuy, account.History[0].Type)
}

func TestTradeBuyMergesHolding(t *testing.T) {
	svc, repo, _ := newTradeEnv(t, 3)
	id := seedAccount(t, repo, &models.Account{Name: "Vabna", Email: "vabna@example.com", Balance: 2000})

	first, err := svc.Buy(context.Background(), id, "ETH", 1000)
	require.NoError(t, err)
	firstAmount := first.Amount

	second, err := svc.Buy(context.Background(), id, "ETH", 1000)
	require.NoError(t, err)
	assert.Greater(t, second.Amount, firstAmount)

	account, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, account.CryptoHoldings, 1)
}

func TestTradeBuyErrors(t *testing.T) {
	svc, repo, _ := newTradeEnv(t, 4)
	id := seedAccount(t, repo, &models.Account{Name: "Wasim", Email: "wasim@example.com", Balance: 100})

	_, err := svc.Buy(context.Background(), id, "DOGE", 50)
	assert.True(t, errors.Is(err, ErrUnknownToken))

	_, err = svc.Buy(context.Background(), id, "BTC", 500)
	assert.True(t, errors.Is(err, ErrInsufficientFunds))

	_, err = svc.Buy(context.Background(), id, "BTC", 0)
	assert.True(t, errors.Is(err, ErrInvalidAmount))
}

func TestTradeSell(t *testing.T) {
	svc, repo, feed := newTradeEnv(t, 5)
	id := seedAccount(t, repo, &models.Account{Name: "Yasin", Email: "yasin@example.com", Balance: 1000})

	holding, err := svc.Buy(context.Background(), id, "USDT", 1000)
	require.NoError(t, err)

	price, _ := feed.Price("USDT")
	proceeds, err := svc.Sell(context.Background(), id, "USDT", holding.Amount)
	require.NoError(t, err)
	assert.InDelta(t, holding.Amount*price*0.98, proceeds, 1e-9)

	account, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, proceeds, account.EarningBalance)
	// Position fully closed; the dust remainder is dropped.
	assert.Empty(t, account.CryptoHoldings)
	require.Len(t, account.History, 2)
	assert.Equal(t, models.HistoryTradeSell, account.History[0].Type)
}

func TestTradeSellErrors(t *testing.T) {
	svc, repo, _ := newTradeEnv(t, 6)
	id := seedAccount(t, repo, &models.Account{Name: "Zara", Email: "zara@example.com", Balance: 100})

	_, err := svc.Sell(context.Background(), id, "BTC", 1)
	assert.True(t, errors.Is(err, ErrInsufficientFunds))

	_, err = svc.Sell(context.Background(), id, "DOGE", 1)
	assert.True(t, errors.Is(err, ErrUnknownToken))
}

func TestGameTopup(t *testing.T) {
	svc, repo, _ := newTradeEnv(t, 7)
	id := seedAccount(t, repo, &models.Account{Name: "Arif", Email: "arif@example.com", Balance: 100})

	err := svc.GameTopup(context.Background(), id, "ff1", "PLAYER42")
	require.NoError(t, err)

	account, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 15.0, account.Balance)
	require.Len(t, account.History, 1)
	assert.Equal(t, models.HistoryGameTopup, account.History[0].Type)
	assert.Equal(t, models.HistoryPending, account.History[0].Status)
	assert.Equal(t, 85.0, account.History[0].Amount)
}

func TestGameTopupErrors(t *testing.T) {
	svc, repo, _ := newTradeEnv(t, 8)
	id := seedAccount(t, repo, &models.Account{Name: "Bina", Email: "bina@example.com", Balance: 10})

	err := svc.GameTopup(context.Background(), id, "nope", "P1")
	assert.True(t, errors.Is(err, ErrUnknownProduct))

	err = svc.GameTopup(context.Background(), id, "ff1", "P1")
	assert.True(t, errors.Is(err, ErrInsufficientFunds))
}
