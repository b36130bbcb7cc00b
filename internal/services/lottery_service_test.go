package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckytaka/earning-app-backend/internal/catalog"
	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/repositories/memory"
	"github.com/luckytaka/earning-app-backend/pkg/notify"
)

func newLotteryEnv(t *testing.T, seed int64) (*LotteryService, *memory.AccountRepository, *notify.Recorder) {
	t.Helper()
	repo := memory.NewAccountRepository()
	recorder := &notify.Recorder{}
	svc := NewLotteryService(repo, testLocks(), recorder, rand.New(rand.NewSource(seed)))
	return svc, repo, recorder
}

func TestGenerateSessionOutcomeCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, card := range catalog.Cards {
		session, err := GenerateSession(card, rng, time.Now())
		require.NoError(t, err)

		wins, losses := 0, 0
		for _, o := range session.OutcomeSequence {
			switch o {
			case models.OutcomeWin:
				wins++
			case models.OutcomeLoss:
				losses++
			}
		}
		assert.Equal(t, 2, wins, "card %s", card.ID)
		assert.Equal(t, 3, losses, "card %s", card.ID)
		assert.Equal(t, models.SessionDraws, session.DrawsLeft)
		assert.Len(t, session.PrizePool, wins)
	}
}

func TestGenerateSessionPrizeMapping(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	card, ok := catalog.CardByID("vip1")
	require.True(t, ok)

	session, err := GenerateSession(card, rng, time.Now())
	require.NoError(t, err)

	require.Len(t, session.PrizeByDraw, models.SessionDraws)
	for idx, outcome := range session.OutcomeSequence {
		if outcome == models.OutcomeWin {
			prize, found := session.PrizeForDraw(idx)
			require.True(t, found, "win slot %d must have a committed prize", idx)
			assert.Equal(t, card.Name, prize.LotteryName)
			assert.Greater(t, prize.Value, 0.0)
		} else {
			_, found := session.PrizeForDraw(idx)
			assert.False(t, found, "loss slot %d must not map to a prize", idx)
		}
	}
}

func TestGenerateSessionPrizeValuation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, card := range catalog.Cards {
		// Enough sessions to hit every label on the card.
		for i := 0; i < 20; i++ {
			session, err := GenerateSession(card, rng, time.Now())
			require.NoError(t, err)
			for _, prize := range session.PrizePool {
				if prize.Category == models.ItemCash {
					assert.Contains(t, prize.Name, "Tk")
				} else {
					if card.Tier == models.TierVIP {
						assert.Equal(t, 5000.0, prize.Value)
					} else {
						assert.Equal(t, 200.0, prize.Value)
					}
				}
			}
		}
	}
}

func TestGenerateSessionDeterministic(t *testing.T) {
	card, ok := catalog.CardByID("std1")
	require.True(t, ok)

	a, err := GenerateSession(card, rand.New(rand.NewSource(42)), time.Now())
	require.NoError(t, err)
	b, err := GenerateSession(card, rand.New(rand.NewSource(42)), time.Now())
	require.NoError(t, err)
	assert.Equal(t, a.OutcomeSequence, b.OutcomeSequence)
}

func TestGenerateSessionShuffleUniform(t *testing.T) {
	card, ok := catalog.CardByID("std1")
	require.True(t, ok)

	// There are C(5,2) = 10 possible win-position patterns. Over many
	// sessions each must appear at close to trials/10. The band below is
	// roughly seven standard deviations wide, so a correct shuffle passes
	// with overwhelming margin while any positional bias fails.
	const trials = 5000
	rng := rand.New(rand.NewSource(12345))
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		session, err := GenerateSession(card, rng, time.Now())
		require.NoError(t, err)
		counts[joinOutcomes(session.OutcomeSequence)]++
	}

	require.Len(t, counts, 10)
	for pattern, n := range counts {
		assert.Greater(t, n, 350, "pattern %s", pattern)
		assert.Less(t, n, 650, "pattern %s", pattern)
	}
}

func TestPurchaseAndFullDrawdown(t *testing.T) {
	svc, repo, recorder := newLotteryEnv(t, 99)
	id := seedAccount(t, repo, &models.Account{Name: "Rahim", Email: "rahim@example.com", Balance: 500})

	session, err := svc.Purchase(context.Background(), id, "vip1")
	require.NoError(t, err)
	assert.Equal(t, models.SessionDraws, session.DrawsLeft)

	account, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0.0, account.Balance)
	require.NotNil(t, account.ActiveLottery)
	require.Len(t, account.History, 1)
	assert.Equal(t, models.HistoryLotteryPurchase, account.History[0].Type)
	assert.Equal(t, models.HistorySuccess, account.History[0].Status)
	assert.NotEmpty(t, recorder.Messages)

	wins := 0
	for i := 0; i < models.SessionDraws; i++ {
		result, err := svc.Draw(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, models.SessionDraws-i-1, result.DrawsLeft)
		if result.Outcome == models.OutcomeWin {
			wins++
			require.NotNil(t, result.Prize)
		} else {
			assert.Nil(t, result.Prize)
		}
	}
	assert.Equal(t, 2, wins)

	account, err = repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, account.ActiveLottery)
	assert.Len(t, account.Inventory, 2)

	_, err = svc.Draw(context.Background(), id)
	assert.True(t, errors.Is(err, ErrNoActiveSession))
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	svc, repo, _ := newLotteryEnv(t, 1)
	id := seedAccount(t, repo, &models.Account{Name: "Karim", Email: "karim@example.com", Balance: 100})

	_, err := svc.Purchase(context.Background(), id, "vip1")
	assert.True(t, errors.Is(err, ErrInsufficientFunds))

	account, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 100.0, account.Balance)
	assert.Nil(t, account.ActiveLottery)
	assert.Empty(t, account.History)
}

func TestPurchaseWhileSessionActive(t *testing.T) {
	svc, repo, _ := newLotteryEnv(t, 5)
	id := seedAccount(t, repo, &models.Account{Name: "Fatema", Email: "fatema@example.com", Balance: 600})

	first, err := svc.Purchase(context.Background(), id, "std1")
	require.NoError(t, err)

	_, err = svc.Purchase(context.Background(), id, "std2")
	assert.True(t, errors.Is(err, ErrSessionInProgress))

	account, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 500.0, account.Balance)
	require.NotNil(t, account.ActiveLottery)
	assert.Equal(t, first.CardID, account.ActiveLottery.CardID)
	assert.Len(t, account.History, 1)
}

func TestPurchaseUnknownCard(t *testing.T) {
	svc, repo, _ := newLotteryEnv(t, 2)
	id := seedAccount(t, repo, &models.Account{Name: "Jamal", Email: "jamal@example.com", Balance: 1000})

	_, err := svc.Purchase(context.Background(), id, "nope")
	assert.True(t, errors.Is(err, ErrUnknownCard))
}

func TestActiveSessionPeek(t *testing.T) {
	svc, repo, _ := newLotteryEnv(t, 11)
	id := seedAccount(t, repo, &models.Account{Name: "Nadia", Email: "nadia@example.com", Balance: 200})

	session, err := svc.ActiveSession(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, session)

	_, err = svc.Purchase(context.Background(), id, "std3")
	require.NoError(t, err)

	session, err = svc.ActiveSession(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "std3", session.CardID)
}
