package services

import (
	"math/rand"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/utils"
)

// Fixed outcome policy: every session holds exactly 2 wins and 3 losses
// regardless of tier. Tier affects prize value only, never win probability.
const (
	winsPerSession   = 2
	lossesPerSession = models.SessionDraws - winsPerSession
)

// Fallback values for product prizes whose label carries no cash amount.
const (
	vipProductValue      = 5000
	standardProductValue = 200
)

// GenerateSession builds the pre-committed session for one purchased card:
// a shuffled 5-slot outcome sequence, one concrete prize per Win slot and
// the draw-index to prize-id mapping used at reveal time. The function has
// no side effects and is fully deterministic given the rng.
func GenerateSession(card models.CardDefinition, rng *rand.Rand, now time.Time) (*models.LotterySession, error) {
	outcomes := make([]models.Outcome, 0, models.SessionDraws)
	for i := 0; i < winsPerSession; i++ {
		outcomes = append(outcomes, models.OutcomeWin)
	}
	for i := 0; i < lossesPerSession; i++ {
		outcomes = append(outcomes, models.OutcomeLoss)
	}

	// Fisher-Yates shuffle
	for i := len(outcomes) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		outcomes[i], outcomes[j] = outcomes[j], outcomes[i]
	}

	session := &models.LotterySession{
		CardID:          card.ID,
		CardName:        card.Name,
		Tier:            card.Tier,
		DrawsLeft:       models.SessionDraws,
		OutcomeSequence: outcomes,
		PrizePool:       []models.InventoryItem{},
		PrizeByDraw:     make([]string, models.SessionDraws),
	}

	for idx, outcome := range outcomes {
		if outcome != models.OutcomeWin {
			continue
		}

		// Label selection is independent per slot; the same label may repeat.
		label := card.Prizes[rng.Intn(len(card.Prizes))]

		category := models.ItemProduct
		value, isCash := utils.ParsePrizeAmount(label)
		if isCash {
			category = models.ItemCash
		} else if card.Tier == models.TierVIP {
			value = vipProductValue
		} else {
			value = standardProductValue
		}

		id, err := gonanoid.New()
		if err != nil {
			return nil, err
		}

		prize := models.InventoryItem{
			ID:          id,
			Name:        label,
			Category:    category,
			Value:       value,
			LotteryName: card.Name,
			ObtainedAt:  now,
		}
		session.PrizePool = append(session.PrizePool, prize)
		session.PrizeByDraw[idx] = id
	}

	return session, nil
}
