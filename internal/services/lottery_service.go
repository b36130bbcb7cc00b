package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"

	"github.com/luckytaka/earning-app-backend/internal/catalog"
	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/repositories"
	"github.com/luckytaka/earning-app-backend/pkg/lock"
	"github.com/luckytaka/earning-app-backend/pkg/notify"
)

// DrawResult is what one reveal step reports back to the caller.
type DrawResult struct {
	Outcome   models.Outcome        `json:"outcome"`
	Prize     *models.InventoryItem `json:"prize,omitempty"`
	DrawsLeft int                   `json:"drawsLeft"`
}

// LotteryService runs the lottery card lifecycle: purchase opens a session
// with a pre-committed outcome sequence, draws consume it one step at a time,
// and the session is cleared the moment its last draw resolves. Each command
// holds the account lock for one whole read-modify-write cycle.
type LotteryService struct {
	accountRepo repositories.AccountRepository
	locks       lock.Manager
	notifier    notify.Notifier

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewLotteryService creates a new LotteryService. The rng is injected so
// tests can pin the outcome sequence.
func NewLotteryService(accountRepo repositories.AccountRepository, locks lock.Manager, notifier notify.Notifier, rng *rand.Rand) *LotteryService {
	return &LotteryService{
		accountRepo: accountRepo,
		locks:       locks,
		notifier:    notifier,
		rng:         rng,
	}
}

// Cards returns the static card catalog.
func (s *LotteryService) Cards() []models.CardDefinition {
	return catalog.Cards
}

// ActiveSession returns the account's open session, or nil when there is none.
func (s *LotteryService) ActiveSession(ctx context.Context, accountID primitive.ObjectID) (*models.LotterySession, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return account.ActiveLottery, nil
}

// Purchase validates funds and session exclusivity, debits the card price,
// opens the generated session and appends the purchase history record, all
// in one account write. The notification afterwards is best-effort.
func (s *LotteryService) Purchase(ctx context.Context, accountID primitive.ObjectID, cardID string) (*models.LotterySession, error) {
	release, err := s.locks.Acquire(ctx, accountID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to acquire account lock: %w", err)
	}
	defer release()

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if account.HasActiveSession() {
		slog.Warn("Purchase rejected, session already active", "accountId", accountID.Hex(), "card", account.ActiveLottery.CardID)
		return nil, ErrSessionInProgress
	}

	card, ok := catalog.CardByID(cardID)
	if !ok {
		return nil, ErrUnknownCard
	}

	if account.Balance < card.Price {
		return nil, ErrInsufficientFunds
	}

	s.rngMu.Lock()
	session, err := GenerateSession(card, s.rng, time.Now())
	s.rngMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session: %w", err)
	}

	historyID, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	account.Balance -= card.Price
	account.ActiveLottery = session
	account.AppendHistory(models.HistoryRecord{
		ID:     historyID,
		Type:   models.HistoryLotteryPurchase,
		Amount: card.Price,
		Date:   time.Now(),
		Status: models.HistorySuccess,
		Method: "Deposit Balance",
	})

	if err := s.accountRepo.Update(ctx, account); err != nil {
		slog.Error("Purchase write failed, operation not applied", "error", err, "accountId", accountID.Hex())
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	slog.Info("Lottery card purchased", "accountId", accountID.Hex(), "card", card.ID, "price", card.Price)
	s.notifier.Notify(fmt.Sprintf("🎟 *Lottery Purchased*\nUser: %s\nCard: %s\nPrice: %.0f\nResult Seq: %s",
		account.Name, card.Name, card.Price, joinOutcomes(session.OutcomeSequence)))

	return session, nil
}

// Draw reveals the next outcome of the active session. A Win settles its
// pre-committed prize into the inventory; the decrement, the inventory append
// and the session clear (on the final draw) land in a single account write.
func (s *LotteryService) Draw(ctx context.Context, accountID primitive.ObjectID) (*DrawResult, error) {
	release, err := s.locks.Acquire(ctx, accountID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to acquire account lock: %w", err)
	}
	defer release()

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if !account.HasActiveSession() {
		return nil, ErrNoActiveSession
	}

	session := account.ActiveLottery
	drawIndex := session.DrawIndex()
	outcome := session.OutcomeSequence[drawIndex]

	var wonPrize *models.InventoryItem
	if outcome == models.OutcomeWin {
		prize, ok := session.PrizeForDraw(drawIndex)
		if ok {
			account.AddInventory(prize)
			wonPrize = &prize
		} else {
			// A Win slot without a committed prize is a sequencing bug, not a
			// user error. Degrade to a Loss for display and keep going.
			slog.Error("Win slot has no committed prize, revealing as loss",
				"accountId", accountID.Hex(), "card", session.CardID, "drawIndex", drawIndex)
			outcome = models.OutcomeLoss
		}
	}

	remaining := session.Advance()
	if session.Exhausted() {
		account.ActiveLottery = nil
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		slog.Error("Draw write failed, operation not applied", "error", err, "accountId", accountID.Hex())
		return nil, fmt.Errorf("failed to save draw: %w", err)
	}

	if wonPrize != nil {
		slog.Info("Lottery draw won", "accountId", accountID.Hex(), "prize", wonPrize.Name, "value", wonPrize.Value, "drawsLeft", remaining)
		s.notifier.Notify(fmt.Sprintf("🎁 *Lottery Win!*\nUser: %s\nPrize: %s\nValue: %.0f",
			account.Name, wonPrize.Name, wonPrize.Value))
	} else {
		slog.Info("Lottery draw lost", "accountId", accountID.Hex(), "drawsLeft", remaining)
		s.notifier.Notify(fmt.Sprintf("💨 *Lottery Loss*\nUser: %s\nDraws Left: %d", account.Name, remaining))
	}

	return &DrawResult{
		Outcome:   outcome,
		Prize:     wonPrize,
		DrawsLeft: remaining,
	}, nil
}

func joinOutcomes(seq []models.Outcome) string {
	parts := make([]string, len(seq))
	for i, o := range seq {
		parts[i] = string(o)
	}
	return strings.Join(parts, ", ")
}
