package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"

	"github.com/luckytaka/earning-app-backend/internal/catalog"
	"github.com/luckytaka/earning-app-backend/internal/config"
	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/repositories"
	"github.com/luckytaka/earning-app-backend/internal/utils"
	"github.com/luckytaka/earning-app-backend/pkg/lock"
	"github.com/luckytaka/earning-app-backend/pkg/notify"
)

// SpinResult reports one wheel spin back to the caller.
type SpinResult struct {
	SegmentIndex  int     `json:"segmentIndex"`
	Label         string  `json:"label"`
	Amount        float64 `json:"amount"`
	FreeSpin      bool    `json:"freeSpin"`
	FreeSpinsLeft int     `json:"freeSpinsLeft"`
}

// SpinService runs the lucky spin wheel. A fixed daily quota of spins is
// free; beyond that each spin costs a fee debited from the deposit balance.
// Winnings land in the earning balance.
type SpinService struct {
	accountRepo repositories.AccountRepository
	locks       lock.Manager
	notifier    notify.Notifier
	cfg         *config.Config

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewSpinService creates a new SpinService
func NewSpinService(accountRepo repositories.AccountRepository, locks lock.Manager, notifier notify.Notifier, cfg *config.Config, rng *rand.Rand) *SpinService {
	return &SpinService{
		accountRepo: accountRepo,
		locks:       locks,
		notifier:    notifier,
		cfg:         cfg,
		rng:         rng,
	}
}

// Segments returns the wheel layout.
func (s *SpinService) Segments() []catalog.SpinSegment {
	return catalog.SpinSegments
}

// Spin charges the spin (if the free quota is used up), picks a segment
// uniformly at random and settles the result in one account write.
func (s *SpinService) Spin(ctx context.Context, accountID primitive.ObjectID) (*SpinResult, error) {
	release, err := s.locks.Acquire(ctx, accountID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to acquire account lock: %w", err)
	}
	defer release()

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	today := utils.DayStamp(time.Now())
	dailySpins := 0
	if account.LastSpinDate == today {
		dailySpins = account.SpinCount
	}
	freeSpin := dailySpins < s.cfg.Game.DailyFreeSpins

	if !freeSpin && account.Balance < s.cfg.Game.SpinCost {
		return nil, ErrInsufficientFunds
	}

	s.rngMu.Lock()
	idx := s.rng.Intn(len(catalog.SpinSegments))
	s.rngMu.Unlock()
	segment := catalog.SpinSegments[idx]

	method := "Free Spin"
	if !freeSpin {
		method = "Paid Spin"
		account.Balance -= s.cfg.Game.SpinCost
	}
	account.SpinCount = dailySpins + 1
	account.LastSpinDate = today
	if segment.Value > 0 {
		account.EarningBalance += segment.Value
	}

	rec, err := newHistoryRecord(models.HistorySpin, segment.Value, models.HistorySuccess, method)
	if err != nil {
		return nil, err
	}
	account.AppendHistory(rec)

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save spin: %w", err)
	}

	slog.Info("Wheel spun", "accountId", accountID.Hex(), "amount", segment.Value, "free", freeSpin)
	if segment.Value > 0 {
		s.notifier.Notify(fmt.Sprintf("🎡 *Spin Win*\nUser: %s\nAmount: %.0f Tk\nMode: %s", account.Name, segment.Value, method))
	}

	freeLeft := s.cfg.Game.DailyFreeSpins - account.SpinCount
	if freeLeft < 0 {
		freeLeft = 0
	}

	return &SpinResult{
		SegmentIndex:  idx,
		Label:         segment.Label,
		Amount:        segment.Value,
		FreeSpin:      freeSpin,
		FreeSpinsLeft: freeLeft,
	}, nil
}
