package services

import (
	"context"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"

	"github.com/luckytaka/earning-app-backend/internal/catalog"
	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/repositories"
	"github.com/luckytaka/earning-app-backend/internal/utils"
	"github.com/luckytaka/earning-app-backend/pkg/lock"
	"github.com/luckytaka/earning-app-backend/pkg/notify"
)

// InvestService handles fixed daily-return investment plans.
type InvestService struct {
	accountRepo repositories.AccountRepository
	locks       lock.Manager
	notifier    notify.Notifier
}

// NewInvestService creates a new InvestService
func NewInvestService(accountRepo repositories.AccountRepository, locks lock.Manager, notifier notify.Notifier) *InvestService {
	return &InvestService{
		accountRepo: accountRepo,
		locks:       locks,
		notifier:    notifier,
	}
}

// Plans returns the fixed plan catalog.
func (s *InvestService) Plans() []catalog.InvestmentPlan {
	return catalog.InvestmentPlans
}

// Invest debits the plan amount from the deposit balance and opens an
// active investment running for the plan's duration.
func (s *InvestService) Invest(ctx context.Context, accountID primitive.ObjectID, planID string) (*models.Investment, error) {
	plan, ok := catalog.PlanByID(planID)
	if !ok {
		return nil, ErrUnknownPlan
	}

	release, err := s.locks.Acquire(ctx, accountID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to acquire account lock: %w", err)
	}
	defer release()

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if account.Balance < plan.Amount {
		return nil, ErrInsufficientFunds
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	inv := models.Investment{
		ID:             id,
		PlanID:         plan.ID,
		PlanName:       plan.Name,
		InvestedAmount: plan.Amount,
		DailyReturn:    plan.DailyROI,
		StartDate:      now,
		EndDate:        now.AddDate(0, 0, plan.DurationDays),
		Status:         models.InvestmentActive,
	}

	account.Balance -= plan.Amount
	account.Investments = append([]models.Investment{inv}, account.Investments...)
	rec, err := newHistoryRecord(models.HistoryInvestment, plan.Amount, models.HistorySuccess, plan.Name)
	if err != nil {
		return nil, err
	}
	account.AppendHistory(rec)

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save investment: %w", err)
	}

	slog.Info("Investment opened", "accountId", accountID.Hex(), "plan", plan.Name, "amount", plan.Amount)
	s.notifier.Notify(fmt.Sprintf("📈 *New Investment*\nUser: %s\nPlan: %s\nAmount: %.0f Tk", account.Name, plan.Name, plan.Amount))

	return &inv, nil
}

// ClaimDailyProfit credits one day's return of the investment to the
// earning balance. Claims are gated to one per calendar day; an investment
// past its end date flips to completed and stops paying.
func (s *InvestService) ClaimDailyProfit(ctx context.Context, accountID primitive.ObjectID, investmentID string) (float64, error) {
	release, err := s.locks.Acquire(ctx, accountID.Hex())
	if err != nil {
		return 0, fmt.Errorf("failed to acquire account lock: %w", err)
	}
	defer release()

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to load account: %w", err)
	}

	var inv *models.Investment
	for i := range account.Investments {
		if account.Investments[i].ID == investmentID {
			inv = &account.Investments[i]
			break
		}
	}
	if inv == nil {
		return 0, ErrItemNotFound
	}
	if inv.Status != models.InvestmentActive {
		return 0, ErrAlreadyClaimed
	}

	now := time.Now()
	if now.After(inv.EndDate) {
		inv.Status = models.InvestmentCompleted
		if err := s.accountRepo.Update(ctx, account); err != nil {
			return 0, fmt.Errorf("failed to save investment: %w", err)
		}
		return 0, ErrAlreadyClaimed
	}

	today := utils.DayStamp(now)
	if inv.LastClaimDate == today {
		return 0, ErrAlreadyClaimed
	}

	inv.LastClaimDate = today
	account.EarningBalance += inv.DailyReturn
	rec, err := newHistoryRecord(models.HistoryDailyProfit, inv.DailyReturn, models.HistorySuccess, inv.PlanName)
	if err != nil {
		return 0, err
	}
	account.AppendHistory(rec)

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return 0, fmt.Errorf("failed to save claim: %w", err)
	}

	slog.Info("Daily profit claimed", "accountId", accountID.Hex(), "investment", inv.PlanName, "amount", inv.DailyReturn)
	return inv.DailyReturn, nil
}
