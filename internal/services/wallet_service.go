package services

import (
	"context"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"

	"github.com/luckytaka/earning-app-backend/internal/config"
	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/repositories"
	"github.com/luckytaka/earning-app-backend/pkg/lock"
	"github.com/luckytaka/earning-app-backend/pkg/notify"
)

// WalletService handles the deposit/withdraw/loan request forms. Deposits
// and loans are pure request records settled out-of-band by an admin; only
// withdrawals move funds immediately (earning balance is debited up front).
type WalletService struct {
	accountRepo repositories.AccountRepository
	locks       lock.Manager
	notifier    notify.Notifier
	cfg         *config.Config
}

// NewWalletService creates a new WalletService
func NewWalletService(accountRepo repositories.AccountRepository, locks lock.Manager, notifier notify.Notifier, cfg *config.Config) *WalletService {
	return &WalletService{
		accountRepo: accountRepo,
		locks:       locks,
		notifier:    notifier,
		cfg:         cfg,
	}
}

// RequestDeposit records a pending deposit claim for admin verification.
// The balance is untouched until the admin settles it.
func (s *WalletService) RequestDeposit(ctx context.Context, accountID primitive.ObjectID, amount float64, method, sender, trxID string) (*models.HistoryRecord, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
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

	rec, err := newHistoryRecord(models.HistoryDeposit, amount, models.HistoryPending, method)
	if err != nil {
		return nil, err
	}
	account.AppendHistory(rec)

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save deposit request: %w", err)
	}

	slog.Info("Deposit requested", "accountId", accountID.Hex(), "amount", amount, "method", method)
	s.notifier.Notify(fmt.Sprintf("💰 *Deposit Request*\n\n👤 User: %s (ID: %s)\n💵 Amount: %.0f Tk\n📱 Sender: %s\nTrxID: `%s`\nMethod: %s",
		account.Name, account.ID.Hex(), amount, sender, trxID, method))

	return &rec, nil
}

// RequestWithdraw debits the earning balance and records a pending payout.
func (s *WalletService) RequestWithdraw(ctx context.Context, accountID primitive.ObjectID, amount float64, method, number string) (*models.HistoryRecord, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
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

	if account.EarningBalance < s.cfg.Game.MinWithdrawBalance {
		return nil, ErrMinimumBalance
	}
	if amount > account.EarningBalance {
		return nil, ErrInsufficientFunds
	}

	rec, err := newHistoryRecord(models.HistoryWithdraw, amount, models.HistoryPending, method)
	if err != nil {
		return nil, err
	}

	account.EarningBalance -= amount
	account.AppendHistory(rec)

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save withdraw request: %w", err)
	}

	slog.Info("Withdraw requested", "accountId", accountID.Hex(), "amount", amount, "method", method)
	s.notifier.Notify(fmt.Sprintf("💸 *Withdraw Request*\n\n👤 User: %s (ID: %s)\n💵 Amount: %.0f Tk\n📱 Number: %s\nMethod: %s\n💰 Current Bal: %.0f",
		account.Name, account.ID.Hex(), amount, number, method, account.EarningBalance))

	return &rec, nil
}

// RequestLoan records a pending loan application for admin review.
func (s *WalletService) RequestLoan(ctx context.Context, accountID primitive.ObjectID, amount float64, reason string) (*models.HistoryRecord, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
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

	rec, err := newHistoryRecord(models.HistoryLoan, amount, models.HistoryPending, "")
	if err != nil {
		return nil, err
	}
	account.AppendHistory(rec)

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save loan request: %w", err)
	}

	slog.Info("Loan requested", "accountId", accountID.Hex(), "amount", amount)
	s.notifier.Notify(fmt.Sprintf("🏦 *Loan Request*\nUser: %s (ID: %s)\nAmount: %.0f Tk\nReason: %s",
		account.Name, account.ID.Hex(), amount, reason))

	return &rec, nil
}

// newHistoryRecord builds a timestamped ledger entry with a fresh id.
func newHistoryRecord(t models.HistoryType, amount float64, status models.HistoryStatus, method string) (models.HistoryRecord, error) {
	id, err := gonanoid.New()
	if err != nil {
		return models.HistoryRecord{}, err
	}
	return models.HistoryRecord{
		ID:     id,
		Type:   t,
		Amount: amount,
		Date:   time.Now(),
		Status: status,
		Method: method,
	}, nil
}
