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

// GiftBoxService handles the won-prize resale and delivery flows. Selling an
// item moves it from the inventory into a timer-gated pending sale; once the
// unlock timer lapses the sale amount is claimable into the earning balance.
type GiftBoxService struct {
	accountRepo repositories.AccountRepository
	locks       lock.Manager
	notifier    notify.Notifier
	cfg         *config.Config
}

// NewGiftBoxService creates a new GiftBoxService
func NewGiftBoxService(accountRepo repositories.AccountRepository, locks lock.Manager, notifier notify.Notifier, cfg *config.Config) *GiftBoxService {
	return &GiftBoxService{
		accountRepo: accountRepo,
		locks:       locks,
		notifier:    notifier,
		cfg:         cfg,
	}
}

// SellItem removes the item from the inventory and opens a pending sale at
// the item's market value. The sale and its ledger entry share an id so the
// unlock settlement can flip the ledger status later.
func (s *GiftBoxService) SellItem(ctx context.Context, accountID primitive.ObjectID, itemID string) (*models.PendingSale, error) {
	release, err := s.locks.Acquire(ctx, accountID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to acquire account lock: %w", err)
	}
	defer release()

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	item, ok := account.RemoveInventory(itemID)
	if !ok {
		return nil, ErrItemNotFound
	}

	saleID, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := models.PendingSale{
		ID:         saleID,
		Name:       item.Name,
		Amount:     item.Value,
		SoldAt:     now,
		UnlockTime: now.Add(time.Duration(s.cfg.Game.SaleUnlockMinutes) * time.Minute),
		Status:     models.SalePending,
	}
	account.PendingSales = append([]models.PendingSale{sale}, account.PendingSales...)
	account.AppendHistory(models.HistoryRecord{
		ID:     saleID,
		Type:   models.HistoryItemSold,
		Amount: item.Value,
		Date:   now,
		Status: models.HistoryPending,
	})

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	slog.Info("Inventory item sold", "accountId", accountID.Hex(), "item", item.Name, "amount", item.Value)
	s.notifier.Notify(fmt.Sprintf("🏷 *Item Sold*\nUser: %s\nItem: %s\nAmount: %.0f Tk\nUnlocks: %s",
		account.Name, item.Name, item.Value, sale.UnlockTime.Format(time.RFC3339)))

	return &sale, nil
}

// ClaimMaturedSales settles every pending sale whose unlock timer has
// lapsed: the amount is credited to the earning balance and both the sale
// and its ledger entry flip to completed. Returns the total credited.
func (s *GiftBoxService) ClaimMaturedSales(ctx context.Context, accountID primitive.ObjectID) (float64, error) {
	release, err := s.locks.Acquire(ctx, accountID.Hex())
	if err != nil {
		return 0, fmt.Errorf("failed to acquire account lock: %w", err)
	}
	defer release()

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to load account: %w", err)
	}

	now := time.Now()
	var credited float64
	for i := range account.PendingSales {
		sale := &account.PendingSales[i]
		if sale.Status != models.SalePending || sale.UnlockTime.After(now) {
			continue
		}
		sale.Status = models.SaleCompleted
		account.EarningBalance += sale.Amount
		credited += sale.Amount
		for j := range account.History {
			if account.History[j].ID == sale.ID {
				account.History[j].Status = models.HistorySuccess
				break
			}
		}
	}

	if credited == 0 {
		return 0, nil
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return 0, fmt.Errorf("failed to save claim: %w", err)
	}

	slog.Info("Matured sales claimed", "accountId", accountID.Hex(), "credited", credited)
	return credited, nil
}

// RequestDelivery removes the item from the inventory and records the
// delivery fee claim; the admin arranges shipping out-of-band.
func (s *GiftBoxService) RequestDelivery(ctx context.Context, accountID primitive.ObjectID, itemID, name, phone, address, method, trxID string) error {
	release, err := s.locks.Acquire(ctx, accountID.Hex())
	if err != nil {
		return fmt.Errorf("failed to acquire account lock: %w", err)
	}
	defer release()

	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to load account: %w", err)
	}

	item, ok := account.RemoveInventory(itemID)
	if !ok {
		return ErrItemNotFound
	}

	rec, err := newHistoryRecord(models.HistoryDeliveryFee, s.cfg.Game.DeliveryFee, models.HistoryPending, method)
	if err != nil {
		return err
	}
	account.AppendHistory(rec)

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to save delivery request: %w", err)
	}

	slog.Info("Delivery requested", "accountId", accountID.Hex(), "item", item.Name)
	s.notifier.Notify(fmt.Sprintf("🚚 *Delivery Request*\nUser: %s\nItem: %s\nName: %s\nAddress: %s\nPhone: %s\nFee TrxID: `%s`",
		account.Name, item.Name, name, address, phone, trxID))

	return nil
}
