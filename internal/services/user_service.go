package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/repositories"
	"github.com/luckytaka/earning-app-backend/pkg/lock"
)

// UserService handles account profile reads and updates.
type UserService struct {
	accountRepo repositories.AccountRepository
	locks       lock.Manager
}

// NewUserService creates a new UserService
func NewUserService(accountRepo repositories.AccountRepository, locks lock.Manager) *UserService {
	return &UserService{
		accountRepo: accountRepo,
		locks:       locks,
	}
}

// GetAccountByID loads the full account document.
func (s *UserService) GetAccountByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return account, nil
}

// UpdatePaymentMethod changes the account's preferred payout channel. Like
// every other mutating command it holds the account lock for the whole
// read-modify-write cycle.
func (s *UserService) UpdatePaymentMethod(ctx context.Context, id primitive.ObjectID, method string) error {
	release, err := s.locks.Acquire(ctx, id.Hex())
	if err != nil {
		return fmt.Errorf("failed to acquire account lock: %w", err)
	}
	defer release()

	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load account: %w", err)
	}
	account.PaymentMethod = method
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}
