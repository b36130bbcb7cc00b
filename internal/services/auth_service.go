package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"github.com/luckytaka/earning-app-backend/internal/config"
	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/repositories"
	"github.com/luckytaka/earning-app-backend/internal/utils"
)

// AuthService handles registration and login
type AuthService struct {
	accountRepo repositories.AccountRepository
	cfg         *config.Config
}

// NewAuthService creates a new AuthService
func NewAuthService(accountRepo repositories.AccountRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		cfg:         cfg,
	}
}

// Register creates a new account with a bcrypt password hash
func (s *AuthService) Register(ctx context.Context, name, email, phone, password string) (*models.Account, error) {
	_, err := s.accountRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Name:          name,
		Email:         email,
		Phone:         phone,
		PasswordHash:  string(hash),
		PaymentMethod: "bkash",
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	slog.Info("Account registered", "accountId", account.ID.Hex(), "email", email)
	return account, nil
}

// Login verifies credentials and returns a signed JWT
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.Account, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to load account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(account.ID.Hex(), s.cfg)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, account, nil
}
