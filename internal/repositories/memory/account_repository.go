// Package memory provides an in-memory AccountRepository used by tests and
// local development. It mirrors the MongoDB implementation's semantics,
// including version compare-and-swap and value isolation between callers.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure AccountRepository implements the interface
var _ repositories.AccountRepository = (*AccountRepository)(nil)

// AccountRepository stores accounts in a map keyed by hex object id.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
}

// NewAccountRepository creates an empty in-memory repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*models.Account),
	}
}

// clone round-trips through bson so stored documents are isolated from the
// caller's copy, the same way a real document store behaves.
func clone(account *models.Account) *models.Account {
	raw, err := bson.Marshal(account)
	if err != nil {
		panic(err)
	}
	var out models.Account
	if err := bson.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return &out
}

// Create inserts a new account
func (r *AccountRepository) Create(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account.ID = primitive.NewObjectID()
	account.Version = 1
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()
	r.accounts[account.ID.Hex()] = clone(account)
	return nil
}

// FindByID finds an account by ID
func (r *AccountRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.accounts[id.Hex()]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return clone(account), nil
}

// FindByEmail finds an account by email
func (r *AccountRepository) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, account := range r.accounts {
		if account.Email == email {
			return clone(account), nil
		}
	}
	return nil, repositories.ErrNotFound
}

// Update replaces the stored document if the version still matches.
func (r *AccountRepository) Update(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.accounts[account.ID.Hex()]
	if !ok {
		return repositories.ErrNotFound
	}
	if stored.Version != account.Version {
		return repositories.ErrVersionConflict
	}
	account.Version++
	account.UpdatedAt = time.Now()
	r.accounts[account.ID.Hex()] = clone(account)
	return nil
}

// Count returns the total number of accounts
func (r *AccountRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.accounts)), nil
}
