package repositories

import (
	"context"
	"errors"

	"github.com/luckytaka/earning-app-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no account matches the lookup.
var ErrNotFound = errors.New("account not found")

// ErrVersionConflict is returned by Update when the account document was
// modified since it was read. The caller must treat the operation as not
// applied and retry from a fresh read.
var ErrVersionConflict = errors.New("account version conflict")

// AccountRepository defines the interface for account data operations.
// Update performs a compare-and-swap on the account's version counter so a
// multi-step mutation is either applied as a whole or not at all.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Count(ctx context.Context) (int64, error)
}
