package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure AccountRepository implements the interface
var _ repositories.AccountRepository = (*AccountRepository)(nil)

// AccountRepository handles MongoDB operations for Account
type AccountRepository struct {
	collection *mongo.Collection
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{
		collection: db.Collection("accounts"),
	}
}

// Create inserts a new account
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	account.ID = primitive.NewObjectID()
	account.Version = 1
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()
	if account.Inventory == nil {
		account.Inventory = []models.InventoryItem{}
	}
	if account.PendingSales == nil {
		account.PendingSales = []models.PendingSale{}
	}
	if account.Investments == nil {
		account.Investments = []models.Investment{}
	}
	if account.CryptoHoldings == nil {
		account.CryptoHoldings = []models.CryptoHolding{}
	}
	if account.History == nil {
		account.History = []models.HistoryRecord{}
	}
	_, err := r.collection.InsertOne(ctx, account)
	return err
}

// FindByID finds an account by ID
func (r *AccountRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	var account models.Account
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// FindByEmail finds an account by email
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	filter := bson.M{"email": email}
	err := r.collection.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// Update replaces the account document if and only if its version still
// matches the one that was read. The version is bumped as part of the write.
func (r *AccountRepository) Update(ctx context.Context, account *models.Account) error {
	readVersion := account.Version
	account.Version = readVersion + 1
	account.UpdatedAt = time.Now()

	filter := bson.M{"_id": account.ID, "version": readVersion}
	result, err := r.collection.ReplaceOne(ctx, filter, account)
	if err != nil {
		account.Version = readVersion
		return err
	}
	if result.MatchedCount == 0 {
		account.Version = readVersion
		return repositories.ErrVersionConflict
	}
	return nil
}

// Count returns the total number of accounts
func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
