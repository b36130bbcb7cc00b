package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/luckytaka/earning-app-backend/internal/models"
	"github.com/luckytaka/earning-app-backend/internal/repositories"
)

func TestCreateAndFind(t *testing.T) {
	repo := NewAccountRepository()

	account := &models.Account{Name: "Test", Email: "t@example.com", Balance: 100}
	require.NoError(t, repo.Create(context.Background(), account))
	assert.False(t, account.ID.IsZero())
	assert.Equal(t, int64(1), account.Version)

	loaded, err := repo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, loaded.Balance)

	byEmail, err := repo.FindByEmail(context.Background(), "t@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byEmail.ID)

	_, err = repo.FindByID(context.Background(), primitive.NewObjectID())
	assert.True(t, errors.Is(err, repositories.ErrNotFound))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUpdateVersionConflict(t *testing.T) {
	repo := NewAccountRepository()

	account := &models.Account{Name: "Test", Email: "v@example.com"}
	require.NoError(t, repo.Create(context.Background(), account))

	first, err := repo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	second, err := repo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)

	first.Balance = 50
	require.NoError(t, repo.Update(context.Background(), first))

	// The stale copy must not be able to clobber the first write.
	second.Balance = 999
	err = repo.Update(context.Background(), second)
	assert.True(t, errors.Is(err, repositories.ErrVersionConflict))

	loaded, err := repo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, loaded.Balance)
}

func TestStoredDocumentIsolation(t *testing.T) {
	repo := NewAccountRepository()

	account := &models.Account{Name: "Test", Email: "i@example.com", Balance: 10}
	require.NoError(t, repo.Create(context.Background(), account))

	loaded, err := repo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	loaded.Balance = 9999

	again, err := repo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, again.Balance)
}
