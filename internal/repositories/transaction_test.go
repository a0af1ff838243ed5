package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

func TestTransactionRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	writeRepo := NewTransactionWriteRepository(db, nil)
	readRepo := NewTransactionReadRepository(db)
	bidRepo := NewBidWriteRepository(db, nil)
	ctx := context.Background()

	seller := seedUser(t, db, "seller")
	buyer := seedUser(t, db, "buyer")
	listing := seedListing(t, db, seller.ID, "Turntable")

	bid, err := bidRepo.Save(ctx, buyer.ID, listing.ID, 120.00)
	assert.NoError(t, err)

	txn, err := writeRepo.Save(ctx, buyer.ID, listing.ID, 120.00, models.TransactionStatusPending, &bid.ID)
	assert.NoError(t, err)
	assert.NotZero(t, txn.ID)
	assert.Equal(t, models.TransactionStatusPending, txn.Status)
	assert.NotNil(t, txn.BidID)
	assert.Equal(t, bid.ID, *txn.BidID)

	direct := seedListing(t, db, seller.ID, "Bookshelf")
	directSale, err := writeRepo.Save(ctx, buyer.ID, direct.ID, 40.00, models.TransactionStatusPending, nil)
	assert.NoError(t, err)
	assert.Nil(t, directSale.BidID)

	t.Run("SaveUnknownListing", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, buyer.ID, 999999, 10.00, models.TransactionStatusPending, nil)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, txn.ID)
		assert.NoError(t, err)
		assert.Equal(t, buyer.ID, got.UserID)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("GetByUserID", func(t *testing.T) {
		transactions, err := readRepo.GetByUserID(ctx, buyer.ID)
		assert.NoError(t, err)
		assert.Len(t, transactions, 2)
	})

	t.Run("GetAll", func(t *testing.T) {
		transactions, err := readRepo.GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, transactions, 2)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		updated, err := writeRepo.UpdateStatus(ctx, txn.ID, models.TransactionStatusCompleted)
		assert.NoError(t, err)
		assert.Equal(t, models.TransactionStatusCompleted, updated.Status)
	})

	t.Run("UpdateStatusNotFound", func(t *testing.T) {
		_, err := writeRepo.UpdateStatus(ctx, 999999, models.TransactionStatusCancelled)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
