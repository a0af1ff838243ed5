package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
)

func TestBidRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	writeRepo := NewBidWriteRepository(db, nil)
	readRepo := NewBidReadRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller")
	buyer := seedUser(t, db, "buyer")
	listing := seedListing(t, db, seller.ID, "Record player")

	first, err := writeRepo.Save(ctx, buyer.ID, listing.ID, 50.00)
	assert.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, 50.00, first.Amount)

	second, err := writeRepo.Save(ctx, buyer.ID, listing.ID, 65.00)
	assert.NoError(t, err)

	t.Run("SaveUnknownListing", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, buyer.ID, 999999, 10.00)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("GetByID", func(t *testing.T) {
		bid, err := readRepo.GetByID(ctx, first.ID)
		assert.NoError(t, err)
		assert.Equal(t, buyer.ID, bid.UserID)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		bid, err := readRepo.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.Nil(t, bid)
	})

	t.Run("GetByListingIDHighestFirst", func(t *testing.T) {
		bids, err := readRepo.GetByListingID(ctx, listing.ID)
		assert.NoError(t, err)
		assert.Len(t, bids, 2)
		assert.Equal(t, second.ID, bids[0].ID)
		assert.Equal(t, 65.00, bids[0].Amount)
	})

	t.Run("GetHighestAmount", func(t *testing.T) {
		highest, err := readRepo.GetHighestAmount(ctx, listing.ID)
		assert.NoError(t, err)
		assert.Equal(t, 65.00, highest)
	})

	t.Run("GetHighestAmountNoBids", func(t *testing.T) {
		empty := seedListing(t, db, seller.ID, "No bids yet")
		highest, err := readRepo.GetHighestAmount(ctx, empty.ID)
		assert.NoError(t, err)
		assert.Zero(t, highest)
	})

	t.Run("GetAll", func(t *testing.T) {
		bids, err := readRepo.GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, bids, 2)
	})

	t.Run("Delete", func(t *testing.T) {
		err := writeRepo.Delete(ctx, first.ID)
		assert.NoError(t, err)

		bids, err := readRepo.GetByListingID(ctx, listing.ID)
		assert.NoError(t, err)
		assert.Len(t, bids, 1)
	})

	t.Run("DeleteNotFound", func(t *testing.T) {
		err := writeRepo.Delete(ctx, 999999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
