package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

func TestShippingRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	writeRepo := NewShippingWriteRepository(db, nil)
	readRepo := NewShippingReadRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller")
	listing := seedListing(t, db, seller.ID, "Vintage desk")

	days := 3
	detail, err := writeRepo.Save(ctx, seller.ID, listing.ID, "courier", 12.50, &days, nil)
	assert.NoError(t, err)
	assert.NotZero(t, detail.ID)
	assert.Equal(t, 12.50, detail.ShippingCost)
	assert.NotNil(t, detail.EstimatedDeliveryDays)
	assert.Equal(t, 3, *detail.EstimatedDeliveryDays)
	assert.Nil(t, detail.TrackingNumber)

	t.Run("SaveDuplicateListing", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, seller.ID, listing.ID, "pickup", 0.00, nil, nil)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("SaveUnknownListing", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, seller.ID, 999999, "courier", 5.00, nil, nil)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, detail.ID)
		assert.NoError(t, err)
		assert.Equal(t, "courier", got.ShippingMethod)
	})

	t.Run("GetByListingID", func(t *testing.T) {
		got, err := readRepo.GetByListingID(ctx, listing.ID)
		assert.NoError(t, err)
		assert.Equal(t, detail.ID, got.ID)
	})

	t.Run("GetByListingIDNotFound", func(t *testing.T) {
		got, err := readRepo.GetByListingID(ctx, 999999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("UpdateTracking", func(t *testing.T) {
		shippedAt := time.Now().UTC().Truncate(time.Second)
		updated, err := writeRepo.UpdateTracking(ctx, detail.ID, models.ShippingUpdate{
			TrackingNumber: models.NewOpt("NL123456789"),
			Status:         models.NewOpt("shipped"),
			ShippedAt:      models.NewOpt(shippedAt),
		})
		assert.NoError(t, err)
		assert.NotNil(t, updated.TrackingNumber)
		assert.Equal(t, "NL123456789", *updated.TrackingNumber)
		assert.NotNil(t, updated.Status)
		assert.Equal(t, "shipped", *updated.Status)
		assert.NotNil(t, updated.ShippedAt)
	})

	t.Run("UpdateTrackingClearNumber", func(t *testing.T) {
		updated, err := writeRepo.UpdateTracking(ctx, detail.ID, models.ShippingUpdate{
			TrackingNumber: models.NullOpt[string](),
		})
		assert.NoError(t, err)
		assert.Nil(t, updated.TrackingNumber)
		assert.NotNil(t, updated.Status)
	})

	t.Run("UpdateTrackingNotFound", func(t *testing.T) {
		_, err := writeRepo.UpdateTracking(ctx, 999999, models.ShippingUpdate{
			Status: models.NewOpt("shipped"),
		})
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
