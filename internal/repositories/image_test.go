package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
)

func TestImageRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	writeRepo := NewImageWriteRepository(db, nil)
	readRepo := NewImageReadRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller")
	listing := seedListing(t, db, seller.ID, "Film camera")

	front, err := writeRepo.Save(ctx, seller.ID, listing.ID, "https://img.example.com/front.jpg")
	assert.NoError(t, err)
	assert.NotZero(t, front.ID)

	_, err = writeRepo.Save(ctx, seller.ID, listing.ID, "https://img.example.com/back.jpg")
	assert.NoError(t, err)

	t.Run("SaveUnknownListing", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, seller.ID, 999999, "https://img.example.com/ghost.jpg")
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("GetByID", func(t *testing.T) {
		image, err := readRepo.GetByID(ctx, front.ID)
		assert.NoError(t, err)
		assert.Equal(t, "https://img.example.com/front.jpg", image.ImageURL)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		image, err := readRepo.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.Nil(t, image)
	})

	t.Run("GetByListingID", func(t *testing.T) {
		images, err := readRepo.GetByListingID(ctx, listing.ID)
		assert.NoError(t, err)
		assert.Len(t, images, 2)
	})

	t.Run("GetAll", func(t *testing.T) {
		images, err := readRepo.GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, images, 2)
	})

	t.Run("Delete", func(t *testing.T) {
		err := writeRepo.Delete(ctx, front.ID)
		assert.NoError(t, err)

		images, err := readRepo.GetByListingID(ctx, listing.ID)
		assert.NoError(t, err)
		assert.Len(t, images, 1)
	})

	t.Run("DeleteNotFound", func(t *testing.T) {
		err := writeRepo.Delete(ctx, 999999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
