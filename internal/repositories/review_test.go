package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
)

func TestReviewRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	writeRepo := NewReviewWriteRepository(db, nil)
	readRepo := NewReviewReadRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller")
	buyer := seedUser(t, db, "buyer")
	listing := seedListing(t, db, seller.ID, "Gravel bike")

	text := "Smooth deal, fast shipping"
	review, err := writeRepo.Save(ctx, buyer.ID, seller.ID, &listing.ID, 5, &text)
	assert.NoError(t, err)
	assert.NotZero(t, review.ID)
	assert.Equal(t, 5, review.Rating)
	assert.NotNil(t, review.ListingID)

	bare, err := writeRepo.Save(ctx, seller.ID, buyer.ID, nil, 4, nil)
	assert.NoError(t, err)
	assert.Nil(t, bare.ListingID)
	assert.Nil(t, bare.ReviewText)

	t.Run("SaveUnknownReviewer", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, 999999, seller.ID, nil, 3, nil)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, review.ID)
		assert.NoError(t, err)
		assert.Equal(t, buyer.ID, got.ReviewerID)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("GetByReviewedUserID", func(t *testing.T) {
		reviews, err := readRepo.GetByReviewedUserID(ctx, seller.ID)
		assert.NoError(t, err)
		assert.Len(t, reviews, 1)
		assert.Equal(t, review.ID, reviews[0].ID)
	})

	t.Run("GetAll", func(t *testing.T) {
		reviews, err := readRepo.GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, reviews, 2)
	})

	t.Run("DeleteReturnsReviewedUser", func(t *testing.T) {
		reviewedUserID, err := writeRepo.Delete(ctx, review.ID)
		assert.NoError(t, err)
		assert.Equal(t, seller.ID, reviewedUserID)

		reviews, err := readRepo.GetByReviewedUserID(ctx, seller.ID)
		assert.NoError(t, err)
		assert.Empty(t, reviews)
	})

	t.Run("DeleteNotFound", func(t *testing.T) {
		_, err := writeRepo.Delete(ctx, 999999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
