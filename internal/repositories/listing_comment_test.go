package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
)

func TestListingCommentRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	writeRepo := NewListingCommentWriteRepository(db, nil)
	readRepo := NewListingCommentReadRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller")
	asker := seedUser(t, db, "asker")
	listing := seedListing(t, db, seller.ID, "Espresso machine")

	comment, err := writeRepo.Save(ctx, asker.ID, listing.ID, "Does it come with the grinder?")
	assert.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Nil(t, comment.AnswerText)

	t.Run("SaveUnknownListing", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, asker.ID, 999999, "hello?")
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("Answer", func(t *testing.T) {
		answered, err := writeRepo.Answer(ctx, comment.ID, "Yes, grinder included.")
		assert.NoError(t, err)
		assert.NotNil(t, answered.AnswerText)
		assert.Equal(t, "Yes, grinder included.", *answered.AnswerText)
	})

	t.Run("AnswerNotFound", func(t *testing.T) {
		_, err := writeRepo.Answer(ctx, 999999, "ghost answer")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("GetByListingID", func(t *testing.T) {
		comments, err := readRepo.GetByListingID(ctx, listing.ID)
		assert.NoError(t, err)
		assert.Len(t, comments, 1)
		assert.Equal(t, asker.ID, comments[0].UserID)
	})

	t.Run("GetByUserID", func(t *testing.T) {
		comments, err := readRepo.GetByUserID(ctx, asker.ID)
		assert.NoError(t, err)
		assert.Len(t, comments, 1)
	})

	t.Run("Delete", func(t *testing.T) {
		err := writeRepo.Delete(ctx, comment.ID)
		assert.NoError(t, err)

		comments, err := readRepo.GetByListingID(ctx, listing.ID)
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("DeleteNotFound", func(t *testing.T) {
		err := writeRepo.Delete(ctx, 999999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
