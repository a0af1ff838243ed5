package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
)

func TestWatchListRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	writeRepo := NewWatchListWriteRepository(db, nil)
	readRepo := NewWatchListReadRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller")
	watcher := seedUser(t, db, "watcher")
	bike := seedListing(t, db, seller.ID, "City bike")
	lamp := seedListing(t, db, seller.ID, "Desk lamp")

	entry, err := writeRepo.Save(ctx, watcher.ID, bike.ID)
	assert.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, watcher.ID, entry.UserID)

	_, err = writeRepo.Save(ctx, watcher.ID, lamp.ID)
	assert.NoError(t, err)

	t.Run("SaveDuplicate", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, watcher.ID, bike.ID)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("SaveUnknownListing", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, watcher.ID, 999999)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("GetByUserID", func(t *testing.T) {
		entries, err := readRepo.GetByUserID(ctx, watcher.ID)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("GetByUserIDEmpty", func(t *testing.T) {
		entries, err := readRepo.GetByUserID(ctx, seller.ID)
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Delete", func(t *testing.T) {
		err := writeRepo.Delete(ctx, watcher.ID, bike.ID)
		assert.NoError(t, err)

		entries, err := readRepo.GetByUserID(ctx, watcher.ID)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("DeleteNotFound", func(t *testing.T) {
		err := writeRepo.Delete(ctx, watcher.ID, bike.ID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
