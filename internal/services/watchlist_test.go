package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestWatchListService_Add(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	write := NewMockWatchListWriter(ctrl)
	write.EXPECT().Save(ctx, int64(1), int64(5)).Return(&models.WatchListEntryDB{ID: 3, UserID: 1, ListingID: 5}, nil)

	svc := NewWatchListService(NewMockWatchListReader(ctrl), write)
	entry, err := svc.Add(ctx, 1, 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), entry.ListingID)

	// Watching the same listing twice is a conflict, not a silent no-op.
	write.EXPECT().Save(ctx, int64(1), int64(5)).Return(nil, errs.ErrConflict)
	_, err = svc.Add(ctx, 1, 5)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestWatchListService_Remove(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	write := NewMockWatchListWriter(ctrl)
	write.EXPECT().Delete(ctx, int64(1), int64(5)).Return(nil)
	write.EXPECT().Delete(ctx, int64(1), int64(5)).Return(errs.ErrNotFound)

	svc := NewWatchListService(NewMockWatchListReader(ctrl), write)

	assert.NoError(t, svc.Remove(ctx, 1, 5))
	assert.ErrorIs(t, svc.Remove(ctx, 1, 5), errs.ErrNotFound)
}

func TestWatchListService_List(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	read := NewMockWatchListReader(ctrl)
	read.EXPECT().GetByUserID(ctx, int64(1)).Return([]models.WatchListEntryDB{{ID: 3, ListingID: 5}}, nil)

	svc := NewWatchListService(read, NewMockWatchListWriter(ctrl))
	entries, err := svc.List(ctx, 1)

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}
