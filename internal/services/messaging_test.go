package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMessageService_Create(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	write := NewMockMessageWriter(ctrl)
	write.EXPECT().
		Save(ctx, int64(1), int64(2), int64(5), "Is it still available?").
		Return(&models.MessageDB{ID: 11, SenderID: 1, RecipientID: 2, ListingID: 5}, nil)

	svc := NewMessageService(NewMockMessageReader(ctrl), write)
	message, err := svc.Create(ctx, 1, 2, 5, "Is it still available?")

	assert.NoError(t, err)
	assert.Equal(t, int64(11), message.ID)
	assert.False(t, message.IsRead)
}

func TestMessageService_CreateValidation(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMessageService(NewMockMessageReader(ctrl), NewMockMessageWriter(ctrl))

	_, err := svc.Create(ctx, 1, 2, 5, "")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Create(ctx, 1, 1, 5, "talking to myself")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestMessageService_GetByID(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	read := NewMockMessageReader(ctrl)
	read.EXPECT().GetByID(ctx, int64(11)).Return(&models.MessageDB{ID: 11}, nil)
	read.EXPECT().GetByID(ctx, int64(42)).Return(nil, errs.ErrNotFound)

	svc := NewMessageService(read, NewMockMessageWriter(ctrl))

	message, err := svc.GetByID(ctx, 11)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), message.ID)

	_, err = svc.GetByID(ctx, 42)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestMessageService_ListByUser(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	read := NewMockMessageReader(ctrl)
	read.EXPECT().GetByUserID(ctx, int64(1)).Return([]models.MessageDB{
		{ID: 11, SenderID: 1},
		{ID: 12, RecipientID: 1},
	}, nil)

	svc := NewMessageService(read, NewMockMessageWriter(ctrl))
	messages, err := svc.ListByUser(ctx, 1)

	assert.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestMessageService_Delete(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	write := NewMockMessageWriter(ctrl)
	write.EXPECT().Delete(ctx, int64(11)).Return(nil)
	write.EXPECT().Delete(ctx, int64(42)).Return(errs.ErrNotFound)

	svc := NewMessageService(NewMockMessageReader(ctrl), write)

	assert.NoError(t, svc.Delete(ctx, 11))
	assert.ErrorIs(t, svc.Delete(ctx, 42), errs.ErrNotFound)
}
