package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestReputationService_CreateReview_RecomputesAggregate(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ratingWrite := NewMockUserRatingWriter(ctrl)
	reviewWrite := NewMockReviewWriter(ctrl)

	reviewWrite.EXPECT().
		Save(ctx, int64(1), int64(2), gomock.Nil(), 4, gomock.Nil()).
		Return(&models.ReviewDB{ID: 7, Rating: 4}, nil)
	ratingWrite.EXPECT().Recompute(ctx, int64(2)).Return(&models.UserRatingDB{
		UserID: 2, TotalRatings: 1, AverageRating: 4.00,
	}, nil)

	svc := NewReputationService(NewMockUserRatingReader(ctrl), ratingWrite, NewMockReviewReader(ctrl), reviewWrite)
	review, err := svc.CreateReview(ctx, 1, 2, nil, 4, nil)

	assert.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
}

func TestReputationService_CreateReview_Validation(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewReputationService(NewMockUserRatingReader(ctrl), NewMockUserRatingWriter(ctrl), NewMockReviewReader(ctrl), NewMockReviewWriter(ctrl))

	_, err := svc.CreateReview(ctx, 1, 2, nil, 0, nil)
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.CreateReview(ctx, 1, 2, nil, 6, nil)
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.CreateReview(ctx, 1, 1, nil, 4, nil)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestReputationService_DeleteReview_RecomputesAggregate(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ratingWrite := NewMockUserRatingWriter(ctrl)
	reviewWrite := NewMockReviewWriter(ctrl)

	reviewWrite.EXPECT().Delete(ctx, int64(7)).Return(int64(2), nil)
	ratingWrite.EXPECT().Recompute(ctx, int64(2)).Return(&models.UserRatingDB{
		UserID: 2, TotalRatings: 0, AverageRating: 0,
	}, nil)

	svc := NewReputationService(NewMockUserRatingReader(ctrl), ratingWrite, NewMockReviewReader(ctrl), reviewWrite)
	err := svc.DeleteReview(ctx, 7)

	assert.NoError(t, err)
}

func TestReputationService_CreateRating(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ratingWrite := NewMockUserRatingWriter(ctrl)
	svc := NewReputationService(NewMockUserRatingReader(ctrl), ratingWrite, NewMockReviewReader(ctrl), NewMockReviewWriter(ctrl))

	_, err := svc.CreateRating(ctx, 2, -1, 0)
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.CreateRating(ctx, 2, 0, 5.5)
	assert.ErrorIs(t, err, errs.ErrValidation)

	ratingWrite.EXPECT().Save(ctx, int64(2), 0, 0.0).Return(&models.UserRatingDB{UserID: 2}, nil)
	rating, err := svc.CreateRating(ctx, 2, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), rating.UserID)

	// A second aggregate row for the same user is rejected downstream.
	ratingWrite.EXPECT().Save(ctx, int64(2), 0, 0.0).Return(nil, errs.ErrConflict)
	_, err = svc.CreateRating(ctx, 2, 0, 0)
	assert.ErrorIs(t, err, errs.ErrConflict)
}
