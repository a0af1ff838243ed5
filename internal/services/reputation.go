package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// UserRatingReader defines read access to aggregate ratings.
type UserRatingReader interface {
	GetAll(ctx context.Context) ([]models.UserRatingDB, error)
	GetByUserID(ctx context.Context, userID int64) (*models.UserRatingDB, error)
}

// UserRatingWriter defines write access to aggregate ratings.
type UserRatingWriter interface {
	Save(ctx context.Context, userID int64, totalRatings int, averageRating float64) (*models.UserRatingDB, error)
	Update(ctx context.Context, userID int64, totalRatings int, averageRating float64) (*models.UserRatingDB, error)
	Recompute(ctx context.Context, userID int64) (*models.UserRatingDB, error)
	Delete(ctx context.Context, userID int64) error
}

// ReviewReader defines read access to reviews.
type ReviewReader interface {
	GetAll(ctx context.Context) ([]models.ReviewDB, error)
	GetByID(ctx context.Context, id int64) (*models.ReviewDB, error)
	GetByReviewedUserID(ctx context.Context, userID int64) ([]models.ReviewDB, error)
}

// ReviewWriter defines write access to reviews. Delete reports the
// reviewed user so the aggregate can be recomputed.
type ReviewWriter interface {
	Save(ctx context.Context, reviewerID, reviewedUserID int64, listingID *int64, rating int, reviewText *string) (*models.ReviewDB, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// ReputationService keeps reviews and the per-user aggregate rating.
// The aggregate is recomputed from review rows whenever a review is
// written or removed; the caller-supplied rating operations remain for
// direct adjustment.
type ReputationService struct {
	ratingRead  UserRatingReader
	ratingWrite UserRatingWriter
	reviewRead  ReviewReader
	reviewWrite ReviewWriter
}

func NewReputationService(ratingRead UserRatingReader, ratingWrite UserRatingWriter, reviewRead ReviewReader, reviewWrite ReviewWriter) *ReputationService {
	return &ReputationService{
		ratingRead:  ratingRead,
		ratingWrite: ratingWrite,
		reviewRead:  reviewRead,
		reviewWrite: reviewWrite,
	}
}

func validAverageRating(avg float64) bool {
	return avg >= 0 && avg <= 5
}

// CreateRating stores a caller-supplied aggregate. A second row for the
// same user is a conflict.
func (s *ReputationService) CreateRating(ctx context.Context, userID int64, totalRatings int, averageRating float64) (*models.UserRatingDB, error) {
	if totalRatings < 0 {
		return nil, fmt.Errorf("%w: total_ratings cannot be negative", errs.ErrValidation)
	}
	if !validAverageRating(averageRating) {
		return nil, fmt.Errorf("%w: average_rating must be within [0.00, 5.00]", errs.ErrValidation)
	}

	rating, err := s.ratingWrite.Save(ctx, userID, totalRatings, averageRating)
	if err != nil {
		logger.Log.Errorw("failed to save user rating", "user_id", userID, "error", err)
		return nil, err
	}

	return rating, nil
}

func (s *ReputationService) UpdateRating(ctx context.Context, userID int64, totalRatings int, averageRating float64) (*models.UserRatingDB, error) {
	if totalRatings < 0 {
		return nil, fmt.Errorf("%w: total_ratings cannot be negative", errs.ErrValidation)
	}
	if !validAverageRating(averageRating) {
		return nil, fmt.Errorf("%w: average_rating must be within [0.00, 5.00]", errs.ErrValidation)
	}

	rating, err := s.ratingWrite.Update(ctx, userID, totalRatings, averageRating)
	if err != nil {
		logger.Log.Errorw("failed to update user rating", "user_id", userID, "error", err)
		return nil, err
	}

	return rating, nil
}

func (s *ReputationService) ListRatings(ctx context.Context) ([]models.UserRatingDB, error) {
	return s.ratingRead.GetAll(ctx)
}

func (s *ReputationService) GetRatingByUser(ctx context.Context, userID int64) (*models.UserRatingDB, error) {
	return s.ratingRead.GetByUserID(ctx, userID)
}

func (s *ReputationService) DeleteRating(ctx context.Context, userID int64) error {
	if err := s.ratingWrite.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete user rating", "user_id", userID, "error", err)
		return err
	}
	return nil
}

// CreateReview appends a review and recomputes the reviewed user's
// aggregate in the same unit of work.
func (s *ReputationService) CreateReview(ctx context.Context, reviewerID, reviewedUserID int64, listingID *int64, rating int, reviewText *string) (*models.ReviewDB, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", errs.ErrValidation)
	}
	if reviewerID == reviewedUserID {
		return nil, fmt.Errorf("%w: users cannot review themselves", errs.ErrValidation)
	}

	review, err := s.reviewWrite.Save(ctx, reviewerID, reviewedUserID, listingID, rating, reviewText)
	if err != nil {
		logger.Log.Errorw("failed to save review", "reviewer_id", reviewerID, "reviewed_user_id", reviewedUserID, "error", err)
		return nil, err
	}

	if _, err := s.ratingWrite.Recompute(ctx, reviewedUserID); err != nil {
		logger.Log.Errorw("failed to recompute user rating", "user_id", reviewedUserID, "error", err)
		return nil, err
	}

	return review, nil
}

func (s *ReputationService) ListReviews(ctx context.Context) ([]models.ReviewDB, error) {
	return s.reviewRead.GetAll(ctx)
}

func (s *ReputationService) GetReviewByID(ctx context.Context, id int64) (*models.ReviewDB, error) {
	return s.reviewRead.GetByID(ctx, id)
}

func (s *ReputationService) ListReviewsForUser(ctx context.Context, userID int64) ([]models.ReviewDB, error) {
	return s.reviewRead.GetByReviewedUserID(ctx, userID)
}

// DeleteReview removes a review and recomputes the reviewed user's
// aggregate.
func (s *ReputationService) DeleteReview(ctx context.Context, id int64) error {
	reviewedUserID, err := s.reviewWrite.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete review", "id", id, "error", err)
		return err
	}

	if _, err := s.ratingWrite.Recompute(ctx, reviewedUserID); err != nil {
		logger.Log.Errorw("failed to recompute user rating", "user_id", reviewedUserID, "error", err)
		return err
	}

	return nil
}
