package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// ListingCommentReader defines read access to listing comments.
type ListingCommentReader interface {
	GetByListingID(ctx context.Context, listingID int64) ([]models.ListingCommentDB, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.ListingCommentDB, error)
}

// ListingCommentWriter defines write access to listing comments.
type ListingCommentWriter interface {
	Save(ctx context.Context, userID, listingID int64, commentText string) (*models.ListingCommentDB, error)
	Answer(ctx context.Context, id int64, answerText string) (*models.ListingCommentDB, error)
	Delete(ctx context.Context, id int64) error
}

// CommentService handles questions left on a listing and the owner's
// one-shot answers.
type CommentService struct {
	readRepo  ListingCommentReader
	writeRepo ListingCommentWriter
}

func NewCommentService(readRepo ListingCommentReader, writeRepo ListingCommentWriter) *CommentService {
	return &CommentService{readRepo: readRepo, writeRepo: writeRepo}
}

func (s *CommentService) Create(ctx context.Context, userID, listingID int64, commentText string) (*models.ListingCommentDB, error) {
	if commentText == "" {
		return nil, fmt.Errorf("%w: comment text is required", errs.ErrValidation)
	}

	comment, err := s.writeRepo.Save(ctx, userID, listingID, commentText)
	if err != nil {
		logger.Log.Errorw("failed to save comment", "user_id", userID, "listing_id", listingID, "error", err)
		return nil, err
	}

	return comment, nil
}

func (s *CommentService) ListByListing(ctx context.Context, listingID int64) ([]models.ListingCommentDB, error) {
	return s.readRepo.GetByListingID(ctx, listingID)
}

func (s *CommentService) ListByUser(ctx context.Context, userID int64) ([]models.ListingCommentDB, error) {
	return s.readRepo.GetByUserID(ctx, userID)
}

func (s *CommentService) Answer(ctx context.Context, id int64, answerText string) (*models.ListingCommentDB, error) {
	if answerText == "" {
		return nil, fmt.Errorf("%w: answer text is required", errs.ErrValidation)
	}

	comment, err := s.writeRepo.Answer(ctx, id, answerText)
	if err != nil {
		logger.Log.Errorw("failed to answer comment", "id", id, "error", err)
		return nil, err
	}

	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, id int64) error {
	if err := s.writeRepo.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete comment", "id", id, "error", err)
		return err
	}
	return nil
}
