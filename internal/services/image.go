package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// ImageReader defines read access to listing images.
type ImageReader interface {
	GetAll(ctx context.Context) ([]models.ImageDB, error)
	GetByID(ctx context.Context, id int64) (*models.ImageDB, error)
	GetByListingID(ctx context.Context, listingID int64) ([]models.ImageDB, error)
}

// ImageWriter defines write access to listing images.
type ImageWriter interface {
	Save(ctx context.Context, userID, listingID int64, imageURL string) (*models.ImageDB, error)
	Delete(ctx context.Context, id int64) error
}

// ImageService stores image URLs attached to listings. Files live
// elsewhere; only the reference is kept.
type ImageService struct {
	readRepo  ImageReader
	writeRepo ImageWriter
}

func NewImageService(readRepo ImageReader, writeRepo ImageWriter) *ImageService {
	return &ImageService{readRepo: readRepo, writeRepo: writeRepo}
}

func (s *ImageService) Create(ctx context.Context, userID, listingID int64, imageURL string) (*models.ImageDB, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("%w: image url is required", errs.ErrValidation)
	}

	image, err := s.writeRepo.Save(ctx, userID, listingID, imageURL)
	if err != nil {
		logger.Log.Errorw("failed to save image", "user_id", userID, "listing_id", listingID, "error", err)
		return nil, err
	}

	return image, nil
}

func (s *ImageService) List(ctx context.Context) ([]models.ImageDB, error) {
	return s.readRepo.GetAll(ctx)
}

func (s *ImageService) GetByID(ctx context.Context, id int64) (*models.ImageDB, error) {
	return s.readRepo.GetByID(ctx, id)
}

func (s *ImageService) ListByListing(ctx context.Context, listingID int64) ([]models.ImageDB, error) {
	return s.readRepo.GetByListingID(ctx, listingID)
}

func (s *ImageService) Delete(ctx context.Context, id int64) error {
	if err := s.writeRepo.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete image", "id", id, "error", err)
		return err
	}
	return nil
}
