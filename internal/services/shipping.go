package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// ShippingReader defines read access to shipping details.
type ShippingReader interface {
	GetByID(ctx context.Context, id int64) (*models.ShippingDetailDB, error)
	GetByListingID(ctx context.Context, listingID int64) (*models.ShippingDetailDB, error)
}

// ShippingWriter defines write access to shipping details.
type ShippingWriter interface {
	Save(ctx context.Context, userID, listingID int64, shippingMethod string, shippingCost float64, estimatedDeliveryDays *int, trackingNumber *string) (*models.ShippingDetailDB, error)
	UpdateTracking(ctx context.Context, id int64, upd models.ShippingUpdate) (*models.ShippingDetailDB, error)
}

// ShippingService tracks fulfillment of sold listings. One shipment per
// listing sale.
type ShippingService struct {
	readRepo  ShippingReader
	writeRepo ShippingWriter
}

func NewShippingService(readRepo ShippingReader, writeRepo ShippingWriter) *ShippingService {
	return &ShippingService{readRepo: readRepo, writeRepo: writeRepo}
}

func (s *ShippingService) Create(ctx context.Context, userID, listingID int64, shippingMethod string, shippingCost float64, estimatedDeliveryDays *int, trackingNumber *string) (*models.ShippingDetailDB, error) {
	if shippingMethod == "" {
		return nil, fmt.Errorf("%w: shipping method is required", errs.ErrValidation)
	}
	if shippingCost < 0 {
		return nil, fmt.Errorf("%w: shipping cost cannot be negative", errs.ErrValidation)
	}

	detail, err := s.writeRepo.Save(ctx, userID, listingID, shippingMethod, shippingCost, estimatedDeliveryDays, trackingNumber)
	if err != nil {
		logger.Log.Errorw("failed to save shipping details", "listing_id", listingID, "error", err)
		return nil, err
	}

	return detail, nil
}

func (s *ShippingService) GetByID(ctx context.Context, id int64) (*models.ShippingDetailDB, error) {
	return s.readRepo.GetByID(ctx, id)
}

func (s *ShippingService) GetByListing(ctx context.Context, listingID int64) (*models.ShippingDetailDB, error) {
	return s.readRepo.GetByListingID(ctx, listingID)
}

// UpdateTracking patches the present fields. Tracking number may be
// cleared with an explicit null; status and shipped_at may not.
func (s *ShippingService) UpdateTracking(ctx context.Context, id int64, upd models.ShippingUpdate) (*models.ShippingDetailDB, error) {
	if upd.Status.Set && !upd.Status.Valid {
		return nil, fmt.Errorf("%w: status cannot be null", errs.ErrValidation)
	}
	if upd.ShippedAt.Set && !upd.ShippedAt.Valid {
		return nil, fmt.Errorf("%w: shipped_at cannot be null", errs.ErrValidation)
	}
	if !upd.TrackingNumber.Set && !upd.Status.Set && !upd.ShippedAt.Set {
		return s.readRepo.GetByID(ctx, id)
	}

	detail, err := s.writeRepo.UpdateTracking(ctx, id, upd)
	if err != nil {
		logger.Log.Errorw("failed to update shipping tracking", "id", id, "error", err)
		return nil, err
	}

	return detail, nil
}
