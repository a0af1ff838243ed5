package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// BidReader defines read access to bids.
type BidReader interface {
	GetAll(ctx context.Context) ([]models.BidDB, error)
	GetByID(ctx context.Context, id int64) (*models.BidDB, error)
	GetByListingID(ctx context.Context, listingID int64) ([]models.BidDB, error)
	GetHighestAmount(ctx context.Context, listingID int64) (float64, error)
}

// BidWriter defines write access to bids.
type BidWriter interface {
	Save(ctx context.Context, userID, listingID int64, amount float64) (*models.BidDB, error)
	Delete(ctx context.Context, id int64) error
}

// ListingGetter fetches a single listing.
type ListingGetter interface {
	GetByID(ctx context.Context, id int64) (*models.ListingDB, error)
}

// BidService places bids on listings. A bid is append-only: once placed
// it is never updated, only deleted when nothing references it.
type BidService struct {
	readRepo      BidReader
	writeRepo     BidWriter
	listings      ListingGetter
	notifications NotificationSaver
	events        KafkaWriter
}

func NewBidService(readRepo BidReader, writeRepo BidWriter, listings ListingGetter, notifications NotificationSaver, events KafkaWriter) *BidService {
	return &BidService{
		readRepo:      readRepo,
		writeRepo:     writeRepo,
		listings:      listings,
		notifications: notifications,
		events:        events,
	}
}

// Create places a bid. The listing must be active and the amount must
// beat the current highest bid on it.
func (s *BidService) Create(ctx context.Context, userID, listingID int64, amount float64) (*models.BidDB, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: bid amount must be positive", errs.ErrValidation)
	}

	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != models.ListingStatusActive {
		return nil, fmt.Errorf("%w: listing %d is %s, bids accepted on active listings only", errs.ErrConflict, listingID, listing.Status)
	}

	highest, err := s.readRepo.GetHighestAmount(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if amount <= highest {
		return nil, fmt.Errorf("%w: bid %.2f does not beat current highest %.2f", errs.ErrConflict, amount, highest)
	}

	bid, err := s.writeRepo.Save(ctx, userID, listingID, amount)
	if err != nil {
		logger.Log.Errorw("failed to save bid", "user_id", userID, "listing_id", listingID, "error", err)
		return nil, err
	}

	if s.notifications != nil {
		msg := fmt.Sprintf("New bid of %.2f on your listing %q", amount, listing.Title)
		if _, err := s.notifications.Save(ctx, listing.UserID, listingID, models.NotificationTypeBidPlaced, msg); err != nil {
			logger.Log.Warnw("failed to notify listing owner about bid", "listing_id", listingID, "error", err)
		}
	}

	publishEvent(ctx, s.events, models.NotificationTypeBidPlaced, userID, listingID, amount)

	return bid, nil
}

func (s *BidService) List(ctx context.Context) ([]models.BidDB, error) {
	return s.readRepo.GetAll(ctx)
}

func (s *BidService) GetByID(ctx context.Context, id int64) (*models.BidDB, error) {
	return s.readRepo.GetByID(ctx, id)
}

// ListByListing returns bids highest first. Callers rely on the order
// for current-highest displays.
func (s *BidService) ListByListing(ctx context.Context, listingID int64) ([]models.BidDB, error) {
	return s.readRepo.GetByListingID(ctx, listingID)
}

// Delete removes a bid. Rejected while a transaction references it.
func (s *BidService) Delete(ctx context.Context, id int64) error {
	if err := s.writeRepo.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete bid", "id", id, "error", err)
		return err
	}
	return nil
}
