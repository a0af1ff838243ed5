package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// TransactionReader defines read access to transactions.
type TransactionReader interface {
	GetByID(ctx context.Context, id int64) (*models.TransactionDB, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.TransactionDB, error)
	GetAll(ctx context.Context) ([]models.TransactionDB, error)
}

// TransactionWriter defines write access to transactions.
type TransactionWriter interface {
	Save(ctx context.Context, userID, listingID int64, amount float64, status string, bidID *int64) (*models.TransactionDB, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.TransactionDB, error)
}

// BidGetter fetches a single bid.
type BidGetter interface {
	GetByID(ctx context.Context, id int64) (*models.BidDB, error)
}

// UserGetter fetches a single user.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// ListingStatusUpdater moves a listing between statuses.
type ListingStatusUpdater interface {
	UpdateStatus(ctx context.Context, id int64, status string) (*models.ListingDB, error)
}

// ListingCacheInvalidator drops a cached listing after a write.
type ListingCacheInvalidator interface {
	Invalidate(ctx context.Context, id int64) error
}

// TransactionService records the purchase lifecycle. Completing a
// transaction marks its listing sold and notifies the seller.
type TransactionService struct {
	readRepo      TransactionReader
	writeRepo     TransactionWriter
	users         UserGetter
	listings      ListingGetter
	listingStatus ListingStatusUpdater
	bids          BidGetter
	cache         ListingCacheInvalidator
	notifications NotificationSaver
	events        KafkaWriter
}

func NewTransactionService(
	readRepo TransactionReader,
	writeRepo TransactionWriter,
	users UserGetter,
	listings ListingGetter,
	listingStatus ListingStatusUpdater,
	bids BidGetter,
	cache ListingCacheInvalidator,
	notifications NotificationSaver,
	events KafkaWriter,
) *TransactionService {
	return &TransactionService{
		readRepo:      readRepo,
		writeRepo:     writeRepo,
		users:         users,
		listings:      listings,
		listingStatus: listingStatus,
		bids:          bids,
		cache:         cache,
		notifications: notifications,
		events:        events,
	}
}

// Create records a transaction. The buyer and listing must exist, the
// status must belong to the closed enum and a supplied bid must
// reference the same listing.
func (s *TransactionService) Create(ctx context.Context, userID, listingID int64, amount float64, status string, bidID *int64) (*models.TransactionDB, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", errs.ErrValidation)
	}
	if !models.ValidTransactionStatus(status) {
		return nil, fmt.Errorf("%w: unknown transaction status %q", errs.ErrValidation, status)
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %d does not exist", errs.ErrValidation, userID)
		}
		return nil, err
	}
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("%w: listing %d does not exist", errs.ErrValidation, listingID)
		}
		return nil, err
	}

	if bidID != nil {
		bid, err := s.bids.GetByID(ctx, *bidID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return nil, fmt.Errorf("%w: bid %d does not exist", errs.ErrValidation, *bidID)
			}
			return nil, err
		}
		if bid.ListingID != listingID {
			return nil, fmt.Errorf("%w: bid %d belongs to listing %d, not %d", errs.ErrConflict, *bidID, bid.ListingID, listingID)
		}
	}

	txn, err := s.writeRepo.Save(ctx, userID, listingID, amount, status, bidID)
	if err != nil {
		logger.Log.Errorw("failed to save transaction", "user_id", userID, "listing_id", listingID, "error", err)
		return nil, err
	}

	if status == models.TransactionStatusCompleted {
		s.complete(ctx, txn, listing)
	}

	return txn, nil
}

func (s *TransactionService) GetByID(ctx context.Context, id int64) (*models.TransactionDB, error) {
	return s.readRepo.GetByID(ctx, id)
}

func (s *TransactionService) ListByUser(ctx context.Context, userID int64) ([]models.TransactionDB, error) {
	return s.readRepo.GetByUserID(ctx, userID)
}

func (s *TransactionService) List(ctx context.Context) ([]models.TransactionDB, error) {
	return s.readRepo.GetAll(ctx)
}

// UpdateStatus moves a transaction along its lifecycle. Completed and
// cancelled are terminal.
func (s *TransactionService) UpdateStatus(ctx context.Context, id int64, status string) (*models.TransactionDB, error) {
	if !models.ValidTransactionStatus(status) {
		return nil, fmt.Errorf("%w: unknown transaction status %q", errs.ErrValidation, status)
	}

	current, err := s.readRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.TransactionStatusPending && current.Status != status {
		return nil, fmt.Errorf("%w: transaction %d is %s and cannot change", errs.ErrConflict, id, current.Status)
	}

	txn, err := s.writeRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.Log.Errorw("failed to update transaction status", "id", id, "status", status, "error", err)
		return nil, err
	}

	if status == models.TransactionStatusCompleted && current.Status != models.TransactionStatusCompleted {
		listing, err := s.listings.GetByID(ctx, txn.ListingID)
		if err != nil {
			logger.Log.Errorw("failed to load listing for completed transaction", "listing_id", txn.ListingID, "error", err)
			return txn, nil
		}
		s.complete(ctx, txn, listing)
	}

	return txn, nil
}

// complete marks the listing sold, tells the seller and publishes the
// completion event.
func (s *TransactionService) complete(ctx context.Context, txn *models.TransactionDB, listing *models.ListingDB) {
	if listing.Status == models.ListingStatusActive {
		if _, err := s.listingStatus.UpdateStatus(ctx, listing.ID, models.ListingStatusSold); err != nil {
			logger.Log.Errorw("failed to mark listing sold", "listing_id", listing.ID, "error", err)
		} else if s.cache != nil {
			if err := s.cache.Invalidate(ctx, listing.ID); err != nil {
				logger.Log.Warnw("failed to invalidate listing cache", "listing_id", listing.ID, "error", err)
			}
		}
	}

	if s.notifications != nil {
		msg := fmt.Sprintf("Your listing %q was sold for %.2f", listing.Title, txn.Amount)
		if _, err := s.notifications.Save(ctx, listing.UserID, listing.ID, models.NotificationTypeTransactionCompleted, msg); err != nil {
			logger.Log.Warnw("failed to notify seller about completed transaction", "listing_id", listing.ID, "error", err)
		}
	}

	publishEvent(ctx, s.events, models.NotificationTypeTransactionCompleted, txn.UserID, listing.ID, txn.Amount)
}
