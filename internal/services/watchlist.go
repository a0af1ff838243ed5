package services

import (
	"context"

	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// WatchListReader defines read access to watch list entries.
type WatchListReader interface {
	GetByUserID(ctx context.Context, userID int64) ([]models.WatchListEntryDB, error)
}

// WatchListWriter defines write access to watch list entries.
type WatchListWriter interface {
	Save(ctx context.Context, userID, listingID int64) (*models.WatchListEntryDB, error)
	Delete(ctx context.Context, userID, listingID int64) error
}

// WatchListService tracks which listings a user follows. Adding the
// same listing twice is a conflict, not a no-op.
type WatchListService struct {
	readRepo  WatchListReader
	writeRepo WatchListWriter
}

func NewWatchListService(readRepo WatchListReader, writeRepo WatchListWriter) *WatchListService {
	return &WatchListService{readRepo: readRepo, writeRepo: writeRepo}
}

func (s *WatchListService) Add(ctx context.Context, userID, listingID int64) (*models.WatchListEntryDB, error) {
	entry, err := s.writeRepo.Save(ctx, userID, listingID)
	if err != nil {
		logger.Log.Errorw("failed to add watch list entry", "user_id", userID, "listing_id", listingID, "error", err)
		return nil, err
	}
	return entry, nil
}

func (s *WatchListService) List(ctx context.Context, userID int64) ([]models.WatchListEntryDB, error) {
	return s.readRepo.GetByUserID(ctx, userID)
}

func (s *WatchListService) Remove(ctx context.Context, userID, listingID int64) error {
	if err := s.writeRepo.Delete(ctx, userID, listingID); err != nil {
		logger.Log.Errorw("failed to remove watch list entry", "user_id", userID, "listing_id", listingID, "error", err)
		return err
	}
	return nil
}
