package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// NotificationReader defines read access to notifications.
type NotificationReader interface {
	GetByUserID(ctx context.Context, userID int64) ([]models.NotificationDB, error)
	GetUnreadByUserID(ctx context.Context, userID int64) ([]models.NotificationDB, error)
}

// NotificationSaver appends a notification row.
type NotificationSaver interface {
	Save(ctx context.Context, userID, listingID int64, notificationType, notificationMessage string) (*models.NotificationDB, error)
}

// NotificationWriter defines write access to notifications.
type NotificationWriter interface {
	NotificationSaver
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// NotificationService stores per-user notices. Delivery is pull-based;
// rows sit unread until the user fetches them.
type NotificationService struct {
	readRepo  NotificationReader
	writeRepo NotificationWriter
}

func NewNotificationService(readRepo NotificationReader, writeRepo NotificationWriter) *NotificationService {
	return &NotificationService{readRepo: readRepo, writeRepo: writeRepo}
}

func (s *NotificationService) Create(ctx context.Context, userID, listingID int64, notificationType, notificationMessage string) (*models.NotificationDB, error) {
	if notificationType == "" {
		return nil, fmt.Errorf("%w: notification type is required", errs.ErrValidation)
	}
	if notificationMessage == "" {
		return nil, fmt.Errorf("%w: notification message is required", errs.ErrValidation)
	}

	notification, err := s.writeRepo.Save(ctx, userID, listingID, notificationType, notificationMessage)
	if err != nil {
		logger.Log.Errorw("failed to save notification", "user_id", userID, "error", err)
		return nil, err
	}

	return notification, nil
}

func (s *NotificationService) ListByUser(ctx context.Context, userID int64) ([]models.NotificationDB, error) {
	return s.readRepo.GetByUserID(ctx, userID)
}

func (s *NotificationService) ListUnread(ctx context.Context, userID int64) ([]models.NotificationDB, error) {
	return s.readRepo.GetUnreadByUserID(ctx, userID)
}

// MarkAllRead flips every unread notification for one user and returns
// how many rows changed.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	count, err := s.writeRepo.MarkAllRead(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to mark notifications read", "user_id", userID, "error", err)
		return 0, err
	}
	return count, nil
}

func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	if err := s.writeRepo.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete notification", "id", id, "error", err)
		return err
	}
	return nil
}
