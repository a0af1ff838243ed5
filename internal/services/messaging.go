package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// MessageReader defines read access to messages.
type MessageReader interface {
	GetAll(ctx context.Context) ([]models.MessageDB, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.MessageDB, error)
	GetByID(ctx context.Context, id int64) (*models.MessageDB, error)
}

// MessageWriter defines write access to messages.
type MessageWriter interface {
	Save(ctx context.Context, senderID, recipientID, listingID int64, messageText string) (*models.MessageDB, error)
	Delete(ctx context.Context, id int64) error
}

// MessageService stores listing-scoped messages between users. Plain
// rows, no delivery mechanics.
type MessageService struct {
	readRepo  MessageReader
	writeRepo MessageWriter
}

func NewMessageService(readRepo MessageReader, writeRepo MessageWriter) *MessageService {
	return &MessageService{readRepo: readRepo, writeRepo: writeRepo}
}

func (s *MessageService) Create(ctx context.Context, senderID, recipientID, listingID int64, messageText string) (*models.MessageDB, error) {
	if messageText == "" {
		return nil, fmt.Errorf("%w: message text is required", errs.ErrValidation)
	}
	if senderID == recipientID {
		return nil, fmt.Errorf("%w: sender and recipient must differ", errs.ErrValidation)
	}

	message, err := s.writeRepo.Save(ctx, senderID, recipientID, listingID, messageText)
	if err != nil {
		logger.Log.Errorw("failed to save message", "sender_id", senderID, "recipient_id", recipientID, "error", err)
		return nil, err
	}

	return message, nil
}

func (s *MessageService) List(ctx context.Context) ([]models.MessageDB, error) {
	return s.readRepo.GetAll(ctx)
}

func (s *MessageService) ListByUser(ctx context.Context, userID int64) ([]models.MessageDB, error) {
	return s.readRepo.GetByUserID(ctx, userID)
}

func (s *MessageService) GetByID(ctx context.Context, id int64) (*models.MessageDB, error) {
	return s.readRepo.GetByID(ctx, id)
}

func (s *MessageService) Delete(ctx context.Context, id int64) error {
	if err := s.writeRepo.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete message", "id", id, "error", err)
		return err
	}
	return nil
}
