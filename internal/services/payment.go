package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// PaymentReader defines read access to payments.
type PaymentReader interface {
	GetAll(ctx context.Context) ([]models.PaymentDB, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.PaymentDB, error)
	GetByID(ctx context.Context, id int64) (*models.PaymentDB, error)
}

// PaymentWriter defines write access to payments.
type PaymentWriter interface {
	Save(ctx context.Context, transactionID, listingID int64, paymentMethod string, amount float64) (*models.PaymentDB, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.PaymentDB, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionGetter fetches a single transaction.
type TransactionGetter interface {
	GetByID(ctx context.Context, id int64) (*models.TransactionDB, error)
}

func validPaymentStatus(s string) bool {
	switch s {
	case models.PaymentStatusPending, models.PaymentStatusCompleted,
		models.PaymentStatusFailed, models.PaymentStatusCancelled,
		models.PaymentStatusRefundRequested, models.PaymentStatusRefunded:
		return true
	}
	return false
}

// PaymentService records settlement attempts against transactions.
// Retries are allowed, so a transaction may accumulate several payments.
type PaymentService struct {
	readRepo     PaymentReader
	writeRepo    PaymentWriter
	transactions TransactionGetter
	events       KafkaWriter
}

func NewPaymentService(readRepo PaymentReader, writeRepo PaymentWriter, transactions TransactionGetter, events KafkaWriter) *PaymentService {
	return &PaymentService{
		readRepo:     readRepo,
		writeRepo:    writeRepo,
		transactions: transactions,
		events:       events,
	}
}

// Create records a pending payment. The transaction must exist and the
// listing must be the one the transaction settles.
func (s *PaymentService) Create(ctx context.Context, transactionID, listingID int64, paymentMethod string, amount float64) (*models.PaymentDB, error) {
	if paymentMethod == "" {
		return nil, fmt.Errorf("%w: payment method is required", errs.ErrValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", errs.ErrValidation)
	}

	txn, err := s.transactions.GetByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("%w: transaction %d does not exist", errs.ErrConflict, transactionID)
		}
		return nil, err
	}
	if txn.ListingID != listingID {
		return nil, fmt.Errorf("%w: transaction %d settles listing %d, not %d", errs.ErrConflict, transactionID, txn.ListingID, listingID)
	}

	payment, err := s.writeRepo.Save(ctx, transactionID, listingID, paymentMethod, amount)
	if err != nil {
		logger.Log.Errorw("failed to save payment", "transaction_id", transactionID, "error", err)
		return nil, err
	}

	return payment, nil
}

func (s *PaymentService) List(ctx context.Context) ([]models.PaymentDB, error) {
	return s.readRepo.GetAll(ctx)
}

func (s *PaymentService) ListByUser(ctx context.Context, userID int64) ([]models.PaymentDB, error) {
	return s.readRepo.GetByUserID(ctx, userID)
}

func (s *PaymentService) GetByID(ctx context.Context, id int64) (*models.PaymentDB, error) {
	return s.readRepo.GetByID(ctx, id)
}

// UpdateStatus moves a payment along its lifecycle. Refunded is terminal.
func (s *PaymentService) UpdateStatus(ctx context.Context, id int64, status string) (*models.PaymentDB, error) {
	if !validPaymentStatus(status) {
		return nil, fmt.Errorf("%w: unknown payment status %q", errs.ErrValidation, status)
	}

	current, err := s.readRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == models.PaymentStatusRefunded && status != models.PaymentStatusRefunded {
		return nil, fmt.Errorf("%w: payment %d is refunded and cannot change", errs.ErrConflict, id)
	}

	payment, err := s.writeRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.Log.Errorw("failed to update payment status", "id", id, "status", status, "error", err)
		return nil, err
	}

	return payment, nil
}

// RequestRefund marks a completed payment refund_requested. Any other
// starting status is a conflict.
func (s *PaymentService) RequestRefund(ctx context.Context, id int64) (*models.PaymentDB, error) {
	current, err := s.readRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.PaymentStatusCompleted {
		return nil, fmt.Errorf("%w: payment %d is %s, refunds start from completed", errs.ErrConflict, id, current.Status)
	}

	payment, err := s.writeRepo.UpdateStatus(ctx, id, models.PaymentStatusRefundRequested)
	if err != nil {
		logger.Log.Errorw("failed to request refund", "id", id, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.events, models.NotificationTypeRefundRequested, 0, payment.ListingID, payment.Amount)

	return payment, nil
}

func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	if err := s.writeRepo.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete payment", "id", id, "error", err)
		return err
	}
	return nil
}
