package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

const paymentColumns = `id, transaction_id, listing_id, payment_method, amount, payment_status, paid_at, created_at`

type PaymentReadRepository struct {
	db *sqlx.DB
}

func NewPaymentReadRepository(db *sqlx.DB) *PaymentReadRepository {
	return &PaymentReadRepository{db: db}
}

func (r *PaymentReadRepository) GetAll(ctx context.Context) ([]models.PaymentDB, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		ORDER BY created_at
	`

	var payments []models.PaymentDB
	err := r.db.SelectContext(ctx, &payments, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(payments),
		"error", err,
	)

	return payments, err
}

// GetByUserID returns payments whose transaction belongs to the user.
func (r *PaymentReadRepository) GetByUserID(ctx context.Context, userID int64) ([]models.PaymentDB, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE transaction_id IN (SELECT id FROM transactions WHERE user_id = $1)
		ORDER BY created_at
	`

	var payments []models.PaymentDB
	err := r.db.SelectContext(ctx, &payments, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(payments),
		"error", err,
	)

	return payments, err
}

func (r *PaymentReadRepository) GetByID(ctx context.Context, id int64) (*models.PaymentDB, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE id = $1
	`

	var payment models.PaymentDB
	err := r.db.GetContext(ctx, &payment, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return &payment, nil
}

type PaymentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPaymentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PaymentWriteRepository {
	return &PaymentWriteRepository{db: db, txGetter: txGetter}
}

// Save records a new settlement attempt in pending state.
func (r *PaymentWriteRepository) Save(ctx context.Context, transactionID, listingID int64, paymentMethod string, amount float64) (*models.PaymentDB, error) {
	query := `
		INSERT INTO payments (transaction_id, listing_id, payment_method, amount, payment_status)
		VALUES ($1, $2, $3, $4, 'pending')
		RETURNING ` + paymentColumns
	args := []any{transactionID, listingID, paymentMethod, amount}

	var payment models.PaymentDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &payment, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, errs.ErrConflict
		}
		return nil, err
	}

	return &payment, nil
}

// UpdateStatus moves a payment to a new status. paid_at is stamped when
// the payment settles as completed.
func (r *PaymentWriteRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.PaymentDB, error) {
	query := `
		UPDATE payments
		SET payment_status = $1,
		    paid_at = CASE WHEN $1 = 'completed' THEN CURRENT_TIMESTAMP ELSE paid_at END
		WHERE id = $2
		RETURNING ` + paymentColumns

	var payment models.PaymentDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &payment, query, status, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{status, id},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return &payment, nil
}

func (r *PaymentWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM payments WHERE id = $1`

	res, err := exec(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
