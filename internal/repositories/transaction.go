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

const transactionColumns = `id, user_id, listing_id, bid_id, amount, status, created_at`

type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

func (r *TransactionReadRepository) GetByID(ctx context.Context, id int64) (*models.TransactionDB, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE id = $1
	`

	var txn models.TransactionDB
	err := r.db.GetContext(ctx, &txn, query, id)

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

	return &txn, nil
}

func (r *TransactionReadRepository) GetByUserID(ctx context.Context, userID int64) ([]models.TransactionDB, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

func (r *TransactionReadRepository) GetAll(ctx context.Context) ([]models.TransactionDB, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY created_at
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) Save(ctx context.Context, userID, listingID int64, amount float64, status string, bidID *int64) (*models.TransactionDB, error) {
	query := `
		INSERT INTO transactions (user_id, listing_id, amount, status, bid_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + transactionColumns
	args := []any{userID, listingID, amount, status, bidID}

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &txn, query, args...)

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

	return &txn, nil
}

// UpdateStatus moves a transaction to a new status.
func (r *TransactionWriteRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.TransactionDB, error) {
	query := `
		UPDATE transactions
		SET status = $1
		WHERE id = $2
		RETURNING ` + transactionColumns

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &txn, query, status, id)

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

	return &txn, nil
}
