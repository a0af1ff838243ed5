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

type BidReadRepository struct {
	db *sqlx.DB
}

func NewBidReadRepository(db *sqlx.DB) *BidReadRepository {
	return &BidReadRepository{db: db}
}

func (r *BidReadRepository) GetAll(ctx context.Context) ([]models.BidDB, error) {
	const query = `
		SELECT id, user_id, listing_id, amount, created_at
		FROM bids
		ORDER BY created_at DESC
	`

	var bids []models.BidDB
	err := r.db.SelectContext(ctx, &bids, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(bids),
		"error", err,
	)

	return bids, err
}

func (r *BidReadRepository) GetByID(ctx context.Context, id int64) (*models.BidDB, error) {
	const query = `
		SELECT id, user_id, listing_id, amount, created_at
		FROM bids
		WHERE id = $1
	`

	var bid models.BidDB
	err := r.db.GetContext(ctx, &bid, query, id)

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

	return &bid, nil
}

// GetByListingID returns a listing's bids ordered highest first. The
// ordering backs the "current highest bid" display and must not change.
func (r *BidReadRepository) GetByListingID(ctx context.Context, listingID int64) ([]models.BidDB, error) {
	const query = `
		SELECT id, user_id, listing_id, amount, created_at
		FROM bids
		WHERE listing_id = $1
		ORDER BY amount DESC
	`

	var bids []models.BidDB
	err := r.db.SelectContext(ctx, &bids, query, listingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID},
		"result", len(bids),
		"error", err,
	)

	return bids, err
}

// GetHighestAmount returns the current highest bid amount for a listing,
// or 0 when no bids exist.
func (r *BidReadRepository) GetHighestAmount(ctx context.Context, listingID int64) (float64, error) {
	const query = `
		SELECT COALESCE(MAX(amount), 0)
		FROM bids
		WHERE listing_id = $1
	`

	var highest float64
	err := r.db.GetContext(ctx, &highest, query, listingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID},
		"result", highest,
		"error", err,
	)

	return highest, err
}

type BidWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBidWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BidWriteRepository {
	return &BidWriteRepository{db: db, txGetter: txGetter}
}

func (r *BidWriteRepository) Save(ctx context.Context, userID, listingID int64, amount float64) (*models.BidDB, error) {
	const query = `
		INSERT INTO bids (user_id, listing_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, listing_id, amount, created_at
	`

	var bid models.BidDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &bid, query, userID, listingID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, listingID, amount},
		"error", err,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, errs.ErrConflict
		}
		return nil, err
	}

	return &bid, nil
}

// Delete removes a bid. Rejected while a transaction references the bid
// (foreign key is RESTRICT).
func (r *BidWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM bids WHERE id = $1`

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
		if isForeignKeyViolation(err) {
			return errs.ErrConflict
		}
		return err
	}
	if rowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
