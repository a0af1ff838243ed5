package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

const shippingColumns = `id, user_id, listing_id, shipping_method, shipping_cost, estimated_delivery_days, tracking_number, status, shipped_at`

type ShippingReadRepository struct {
	db *sqlx.DB
}

func NewShippingReadRepository(db *sqlx.DB) *ShippingReadRepository {
	return &ShippingReadRepository{db: db}
}

func (r *ShippingReadRepository) GetByID(ctx context.Context, id int64) (*models.ShippingDetailDB, error) {
	query := `
		SELECT ` + shippingColumns + `
		FROM shipping_details
		WHERE id = $1
	`

	var detail models.ShippingDetailDB
	err := r.db.GetContext(ctx, &detail, query, id)

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

	return &detail, nil
}

func (r *ShippingReadRepository) GetByListingID(ctx context.Context, listingID int64) (*models.ShippingDetailDB, error) {
	query := `
		SELECT ` + shippingColumns + `
		FROM shipping_details
		WHERE listing_id = $1
	`

	var detail models.ShippingDetailDB
	err := r.db.GetContext(ctx, &detail, query, listingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return &detail, nil
}

type ShippingWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewShippingWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ShippingWriteRepository {
	return &ShippingWriteRepository{db: db, txGetter: txGetter}
}

// Save records fulfillment metadata for a listing sale. One record per
// listing; a second insert returns errs.ErrConflict.
func (r *ShippingWriteRepository) Save(ctx context.Context, userID, listingID int64, shippingMethod string, shippingCost float64, estimatedDeliveryDays *int, trackingNumber *string) (*models.ShippingDetailDB, error) {
	query := `
		INSERT INTO shipping_details (user_id, listing_id, shipping_method, shipping_cost, estimated_delivery_days, tracking_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + shippingColumns
	args := []any{userID, listingID, shippingMethod, shippingCost, estimatedDeliveryDays, trackingNumber}

	var detail models.ShippingDetailDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &detail, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, errs.ErrConflict
		}
		if isForeignKeyViolation(err) {
			return nil, errs.ErrConflict
		}
		return nil, err
	}

	return &detail, nil
}

// UpdateTracking patches tracking_number, status and shipped_at. Absent
// fields keep their stored value; tracking_number may be cleared with an
// explicit null.
func (r *ShippingWriteRepository) UpdateTracking(ctx context.Context, id int64, upd models.ShippingUpdate) (*models.ShippingDetailDB, error) {
	set := make([]string, 0, 3)
	args := make([]any, 0, 4)
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.TrackingNumber.Set {
		if upd.TrackingNumber.Valid {
			add("tracking_number", upd.TrackingNumber.Value)
		} else {
			add("tracking_number", nil)
		}
	}
	if upd.Status.Set {
		add("status", upd.Status.Value)
	}
	if upd.ShippedAt.Set {
		add("shipped_at", upd.ShippedAt.Value)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE shipping_details
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(set, ", "), len(args), shippingColumns)

	var detail models.ShippingDetailDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &detail, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return &detail, nil
}
