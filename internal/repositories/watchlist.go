package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

type WatchListReadRepository struct {
	db *sqlx.DB
}

func NewWatchListReadRepository(db *sqlx.DB) *WatchListReadRepository {
	return &WatchListReadRepository{db: db}
}

func (r *WatchListReadRepository) GetByUserID(ctx context.Context, userID int64) ([]models.WatchListEntryDB, error) {
	const query = `
		SELECT id, user_id, listing_id, created_at
		FROM listings_watch_list
		WHERE user_id = $1
		ORDER BY created_at
	`

	var entries []models.WatchListEntryDB
	err := r.db.SelectContext(ctx, &entries, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(entries),
		"error", err,
	)

	return entries, err
}

type WatchListWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWatchListWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WatchListWriteRepository {
	return &WatchListWriteRepository{db: db, txGetter: txGetter}
}

// Save adds a (user, listing) pair. The pair is unique; adding the same
// listing twice returns errs.ErrConflict.
func (r *WatchListWriteRepository) Save(ctx context.Context, userID, listingID int64) (*models.WatchListEntryDB, error) {
	const query = `
		INSERT INTO listings_watch_list (user_id, listing_id)
		VALUES ($1, $2)
		RETURNING id, user_id, listing_id, created_at
	`

	var entry models.WatchListEntryDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &entry, query, userID, listingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, listingID},
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

	return &entry, nil
}

func (r *WatchListWriteRepository) Delete(ctx context.Context, userID, listingID int64) error {
	const query = `
		DELETE FROM listings_watch_list
		WHERE user_id = $1 AND listing_id = $2
	`

	res, err := exec(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, listingID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, listingID},
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
