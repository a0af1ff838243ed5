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

type ImageReadRepository struct {
	db *sqlx.DB
}

func NewImageReadRepository(db *sqlx.DB) *ImageReadRepository {
	return &ImageReadRepository{db: db}
}

func (r *ImageReadRepository) GetAll(ctx context.Context) ([]models.ImageDB, error) {
	const query = `
		SELECT id, user_id, listing_id, image_url, created_at
		FROM images
		ORDER BY created_at DESC
	`

	var images []models.ImageDB
	err := r.db.SelectContext(ctx, &images, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(images),
		"error", err,
	)

	return images, err
}

func (r *ImageReadRepository) GetByID(ctx context.Context, id int64) (*models.ImageDB, error) {
	const query = `
		SELECT id, user_id, listing_id, image_url, created_at
		FROM images
		WHERE id = $1
	`

	var image models.ImageDB
	err := r.db.GetContext(ctx, &image, query, id)

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

	return &image, nil
}

// GetByListingID returns a listing's images in upload order.
func (r *ImageReadRepository) GetByListingID(ctx context.Context, listingID int64) ([]models.ImageDB, error) {
	const query = `
		SELECT id, user_id, listing_id, image_url, created_at
		FROM images
		WHERE listing_id = $1
		ORDER BY created_at ASC
	`

	var images []models.ImageDB
	err := r.db.SelectContext(ctx, &images, query, listingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID},
		"result", len(images),
		"error", err,
	)

	return images, err
}

type ImageWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewImageWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ImageWriteRepository {
	return &ImageWriteRepository{db: db, txGetter: txGetter}
}

func (r *ImageWriteRepository) Save(ctx context.Context, userID, listingID int64, imageURL string) (*models.ImageDB, error) {
	const query = `
		INSERT INTO images (user_id, listing_id, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, listing_id, image_url, created_at
	`

	var image models.ImageDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &image, query, userID, listingID, imageURL)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, listingID, imageURL},
		"error", err,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, errs.ErrConflict
		}
		return nil, err
	}

	return &image, nil
}

func (r *ImageWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM images WHERE id = $1`

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
