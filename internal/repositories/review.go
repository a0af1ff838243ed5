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

const reviewColumns = `id, reviewer_id, reviewed_user_id, listing_id, rating, review_text, created_at`

type ReviewReadRepository struct {
	db *sqlx.DB
}

func NewReviewReadRepository(db *sqlx.DB) *ReviewReadRepository {
	return &ReviewReadRepository{db: db}
}

func (r *ReviewReadRepository) GetAll(ctx context.Context) ([]models.ReviewDB, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		ORDER BY created_at DESC
	`

	var reviews []models.ReviewDB
	err := r.db.SelectContext(ctx, &reviews, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(reviews),
		"error", err,
	)

	return reviews, err
}

func (r *ReviewReadRepository) GetByID(ctx context.Context, id int64) (*models.ReviewDB, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE id = $1
	`

	var review models.ReviewDB
	err := r.db.GetContext(ctx, &review, query, id)

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

	return &review, nil
}

// GetByReviewedUserID returns reviews written about a user, newest first.
func (r *ReviewReadRepository) GetByReviewedUserID(ctx context.Context, userID int64) ([]models.ReviewDB, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE reviewed_user_id = $1
		ORDER BY created_at DESC
	`

	var reviews []models.ReviewDB
	err := r.db.SelectContext(ctx, &reviews, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(reviews),
		"error", err,
	)

	return reviews, err
}

type ReviewWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewReviewWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db, txGetter: txGetter}
}

func (r *ReviewWriteRepository) Save(ctx context.Context, reviewerID, reviewedUserID int64, listingID *int64, rating int, reviewText *string) (*models.ReviewDB, error) {
	query := `
		INSERT INTO reviews (reviewer_id, reviewed_user_id, listing_id, rating, review_text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + reviewColumns
	args := []any{reviewerID, reviewedUserID, listingID, rating, reviewText}

	var review models.ReviewDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &review, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reviewerID, reviewedUserID, rating},
		"error", err,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, errs.ErrConflict
		}
		return nil, err
	}

	return &review, nil
}

// Delete removes a review and returns the reviewed user id so the caller
// can recompute that user's aggregate.
func (r *ReviewWriteRepository) Delete(ctx context.Context, id int64) (int64, error) {
	const query = `DELETE FROM reviews WHERE id = $1 RETURNING reviewed_user_id`

	var reviewedUserID int64
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &reviewedUserID, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.ErrNotFound
		}
		return 0, err
	}

	return reviewedUserID, nil
}
