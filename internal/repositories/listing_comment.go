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

const listingCommentColumns = `id, user_id, listing_id, comment_text, answer_text, answered_at, created_at`

type ListingCommentReadRepository struct {
	db *sqlx.DB
}

func NewListingCommentReadRepository(db *sqlx.DB) *ListingCommentReadRepository {
	return &ListingCommentReadRepository{db: db}
}

func (r *ListingCommentReadRepository) GetByListingID(ctx context.Context, listingID int64) ([]models.ListingCommentDB, error) {
	query := `
		SELECT ` + listingCommentColumns + `
		FROM listing_comments
		WHERE listing_id = $1
		ORDER BY created_at
	`

	var comments []models.ListingCommentDB
	err := r.db.SelectContext(ctx, &comments, query, listingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID},
		"result", len(comments),
		"error", err,
	)

	return comments, err
}

func (r *ListingCommentReadRepository) GetByUserID(ctx context.Context, userID int64) ([]models.ListingCommentDB, error) {
	query := `
		SELECT ` + listingCommentColumns + `
		FROM listing_comments
		WHERE user_id = $1
		ORDER BY created_at
	`

	var comments []models.ListingCommentDB
	err := r.db.SelectContext(ctx, &comments, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(comments),
		"error", err,
	)

	return comments, err
}

type ListingCommentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewListingCommentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ListingCommentWriteRepository {
	return &ListingCommentWriteRepository{db: db, txGetter: txGetter}
}

func (r *ListingCommentWriteRepository) Save(ctx context.Context, userID, listingID int64, commentText string) (*models.ListingCommentDB, error) {
	query := `
		INSERT INTO listing_comments (user_id, listing_id, comment_text)
		VALUES ($1, $2, $3)
		RETURNING ` + listingCommentColumns

	var comment models.ListingCommentDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &comment, query, userID, listingID, commentText)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, listingID},
		"error", err,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, errs.ErrConflict
		}
		return nil, err
	}

	return &comment, nil
}

// Answer writes the one-shot reply and stamps answered_at.
func (r *ListingCommentWriteRepository) Answer(ctx context.Context, id int64, answerText string) (*models.ListingCommentDB, error) {
	query := `
		UPDATE listing_comments
		SET answer_text = $1, answered_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING ` + listingCommentColumns

	var comment models.ListingCommentDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &comment, query, answerText, id)

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

	return &comment, nil
}

func (r *ListingCommentWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM listing_comments WHERE id = $1`

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
