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

type UserRatingReadRepository struct {
	db *sqlx.DB
}

func NewUserRatingReadRepository(db *sqlx.DB) *UserRatingReadRepository {
	return &UserRatingReadRepository{db: db}
}

func (r *UserRatingReadRepository) GetAll(ctx context.Context) ([]models.UserRatingDB, error) {
	const query = `
		SELECT id, user_id, total_ratings, average_rating
		FROM user_ratings
		ORDER BY id
	`

	var ratings []models.UserRatingDB
	err := r.db.SelectContext(ctx, &ratings, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(ratings),
		"error", err,
	)

	return ratings, err
}

func (r *UserRatingReadRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserRatingDB, error) {
	const query = `
		SELECT id, user_id, total_ratings, average_rating
		FROM user_ratings
		WHERE user_id = $1
	`

	var rating models.UserRatingDB
	err := r.db.GetContext(ctx, &rating, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return &rating, nil
}

type UserRatingWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserRatingWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserRatingWriteRepository {
	return &UserRatingWriteRepository{db: db, txGetter: txGetter}
}

// Save creates the aggregate row for a user. At most one row per user;
// a second insert returns errs.ErrConflict.
func (r *UserRatingWriteRepository) Save(ctx context.Context, userID int64, totalRatings int, averageRating float64) (*models.UserRatingDB, error) {
	const query = `
		INSERT INTO user_ratings (user_id, total_ratings, average_rating)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, total_ratings, average_rating
	`

	var rating models.UserRatingDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &rating, query, userID, totalRatings, averageRating)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, totalRatings, averageRating},
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

	return &rating, nil
}

func (r *UserRatingWriteRepository) Update(ctx context.Context, userID int64, totalRatings int, averageRating float64) (*models.UserRatingDB, error) {
	const query = `
		UPDATE user_ratings
		SET total_ratings = $1, average_rating = $2
		WHERE user_id = $3
		RETURNING id, user_id, total_ratings, average_rating
	`

	var rating models.UserRatingDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &rating, query, totalRatings, averageRating, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{totalRatings, averageRating, userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return &rating, nil
}

// Recompute materializes the aggregate from the review rows inside the
// current unit of work, creating the row when missing. Runs after every
// review write so the aggregate never drifts from its source.
func (r *UserRatingWriteRepository) Recompute(ctx context.Context, userID int64) (*models.UserRatingDB, error) {
	const query = `
		INSERT INTO user_ratings (user_id, total_ratings, average_rating)
		SELECT $1, COUNT(*), COALESCE(ROUND(AVG(rating)::numeric, 2), 0.00)
		FROM reviews
		WHERE reviewed_user_id = $1
		ON CONFLICT (user_id) DO UPDATE
		SET total_ratings = EXCLUDED.total_ratings,
		    average_rating = EXCLUDED.average_rating
		RETURNING id, user_id, total_ratings, average_rating
	`

	var rating models.UserRatingDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &rating, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &rating, nil
}

func (r *UserRatingWriteRepository) Delete(ctx context.Context, userID int64) error {
	const query = `DELETE FROM user_ratings WHERE user_id = $1`

	res, err := exec(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
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
