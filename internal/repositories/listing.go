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

const listingColumns = `id, user_id, category_id, title, listing_type, price, region, description, image_url, status, created_at`

type ListingReadRepository struct {
	db *sqlx.DB
}

func NewListingReadRepository(db *sqlx.DB) *ListingReadRepository {
	return &ListingReadRepository{db: db}
}

func (r *ListingReadRepository) GetByID(ctx context.Context, id int64) (*models.ListingDB, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE id = $1
	`

	var listing models.ListingDB
	err := r.db.GetContext(ctx, &listing, query, id)

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

	return &listing, nil
}

func (r *ListingReadRepository) GetAll(ctx context.Context) ([]models.ListingDB, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings
		ORDER BY id
	`

	var listings []models.ListingDB
	err := r.db.SelectContext(ctx, &listings, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(listings),
		"error", err,
	)

	return listings, err
}

func (r *ListingReadRepository) GetByCategory(ctx context.Context, categoryID int64) ([]models.ListingDB, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE category_id = $1
		ORDER BY id
	`

	var listings []models.ListingDB
	err := r.db.SelectContext(ctx, &listings, query, categoryID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{categoryID},
		"result", len(listings),
		"error", err,
	)

	return listings, err
}

// Search matches the term case-insensitively against title or description.
// Results come back in insertion order.
func (r *ListingReadRepository) Search(ctx context.Context, term string) ([]models.ListingDB, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE title ILIKE $1 OR description ILIKE $1
		ORDER BY id
	`
	pattern := "%" + term + "%"

	var listings []models.ListingDB
	err := r.db.SelectContext(ctx, &listings, query, pattern)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{pattern},
		"result", len(listings),
		"error", err,
	)

	return listings, err
}

type ListingWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewListingWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ListingWriteRepository {
	return &ListingWriteRepository{db: db, txGetter: txGetter}
}

func (r *ListingWriteRepository) Save(ctx context.Context, userID, categoryID int64, title, listingType string, price float64, region, description string, imageURL *string) (*models.ListingDB, error) {
	query := `
		INSERT INTO listings (user_id, category_id, title, listing_type, price, region, description, image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'active')
		RETURNING ` + listingColumns
	args := []any{userID, categoryID, title, listingType, price, region, description, imageURL}

	var listing models.ListingDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &listing, query, args...)

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

	return &listing, nil
}

// Update patches only the columns present in upd. image_url may be cleared
// with an explicit null; all other columns are non-nullable.
func (r *ListingWriteRepository) Update(ctx context.Context, id int64, upd models.ListingUpdate) (*models.ListingDB, error) {
	set := make([]string, 0, 7)
	args := make([]any, 0, 8)
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.CategoryID.Set {
		add("category_id", upd.CategoryID.Value)
	}
	if upd.Title.Set {
		add("title", upd.Title.Value)
	}
	if upd.ListingType.Set {
		add("listing_type", upd.ListingType.Value)
	}
	if upd.Price.Set {
		add("price", upd.Price.Value)
	}
	if upd.Region.Set {
		add("region", upd.Region.Value)
	}
	if upd.Description.Set {
		add("description", upd.Description.Value)
	}
	if upd.ImageURL.Set {
		if upd.ImageURL.Valid {
			add("image_url", upd.ImageURL.Value)
		} else {
			add("image_url", nil)
		}
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE listings
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(set, ", "), len(args), listingColumns)

	var listing models.ListingDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &listing, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, errs.ErrConflict
		}
		return nil, err
	}

	return &listing, nil
}

// UpdateStatus moves a listing to sold or closed.
func (r *ListingWriteRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.ListingDB, error) {
	query := `
		UPDATE listings
		SET status = $1
		WHERE id = $2
		RETURNING ` + listingColumns

	var listing models.ListingDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &listing, query, status, id)

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

	return &listing, nil
}

// Delete removes a listing. Rejected while bids, transactions or other
// dependents still reference it (foreign keys are RESTRICT).
func (r *ListingWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM listings WHERE id = $1`

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
