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

// CategoryReadRepository serves the static category reference data.
type CategoryReadRepository struct {
	db *sqlx.DB
}

func NewCategoryReadRepository(db *sqlx.DB) *CategoryReadRepository {
	return &CategoryReadRepository{db: db}
}

func (r *CategoryReadRepository) GetAll(ctx context.Context) ([]models.CategoryDB, error) {
	const query = `
		SELECT id, name
		FROM categories
		ORDER BY id
	`

	var categories []models.CategoryDB
	err := r.db.SelectContext(ctx, &categories, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(categories),
		"error", err,
	)

	return categories, err
}

func (r *CategoryReadRepository) GetByID(ctx context.Context, id int64) (*models.CategoryDB, error) {
	const query = `
		SELECT id, name
		FROM categories
		WHERE id = $1
	`

	var category models.CategoryDB
	err := r.db.GetContext(ctx, &category, query, id)

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

	return &category, nil
}
