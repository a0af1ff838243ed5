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

type ReportReadRepository struct {
	db *sqlx.DB
}

func NewReportReadRepository(db *sqlx.DB) *ReportReadRepository {
	return &ReportReadRepository{db: db}
}

func (r *ReportReadRepository) GetAll(ctx context.Context) ([]models.ReportDB, error) {
	const query = `
		SELECT id, user_id, listing_id, report_reason, created_at
		FROM reports
		ORDER BY created_at DESC
	`

	var reports []models.ReportDB
	err := r.db.SelectContext(ctx, &reports, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(reports),
		"error", err,
	)

	return reports, err
}

func (r *ReportReadRepository) GetByID(ctx context.Context, id int64) (*models.ReportDB, error) {
	const query = `
		SELECT id, user_id, listing_id, report_reason, created_at
		FROM reports
		WHERE id = $1
	`

	var report models.ReportDB
	err := r.db.GetContext(ctx, &report, query, id)

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

	return &report, nil
}

func (r *ReportReadRepository) GetByListingID(ctx context.Context, listingID int64) ([]models.ReportDB, error) {
	const query = `
		SELECT id, user_id, listing_id, report_reason, created_at
		FROM reports
		WHERE listing_id = $1
		ORDER BY created_at DESC
	`

	var reports []models.ReportDB
	err := r.db.SelectContext(ctx, &reports, query, listingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID},
		"result", len(reports),
		"error", err,
	)

	return reports, err
}

type ReportWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewReportWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ReportWriteRepository {
	return &ReportWriteRepository{db: db, txGetter: txGetter}
}

func (r *ReportWriteRepository) Save(ctx context.Context, userID, listingID int64, reportReason string) (*models.ReportDB, error) {
	const query = `
		INSERT INTO reports (user_id, listing_id, report_reason)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, listing_id, report_reason, created_at
	`

	var report models.ReportDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &report, query, userID, listingID, reportReason)

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

	return &report, nil
}

func (r *ReportWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM reports WHERE id = $1`

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
