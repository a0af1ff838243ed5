package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

const notificationColumns = `id, user_id, listing_id, notification_type, notification_message, is_read, created_at`

type NotificationReadRepository struct {
	db *sqlx.DB
}

func NewNotificationReadRepository(db *sqlx.DB) *NotificationReadRepository {
	return &NotificationReadRepository{db: db}
}

func (r *NotificationReadRepository) GetByUserID(ctx context.Context, userID int64) ([]models.NotificationDB, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var notifications []models.NotificationDB
	err := r.db.SelectContext(ctx, &notifications, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(notifications),
		"error", err,
	)

	return notifications, err
}

func (r *NotificationReadRepository) GetUnreadByUserID(ctx context.Context, userID int64) ([]models.NotificationDB, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1 AND is_read = FALSE
		ORDER BY created_at DESC
	`

	var notifications []models.NotificationDB
	err := r.db.SelectContext(ctx, &notifications, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(notifications),
		"error", err,
	)

	return notifications, err
}

type NotificationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewNotificationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *NotificationWriteRepository {
	return &NotificationWriteRepository{db: db, txGetter: txGetter}
}

func (r *NotificationWriteRepository) Save(ctx context.Context, userID, listingID int64, notificationType, notificationMessage string) (*models.NotificationDB, error) {
	query := `
		INSERT INTO notifications (user_id, listing_id, notification_type, notification_message)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + notificationColumns

	var notification models.NotificationDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &notification, query, userID, listingID, notificationType, notificationMessage)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, listingID, notificationType},
		"error", err,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, errs.ErrConflict
		}
		return nil, err
	}

	return &notification, nil
}

// MarkAllRead flips every unread notification for one user. Returns the
// number of rows touched.
func (r *NotificationWriteRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	const query = `
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND is_read = FALSE
	`

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

	return rowsAffected, err
}

func (r *NotificationWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM notifications WHERE id = $1`

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
