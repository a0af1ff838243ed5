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

const messageColumns = `id, sender_id, recipient_id, listing_id, message_text, is_read, created_at`

type MessageReadRepository struct {
	db *sqlx.DB
}

func NewMessageReadRepository(db *sqlx.DB) *MessageReadRepository {
	return &MessageReadRepository{db: db}
}

func (r *MessageReadRepository) GetAll(ctx context.Context) ([]models.MessageDB, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		ORDER BY created_at
	`

	var messages []models.MessageDB
	err := r.db.SelectContext(ctx, &messages, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(messages),
		"error", err,
	)

	return messages, err
}

// GetByUserID returns messages the user sent or received.
func (r *MessageReadRepository) GetByUserID(ctx context.Context, userID int64) ([]models.MessageDB, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE sender_id = $1 OR recipient_id = $1
		ORDER BY created_at
	`

	var messages []models.MessageDB
	err := r.db.SelectContext(ctx, &messages, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(messages),
		"error", err,
	)

	return messages, err
}

func (r *MessageReadRepository) GetByID(ctx context.Context, id int64) (*models.MessageDB, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE id = $1
	`

	var message models.MessageDB
	err := r.db.GetContext(ctx, &message, query, id)

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

	return &message, nil
}

type MessageWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMessageWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MessageWriteRepository {
	return &MessageWriteRepository{db: db, txGetter: txGetter}
}

func (r *MessageWriteRepository) Save(ctx context.Context, senderID, recipientID, listingID int64, messageText string) (*models.MessageDB, error) {
	query := `
		INSERT INTO messages (sender_id, recipient_id, listing_id, message_text)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + messageColumns

	var message models.MessageDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &message, query, senderID, recipientID, listingID, messageText)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{senderID, recipientID, listingID},
		"error", err,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, errs.ErrConflict
		}
		return nil, err
	}

	return &message, nil
}

func (r *MessageWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM messages WHERE id = $1`

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
