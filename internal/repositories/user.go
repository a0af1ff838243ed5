package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password, user_since, date_of_birth, phone_number
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

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

	return &user, nil
}

func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password, user_since, date_of_birth, phone_number
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password, user_since, date_of_birth, phone_number
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) GetAll(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT id, username, email, password, user_since, date_of_birth, phone_number
		FROM users
		ORDER BY id
	`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	return users, err
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user. The password is expected to be hashed already.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, password string, dateOfBirth time.Time, phoneNumber *string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, password, date_of_birth, phone_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, email, password, user_since, date_of_birth, phone_number
	`
	args := []any{username, email, password, dateOfBirth, phoneNumber}

	var user models.UserDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, errs.ErrConflict
		}
		return nil, err
	}

	return &user, nil
}

// Update patches email and phone_number. Only fields present in upd are
// written; phone_number may be cleared with an explicit null.
func (r *UserWriteRepository) Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.UserDB, error) {
	set := make([]string, 0, 2)
	args := make([]any, 0, 3)
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.Email.Set {
		add("email", upd.Email.Value)
	}
	if upd.PhoneNumber.Set {
		if upd.PhoneNumber.Valid {
			add("phone_number", upd.PhoneNumber.Value)
		} else {
			add("phone_number", nil)
		}
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING id, username, email, password, user_since, date_of_birth, phone_number
	`, strings.Join(set, ", "), len(args))

	var user models.UserDB
	err := sqlx.GetContext(ctx, exec(ctx, r.db, r.txGetter), &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, errs.ErrConflict
		}
		return nil, err
	}

	return &user, nil
}

// Delete removes a user. Rejected while other rows still reference the
// user (foreign keys are RESTRICT).
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`

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
