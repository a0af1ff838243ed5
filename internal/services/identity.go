package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read access to user records.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetAll(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write access to user records.
type UserWriter interface {
	Save(ctx context.Context, username, email, password string, dateOfBirth time.Time, phoneNumber *string) (*models.UserDB, error)
	Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.UserDB, error)
	Delete(ctx context.Context, id int64) error
}

// UserService owns user records. Every other component references users
// created here.
type UserService struct {
	readRepo  UserReader
	writeRepo UserWriter
}

func NewUserService(readRepo UserReader, writeRepo UserWriter) *UserService {
	return &UserService{readRepo: readRepo, writeRepo: writeRepo}
}

// Create registers a new user, hashing the credential secret before storage.
func (s *UserService) Create(ctx context.Context, username, email, password string, dateOfBirth time.Time, phoneNumber *string) (*models.UserDB, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", errs.ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", errs.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", errs.ErrValidation)
	}
	if dateOfBirth.IsZero() {
		return nil, fmt.Errorf("%w: date_of_birth is required", errs.ErrValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "username", username, "error", err)
		return nil, err
	}

	user, err := s.writeRepo.Save(ctx, username, email, string(hashed), dateOfBirth, phoneNumber)
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "error", err)
		return nil, err
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	return s.readRepo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return s.readRepo.GetByEmail(ctx, email)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	return s.readRepo.GetByUsername(ctx, username)
}

func (s *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	return s.readRepo.GetAll(ctx)
}

// Update patches email and phone number. Email cannot be cleared; phone
// number can.
func (s *UserService) Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.UserDB, error) {
	if upd.Email.Set && !upd.Email.Valid {
		return nil, fmt.Errorf("%w: email cannot be null", errs.ErrValidation)
	}
	if upd.Email.Set && upd.Email.Value == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", errs.ErrValidation)
	}
	if !upd.Email.Set && !upd.PhoneNumber.Set {
		return s.readRepo.GetByID(ctx, id)
	}

	user, err := s.writeRepo.Update(ctx, id, upd)
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "error", err)
		return nil, err
	}

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.writeRepo.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "error", err)
		return err
	}
	return nil
}
