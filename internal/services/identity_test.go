package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-marketplace/internal/errs"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	dob := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)

	var savedPassword string
	writer.EXPECT().
		Save(ctx, "alice", "alice@example.com", gomock.Any(), dob, gomock.Nil()).
		DoAndReturn(func(_ context.Context, username, email, password string, _ time.Time, _ *string) (*models.UserDB, error) {
			savedPassword = password
			return &models.UserDB{ID: 1, Username: username, Email: email}, nil
		})

	svc := NewUserService(reader, writer)
	user, err := svc.Create(ctx, "alice", "alice@example.com", "s3cret", dob, nil)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	// Stored credential must be a bcrypt hash of the supplied secret.
	assert.NotEqual(t, "s3cret", savedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(savedPassword), []byte("s3cret")))
}

func TestUserService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	dob := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewUserService(NewMockUserReader(ctrl), NewMockUserWriter(ctrl))

	_, err := svc.Create(ctx, "", "alice@example.com", "s3cret", dob, nil)
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Create(ctx, "alice", "", "s3cret", dob, nil)
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Create(ctx, "alice", "alice@example.com", "", dob, nil)
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Create(ctx, "alice", "alice@example.com", "s3cret", time.Time{}, nil)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)
	svc := NewUserService(reader, writer)

	// Explicit null email is rejected before the repository is touched.
	_, err := svc.Update(ctx, 1, models.UserUpdate{Email: models.NullOpt[string]()})
	assert.ErrorIs(t, err, errs.ErrValidation)

	// Empty patch reads through.
	reader.EXPECT().GetByID(ctx, int64(1)).Return(&models.UserDB{ID: 1, Email: "alice@example.com"}, nil)
	user, err := svc.Update(ctx, 1, models.UserUpdate{})
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	// Clearing the phone number is allowed.
	upd := models.UserUpdate{PhoneNumber: models.NullOpt[string]()}
	writer.EXPECT().Update(ctx, int64(1), upd).Return(&models.UserDB{ID: 1, PhoneNumber: nil}, nil)
	user, err = svc.Update(ctx, 1, upd)
	assert.NoError(t, err)
	assert.Nil(t, user.PhoneNumber)
}

func TestUserService_Delete_Conflict(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockUserWriter(ctrl)
	writer.EXPECT().Delete(ctx, int64(7)).Return(errs.ErrConflict)

	svc := NewUserService(NewMockUserReader(ctrl), writer)
	err := svc.Delete(ctx, 7)

	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	reader.EXPECT().GetByID(ctx, int64(99)).Return(nil, errs.ErrNotFound)

	svc := NewUserService(reader, NewMockUserWriter(ctrl))
	_, err := svc.GetByID(ctx, 99)

	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.False(t, errors.Is(err, errs.ErrConflict))
}
