package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// UserService defines the user operations needed by these handlers.
type UserService interface {
	Create(ctx context.Context, username, email, password string, dateOfBirth time.Time, phoneNumber *string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
	Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.UserDB, error)
	Delete(ctx context.Context, id int64) error
}

// CreateUserRequest represents the JSON body for registering a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Unique username
	// required: true
	Username string `json:"username"`

	// Unique email
	// required: true
	Email string `json:"email"`

	// Credential secret, stored hashed
	// required: true
	Password string `json:"password"`

	// Date of birth, RFC 3339 date
	// required: true
	DateOfBirth time.Time `json:"date_of_birth"`

	// Optional phone number
	PhoneNumber *string `json:"phone_number"`
}

// NewCreateUserHandler returns an HTTP handler for registering a user.
// @Summary Create user
// @Description Register a new user. The credential secret is hashed before storage.
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.CreateUserRequest true "Create User Request"
// @Success 201 {object} models.UserDB "User created"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already taken"
// @Router /users [post]
func NewCreateUserHandler(svc UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create user request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		user, err := svc.Create(r.Context(), req.Username, req.Email, req.Password, req.DateOfBirth, req.PhoneNumber)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// NewGetUserHandler returns an HTTP handler for fetching a single user.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserDB
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		user, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewListUsersHandler returns an HTTP handler for listing all users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDB
// @Router /users [get]
func NewListUsersHandler(svc UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// NewUpdateUserHandler returns an HTTP handler for patching a user.
// Absent fields keep their stored value; phone_number accepts null to clear.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body models.UserUpdate true "Patch body"
// @Success 200 {object} models.UserDB
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [patch]
func NewUpdateUserHandler(svc UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		var upd models.UserUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			logger.Log.Errorw("failed to decode update user request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		user, err := svc.Update(r.Context(), id, upd)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteUserHandler returns an HTTP handler for deleting a user.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "User still referenced"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
