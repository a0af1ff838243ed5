package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// NotificationService defines the notification operations needed by
// these handlers.
type NotificationService interface {
	Create(ctx context.Context, userID, listingID int64, notificationType, notificationMessage string) (*models.NotificationDB, error)
	ListByUser(ctx context.Context, userID int64) ([]models.NotificationDB, error)
	ListUnread(ctx context.Context, userID int64) ([]models.NotificationDB, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// CreateNotificationRequest represents the JSON body for creating a notification
// swagger:model CreateNotificationRequest
type CreateNotificationRequest struct {
	// Notified user
	// required: true
	UserID int64 `json:"user_id"`

	// Listing the notice refers to
	// required: true
	ListingID int64 `json:"listing_id"`

	// Type label, e.g. bid_placed
	// required: true
	NotificationType string `json:"notification_type"`

	// Display text
	// required: true
	NotificationMessage string `json:"notification_message"`
}

// MarkAllReadResponse reports how many notifications were flipped
// swagger:model MarkAllReadResponse
type MarkAllReadResponse struct {
	// Number of notifications marked read
	Updated int64 `json:"updated"`
}

// NewCreateNotificationHandler returns an HTTP handler for creating a
// notification.
// @Summary Create notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body handlers.CreateNotificationRequest true "Create Notification Request"
// @Success 201 {object} models.NotificationDB "Notification created"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Router /notifications [post]
func NewCreateNotificationHandler(svc NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateNotificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create notification request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		notification, err := svc.Create(r.Context(), req.UserID, req.ListingID, req.NotificationType, req.NotificationMessage)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, notification)
	}
}

// NewListNotificationsHandler returns an HTTP handler for listing a
// user's notifications, newest first. ?unread=true filters to unread.
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param id path int true "User ID"
// @Param unread query bool false "Only unread"
// @Success 200 {array} models.NotificationDB
// @Router /users/{id}/notifications [get]
func NewListNotificationsHandler(svc NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		var notifications []models.NotificationDB
		if r.URL.Query().Get("unread") == "true" {
			notifications, err = svc.ListUnread(r.Context(), userID)
		} else {
			notifications, err = svc.ListByUser(r.Context(), userID)
		}
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, notifications)
	}
}

// NewMarkAllReadHandler returns an HTTP handler for marking all of a
// user's notifications read.
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} handlers.MarkAllReadResponse
// @Router /users/{id}/notifications/read [put]
func NewMarkAllReadHandler(svc NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		count, err := svc.MarkAllRead(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MarkAllReadResponse{Updated: count})
	}
}

// NewDeleteNotificationHandler returns an HTTP handler for deleting a
// notification.
// @Summary Delete notification
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Notification not found"
// @Router /notifications/{id} [delete]
func NewDeleteNotificationHandler(svc NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid notification id"})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
