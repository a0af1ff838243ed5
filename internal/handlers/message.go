package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// MessageService defines the message operations needed by these handlers.
type MessageService interface {
	Create(ctx context.Context, senderID, recipientID, listingID int64, messageText string) (*models.MessageDB, error)
	List(ctx context.Context) ([]models.MessageDB, error)
	ListByUser(ctx context.Context, userID int64) ([]models.MessageDB, error)
	GetByID(ctx context.Context, id int64) (*models.MessageDB, error)
	Delete(ctx context.Context, id int64) error
}

// CreateMessageRequest represents the JSON body for sending a message
// swagger:model CreateMessageRequest
type CreateMessageRequest struct {
	// Sending user
	// required: true
	SenderID int64 `json:"sender_id"`

	// Receiving user
	// required: true
	RecipientID int64 `json:"recipient_id"`

	// Listing the conversation is about
	// required: true
	ListingID int64 `json:"listing_id"`

	// Message text
	// required: true
	MessageText string `json:"message_text"`
}

// NewCreateMessageHandler returns an HTTP handler for sending a message.
// @Summary Create message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body handlers.CreateMessageRequest true "Create Message Request"
// @Success 201 {object} models.MessageDB "Message created"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Router /messages [post]
func NewCreateMessageHandler(svc MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create message request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		message, err := svc.Create(r.Context(), req.SenderID, req.RecipientID, req.ListingID, req.MessageText)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, message)
	}
}

// NewListMessagesHandler returns an HTTP handler for listing all messages.
// @Summary List messages
// @Tags messages
// @Produce json
// @Success 200 {array} models.MessageDB
// @Router /messages [get]
func NewListMessagesHandler(svc MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, messages)
	}
}

// NewListUserMessagesHandler returns an HTTP handler for listing the
// messages a user sent or received.
// @Summary List user messages
// @Tags messages
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.MessageDB
// @Router /users/{id}/messages [get]
func NewListUserMessagesHandler(svc MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		messages, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, messages)
	}
}

// NewGetMessageHandler returns an HTTP handler for fetching one message.
// @Summary Get message
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} models.MessageDB
// @Failure 404 {object} handlers.ErrorResponse "Message not found"
// @Router /messages/{id} [get]
func NewGetMessageHandler(svc MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid message id"})
			return
		}

		message, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, message)
	}
}

// NewDeleteMessageHandler returns an HTTP handler for deleting a message.
// @Summary Delete message
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Message not found"
// @Router /messages/{id} [delete]
func NewDeleteMessageHandler(svc MessageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid message id"})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
