package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// CommentService defines the listing-comment operations needed by these handlers.
type CommentService interface {
	Create(ctx context.Context, userID, listingID int64, commentText string) (*models.ListingCommentDB, error)
	ListByListing(ctx context.Context, listingID int64) ([]models.ListingCommentDB, error)
	ListByUser(ctx context.Context, userID int64) ([]models.ListingCommentDB, error)
	Answer(ctx context.Context, id int64, answerText string) (*models.ListingCommentDB, error)
	Delete(ctx context.Context, id int64) error
}

// CreateCommentRequest represents the JSON body for commenting on a listing
// swagger:model CreateCommentRequest
type CreateCommentRequest struct {
	// Commenting user
	// required: true
	UserID int64 `json:"user_id"`

	// Question text
	// required: true
	CommentText string `json:"comment_text"`
}

// AnswerCommentRequest represents the JSON body for answering a comment
// swagger:model AnswerCommentRequest
type AnswerCommentRequest struct {
	// Answer text
	// required: true
	AnswerText string `json:"answer_text"`
}

// NewCreateCommentHandler returns an HTTP handler for commenting on a listing.
// @Summary Create comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body handlers.CreateCommentRequest true "Create Comment Request"
// @Success 201 {object} models.ListingCommentDB "Comment created"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Router /listings/{id}/comments [post]
func NewCreateCommentHandler(svc CommentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid listing id"})
			return
		}

		var req CreateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create comment request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		comment, err := svc.Create(r.Context(), req.UserID, listingID, req.CommentText)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, comment)
	}
}

// NewListCommentsForListingHandler returns an HTTP handler for listing
// the comments on a listing.
// @Summary List comments for listing
// @Tags comments
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {array} models.ListingCommentDB
// @Router /listings/{id}/comments [get]
func NewListCommentsForListingHandler(svc CommentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid listing id"})
			return
		}

		comments, err := svc.ListByListing(r.Context(), listingID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, comments)
	}
}

// NewListCommentsByUserHandler returns an HTTP handler for listing the
// comments a user has written.
// @Summary List comments by user
// @Tags comments
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.ListingCommentDB
// @Router /users/{id}/comments [get]
func NewListCommentsByUserHandler(svc CommentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		comments, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, comments)
	}
}

// NewAnswerCommentHandler returns an HTTP handler for the owner's
// one-shot answer to a comment.
// @Summary Answer comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param request body handlers.AnswerCommentRequest true "Answer body"
// @Success 200 {object} models.ListingCommentDB
// @Failure 404 {object} handlers.ErrorResponse "Comment not found"
// @Router /comments/{id}/answer [put]
func NewAnswerCommentHandler(svc CommentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid comment id"})
			return
		}

		var req AnswerCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode answer comment request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		comment, err := svc.Answer(r.Context(), id, req.AnswerText)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, comment)
	}
}

// NewDeleteCommentHandler returns an HTTP handler for deleting a comment.
// @Summary Delete comment
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Comment not found"
// @Router /comments/{id} [delete]
func NewDeleteCommentHandler(svc CommentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid comment id"})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
