package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// ReputationService defines the rating and review operations needed by
// these handlers.
type ReputationService interface {
	CreateRating(ctx context.Context, userID int64, totalRatings int, averageRating float64) (*models.UserRatingDB, error)
	UpdateRating(ctx context.Context, userID int64, totalRatings int, averageRating float64) (*models.UserRatingDB, error)
	ListRatings(ctx context.Context) ([]models.UserRatingDB, error)
	GetRatingByUser(ctx context.Context, userID int64) (*models.UserRatingDB, error)
	DeleteRating(ctx context.Context, userID int64) error
	CreateReview(ctx context.Context, reviewerID, reviewedUserID int64, listingID *int64, rating int, reviewText *string) (*models.ReviewDB, error)
	ListReviews(ctx context.Context) ([]models.ReviewDB, error)
	GetReviewByID(ctx context.Context, id int64) (*models.ReviewDB, error)
	ListReviewsForUser(ctx context.Context, userID int64) ([]models.ReviewDB, error)
	DeleteReview(ctx context.Context, id int64) error
}

// RatingRequest represents the JSON body for setting an aggregate rating
// swagger:model RatingRequest
type RatingRequest struct {
	// Number of reviews counted
	TotalRatings int `json:"total_ratings"`

	// Two-decimal average within [0.00, 5.00]
	AverageRating float64 `json:"average_rating"`
}

// CreateReviewRequest represents the JSON body for writing a review
// swagger:model CreateReviewRequest
type CreateReviewRequest struct {
	// Reviewing user
	// required: true
	ReviewerID int64 `json:"reviewer_id"`

	// Reviewed user
	// required: true
	ReviewedUserID int64 `json:"reviewed_user_id"`

	// Optional listing the deal happened on
	ListingID *int64 `json:"listing_id"`

	// Integer rating, 1-5 inclusive
	// required: true
	Rating int `json:"rating"`

	// Optional free text
	ReviewText *string `json:"review_text"`
}

// NewCreateRatingHandler returns an HTTP handler for creating a user's
// aggregate rating row.
// @Summary Create user rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body handlers.RatingRequest true "Rating body"
// @Success 201 {object} models.UserRatingDB "Rating created"
// @Failure 409 {object} handlers.ErrorResponse "User already has a rating row"
// @Router /users/{id}/rating [post]
func NewCreateRatingHandler(svc ReputationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		var req RatingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create rating request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		rating, err := svc.CreateRating(r.Context(), userID, req.TotalRatings, req.AverageRating)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, rating)
	}
}

// NewUpdateRatingHandler returns an HTTP handler for replacing a user's
// aggregate rating.
// @Summary Update user rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body handlers.RatingRequest true "Rating body"
// @Success 200 {object} models.UserRatingDB
// @Failure 404 {object} handlers.ErrorResponse "No rating row for user"
// @Router /users/{id}/rating [put]
func NewUpdateRatingHandler(svc ReputationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		var req RatingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode update rating request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		rating, err := svc.UpdateRating(r.Context(), userID, req.TotalRatings, req.AverageRating)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, rating)
	}
}

// NewListRatingsHandler returns an HTTP handler for listing all aggregate
// ratings.
// @Summary List user ratings
// @Tags ratings
// @Produce json
// @Success 200 {array} models.UserRatingDB
// @Router /ratings [get]
func NewListRatingsHandler(svc ReputationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ratings, err := svc.ListRatings(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ratings)
	}
}

// NewGetRatingHandler returns an HTTP handler for fetching one user's
// aggregate rating.
// @Summary Get user rating
// @Tags ratings
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserRatingDB
// @Failure 404 {object} handlers.ErrorResponse "No rating row for user"
// @Router /users/{id}/rating [get]
func NewGetRatingHandler(svc ReputationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		rating, err := svc.GetRatingByUser(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, rating)
	}
}

// NewDeleteRatingHandler returns an HTTP handler for deleting a user's
// aggregate rating row.
// @Summary Delete user rating
// @Tags ratings
// @Produce json
// @Param id path int true "User ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "No rating row for user"
// @Router /users/{id}/rating [delete]
func NewDeleteRatingHandler(svc ReputationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		if err := svc.DeleteRating(r.Context(), userID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewCreateReviewHandler returns an HTTP handler for writing a review.
// The reviewed user's aggregate is recomputed in the same request.
// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body handlers.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} models.ReviewDB "Review created"
// @Failure 400 {object} handlers.ErrorResponse "Rating out of bounds"
// @Router /reviews [post]
func NewCreateReviewHandler(svc ReputationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create review request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		review, err := svc.CreateReview(r.Context(), req.ReviewerID, req.ReviewedUserID, req.ListingID, req.Rating, req.ReviewText)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, review)
	}
}

// NewListReviewsHandler returns an HTTP handler for listing all reviews.
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} models.ReviewDB
// @Router /reviews [get]
func NewListReviewsHandler(svc ReputationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := svc.ListReviews(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, reviews)
	}
}

// NewGetReviewHandler returns an HTTP handler for fetching one review.
// @Summary Get review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} models.ReviewDB
// @Failure 404 {object} handlers.ErrorResponse "Review not found"
// @Router /reviews/{id} [get]
func NewGetReviewHandler(svc ReputationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid review id"})
			return
		}

		review, err := svc.GetReviewByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, review)
	}
}

// NewListReviewsForUserHandler returns an HTTP handler for listing the
// reviews written about one user, newest first.
// @Summary List reviews for user
// @Tags reviews
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.ReviewDB
// @Router /users/{id}/reviews [get]
func NewListReviewsForUserHandler(svc ReputationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		reviews, err := svc.ListReviewsForUser(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, reviews)
	}
}

// NewDeleteReviewHandler returns an HTTP handler for deleting a review.
// The reviewed user's aggregate is recomputed in the same request.
// @Summary Delete review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Review not found"
// @Router /reviews/{id} [delete]
func NewDeleteReviewHandler(svc ReputationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid review id"})
			return
		}

		if err := svc.DeleteReview(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
