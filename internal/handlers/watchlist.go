package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// WatchListService defines the watch list operations needed by these handlers.
type WatchListService interface {
	Add(ctx context.Context, userID, listingID int64) (*models.WatchListEntryDB, error)
	List(ctx context.Context, userID int64) ([]models.WatchListEntryDB, error)
	Remove(ctx context.Context, userID, listingID int64) error
}

// WatchListRequest represents the JSON body for watching a listing
// swagger:model WatchListRequest
type WatchListRequest struct {
	// Listing to watch
	// required: true
	ListingID int64 `json:"listing_id"`
}

// NewAddToWatchListHandler returns an HTTP handler for watching a listing.
// @Summary Watch listing
// @Description Add a listing to the user's watch list. Watching the same listing twice is a conflict.
// @Tags watchlist
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body handlers.WatchListRequest true "Watch Request"
// @Success 201 {object} models.WatchListEntryDB "Entry created"
// @Failure 409 {object} handlers.ErrorResponse "Already watching"
// @Router /users/{id}/watchlist [post]
func NewAddToWatchListHandler(svc WatchListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		var req WatchListRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode watch list request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		entry, err := svc.Add(r.Context(), userID, req.ListingID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, entry)
	}
}

// NewListWatchListHandler returns an HTTP handler for listing a user's
// watched listings.
// @Summary List watch list
// @Tags watchlist
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.WatchListEntryDB
// @Router /users/{id}/watchlist [get]
func NewListWatchListHandler(svc WatchListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		entries, err := svc.List(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

// NewRemoveFromWatchListHandler returns an HTTP handler for unwatching
// a listing.
// @Summary Unwatch listing
// @Tags watchlist
// @Produce json
// @Param id path int true "User ID"
// @Param listingID path int true "Listing ID"
// @Success 204 "Removed"
// @Failure 404 {object} handlers.ErrorResponse "Entry not found"
// @Router /users/{id}/watchlist/{listingID} [delete]
func NewRemoveFromWatchListHandler(svc WatchListService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}
		listingID, err := pathID(r, "listingID")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid listing id"})
			return
		}

		if err := svc.Remove(r.Context(), userID, listingID); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
