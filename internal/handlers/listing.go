package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// ListingService defines the listing operations needed by these handlers.
type ListingService interface {
	CreateListing(ctx context.Context, userID, categoryID int64, title, listingType string, price float64, region, description string, imageURL *string) (*models.ListingDB, error)
	GetListing(ctx context.Context, id int64) (*models.ListingDB, error)
	ListListings(ctx context.Context) ([]models.ListingDB, error)
	ListListingsByCategory(ctx context.Context, categoryID int64) ([]models.ListingDB, error)
	SearchListings(ctx context.Context, term string) ([]models.ListingDB, error)
	UpdateListing(ctx context.Context, id int64, upd models.ListingUpdate) (*models.ListingDB, error)
	UpdateListingStatus(ctx context.Context, id int64, status string) (*models.ListingDB, error)
	DeleteListing(ctx context.Context, id int64) error
}

// CreateListingRequest represents the JSON body for creating a listing
// swagger:model CreateListingRequest
type CreateListingRequest struct {
	// Owner user id
	// required: true
	UserID int64 `json:"user_id"`

	// Category id
	// required: true
	CategoryID int64 `json:"category_id"`

	// Listing title
	// required: true
	Title string `json:"title"`

	// selling, buying or free
	// required: true
	ListingType string `json:"listing_type"`

	// Price, must be positive
	// required: true
	Price float64 `json:"price"`

	// Seller region
	Region string `json:"region"`

	// Free-text description
	Description string `json:"description"`

	// Optional primary image URL
	ImageURL *string `json:"image_url"`
}

// UpdateListingStatusRequest represents the JSON body for a status change
// swagger:model UpdateListingStatusRequest
type UpdateListingStatusRequest struct {
	// active, sold or closed
	// required: true
	Status string `json:"status"`
}

// NewCreateListingHandler returns an HTTP handler for creating a listing.
// @Summary Create listing
// @Description Create a listing in the active state. Price must be positive and the category must exist.
// @Tags listings
// @Accept json
// @Produce json
// @Param request body handlers.CreateListingRequest true "Create Listing Request"
// @Success 201 {object} models.ListingDB "Listing created"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Router /listings [post]
func NewCreateListingHandler(svc ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateListingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create listing request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		listing, err := svc.CreateListing(r.Context(), req.UserID, req.CategoryID, req.Title, req.ListingType, req.Price, req.Region, req.Description, req.ImageURL)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, listing)
	}
}

// NewGetListingHandler returns an HTTP handler for fetching one listing.
// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} models.ListingDB
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Router /listings/{id} [get]
func NewGetListingHandler(svc ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid listing id"})
			return
		}

		listing, err := svc.GetListing(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, listing)
	}
}

// NewListListingsHandler returns an HTTP handler for listing all listings.
// An optional ?search= term filters by title or description.
// @Summary List listings
// @Tags listings
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {array} models.ListingDB
// @Router /listings [get]
func NewListListingsHandler(svc ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			listings []models.ListingDB
			err      error
		)
		if term := r.URL.Query().Get("search"); term != "" {
			listings, err = svc.SearchListings(r.Context(), term)
		} else {
			listings, err = svc.ListListings(r.Context())
		}
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, listings)
	}
}

// NewListListingsByCategoryHandler returns an HTTP handler for listing
// the listings of one category.
// @Summary List listings by category
// @Tags listings
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} models.ListingDB
// @Router /categories/{id}/listings [get]
func NewListListingsByCategoryHandler(svc ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid category id"})
			return
		}

		listings, err := svc.ListListingsByCategory(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, listings)
	}
}

// NewUpdateListingHandler returns an HTTP handler for patching a listing.
// Absent fields keep their stored value; image_url accepts null to clear.
// @Summary Update listing
// @Tags listings
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body models.ListingUpdate true "Patch body"
// @Success 200 {object} models.ListingDB
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Router /listings/{id} [patch]
func NewUpdateListingHandler(svc ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid listing id"})
			return
		}

		var upd models.ListingUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			logger.Log.Errorw("failed to decode update listing request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		listing, err := svc.UpdateListing(r.Context(), id, upd)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, listing)
	}
}

// NewUpdateListingStatusHandler returns an HTTP handler for moving a
// listing between statuses.
// @Summary Update listing status
// @Tags listings
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body handlers.UpdateListingStatusRequest true "Status body"
// @Success 200 {object} models.ListingDB
// @Failure 400 {object} handlers.ErrorResponse "Unknown status"
// @Failure 409 {object} handlers.ErrorResponse "Terminal listing cannot return to active"
// @Router /listings/{id}/status [put]
func NewUpdateListingStatusHandler(svc ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid listing id"})
			return
		}

		var req UpdateListingStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode update listing status request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		listing, err := svc.UpdateListingStatus(r.Context(), id, req.Status)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, listing)
	}
}

// NewDeleteListingHandler returns an HTTP handler for deleting a listing.
// @Summary Delete listing
// @Tags listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Failure 409 {object} handlers.ErrorResponse "Listing still referenced"
// @Router /listings/{id} [delete]
func NewDeleteListingHandler(svc ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid listing id"})
			return
		}

		if err := svc.DeleteListing(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
