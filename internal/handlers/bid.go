package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// BidService defines the bid operations needed by these handlers.
type BidService interface {
	Create(ctx context.Context, userID, listingID int64, amount float64) (*models.BidDB, error)
	List(ctx context.Context) ([]models.BidDB, error)
	GetByID(ctx context.Context, id int64) (*models.BidDB, error)
	ListByListing(ctx context.Context, listingID int64) ([]models.BidDB, error)
	Delete(ctx context.Context, id int64) error
}

// CreateBidRequest represents the JSON body for placing a bid
// swagger:model CreateBidRequest
type CreateBidRequest struct {
	// Bidding user
	// required: true
	UserID int64 `json:"user_id"`

	// Bid amount, must beat the current highest bid
	// required: true
	Amount float64 `json:"amount"`
}

// NewCreateBidHandler returns an HTTP handler for placing a bid.
// @Summary Create bid
// @Description Place a bid on an active listing. The amount must exceed the current highest bid.
// @Tags bids
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body handlers.CreateBidRequest true "Create Bid Request"
// @Success 201 {object} models.BidDB "Bid placed"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 409 {object} handlers.ErrorResponse "Listing not active or bid too low"
// @Router /listings/{id}/bids [post]
func NewCreateBidHandler(svc BidService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid listing id"})
			return
		}

		var req CreateBidRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create bid request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		bid, err := svc.Create(r.Context(), req.UserID, listingID, req.Amount)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, bid)
	}
}

// NewListBidsHandler returns an HTTP handler for listing all bids,
// newest first.
// @Summary List bids
// @Tags bids
// @Produce json
// @Success 200 {array} models.BidDB
// @Router /bids [get]
func NewListBidsHandler(svc BidService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bids, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, bids)
	}
}

// NewGetBidHandler returns an HTTP handler for fetching one bid.
// @Summary Get bid
// @Tags bids
// @Produce json
// @Param id path int true "Bid ID"
// @Success 200 {object} models.BidDB
// @Failure 404 {object} handlers.ErrorResponse "Bid not found"
// @Router /bids/{id} [get]
func NewGetBidHandler(svc BidService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid bid id"})
			return
		}

		bid, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, bid)
	}
}

// NewListBidsForListingHandler returns an HTTP handler for listing a
// listing's bids, highest amount first.
// @Summary List bids for listing
// @Tags bids
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {array} models.BidDB
// @Router /listings/{id}/bids [get]
func NewListBidsForListingHandler(svc BidService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid listing id"})
			return
		}

		bids, err := svc.ListByListing(r.Context(), listingID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, bids)
	}
}

// NewDeleteBidHandler returns an HTTP handler for deleting a bid.
// @Summary Delete bid
// @Tags bids
// @Produce json
// @Param id path int true "Bid ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Bid not found"
// @Failure 409 {object} handlers.ErrorResponse "Bid referenced by a transaction"
// @Router /bids/{id} [delete]
func NewDeleteBidHandler(svc BidService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid bid id"})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
