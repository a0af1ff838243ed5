package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// ShippingService defines the shipping operations needed by these handlers.
type ShippingService interface {
	Create(ctx context.Context, userID, listingID int64, shippingMethod string, shippingCost float64, estimatedDeliveryDays *int, trackingNumber *string) (*models.ShippingDetailDB, error)
	GetByListing(ctx context.Context, listingID int64) (*models.ShippingDetailDB, error)
	UpdateTracking(ctx context.Context, id int64, upd models.ShippingUpdate) (*models.ShippingDetailDB, error)
}

// CreateShippingRequest represents the JSON body for creating shipping details
// swagger:model CreateShippingRequest
type CreateShippingRequest struct {
	// Shipping user (seller)
	// required: true
	UserID int64 `json:"user_id"`

	// Fulfilled listing
	// required: true
	ListingID int64 `json:"listing_id"`

	// Carrier or method label
	// required: true
	ShippingMethod string `json:"shipping_method"`

	// Shipping cost
	ShippingCost float64 `json:"shipping_cost"`

	// Estimated delivery in days
	EstimatedDeliveryDays *int `json:"estimated_delivery_days"`

	// Carrier tracking number
	TrackingNumber *string `json:"tracking_number"`
}

// NewCreateShippingHandler returns an HTTP handler for creating shipping
// details. One shipment per listing sale.
// @Summary Create shipping details
// @Tags shipping
// @Accept json
// @Produce json
// @Param request body handlers.CreateShippingRequest true "Create Shipping Request"
// @Success 201 {object} models.ShippingDetailDB "Shipping details created"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 409 {object} handlers.ErrorResponse "Listing already has a shipment"
// @Router /shipping [post]
func NewCreateShippingHandler(svc ShippingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateShippingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create shipping request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		detail, err := svc.Create(r.Context(), req.UserID, req.ListingID, req.ShippingMethod, req.ShippingCost, req.EstimatedDeliveryDays, req.TrackingNumber)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, detail)
	}
}

// NewGetShippingForListingHandler returns an HTTP handler for fetching a
// listing's shipping details.
// @Summary Get shipping details for listing
// @Tags shipping
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} models.ShippingDetailDB
// @Failure 404 {object} handlers.ErrorResponse "No shipping details for listing"
// @Router /listings/{id}/shipping [get]
func NewGetShippingForListingHandler(svc ShippingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid listing id"})
			return
		}

		detail, err := svc.GetByListing(r.Context(), listingID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, detail)
	}
}

// NewUpdateShippingTrackingHandler returns an HTTP handler for patching
// tracking fields. Absent fields keep their stored value; tracking_number
// accepts null to clear.
// @Summary Update shipping tracking
// @Tags shipping
// @Accept json
// @Produce json
// @Param id path int true "Shipping Details ID"
// @Param request body models.ShippingUpdate true "Patch body"
// @Success 200 {object} models.ShippingDetailDB
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 404 {object} handlers.ErrorResponse "Shipping details not found"
// @Router /shipping/{id} [patch]
func NewUpdateShippingTrackingHandler(svc ShippingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid shipping id"})
			return
		}

		var upd models.ShippingUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			logger.Log.Errorw("failed to decode update shipping request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		detail, err := svc.UpdateTracking(r.Context(), id, upd)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, detail)
	}
}
