package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// ImageService defines the image operations needed by these handlers.
type ImageService interface {
	Create(ctx context.Context, userID, listingID int64, imageURL string) (*models.ImageDB, error)
	List(ctx context.Context) ([]models.ImageDB, error)
	GetByID(ctx context.Context, id int64) (*models.ImageDB, error)
	ListByListing(ctx context.Context, listingID int64) ([]models.ImageDB, error)
	Delete(ctx context.Context, id int64) error
}

// CreateImageRequest represents the JSON body for attaching an image
// swagger:model CreateImageRequest
type CreateImageRequest struct {
	// Uploading user
	// required: true
	UserID int64 `json:"user_id"`

	// Image URL, files live elsewhere
	// required: true
	ImageURL string `json:"image_url"`
}

// NewCreateImageHandler returns an HTTP handler for attaching an image
// to a listing.
// @Summary Create image
// @Tags images
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body handlers.CreateImageRequest true "Create Image Request"
// @Success 201 {object} models.ImageDB "Image created"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Router /listings/{id}/images [post]
func NewCreateImageHandler(svc ImageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid listing id"})
			return
		}

		var req CreateImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create image request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		image, err := svc.Create(r.Context(), req.UserID, listingID, req.ImageURL)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, image)
	}
}

// NewListImagesHandler returns an HTTP handler for listing all images.
// @Summary List images
// @Tags images
// @Produce json
// @Success 200 {array} models.ImageDB
// @Router /images [get]
func NewListImagesHandler(svc ImageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, images)
	}
}

// NewGetImageHandler returns an HTTP handler for fetching one image.
// @Summary Get image
// @Tags images
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} models.ImageDB
// @Failure 404 {object} handlers.ErrorResponse "Image not found"
// @Router /images/{id} [get]
func NewGetImageHandler(svc ImageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid image id"})
			return
		}

		image, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, image)
	}
}

// NewListImagesForListingHandler returns an HTTP handler for listing a
// listing's images, oldest first.
// @Summary List images for listing
// @Tags images
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {array} models.ImageDB
// @Router /listings/{id}/images [get]
func NewListImagesForListingHandler(svc ImageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid listing id"})
			return
		}

		images, err := svc.ListByListing(r.Context(), listingID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, images)
	}
}

// NewDeleteImageHandler returns an HTTP handler for deleting an image.
// @Summary Delete image
// @Tags images
// @Produce json
// @Param id path int true "Image ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Image not found"
// @Router /images/{id} [delete]
func NewDeleteImageHandler(svc ImageService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid image id"})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
