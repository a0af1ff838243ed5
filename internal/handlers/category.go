package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// CategoryService defines the category reads needed by these handlers.
type CategoryService interface {
	GetAllCategories(ctx context.Context) ([]models.CategoryDB, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.CategoryDB, error)
}

// NewListCategoriesHandler returns an HTTP handler for listing categories.
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.CategoryDB
// @Router /categories [get]
func NewListCategoriesHandler(svc CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.GetAllCategories(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, categories)
	}
}

// NewGetCategoryHandler returns an HTTP handler for fetching one category.
// @Summary Get category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.CategoryDB
// @Failure 404 {object} handlers.ErrorResponse "Category not found"
// @Router /categories/{id} [get]
func NewGetCategoryHandler(svc CategoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid category id"})
			return
		}

		category, err := svc.GetCategoryByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, category)
	}
}
