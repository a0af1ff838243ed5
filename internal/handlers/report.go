package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// ReportService defines the report operations needed by these handlers.
type ReportService interface {
	Create(ctx context.Context, userID, listingID int64, reportReason string) (*models.ReportDB, error)
	List(ctx context.Context) ([]models.ReportDB, error)
	GetByID(ctx context.Context, id int64) (*models.ReportDB, error)
	ListByListing(ctx context.Context, listingID int64) ([]models.ReportDB, error)
	Delete(ctx context.Context, id int64) error
}

// CreateReportRequest represents the JSON body for reporting a listing
// swagger:model CreateReportRequest
type CreateReportRequest struct {
	// Reporting user
	// required: true
	UserID int64 `json:"user_id"`

	// Reason text
	// required: true
	ReportReason string `json:"report_reason"`
}

// NewCreateReportHandler returns an HTTP handler for reporting a listing.
// @Summary Create report
// @Tags reports
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body handlers.CreateReportRequest true "Create Report Request"
// @Success 201 {object} models.ReportDB "Report created"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Router /listings/{id}/reports [post]
func NewCreateReportHandler(svc ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid listing id"})
			return
		}

		var req CreateReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create report request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		report, err := svc.Create(r.Context(), req.UserID, listingID, req.ReportReason)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, report)
	}
}

// NewListReportsHandler returns an HTTP handler for listing all reports.
// @Summary List reports
// @Tags reports
// @Produce json
// @Success 200 {array} models.ReportDB
// @Router /reports [get]
func NewListReportsHandler(svc ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reports, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, reports)
	}
}

// NewGetReportHandler returns an HTTP handler for fetching one report.
// @Summary Get report
// @Tags reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} models.ReportDB
// @Failure 404 {object} handlers.ErrorResponse "Report not found"
// @Router /reports/{id} [get]
func NewGetReportHandler(svc ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid report id"})
			return
		}

		report, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// NewListReportsForListingHandler returns an HTTP handler for listing the
// reports filed against one listing.
// @Summary List reports for listing
// @Tags reports
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {array} models.ReportDB
// @Router /listings/{id}/reports [get]
func NewListReportsForListingHandler(svc ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid listing id"})
			return
		}

		reports, err := svc.ListByListing(r.Context(), listingID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, reports)
	}
}

// NewDeleteReportHandler returns an HTTP handler for deleting a report.
// @Summary Delete report
// @Tags reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Report not found"
// @Router /reports/{id} [delete]
func NewDeleteReportHandler(svc ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid report id"})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
