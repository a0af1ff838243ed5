package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// PaymentService defines the payment operations needed by these handlers.
type PaymentService interface {
	Create(ctx context.Context, transactionID, listingID int64, paymentMethod string, amount float64) (*models.PaymentDB, error)
	List(ctx context.Context) ([]models.PaymentDB, error)
	ListByUser(ctx context.Context, userID int64) ([]models.PaymentDB, error)
	GetByID(ctx context.Context, id int64) (*models.PaymentDB, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.PaymentDB, error)
	RequestRefund(ctx context.Context, id int64) (*models.PaymentDB, error)
	Delete(ctx context.Context, id int64) error
}

// CreatePaymentRequest represents the JSON body for recording a payment
// swagger:model CreatePaymentRequest
type CreatePaymentRequest struct {
	// Settled transaction
	// required: true
	TransactionID int64 `json:"transaction_id"`

	// Listing the transaction settles
	// required: true
	ListingID int64 `json:"listing_id"`

	// Method label, e.g. card
	// required: true
	PaymentMethod string `json:"payment_method"`

	// Settlement amount
	// required: true
	Amount float64 `json:"amount"`
}

// UpdatePaymentStatusRequest represents the JSON body for a status change
// swagger:model UpdatePaymentStatusRequest
type UpdatePaymentStatusRequest struct {
	// pending, completed, failed, cancelled, refund_requested or refunded
	// required: true
	Status string `json:"status"`
}

// NewCreatePaymentHandler returns an HTTP handler for recording a
// pending payment.
// @Summary Create payment
// @Description Record a settlement attempt. The transaction must exist and match the listing.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body handlers.CreatePaymentRequest true "Create Payment Request"
// @Success 201 {object} models.PaymentDB "Payment created"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 409 {object} handlers.ErrorResponse "Transaction missing or listing mismatch"
// @Router /payments [post]
func NewCreatePaymentHandler(svc PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create payment request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		payment, err := svc.Create(r.Context(), req.TransactionID, req.ListingID, req.PaymentMethod, req.Amount)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, payment)
	}
}

// NewListPaymentsHandler returns an HTTP handler for listing all payments.
// @Summary List payments
// @Tags payments
// @Produce json
// @Success 200 {array} models.PaymentDB
// @Router /payments [get]
func NewListPaymentsHandler(svc PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payments, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, payments)
	}
}

// NewListUserPaymentsHandler returns an HTTP handler for listing a
// user's payments.
// @Summary List user payments
// @Tags payments
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.PaymentDB
// @Router /users/{id}/payments [get]
func NewListUserPaymentsHandler(svc PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		payments, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, payments)
	}
}

// NewGetPaymentHandler returns an HTTP handler for fetching one payment.
// @Summary Get payment
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} models.PaymentDB
// @Failure 404 {object} handlers.ErrorResponse "Payment not found"
// @Router /payments/{id} [get]
func NewGetPaymentHandler(svc PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid payment id"})
			return
		}

		payment, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, payment)
	}
}

// NewUpdatePaymentStatusHandler returns an HTTP handler for moving a
// payment along its lifecycle.
// @Summary Update payment status
// @Tags payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param request body handlers.UpdatePaymentStatusRequest true "Status body"
// @Success 200 {object} models.PaymentDB
// @Failure 400 {object} handlers.ErrorResponse "Unknown status"
// @Failure 404 {object} handlers.ErrorResponse "Payment not found"
// @Router /payments/{id}/status [put]
func NewUpdatePaymentStatusHandler(svc PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid payment id"})
			return
		}

		var req UpdatePaymentStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode update payment status request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		payment, err := svc.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, payment)
	}
}

// NewRequestRefundHandler returns an HTTP handler for requesting a refund
// on a completed payment.
// @Summary Request refund
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} models.PaymentDB "Status set to refund_requested"
// @Failure 404 {object} handlers.ErrorResponse "Payment not found"
// @Failure 409 {object} handlers.ErrorResponse "Payment not completed"
// @Router /payments/{id}/refund [post]
func NewRequestRefundHandler(svc PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid payment id"})
			return
		}

		payment, err := svc.RequestRefund(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, payment)
	}
}

// NewDeletePaymentHandler returns an HTTP handler for deleting a payment.
// @Summary Delete payment
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse "Payment not found"
// @Router /payments/{id} [delete]
func NewDeletePaymentHandler(svc PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid payment id"})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
