package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
)

// TransactionService defines the transaction operations needed by these handlers.
type TransactionService interface {
	Create(ctx context.Context, userID, listingID int64, amount float64, status string, bidID *int64) (*models.TransactionDB, error)
	GetByID(ctx context.Context, id int64) (*models.TransactionDB, error)
	ListByUser(ctx context.Context, userID int64) ([]models.TransactionDB, error)
	List(ctx context.Context) ([]models.TransactionDB, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.TransactionDB, error)
}

// CreateTransactionRequest represents the JSON body for recording a transaction
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	// Buying user
	// required: true
	UserID int64 `json:"user_id"`

	// Sold listing
	// required: true
	ListingID int64 `json:"listing_id"`

	// Sale amount
	// required: true
	Amount float64 `json:"amount"`

	// pending, completed or cancelled
	// required: true
	// default: pending
	Status string `json:"status"`

	// Winning bid, omit for direct sales
	BidID *int64 `json:"bid_id"`
}

// UpdateTransactionStatusRequest represents the JSON body for a status change
// swagger:model UpdateTransactionStatusRequest
type UpdateTransactionStatusRequest struct {
	// pending, completed or cancelled
	// required: true
	Status string `json:"status"`
}

// NewCreateTransactionHandler returns an HTTP handler for recording a
// transaction.
// @Summary Create transaction
// @Description Record a transaction. A supplied bid must belong to the same listing. Completing a transaction marks the listing sold.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.CreateTransactionRequest true "Create Transaction Request"
// @Success 201 {object} models.TransactionDB "Transaction created"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 409 {object} handlers.ErrorResponse "Bid belongs to a different listing"
// @Router /transactions [post]
func NewCreateTransactionHandler(svc TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create transaction request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		txn, err := svc.Create(r.Context(), req.UserID, req.ListingID, req.Amount, req.Status, req.BidID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, txn)
	}
}

// NewGetTransactionHandler returns an HTTP handler for fetching one
// transaction.
// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} models.TransactionDB
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Router /transactions/{id} [get]
func NewGetTransactionHandler(svc TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid transaction id"})
			return
		}

		txn, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, txn)
	}
}

// NewListTransactionsHandler returns an HTTP handler for listing all
// transactions.
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Success 200 {array} models.TransactionDB
// @Router /transactions [get]
func NewListTransactionsHandler(svc TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txns, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, txns)
	}
}

// NewListUserTransactionsHandler returns an HTTP handler for listing a
// user's transactions.
// @Summary List user transactions
// @Tags transactions
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.TransactionDB
// @Router /users/{id}/transactions [get]
func NewListUserTransactionsHandler(svc TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid user id"})
			return
		}

		txns, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, txns)
	}
}

// NewUpdateTransactionStatusHandler returns an HTTP handler for moving a
// transaction along its lifecycle.
// @Summary Update transaction status
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body handlers.UpdateTransactionStatusRequest true "Status body"
// @Success 200 {object} models.TransactionDB
// @Failure 400 {object} handlers.ErrorResponse "Unknown status"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 409 {object} handlers.ErrorResponse "Transaction already terminal"
// @Router /transactions/{id}/status [put]
func NewUpdateTransactionStatusHandler(svc TransactionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid transaction id"})
			return
		}

		var req UpdateTransactionStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode update transaction status request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		txn, err := svc.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, txn)
	}
}
