package models

import "time"

// Transaction statuses form a closed enum. Free-form status strings are
// rejected at the service layer.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusCancelled = "cancelled"
)

// ValidTransactionStatus reports whether s is a member of the status enum.
func ValidTransactionStatus(s string) bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusCancelled:
		return true
	}
	return false
}

// TransactionDB binds a buyer, a listing and optionally a winning bid
// into a sale record.
type TransactionDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	UserID    int64     `json:"user_id" db:"user_id"`       // Buyer
	ListingID int64     `json:"listing_id" db:"listing_id"` // Sold listing
	BidID     *int64    `json:"bid_id" db:"bid_id"`         // Winning bid, nil for direct sales
	Amount    float64   `json:"amount" db:"amount"`         // Sale amount
	Status    string    `json:"status" db:"status"`         // pending, completed or cancelled
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
