package models

import "time"

// Payment statuses. A payment starts pending; refund_requested is reachable
// only from completed, and refunded is terminal.
const (
	PaymentStatusPending         = "pending"
	PaymentStatusCompleted       = "completed"
	PaymentStatusFailed          = "failed"
	PaymentStatusCancelled       = "cancelled"
	PaymentStatusRefundRequested = "refund_requested"
	PaymentStatusRefunded        = "refunded"
)

// PaymentDB represents one settlement attempt against a transaction.
// Several payments may exist per transaction (retries).
type PaymentDB struct {
	ID            int64      `json:"id" db:"id"`                         // Primary key
	TransactionID int64      `json:"transaction_id" db:"transaction_id"` // Settled transaction
	ListingID     int64      `json:"listing_id" db:"listing_id"`         // Must equal the transaction's listing
	PaymentMethod string     `json:"payment_method" db:"payment_method"` // Method label, e.g. "card"
	Amount        float64    `json:"amount" db:"amount"`                 // Settlement amount
	Status        string     `json:"payment_status" db:"payment_status"`
	PaidAt        *time.Time `json:"paid_at" db:"paid_at"`               // Set when the payment settles
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}
