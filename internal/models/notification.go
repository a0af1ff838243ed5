package models

import "time"

// Notification types produced by the marketplace components.
const (
	NotificationTypeBidPlaced            = "bid_placed"
	NotificationTypeTransactionCompleted = "transaction_completed"
	NotificationTypeRefundRequested      = "refund_requested"
)

// NotificationDB represents a user-facing notice.
type NotificationDB struct {
	ID                  int64     `json:"id" db:"id"`                                     // Primary key
	UserID              int64     `json:"user_id" db:"user_id"`                           // Notified user
	ListingID           int64     `json:"listing_id" db:"listing_id"`                     // Listing the notice refers to
	NotificationType    string    `json:"notification_type" db:"notification_type"`       // Type label
	NotificationMessage string    `json:"notification_message" db:"notification_message"` // Display text
	IsRead              bool      `json:"is_read" db:"is_read"`                           // Read flag
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}
