package models

import "time"

// MessageDB represents a direct message between two users about a listing.
type MessageDB struct {
	ID          int64     `json:"id" db:"id"`                       // Primary key
	SenderID    int64     `json:"sender_id" db:"sender_id"`         // Sending user
	RecipientID int64     `json:"recipient_id" db:"recipient_id"`   // Receiving user
	ListingID   int64     `json:"listing_id" db:"listing_id"`       // Listing the message refers to
	MessageText string    `json:"message_text" db:"message_text"`   // Message body
	IsRead      bool      `json:"is_read" db:"is_read"`             // Read flag
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
