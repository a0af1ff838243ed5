package models

import "time"

// BidDB represents a bid placed against a listing. Bids are append-only:
// once placed, a bid is never updated.
type BidDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	UserID    int64     `json:"user_id" db:"user_id"`       // Bidding user
	ListingID int64     `json:"listing_id" db:"listing_id"` // Listing bid on
	Amount    float64   `json:"amount" db:"amount"`         // Offered amount
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
