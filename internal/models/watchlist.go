package models

import "time"

// WatchListEntryDB represents a (user, listing) watch-list pair.
// The pair is unique: a user watches a listing at most once.
type WatchListEntryDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	UserID    int64     `json:"user_id" db:"user_id"`       // Watching user
	ListingID int64     `json:"listing_id" db:"listing_id"` // Watched listing
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
