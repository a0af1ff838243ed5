package models

import "time"

// ImageDB represents an image attached to a listing. A listing may carry
// multiple images, ordered by creation time.
type ImageDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	UserID    int64     `json:"user_id" db:"user_id"`       // Uploading user
	ListingID int64     `json:"listing_id" db:"listing_id"` // Parent listing
	ImageURL  string    `json:"image_url" db:"image_url"`   // Image location
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
