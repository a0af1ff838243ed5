package models

import "time"

// ReviewDB represents a single review of one user by another, optionally
// tied to the listing the deal happened on. Append-only.
type ReviewDB struct {
	ID             int64     `json:"id" db:"id"`                             // Primary key
	ReviewerID     int64     `json:"reviewer_id" db:"reviewer_id"`           // Reviewing user
	ReviewedUserID int64     `json:"reviewed_user_id" db:"reviewed_user_id"` // Reviewed user
	ListingID      *int64    `json:"listing_id" db:"listing_id"`             // Optional listing reference
	Rating         int       `json:"rating" db:"rating"`                     // Integer rating, 1-5 inclusive
	ReviewText     *string   `json:"review_text" db:"review_text"`           // Optional free text
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
