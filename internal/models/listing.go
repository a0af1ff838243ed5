package models

import "time"

// Listing statuses. A listing starts active and ends sold or closed;
// neither terminal state transitions back to active.
const (
	ListingStatusActive = "active"
	ListingStatusSold   = "sold"
	ListingStatusClosed = "closed"
)

// Listing types.
const (
	ListingTypeSelling = "selling"
	ListingTypeBuying  = "buying"
	ListingTypeFree    = "free"
)

// ListingDB represents a listing record in the database
type ListingDB struct {
	ID          int64     `json:"id" db:"id"`                     // Primary key
	UserID      int64     `json:"user_id" db:"user_id"`           // Owner
	CategoryID  int64     `json:"category_id" db:"category_id"`   // Category reference
	Title       string    `json:"title" db:"title"`               // Listing title
	ListingType string    `json:"listing_type" db:"listing_type"` // selling, buying or free
	Price       float64   `json:"price" db:"price"`               // Price, always > 0
	Region      string    `json:"region" db:"region"`             // Region of the seller
	Description string    `json:"description" db:"description"`   // Free-text description
	ImageURL    *string   `json:"image_url" db:"image_url"`       // Optional primary image
	Status      string    `json:"status" db:"status"`             // active, sold or closed
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}

// ListingUpdate holds the patchable listing columns. Absent fields keep
// their stored value; image_url may be explicitly cleared with null.
type ListingUpdate struct {
	CategoryID  Opt[int64]   `json:"category_id"`
	Title       Opt[string]  `json:"title"`
	ListingType Opt[string]  `json:"listing_type"`
	Price       Opt[float64] `json:"price"`
	Region      Opt[string]  `json:"region"`
	Description Opt[string]  `json:"description"`
	ImageURL    Opt[string]  `json:"image_url"`
}
