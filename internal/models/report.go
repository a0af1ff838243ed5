package models

import "time"

// ReportDB represents a report filed against a listing. Append-only, no
// investigation workflow.
type ReportDB struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	UserID       int64     `json:"user_id" db:"user_id"`             // Reporting user
	ListingID    int64     `json:"listing_id" db:"listing_id"`       // Reported listing
	ReportReason string    `json:"report_reason" db:"report_reason"` // Free-text reason
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
