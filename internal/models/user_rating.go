package models

// UserRatingDB is the aggregate (total, average) rating pair for a user.
// At most one row per user; average_rating stays within [0.00, 5.00] with
// two-decimal precision.
type UserRatingDB struct {
	ID            int64   `json:"id" db:"id"`                         // Primary key
	UserID        int64   `json:"user_id" db:"user_id"`               // Rated user, unique
	TotalRatings  int     `json:"total_ratings" db:"total_ratings"`   // Number of reviews counted
	AverageRating float64 `json:"average_rating" db:"average_rating"` // Two-decimal average
}
