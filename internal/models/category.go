package models

// CategoryDB represents a category record in the database.
// Categories are static reference data.
type CategoryDB struct {
	ID   int64  `json:"id" db:"id"`     // Primary key
	Name string `json:"name" db:"name"` // Category name
}
