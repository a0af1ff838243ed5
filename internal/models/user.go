package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID          int64     `json:"id" db:"id"`                       // Primary key
	Username    string    `json:"username" db:"username"`           // Unique username
	Email       string    `json:"email" db:"email"`                 // Unique email
	Password    string    `json:"-" db:"password"`                  // Hashed credential secret, never serialized
	UserSince   time.Time `json:"user_since" db:"user_since"`       // Creation timestamp
	DateOfBirth time.Time `json:"date_of_birth" db:"date_of_birth"` // Date of birth
	PhoneNumber *string   `json:"phone_number" db:"phone_number"`   // Optional phone number
}

// UserUpdate holds the editable user columns for a partial update.
// Only email and phone number are mutable after creation.
type UserUpdate struct {
	Email       Opt[string] `json:"email"`
	PhoneNumber Opt[string] `json:"phone_number"`
}
