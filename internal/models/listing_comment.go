package models

import "time"

// ListingCommentDB represents a public comment on a listing. The answer is
// a one-shot reply field filled by the seller, not a reply chain.
type ListingCommentDB struct {
	ID          int64      `json:"id" db:"id"`                   // Primary key
	UserID      int64      `json:"user_id" db:"user_id"`         // Commenting user
	ListingID   int64      `json:"listing_id" db:"listing_id"`   // Commented listing
	CommentText string     `json:"comment_text" db:"comment_text"`
	AnswerText  *string    `json:"answer_text" db:"answer_text"` // Seller's reply, nil until answered
	AnsweredAt  *time.Time `json:"answered_at" db:"answered_at"` // Set when the reply is written
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}
