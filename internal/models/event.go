package models

// MarketEvent represents a marketplace event published to the event stream,
// including the entity it concerns, the user who triggered it, and the amount involved.
type MarketEvent struct {
	EventID   string  `json:"event_id"`   // EventID is a unique identifier for the event.
	Timestamp int64   `json:"timestamp"`  // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	Type      string  `json:"type"`       // Type describes the event, e.g. "bid_placed" or "transaction_completed".
	UserID    int64   `json:"user_id"`    // UserID is the identifier of the user who triggered the event.
	ListingID int64   `json:"listing_id"` // ListingID is the listing the event concerns.
	Amount    float64 `json:"amount"`     // Amount is the monetary value involved, if any.
}
