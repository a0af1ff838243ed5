package models

import "time"

// ShippingDetailDB represents fulfillment metadata for a sold listing.
// One shipping record per listing sale.
type ShippingDetailDB struct {
	ID                    int64      `json:"id" db:"id"`                         // Primary key
	UserID                int64      `json:"user_id" db:"user_id"`               // Shipping user (seller)
	ListingID             int64      `json:"listing_id" db:"listing_id"`         // Fulfilled listing
	ShippingMethod        string     `json:"shipping_method" db:"shipping_method"`
	ShippingCost          float64    `json:"shipping_cost" db:"shipping_cost"`
	EstimatedDeliveryDays *int      `json:"estimated_delivery_days" db:"estimated_delivery_days"`
	TrackingNumber        *string    `json:"tracking_number" db:"tracking_number"`
	Status                *string    `json:"status" db:"status"`
	ShippedAt             *time.Time `json:"shipped_at" db:"shipped_at"`
}

// ShippingUpdate holds the patchable tracking columns. Absent fields keep
// their stored value; tracking_number may be explicitly cleared with null.
type ShippingUpdate struct {
	TrackingNumber Opt[string]    `json:"tracking_number"`
	Status         Opt[string]    `json:"status"`
	ShippedAt      Opt[time.Time] `json:"shipped_at"`
}
