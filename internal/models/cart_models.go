package models

import "time"

// CartItem is one service line in a customer's cart.
type CartItem struct {
	ServiceID     int64   `json:"service_id" binding:"required"`
	Name          string  `json:"name"`
	Tier          *string `json:"tier,omitempty"`
	Duration      *string `json:"duration,omitempty"`
	UnitPrice     int64   `json:"unit_price"`
	OriginalPrice int64   `json:"original_price,omitempty"`
	Quantity      int     `json:"quantity"`
}

// Cart is the persisted cart for one browser/customer. Writes are
// last-write-wins: the most recent PUT replaces the whole cart.
type Cart struct {
	ID        string     `json:"id"`
	UserID    *int64     `json:"user_id,omitempty"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}
