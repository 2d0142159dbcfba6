package models

import "time"

// Booking represents a confirmed-or-pending service appointment as stored.
type Booking struct {
	ID            int64     `json:"id" db:"id"`
	UserID        *int64    `json:"user_id,omitempty" db:"user_id"` // nil for guest checkouts
	CustomerName  string    `json:"customer_name" db:"customer_name" binding:"required"`
	CustomerEmail string    `json:"customer_email" db:"customer_email" binding:"required"`
	CustomerPhone string    `json:"customer_number" db:"customer_phone"`
	ServiceID     *int64    `json:"service_id,omitempty" db:"service_id"`
	ServiceName   string    `json:"booking_service_name" db:"service_name"`
	Category      *string   `json:"booking_category,omitempty" db:"category"`
	Amount        float64   `json:"booking_amount" db:"amount"`
	Date          string    `json:"booking_date" db:"booking_date"` // YYYY-MM-DD
	Time          string    `json:"booking_time" db:"booking_time"` // e.g. "10:00 AM"
	Duration      *string   `json:"booking_duration,omitempty" db:"duration"`
	Status        string    `json:"bookingStatus" db:"status"`
	PaymentStatus string    `json:"payment_status" db:"payment_status"`
	Address       *string   `json:"address_line_1,omitempty" db:"address"`
	City          *string   `json:"city,omitempty" db:"city"`
	WorkerID      *int64    `json:"worker_id,omitempty" db:"worker_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// BookingFilters defines the available filters for querying bookings.
type BookingFilters struct {
	UserID   *int64  `form:"user_id"`
	Status   *string `form:"status"`
	Search   *string `form:"q"`
	Email    *string `form:"email"`
	DateFrom *string `form:"date_from"` // YYYY-MM-DD
	DateTo   *string `form:"date_to"`   // YYYY-MM-DD
	Page     int     `form:"page"`
	PageSize int     `form:"page_size"`
}
