package models

import "time"

// Service is one entry of the bookable catalog.
type Service struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name" binding:"required"`
	Category     string    `json:"category" db:"category"`
	Subcategory  *string   `json:"subcategory,omitempty" db:"subcategory"`
	Price        int64     `json:"price" db:"price"`
	OriginalPrice *int64   `json:"original_price,omitempty" db:"original_price"`
	Rating       float64   `json:"rating" db:"rating"`
	BookingCount int       `json:"booking_count" db:"booking_count"`
	Duration     *string   `json:"duration,omitempty" db:"duration"`
	Tier         *string   `json:"tier,omitempty" db:"tier"`
	Active       bool      `json:"active" db:"active"`
	Overview     *string   `json:"overview,omitempty" db:"overview"`
	Process      *string   `json:"process,omitempty" db:"process"`
	Benefits     *string   `json:"benefits,omitempty" db:"benefits"`
	Inclusions   *string   `json:"inclusions,omitempty" db:"inclusions"`
	Exclusions   *string   `json:"exclusions,omitempty" db:"exclusions"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ServiceFilters defines the available filters for querying the catalog.
type ServiceFilters struct {
	Category   *string `form:"category"`
	ActiveOnly bool    `form:"active_only"`
	Search     *string `form:"q"`
}
