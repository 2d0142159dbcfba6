package models

import "time"

// Worker is a field employee who can be assigned to bookings.
type Worker struct {
	ID        int64     `json:"id" db:"id"`
	FullName  string    `json:"full_name" db:"full_name" binding:"required"`
	Phone     string    `json:"phone" db:"phone"`
	Skill     *string   `json:"skill,omitempty" db:"skill"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
