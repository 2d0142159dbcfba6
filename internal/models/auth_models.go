package models

import "time"

// User roles. Admins operate the dashboard; customers book services.
const (
	RoleAdmin    = "Admin"
	RoleCustomer = "Customer"
)

// User represents an account, admin or customer.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	Role         string    `json:"role" db:"role"`
	Blocked      bool      `json:"blocked" db:"blocked"`
	RewardPoints int       `json:"reward_points" db:"reward_points"`
	Coupons      int       `json:"coupons" db:"coupons"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
