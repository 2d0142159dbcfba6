// Package records implements the canonical booking record layer shared by the
// admin views: normalization of loosely shaped upstream payloads, status and
// free-text filtering, date ordering and per-customer aggregation.
package records

import "time"

// Booking is the canonical record every view works with, regardless of which
// naming convention the upstream payload used.
type Booking struct {
	ID            string  `json:"id"`
	UserID        *int64  `json:"userId,omitempty"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	ServiceName   string  `json:"serviceName"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"` // YYYY-MM-DD
	Time          string  `json:"time"` // e.g. "10:00 AM"
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	City          string  `json:"city,omitempty"`
	Address       string  `json:"address,omitempty"`
}

// Booking status values. Filtering treats anything outside this set as
// matching nothing rather than failing.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

	// StatusAll is the reserved filter value meaning "no status restriction".
	StatusAll = "all"
)

// IsValidStatus reports whether status is one of the four booking states.
func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Payment status values.
const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"
	PaymentFailed  = "failed"
)

var timeLayouts = []string{"3:04 PM", "03:04 PM", "15:04", "15:04:05"}

// Timestamp combines the record's date and time-of-day into a single
// orderable instant. Unparseable combinations yield the zero time so a bad
// record sorts as earliest instead of breaking the whole list.
func (b Booking) Timestamp() time.Time {
	day, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if tod, err := time.Parse(layout, b.Time); err == nil {
			return day.Add(time.Duration(tod.Hour())*time.Hour + time.Duration(tod.Minute())*time.Minute)
		}
	}
	// Date without a recognizable time still orders by day.
	return day
}
