package models

// Overview holds the headline dashboard metrics.
type Overview struct {
	TotalBookings    int     `json:"totalBookings"`
	TotalCustomers   int     `json:"totalCustomers"`
	TotalAmount      float64 `json:"totalAmount"`
	TodayBookings    int     `json:"todayBookings"`
	PendingApprovals int     `json:"pendingApprovals"`
}

// TopService is one row of the most-booked services report.
type TopService struct {
	ServiceName  string  `json:"booking_service_name"`
	Category     *string `json:"booking_category,omitempty"`
	BookingCount int     `json:"booking_count"`
	TotalAmount  float64 `json:"total_amount"`
}

// TopCustomer is one row of the most-active customers report.
type TopCustomer struct {
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	BookingCount  int     `json:"booking_count"`
	TotalAmount   float64 `json:"total_amount"`
}

// CategoryReport aggregates bookings per service category.
type CategoryReport struct {
	Category     string  `json:"category"`
	BookingCount int     `json:"booking_count"`
	TotalAmount  float64 `json:"total_amount"`
	AvgRating    float64 `json:"avg_rating"`
}
