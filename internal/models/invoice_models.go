package models

// Invoice is the billing view of a booking. The paid/unpaid state is derived
// from worker assignment: a booking only gets a worker once payment clears.
type Invoice struct {
	BookingID     int64   `json:"booking_id" db:"booking_id"`
	CustomerName  string  `json:"customer_name" db:"customer_name"`
	CustomerEmail string  `json:"customer_email" db:"customer_email"`
	CustomerPhone string  `json:"customer_number" db:"customer_phone"`
	ServiceName   string  `json:"booking_service_name" db:"service_name"`
	Amount        float64 `json:"booking_amount" db:"amount"`
	BookingDate   string  `json:"bookingDate" db:"booking_date"`
	WorkerAssign  bool    `json:"worker_assign" db:"worker_assign"`
	WorkerName    *string `json:"worker_name,omitempty" db:"worker_name"`
}

// Status derives the binary invoice state from worker assignment.
func (inv Invoice) Status() string {
	if inv.WorkerAssign {
		return "paid"
	}
	return "unpaid"
}

// InvoicePeriod filter values for the invoices list.
const (
	InvoicePeriodAll         = "all"
	InvoicePeriodToday       = "today"
	InvoicePeriodWeek        = "week"
	InvoicePeriodMonth       = "month"
	InvoicePeriodCustomDate  = "custom-date"
	InvoicePeriodCustomMonth = "custom-month"
)

// InvoiceFilters defines the available filters for the invoices list.
type InvoiceFilters struct {
	Period      string  `form:"period"`
	CustomDate  *string `form:"date"`  // YYYY-MM-DD, with period=custom-date
	CustomMonth *string `form:"month"` // YYYY-MM, with period=custom-month
	Search      *string `form:"q"`
}

// InvoiceTotals summarize the filtered invoice set.
type InvoiceTotals struct {
	TotalRevenue  float64 `json:"total_revenue"`  // sum over paid invoices
	PendingAmount float64 `json:"pending_amount"` // sum over unpaid invoices
}
