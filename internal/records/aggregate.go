package records

// CustomerSummary is one entry of the grouped customer view: the first
// booking seen for an email provides the display fields, while count and
// revenue accumulate across all of that customer's bookings.
type CustomerSummary struct {
	Booking
	TotalBookings int       `json:"totalBookings"`
	TotalRevenue  float64   `json:"totalRevenue"`
	Bookings      []Booking `json:"bookings"`
}

// GroupByEmail collapses bookings into one summary per distinct customer
// email, preserving first-seen order. Records with an empty email are dropped
// since they cannot be attributed to a customer. Missing amounts contribute
// zero to the revenue sum.
func GroupByEmail(list []Booking) []CustomerSummary {
	index := make(map[string]int, len(list))
	out := make([]CustomerSummary, 0, len(list))

	for _, b := range list {
		key := b.CustomerEmail
		if key == "" {
			continue
		}
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, CustomerSummary{Booking: b})
			i = len(out) - 1
		}
		out[i].TotalBookings++
		out[i].TotalRevenue += b.Amount
		out[i].Bookings = append(out[i].Bookings, b)
	}
	return out
}
