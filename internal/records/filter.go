package records

import "strings"

// Filter returns the subset of list matching both the status filter and the
// free-text query.
//
// Status matching is a case-insensitive exact comparison; StatusAll (or an
// empty filter) imposes no status restriction. An unrecognized status value
// matches nothing. The legacy dashboard treated "all" as an alias for
// "pending"; here "all" really means all.
//
// The query is a case-insensitive substring match over customer name, phone
// and service name; an empty query matches everything. The two predicates
// combine with logical AND.
func Filter(list []Booking, status, query string) []Booking {
	status = strings.ToLower(strings.TrimSpace(status))
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]Booking, 0, len(list))
	for _, b := range list {
		if !matchesStatus(b, status) {
			continue
		}
		if !matchesQuery(b, query) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesStatus(b Booking, status string) bool {
	if status == "" || status == StatusAll {
		return true
	}
	if !IsValidStatus(status) {
		return false
	}
	return strings.ToLower(b.Status) == status
}

func matchesQuery(b Booking, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.CustomerName), query) ||
		strings.Contains(strings.ToLower(b.CustomerPhone), query) ||
		strings.Contains(strings.ToLower(b.ServiceName), query)
}
