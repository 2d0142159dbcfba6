package records

import "sort"

// SortByDateTime orders list by combined booking date and time-of-day, most
// recent first, in place. The sort is stable, so ties keep their original
// order, and records whose date or time cannot be parsed sort as earliest.
func SortByDateTime(list []Booking) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Timestamp().After(list[j].Timestamp())
	})
}
