package records

import "testing"

func sampleBookings() []Booking {
	return []Booking{
		{ID: "1", CustomerName: "Asha Rao", CustomerPhone: "9876543210", ServiceName: "Deep Cleaning", Status: "pending"},
		{ID: "2", CustomerName: "Ravi K", CustomerPhone: "9000000001", ServiceName: "Sofa Shampoo", Status: "Confirmed"},
		{ID: "3", CustomerName: "Meena S", CustomerPhone: "9111111111", ServiceName: "Kitchen Cleaning", Status: "completed"},
		{ID: "4", CustomerName: "John D", CustomerPhone: "9222222222", ServiceName: "Deep Cleaning", Status: "cancelled"},
		{ID: "5", CustomerName: "Priya", CustomerPhone: "9333333333", ServiceName: "Pest Control", Status: "weird-status"},
	}
}

func ids(list []Booking) []string {
	out := make([]string, len(list))
	for i, b := range list {
		out[i] = b.ID
	}
	return out
}

func TestFilterAllIsNoOp(t *testing.T) {
	list := sampleBookings()
	got := Filter(list, StatusAll, "")
	if len(got) != len(list) {
		t.Errorf("Filter(all, \"\") returned %d of %d records", len(got), len(list))
	}
}

func TestFilterStatusCaseInsensitive(t *testing.T) {
	got := Filter(sampleBookings(), "CONFIRMED", "")
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("got %v, want [2]", ids(got))
	}
}

func TestFilterUnknownStatusMatchesNothing(t *testing.T) {
	if got := Filter(sampleBookings(), "archived", ""); len(got) != 0 {
		t.Errorf("unknown status matched %v", ids(got))
	}
	// A record carrying a bad status is still excluded by valid filters.
	if got := Filter(sampleBookings(), "pending", ""); len(got) != 1 || got[0].ID != "1" {
		t.Errorf("got %v, want [1]", ids(got))
	}
}

func TestFilterQuerySubstring(t *testing.T) {
	got := Filter(sampleBookings(), StatusAll, "deep")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "4" {
		t.Errorf("got %v, want [1 4]", ids(got))
	}

	got = Filter(sampleBookings(), StatusAll, "9000000001")
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("phone search got %v, want [2]", ids(got))
	}
}

// filter(R, s, q) == filter(R, s, "") ∩ filter(R, all, q)
func TestFilterIsIntersection(t *testing.T) {
	list := sampleBookings()
	combined := Filter(list, "cancelled", "deep")

	byStatus := Filter(list, "cancelled", "")
	byQuery := Filter(list, StatusAll, "deep")

	inBoth := make(map[string]bool)
	for _, b := range byStatus {
		inBoth[b.ID] = true
	}
	var intersection []string
	for _, b := range byQuery {
		if inBoth[b.ID] {
			intersection = append(intersection, b.ID)
		}
	}

	got := ids(combined)
	if len(got) != len(intersection) {
		t.Fatalf("combined %v, intersection %v", got, intersection)
	}
	for i := range got {
		if got[i] != intersection[i] {
			t.Errorf("combined %v, intersection %v", got, intersection)
		}
	}
}

func TestFilterMissingFieldsDoNotMatch(t *testing.T) {
	list := []Booking{{ID: "1"}}
	if got := Filter(list, StatusAll, "anything"); len(got) != 0 {
		t.Errorf("blank record matched query: %v", ids(got))
	}
	if got := Filter(list, "pending", ""); len(got) != 0 {
		t.Errorf("blank record matched status: %v", ids(got))
	}
}
