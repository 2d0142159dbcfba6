package records

import "testing"

func TestGroupByEmailCountsAndSums(t *testing.T) {
	list := []Booking{
		{ID: "1", CustomerEmail: "a@x.com", CustomerName: "A One", Amount: 500},
		{ID: "2", CustomerEmail: "a@x.com", CustomerName: "A Two", Amount: 700},
		{ID: "3", CustomerEmail: "b@x.com", CustomerName: "B", Amount: 300},
	}

	groups := GroupByEmail(list)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	a := groups[0]
	if a.CustomerEmail != "a@x.com" || a.TotalBookings != 2 || a.TotalRevenue != 1200 {
		t.Errorf("group a = {email %q, count %d, sum %v}", a.CustomerEmail, a.TotalBookings, a.TotalRevenue)
	}
	// First occurrence establishes the representative display fields.
	if a.CustomerName != "A One" {
		t.Errorf("representative name = %q, want first-seen %q", a.CustomerName, "A One")
	}

	b := groups[1]
	if b.CustomerEmail != "b@x.com" || b.TotalBookings != 1 || b.TotalRevenue != 300 {
		t.Errorf("group b = {email %q, count %d, sum %v}", b.CustomerEmail, b.TotalBookings, b.TotalRevenue)
	}
}

func TestGroupByEmailInsertionOrder(t *testing.T) {
	list := []Booking{
		{ID: "1", CustomerEmail: "z@x.com"},
		{ID: "2", CustomerEmail: "a@x.com"},
		{ID: "3", CustomerEmail: "z@x.com"},
		{ID: "4", CustomerEmail: "m@x.com"},
	}
	groups := GroupByEmail(list)
	want := []string{"z@x.com", "a@x.com", "m@x.com"}
	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(groups), len(want))
	}
	for i, email := range want {
		if groups[i].CustomerEmail != email {
			t.Errorf("group[%d] = %q, want %q (first-seen order)", i, groups[i].CustomerEmail, email)
		}
	}
}

func TestGroupByEmailDropsMissingKey(t *testing.T) {
	list := []Booking{
		{ID: "1", CustomerEmail: "", Amount: 999},
		{ID: "2", CustomerEmail: "a@x.com", Amount: 100},
	}
	groups := GroupByEmail(list)
	if len(groups) != 1 || groups[0].CustomerEmail != "a@x.com" {
		t.Errorf("records without email must be dropped, got %+v", groups)
	}
}

func TestGroupByEmailSumMatchesSource(t *testing.T) {
	list := []Booking{
		{CustomerEmail: "a@x.com", Amount: 10},
		{CustomerEmail: "b@x.com", Amount: 20},
		{CustomerEmail: "a@x.com", Amount: 30},
		{CustomerEmail: "b@x.com"}, // missing amount contributes zero
	}
	groups := GroupByEmail(list)

	perKey := make(map[string]float64)
	counts := make(map[string]int)
	for _, b := range list {
		perKey[b.CustomerEmail] += b.Amount
		counts[b.CustomerEmail]++
	}
	for _, g := range groups {
		if g.TotalRevenue != perKey[g.CustomerEmail] {
			t.Errorf("%s: sum %v, want %v", g.CustomerEmail, g.TotalRevenue, perKey[g.CustomerEmail])
		}
		if g.TotalBookings != counts[g.CustomerEmail] {
			t.Errorf("%s: count %d, want %d", g.CustomerEmail, g.TotalBookings, counts[g.CustomerEmail])
		}
		if len(g.Bookings) != g.TotalBookings {
			t.Errorf("%s: kept %d bookings, count says %d", g.CustomerEmail, len(g.Bookings), g.TotalBookings)
		}
	}
}
