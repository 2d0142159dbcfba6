package records

import "testing"

func TestSortByDateTimeDescending(t *testing.T) {
	list := []Booking{
		{ID: "1", Date: "2025-08-01", Time: "10:00 AM"},
		{ID: "2", Date: "2025-08-02", Time: "9:00 AM"},
		{ID: "3", Date: "2025-08-01", Time: "3:30 PM"},
	}
	SortByDateTime(list)

	want := []string{"2", "3", "1"}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("order = %v, want %v", ids(list), want)
		}
	}

	for i := 0; i+1 < len(list); i++ {
		if list[i].Timestamp().Before(list[i+1].Timestamp()) {
			t.Errorf("adjacent pair out of order at %d: %v < %v", i, list[i].Timestamp(), list[i+1].Timestamp())
		}
	}
}

func TestSortByDateTimeIdempotent(t *testing.T) {
	list := []Booking{
		{ID: "2", Date: "2025-08-02", Time: "9:00 AM"},
		{ID: "3", Date: "2025-08-01", Time: "3:30 PM"},
		{ID: "1", Date: "2025-08-01", Time: "10:00 AM"},
	}
	SortByDateTime(list)
	first := ids(list)
	SortByDateTime(list)
	second := ids(list)
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("sorting an already-sorted list changed it: %v then %v", first, second)
		}
	}
}

func TestSortByDateTimeStableOnTies(t *testing.T) {
	list := []Booking{
		{ID: "a", Date: "2025-08-01", Time: "10:00 AM"},
		{ID: "b", Date: "2025-08-01", Time: "10:00 AM"},
		{ID: "c", Date: "2025-08-01", Time: "10:00 AM"},
	}
	SortByDateTime(list)
	if list[0].ID != "a" || list[1].ID != "b" || list[2].ID != "c" {
		t.Errorf("ties reordered: %v", ids(list))
	}
}

func TestSortByDateTimeUnparseableSortsLast(t *testing.T) {
	list := []Booking{
		{ID: "bad", Date: "not-a-date", Time: "??"},
		{ID: "good", Date: "2025-08-01", Time: "10:00 AM"},
	}
	SortByDateTime(list)
	if list[0].ID != "good" || list[1].ID != "bad" {
		t.Errorf("unparseable record did not sort as earliest: %v", ids(list))
	}
}

func TestTimestamp24HourFallback(t *testing.T) {
	b := Booking{Date: "2025-08-01", Time: "14:45"}
	ts := b.Timestamp()
	if ts.Hour() != 14 || ts.Minute() != 45 {
		t.Errorf("24h time parsed as %v", ts)
	}

	// A date with garbage time still orders by day.
	b = Booking{Date: "2025-08-01", Time: "noonish"}
	if b.Timestamp().IsZero() {
		t.Error("date-only record should not collapse to zero time")
	}
}
