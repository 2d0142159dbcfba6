package records

import (
	"encoding/json"
	"testing"
)

func TestNormalizeSnakeCase(t *testing.T) {
	raw := map[string]interface{}{
		"booking_id":           float64(42),
		"customer_name":        "Asha Rao",
		"customer_email":       "asha@example.com",
		"customer_number":      "9876543210",
		"booking_service_name": "Deep Cleaning",
		"booking_amount":       float64(1499),
		"booking_date":         "2025-08-01",
		"booking_time":         "10:00 AM",
		"booking_status":       "pending",
		"payment_status":       "paid",
		"address_line_1":       "12 MG Road",
	}

	b := Normalize(raw)
	if b.ID != "42" {
		t.Errorf("ID = %q, want %q", b.ID, "42")
	}
	if b.CustomerName != "Asha Rao" || b.CustomerEmail != "asha@example.com" {
		t.Errorf("customer fields not mapped: %+v", b)
	}
	if b.ServiceName != "Deep Cleaning" || b.Amount != 1499 {
		t.Errorf("service fields not mapped: %+v", b)
	}
	if b.Date != "2025-08-01" || b.Time != "10:00 AM" {
		t.Errorf("date/time not mapped: %+v", b)
	}
	if b.Status != "pending" || b.PaymentStatus != "paid" {
		t.Errorf("status fields not mapped: %+v", b)
	}
	if b.Address != "12 MG Road" {
		t.Errorf("Address = %q", b.Address)
	}
}

func TestNormalizeCamelCaseAliases(t *testing.T) {
	raw := map[string]interface{}{
		"bookingId":     "b-7",
		"bookingDate":   "2025-08-02",
		"bookingStatus": "confirmed",
		"serviceName":   "Sofa Shampoo",
	}

	b := Normalize(raw)
	if b.ID != "b-7" || b.Date != "2025-08-02" || b.Status != "confirmed" || b.ServiceName != "Sofa Shampoo" {
		t.Errorf("camelCase aliases not mapped: %+v", b)
	}
}

func TestNormalizeMissingFieldsAreZero(t *testing.T) {
	b := Normalize(map[string]interface{}{})
	if b.ID != "" || b.CustomerEmail != "" || b.Amount != 0 || b.UserID != nil {
		t.Errorf("expected zero-valued record, got %+v", b)
	}
}

func TestNormalizeNonNumericAmount(t *testing.T) {
	b := Normalize(map[string]interface{}{"booking_amount": "not a number"})
	if b.Amount != 0 {
		t.Errorf("Amount = %v, want 0", b.Amount)
	}
	b = Normalize(map[string]interface{}{"booking_amount": "750"})
	if b.Amount != 750 {
		t.Errorf("Amount = %v, want 750 for numeric string", b.Amount)
	}
}

// Normalizing the canonical JSON form of a record must be a fixpoint.
func TestNormalizeIdempotent(t *testing.T) {
	uid := int64(9)
	orig := Booking{
		ID:            "15",
		UserID:        &uid,
		CustomerName:  "Ravi K",
		CustomerEmail: "ravi@example.com",
		CustomerPhone: "9000000001",
		ServiceName:   "Bathroom Cleaning",
		Amount:        899,
		Date:          "2025-07-30",
		Time:          "2:30 PM",
		Status:        "completed",
		PaymentStatus: "paid",
		City:          "Bengaluru",
		Address:       "4th Cross",
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	again := Normalize(raw)
	if again.ID != orig.ID || again.CustomerEmail != orig.CustomerEmail ||
		again.Amount != orig.Amount || again.Date != orig.Date || again.Time != orig.Time ||
		again.Status != orig.Status || again.PaymentStatus != orig.PaymentStatus ||
		again.City != orig.City || again.Address != orig.Address {
		t.Errorf("normalization not idempotent:\n got %+v\nwant %+v", again, orig)
	}
	if again.UserID == nil || *again.UserID != uid {
		t.Errorf("UserID lost in round trip: %v", again.UserID)
	}
}

func TestNormalizeAllSkipsNil(t *testing.T) {
	got := NormalizeAll([]map[string]interface{}{nil, {"booking_id": "1"}, nil})
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("NormalizeAll = %+v", got)
	}
}
