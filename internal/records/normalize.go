package records

import (
	"strconv"

	"kushi_services_backend/pkg/utils"
)

// Upstream endpoints never agreed on one naming convention, so each canonical
// field reads the first defined candidate from an ordered alias list. The
// table is the single place a new alias gets added.
var (
	idAliases      = []string{"id", "booking_id", "bookingId", "customer_id"}
	userIDAliases  = []string{"userId", "user_id"}
	nameAliases    = []string{"customerName", "customer_name", "name"}
	emailAliases   = []string{"customerEmail", "customer_email", "email"}
	phoneAliases   = []string{"customerPhone", "customer_number", "customer_phone", "phone"}
	serviceAliases = []string{"serviceName", "booking_service_name", "service_name", "service"}
	amountAliases  = []string{"amount", "booking_amount", "total_amount"}
	dateAliases    = []string{"date", "booking_date", "bookingDate"}
	timeAliases    = []string{"time", "booking_time", "bookingTime"}
	statusAliases  = []string{"status", "bookingStatus", "booking_status"}
	payAliases     = []string{"paymentStatus", "payment_status"}
	cityAliases    = []string{"city"}
	addressAliases = []string{"address", "address_line_1", "addressLine1"}
)

// Normalize maps a raw upstream record into the canonical Booking shape.
// It is total: missing or malformed fields degrade to zero values, and
// normalizing an already-canonical record is the identity.
func Normalize(raw map[string]interface{}) Booking {
	return Booking{
		ID:            firstString(raw, idAliases),
		UserID:        firstInt64(raw, userIDAliases),
		CustomerName:  firstString(raw, nameAliases),
		CustomerEmail: firstString(raw, emailAliases),
		CustomerPhone: firstString(raw, phoneAliases),
		ServiceName:   firstString(raw, serviceAliases),
		Amount:        firstFloat(raw, amountAliases),
		Date:          firstString(raw, dateAliases),
		Time:          firstString(raw, timeAliases),
		Status:        firstString(raw, statusAliases),
		PaymentStatus: firstString(raw, payAliases),
		City:          firstString(raw, cityAliases),
		Address:       firstString(raw, addressAliases),
	}
}

// NormalizeAll maps a whole payload, skipping nil entries.
func NormalizeAll(raws []map[string]interface{}) []Booking {
	out := make([]Booking, 0, len(raws))
	for _, raw := range raws {
		if raw == nil {
			continue
		}
		out = append(out, Normalize(raw))
	}
	return out
}

func firstString(raw map[string]interface{}, keys []string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			if s != "" {
				return s
			}
		case float64:
			// Numeric ids arrive as JSON numbers; render them without decimals.
			return strconv.FormatFloat(s, 'f', -1, 64)
		case int64:
			return strconv.FormatInt(s, 10)
		case int:
			return strconv.Itoa(s)
		}
	}
	return ""
}

func firstFloat(raw map[string]interface{}, keys []string) float64 {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		return utils.ToFloat64(v)
	}
	return 0
}

func firstInt64(raw map[string]interface{}, keys []string) *int64 {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		n := int64(utils.ToFloat64(v))
		return &n
	}
	return nil
}
