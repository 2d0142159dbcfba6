// Package pricing computes the monetary breakdown for a set of cart line
// items. All amounts are whole currency units (rupees); tax is a flat 18%
// GST rounded half-up exactly once, after summation, so per-item rounding
// drift cannot accumulate.
package pricing

// TaxRatePercent is the flat GST rate applied to the cart subtotal.
const TaxRatePercent = 18

// LineItem is the minimal shape the calculator needs from a cart entry.
type LineItem struct {
	UnitPrice     int64 `json:"unitPrice"`
	OriginalPrice int64 `json:"originalPrice,omitempty"`
	Quantity      int   `json:"quantity"`
}

// Quote is the breakdown shown at checkout.
type Quote struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
	Savings  int64 `json:"savings"`
}

// Calculate folds line items into a Quote. Items with quantity below one are
// ignored (removing below one removes the item). Savings counts only items
// whose original price exceeds the discounted unit price.
func Calculate(items []LineItem) Quote {
	var q Quote
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		qty := int64(item.Quantity)
		q.Subtotal += item.UnitPrice * qty
		if item.OriginalPrice > item.UnitPrice {
			q.Savings += (item.OriginalPrice - item.UnitPrice) * qty
		}
	}
	q.Tax = roundHalfUpPercent(q.Subtotal, TaxRatePercent)
	q.Total = q.Subtotal + q.Tax
	return q
}

// roundHalfUpPercent computes amount*pct/100 rounded half-up, in integer
// arithmetic. Amounts are non-negative.
func roundHalfUpPercent(amount, pct int64) int64 {
	return (amount*pct + 50) / 100
}
