package billing

import "github.com/rkeng/billing-api/internal/domain/entity"

// Totals is the finalized money triple of a bill. All values are integer
// minor currency units; there is no floating point anywhere in the math.
type Totals struct {
	SubTotal   int64
	GSTAmount  int64
	GrandTotal int64
}

// ItemTotal computes the line amount: quantity * rate.
func ItemTotal(quantity, rate int64) int64 {
	return quantity * rate
}

// Subtotal sums the line totals of the current items.
func Subtotal(items []*entity.BillItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Total
	}
	return sum
}

// GSTAmount computes subtotal * percent / 100 with integer truncation
// (not banker's rounding) when GST is enabled, else 0.
func GSTAmount(subtotal int64, enabled bool, percent int) int64 {
	if !enabled {
		return 0
	}
	return subtotal * int64(percent) / 100
}

// Compute derives the full totals triple from the current item rows.
// This is the single place bill money math happens; it must be reproducible
// from persisted rows alone.
func Compute(items []*entity.BillItem, gstEnabled bool, gstPercent int) Totals {
	sub := Subtotal(items)
	gst := GSTAmount(sub, gstEnabled, gstPercent)
	return Totals{
		SubTotal:   sub,
		GSTAmount:  gst,
		GrandTotal: sub + gst,
	}
}
