package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rkeng/billing-api/internal/domain/billing"
	"github.com/rkeng/billing-api/internal/domain/entity"
)

func items(pairs ...[2]int64) []*entity.BillItem {
	out := make([]*entity.BillItem, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, &entity.BillItem{
			Quantity: p[0],
			Rate:     p[1],
			Total:    billing.ItemTotal(p[0], p[1]),
		})
	}
	return out
}

// Reference vector: Bolt 10x5 + Nut 20x2, no GST -> 90 / 0 / 90.
func TestCompute_NoGST(t *testing.T) {
	got := billing.Compute(items([2]int64{10, 5}, [2]int64{20, 2}), false, 18)

	assert.Equal(t, int64(90), got.SubTotal)
	assert.Equal(t, int64(0), got.GSTAmount)
	assert.Equal(t, int64(90), got.GrandTotal)
}

// Same bill with GST 18%: floor(90*18/100) = 16, grand total 106.
func TestCompute_GST18TruncatesDown(t *testing.T) {
	got := billing.Compute(items([2]int64{10, 5}, [2]int64{20, 2}), true, 18)

	assert.Equal(t, int64(90), got.SubTotal)
	assert.Equal(t, int64(16), got.GSTAmount, "16.2 must truncate to 16")
	assert.Equal(t, int64(106), got.GrandTotal)
}

func TestCompute_EmptyItems(t *testing.T) {
	got := billing.Compute(nil, true, 18)

	assert.Equal(t, int64(0), got.SubTotal)
	assert.Equal(t, int64(0), got.GSTAmount)
	assert.Equal(t, int64(0), got.GrandTotal)
}

func TestGSTAmount_Bounds(t *testing.T) {
	assert.Equal(t, int64(0), billing.GSTAmount(1000, true, 0))
	assert.Equal(t, int64(1000), billing.GSTAmount(1000, true, 100))
	assert.Equal(t, int64(0), billing.GSTAmount(1000, false, 100))
}

// GrandTotal == SubTotal + GSTAmount for every percent in [0,100].
func TestCompute_GrandTotalIdentity(t *testing.T) {
	set := items([2]int64{3, 7}, [2]int64{1, 999}, [2]int64{0, 50})
	for pct := 0; pct <= 100; pct++ {
		got := billing.Compute(set, true, pct)
		assert.Equal(t, got.SubTotal+got.GSTAmount, got.GrandTotal, "percent %d", pct)
		assert.Equal(t, got.SubTotal*int64(pct)/100, got.GSTAmount, "percent %d", pct)
	}
}

func TestItemTotal(t *testing.T) {
	assert.Equal(t, int64(50), billing.ItemTotal(10, 5))
	assert.Equal(t, int64(0), billing.ItemTotal(0, 500))
	assert.Equal(t, int64(0), billing.ItemTotal(500, 0))
}
