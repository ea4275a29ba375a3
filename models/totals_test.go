package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}

func twoItems(t *testing.T) []LineItem {
	return []LineItem{
		{Description: "Design", Quantity: d(t, "2"), Rate: d(t, "50")},
		{Description: "Hosting", Quantity: d(t, "1"), Rate: d(t, "25")},
	}
}

func TestRecalculate(t *testing.T) {
	t.Run("no discount", func(t *testing.T) {
		items := twoItems(t)
		totals := DocumentTotals{TaxRate: d(t, "10")}
		totals.Recalculate(items)

		assert.Equal(t, "100.00", items[0].Amount.StringFixed(2))
		assert.Equal(t, "25.00", items[1].Amount.StringFixed(2))
		assert.Equal(t, "125.00", totals.Subtotal.StringFixed(2))
		assert.Equal(t, "12.50", totals.TaxAmount.StringFixed(2))
		assert.Equal(t, "137.50", totals.Total.StringFixed(2))
	})

	t.Run("percentage discount", func(t *testing.T) {
		items := twoItems(t)
		totals := DocumentTotals{
			TaxRate:      d(t, "10"),
			Discount:     d(t, "10"),
			DiscountType: DiscountPercentage,
		}
		totals.Recalculate(items)

		assert.Equal(t, "12.50", totals.DiscountAmount().StringFixed(2))
		// Tax stays on the pre-discount subtotal.
		assert.Equal(t, "12.50", totals.TaxAmount.StringFixed(2))
		assert.Equal(t, "125.00", totals.Total.StringFixed(2))
	})

	t.Run("fixed discount", func(t *testing.T) {
		items := twoItems(t)
		totals := DocumentTotals{
			TaxRate:      d(t, "10"),
			Discount:     d(t, "20"),
			DiscountType: DiscountFixed,
		}
		totals.Recalculate(items)

		assert.Equal(t, "117.50", totals.Total.StringFixed(2))
	})

	t.Run("empty discount type defaults to fixed", func(t *testing.T) {
		totals := DocumentTotals{}
		totals.Recalculate(nil)
		assert.Equal(t, DiscountFixed, totals.DiscountType)
		assert.Equal(t, "0.00", totals.Total.StringFixed(2))
	})

	t.Run("item amounts round half away from zero", func(t *testing.T) {
		items := []LineItem{{Quantity: d(t, "3"), Rate: d(t, "0.335")}}
		totals := DocumentTotals{}
		totals.Recalculate(items)
		assert.Equal(t, "1.01", items[0].Amount.StringFixed(2))
	})

	t.Run("recalculate overwrites stale caches", func(t *testing.T) {
		items := twoItems(t)
		totals := DocumentTotals{
			Subtotal:  d(t, "999"),
			TaxAmount: d(t, "999"),
			Total:     d(t, "999"),
		}
		totals.Recalculate(items)
		assert.Equal(t, "125.00", totals.Subtotal.StringFixed(2))
		assert.Equal(t, "125.00", totals.Total.StringFixed(2))
	})
}

func TestTotalsValidate(t *testing.T) {
	t.Run("discount exceeding subtotal rejected", func(t *testing.T) {
		items := twoItems(t)
		totals := DocumentTotals{Discount: d(t, "200"), DiscountType: DiscountFixed}
		totals.Recalculate(items)
		assert.Equal(t, "discount cannot exceed subtotal", totals.Validate())
	})

	t.Run("negative tax rate rejected", func(t *testing.T) {
		totals := DocumentTotals{TaxRate: d(t, "-1"), DiscountType: DiscountFixed}
		assert.Equal(t, "taxRate must be non-negative", totals.Validate())
	})

	t.Run("unknown discount type rejected", func(t *testing.T) {
		totals := DocumentTotals{DiscountType: "relative"}
		assert.Equal(t, "discountType must be one of: percentage, fixed", totals.Validate())
	})

	t.Run("discount equal to subtotal allowed", func(t *testing.T) {
		items := twoItems(t)
		totals := DocumentTotals{Discount: d(t, "125"), DiscountType: DiscountFixed}
		totals.Recalculate(items)
		assert.Empty(t, totals.Validate())
		assert.Equal(t, "0.00", totals.Total.StringFixed(2))
	})
}
