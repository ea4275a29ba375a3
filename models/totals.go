package models

import "github.com/shopspring/decimal"

// Discount types.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// DocumentTotals holds the derived money fields shared by priced documents.
// Subtotal, TaxAmount, and Total are cached projections recomputed from the
// line items on every save.
type DocumentTotals struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	TaxAmount    decimal.Decimal `json:"taxAmount"`
	Discount     decimal.Decimal `json:"discount"`
	DiscountType string          `json:"discountType"`
	Total        decimal.Decimal `json:"total"`
}

// Recalculate recomputes each item amount and every derived total.
// Tax is computed on the pre-discount subtotal.
func (t *DocumentTotals) Recalculate(items []LineItem) {
	if t.DiscountType == "" {
		t.DiscountType = DiscountFixed
	}
	subtotal := decimal.Zero
	for i := range items {
		items[i].Amount = Round2(items[i].Quantity.Mul(items[i].Rate))
		subtotal = subtotal.Add(items[i].Amount)
	}
	t.Subtotal = Round2(subtotal)
	t.TaxAmount = Round2(t.Subtotal.Mul(t.TaxRate).Div(hundred))
	t.Total = Round2(t.Subtotal.Sub(t.DiscountAmount()).Add(t.TaxAmount))
}

// DiscountAmount resolves the configured discount to an absolute amount.
func (t *DocumentTotals) DiscountAmount() decimal.Decimal {
	if t.DiscountType == DiscountPercentage {
		return Round2(t.Subtotal.Mul(t.Discount).Div(hundred))
	}
	return Round2(t.Discount)
}

// Validate checks the totals after Recalculate has run. A discount larger
// than the subtotal is rejected rather than producing a negative total.
func (t *DocumentTotals) Validate() string {
	if t.TaxRate.IsNegative() {
		return "taxRate must be non-negative"
	}
	if t.Discount.IsNegative() {
		return "discount must be non-negative"
	}
	switch t.DiscountType {
	case DiscountPercentage, DiscountFixed:
	default:
		return "discountType must be one of: percentage, fixed"
	}
	if t.DiscountAmount().GreaterThan(t.Subtotal) {
		return "discount cannot exceed subtotal"
	}
	return ""
}
