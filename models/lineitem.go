package models

import "github.com/shopspring/decimal"

// LineItem is a single priced row on an invoice, quotation, or receipt.
// Amount is a cached projection of Quantity x Rate and is recomputed on
// every save; the persisted value is never trusted.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

func (li *LineItem) Validate() string {
	if li.Quantity.IsNegative() {
		return "quantity must be non-negative"
	}
	if li.Rate.IsNegative() {
		return "rate must be non-negative"
	}
	return ""
}
