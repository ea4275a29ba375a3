package models

import "github.com/shopspring/decimal"

func init() {
	// Monetary values serialize as plain JSON numbers so that API responses
	// and export files keep the shapes existing clients already parse.
	decimal.MarshalJSONWithoutQuotes = true
}

var hundred = decimal.NewFromInt(100)

// Round2 rounds to two decimal places, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
