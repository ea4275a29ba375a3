package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceValidate(t *testing.T) {
	valid := func() Invoice {
		return Invoice{
			ClientID: "c1",
			Items:    []LineItem{{Description: "Work", Quantity: d(t, "1"), Rate: d(t, "100")}},
		}
	}

	t.Run("empty status defaults to draft", func(t *testing.T) {
		inv := valid()
		inv.Recalculate(inv.Items)
		assert.Empty(t, inv.Validate())
		assert.Equal(t, "draft", inv.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		inv := valid()
		inv.Status = "archived"
		inv.Recalculate(inv.Items)
		assert.Equal(t, "status must be one of: draft, sent, paid, overdue, cancelled", inv.Validate())
	})

	t.Run("no items rejected", func(t *testing.T) {
		inv := valid()
		inv.Items = nil
		assert.Equal(t, "at least one line item is required", inv.Validate())
	})

	t.Run("negative item quantity rejected", func(t *testing.T) {
		inv := valid()
		inv.Items[0].Quantity = d(t, "-1")
		assert.NotEmpty(t, inv.Validate())
	})
}

func TestReceiptValidate(t *testing.T) {
	t.Run("items or invoice number required", func(t *testing.T) {
		r := Receipt{ClientID: "c1"}
		assert.Equal(t, "either line items or an invoice number is required", r.Validate())
	})

	t.Run("items and invoice number mutually exclusive", func(t *testing.T) {
		r := Receipt{
			ClientID:      "c1",
			InvoiceNumber: "INV-0001",
			Items:         []LineItem{{Quantity: d(t, "1"), Rate: d(t, "50")}},
		}
		assert.Equal(t, "line items and an invoice number are mutually exclusive", r.Validate())
	})

	t.Run("status forced to paid", func(t *testing.T) {
		r := Receipt{ClientID: "c1", InvoiceNumber: "INV-0001"}
		assert.Empty(t, r.Validate())
		assert.Equal(t, "paid", r.Status)

		r.Status = "pending"
		assert.Equal(t, "status must be: paid", r.Validate())
	})
}

func TestContractValidate(t *testing.T) {
	valid := func() Contract {
		return Contract{ClientID: "c1", Title: "Retainer", StartDate: "2026-01-01"}
	}

	t.Run("defaults to draft", func(t *testing.T) {
		c := valid()
		assert.Empty(t, c.Validate())
		assert.Equal(t, "draft", c.Status)
	})

	t.Run("unknown signature type rejected", func(t *testing.T) {
		c := valid()
		c.ClientSignatureType = "stamped"
		assert.Equal(t, "signature type must be one of: drawn, typed", c.Validate())
	})
}

func TestResumeValidate(t *testing.T) {
	t.Run("opaque data must be valid JSON", func(t *testing.T) {
		r := Resume{Name: "Main", Data: json.RawMessage(`{"sections":[]}`)}
		assert.Empty(t, r.Validate())

		r.Data = json.RawMessage(`{"sections":`)
		assert.Equal(t, "data must be valid JSON", r.Validate())
	})
}

func TestDecimalJSON(t *testing.T) {
	// Money fields serialize as plain JSON numbers, matching the export format.
	inv := Invoice{ClientID: "c1", Items: []LineItem{{Quantity: d(t, "2"), Rate: d(t, "50")}}}
	inv.TaxRate = d(t, "10")
	inv.Recalculate(inv.Items)

	raw, err := json.Marshal(inv)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"subtotal":100`)
	assert.Contains(t, string(raw), `"total":110`)
	assert.NotContains(t, string(raw), `"subtotal":"`)
}
