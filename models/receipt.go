package models

import "time"

// Receipt acknowledges a payment. It carries either its own line items or a
// reference to the invoice it settles, never both.
type Receipt struct {
	ID       string     `json:"id"`
	Number   string     `json:"number"`
	ClientID string     `json:"clientId"`
	Client   *Client    `json:"client,omitempty"`
	Items    []LineItem `json:"items,omitempty"`

	// InvoiceNumber references the settled invoice when the receipt has no
	// line items of its own. Totals are then taken as supplied by the caller
	// (copied from the invoice) instead of being derived.
	InvoiceNumber string `json:"invoiceNumber,omitempty"`

	PaymentDate   string `json:"paymentDate"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	Status        string `json:"status"` // always paid

	DocumentTotals
	Currency string `json:"currency"`
	Notes    string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Receipt) Validate() string {
	if r.ClientID == "" && r.Client == nil {
		return "client is required"
	}
	if len(r.Items) == 0 && r.InvoiceNumber == "" {
		return "either line items or an invoice number is required"
	}
	if len(r.Items) > 0 && r.InvoiceNumber != "" {
		return "line items and an invoice number are mutually exclusive"
	}
	for i := range r.Items {
		if msg := r.Items[i].Validate(); msg != "" {
			return msg
		}
	}
	if r.Status == "" {
		r.Status = "paid"
	}
	if r.Status != "paid" {
		return "status must be: paid"
	}
	if len(r.Items) > 0 {
		return r.DocumentTotals.Validate()
	}
	return ""
}
