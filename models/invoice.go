package models

import "time"

// Invoice is a receivable bill issued to a client.
type Invoice struct {
	ID       string     `json:"id"`
	Number   string     `json:"number"`
	ClientID string     `json:"clientId"`
	Client   *Client    `json:"client,omitempty"`
	Items    []LineItem `json:"items"`

	IssueDate string `json:"issueDate"`
	DueDate   string `json:"dueDate"`
	Status    string `json:"status"` // draft, sent, paid, overdue, cancelled

	DocumentTotals
	Currency string `json:"currency"`
	Notes    string `json:"notes,omitempty"`
	Terms    string `json:"terms,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks required fields and the status domain. Run Recalculate
// first; the totals check depends on the computed subtotal.
func (inv *Invoice) Validate() string {
	if inv.ClientID == "" && inv.Client == nil {
		return "client is required"
	}
	if len(inv.Items) == 0 {
		return "at least one line item is required"
	}
	for i := range inv.Items {
		if msg := inv.Items[i].Validate(); msg != "" {
			return msg
		}
	}
	if inv.Status == "" {
		inv.Status = "draft"
	}
	switch inv.Status {
	case "draft", "sent", "paid", "overdue", "cancelled":
	default:
		return "status must be one of: draft, sent, paid, overdue, cancelled"
	}
	return inv.DocumentTotals.Validate()
}
