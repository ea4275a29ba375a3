package models

import "time"

// Quotation is a priced offer that may later be converted into an invoice.
type Quotation struct {
	ID       string     `json:"id"`
	Number   string     `json:"number"`
	ClientID string     `json:"clientId"`
	Client   *Client    `json:"client,omitempty"`
	Items    []LineItem `json:"items"`

	IssueDate  string `json:"issueDate"`
	ValidUntil string `json:"validUntil"`
	Status     string `json:"status"` // draft, sent, accepted, rejected, expired

	DocumentTotals
	Currency string `json:"currency"`
	Notes    string `json:"notes,omitempty"`
	Terms    string `json:"terms,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (q *Quotation) Validate() string {
	if q.ClientID == "" && q.Client == nil {
		return "client is required"
	}
	if len(q.Items) == 0 {
		return "at least one line item is required"
	}
	for i := range q.Items {
		if msg := q.Items[i].Validate(); msg != "" {
			return msg
		}
	}
	if q.Status == "" {
		q.Status = "draft"
	}
	switch q.Status {
	case "draft", "sent", "accepted", "rejected", "expired":
	default:
		return "status must be one of: draft, sent, accepted, rejected, expired"
	}
	return q.DocumentTotals.Validate()
}
