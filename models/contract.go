package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract is a signed agreement with a client. Signatures are opaque blobs
// (base64 data URLs as captured by the signing surface) tagged with how they
// were produced.
type Contract struct {
	ID       string  `json:"id"`
	Number   string  `json:"number"`
	ClientID string  `json:"clientId"`
	Client   *Client `json:"client,omitempty"`

	Title string `json:"title"`
	Body  string `json:"body,omitempty"`

	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate,omitempty"`
	SignatureDate string `json:"signatureDate,omitempty"`

	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
	Status   string          `json:"status"` // draft, sent, signed, active, completed, terminated

	ClientSignature     string `json:"clientSignature,omitempty"`
	ClientSignatureType string `json:"clientSignatureType,omitempty"` // drawn, typed
	OwnerSignature      string `json:"ownerSignature,omitempty"`
	OwnerSignatureType  string `json:"ownerSignatureType,omitempty"`

	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Contract) Validate() string {
	if c.ClientID == "" && c.Client == nil {
		return "client is required"
	}
	if c.Title == "" {
		return "title is required"
	}
	if c.Value.IsNegative() {
		return "value must be non-negative"
	}
	if c.Status == "" {
		c.Status = "draft"
	}
	switch c.Status {
	case "draft", "sent", "signed", "active", "completed", "terminated":
	default:
		return "status must be one of: draft, sent, signed, active, completed, terminated"
	}
	if msg := validSignatureType(c.ClientSignatureType); msg != "" {
		return msg
	}
	return validSignatureType(c.OwnerSignatureType)
}

func validSignatureType(t string) string {
	switch t {
	case "", "drawn", "typed":
		return ""
	default:
		return "signature type must be one of: drawn, typed"
	}
}
