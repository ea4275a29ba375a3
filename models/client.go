package models

import "time"

// Client represents a customer a document is addressed to.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	ZipCode   string    `json:"zipCode,omitempty"`
	Country   string    `json:"country,omitempty"`
	TaxID     string    `json:"taxId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Client) Validate() string {
	if c.Name == "" {
		return "name is required"
	}
	if c.Email == "" {
		return "email is required"
	}
	return ""
}
