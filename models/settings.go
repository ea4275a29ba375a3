package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the per-tenant singleton holding business identity, document
// defaults, and the number sequences. Each Next*Number counter is the next
// value to assign: monotonic, incremented exactly once per issued document,
// never decremented, and never reused even when a document is later deleted.
type Settings struct {
	BusinessName  string `json:"businessName"`
	BusinessEmail string `json:"businessEmail"`
	BusinessPhone string `json:"businessPhone,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	ZipCode       string `json:"zipCode,omitempty"`
	Country       string `json:"country,omitempty"`
	TaxID         string `json:"taxId,omitempty"`
	LogoURL       string `json:"logoUrl,omitempty"`

	DefaultCurrency     string          `json:"defaultCurrency"`
	DefaultTaxRate      decimal.Decimal `json:"defaultTaxRate"`
	DefaultPaymentTerms string          `json:"defaultPaymentTerms"`

	InvoicePrefix   string `json:"invoicePrefix"`
	QuotationPrefix string `json:"quotationPrefix"`
	ReceiptPrefix   string `json:"receiptPrefix"`
	ContractPrefix  string `json:"contractPrefix"`

	NextInvoiceNumber   int `json:"nextInvoiceNumber"`
	NextQuotationNumber int `json:"nextQuotationNumber"`
	NextReceiptNumber   int `json:"nextReceiptNumber"`
	NextContractNumber  int `json:"nextContractNumber"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultSettings returns the settings created on first access.
func DefaultSettings() Settings {
	return Settings{
		DefaultCurrency:     "USD",
		DefaultPaymentTerms: "Net 30",
		InvoicePrefix:       "INV-",
		QuotationPrefix:     "QUO-",
		ReceiptPrefix:       "REC-",
		ContractPrefix:      "CON-",
		NextInvoiceNumber:   1,
		NextQuotationNumber: 1,
		NextReceiptNumber:   1,
		NextContractNumber:  1,
	}
}

func (s *Settings) Validate() string {
	if s.DefaultTaxRate.IsNegative() {
		return "defaultTaxRate must be non-negative"
	}
	// Zero means "leave the stored counter unchanged"; the store keeps the
	// counters monotonic on write.
	if s.NextInvoiceNumber < 0 || s.NextQuotationNumber < 0 ||
		s.NextReceiptNumber < 0 || s.NextContractNumber < 0 {
		return "number sequences must be non-negative"
	}
	return ""
}
