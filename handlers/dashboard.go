package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/nikhilps/docledger/models"
)

// DashboardSummary aggregates the ledger for the overview page.
type DashboardSummary struct {
	Clients     int `json:"clients"`
	Invoices    int `json:"invoices"`
	Quotations  int `json:"quotations"`
	Receipts    int `json:"receipts"`
	Contracts   int `json:"contracts"`
	TimeEntries int `json:"timeEntries"`

	InvoicesByStatus map[string]int `json:"invoicesByStatus"`

	TotalInvoiced   decimal.Decimal `json:"totalInvoiced"`
	TotalPaid       decimal.Decimal `json:"totalPaid"`
	Outstanding     decimal.Decimal `json:"outstanding"`
	UnbilledTime    decimal.Decimal `json:"unbilledTime"`
	UnbilledMinutes int             `json:"unbilledMinutes"`
}

// GetDashboard returns ledger-wide counts and totals
// @Summary      Dashboard summary
// @Description  Counts per collection, invoice totals by status, outstanding receivables, and unbilled time.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  Response{data=DashboardSummary}
// @Router       /dashboard [get]
// @Security     BasicAuth
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := Ledger.Clients(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	invoices, err := Ledger.Invoices(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	quotations, err := Ledger.Quotations(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	receipts, err := Ledger.Receipts(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	contracts, err := Ledger.Contracts(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	entries, err := Ledger.TimeEntries(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	summary := DashboardSummary{
		Clients:          len(clients),
		Invoices:         len(invoices),
		Quotations:       len(quotations),
		Receipts:         len(receipts),
		Contracts:        len(contracts),
		TimeEntries:      len(entries),
		InvoicesByStatus: map[string]int{},
	}

	for _, inv := range invoices {
		summary.InvoicesByStatus[inv.Status]++
		switch inv.Status {
		case "cancelled":
		case "paid":
			summary.TotalInvoiced = summary.TotalInvoiced.Add(inv.Total)
			summary.TotalPaid = summary.TotalPaid.Add(inv.Total)
		default:
			summary.TotalInvoiced = summary.TotalInvoiced.Add(inv.Total)
			if inv.Status == "sent" || inv.Status == "overdue" {
				summary.Outstanding = summary.Outstanding.Add(inv.Total)
			}
		}
	}

	for _, e := range entries {
		if e.Billable && !e.Invoiced {
			summary.UnbilledTime = summary.UnbilledTime.Add(e.Amount)
			summary.UnbilledMinutes += e.DurationMinutes
		}
	}
	summary.UnbilledTime = models.Round2(summary.UnbilledTime)

	writeJSON(w, http.StatusOK, summary)
}
