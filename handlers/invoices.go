package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nikhilps/docledger/models"
	"github.com/nikhilps/docledger/store"
)

// ListInvoices lists all invoices
// @Summary      List invoices
// @Description  Get all invoices with client and line items resolved, newest first.
// @Tags         invoices
// @Produce      json
// @Param        status     query     string  false  "Filter by status"
// @Param        clientId   query     string  false  "Filter by client"
// @Param        search     query     string  false  "Search by number, notes, or client name"
// @Success      200        {object}  Response{data=[]models.Invoice}
// @Router       /invoices [get]
// @Security     BasicAuth
func ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := Ledger.Invoices(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := r.URL.Query().Get("status")
	clientID := r.URL.Query().Get("clientId")
	search := strings.ToLower(r.URL.Query().Get("search"))

	filtered := invoices[:0]
	for _, inv := range invoices {
		if status != "" && inv.Status != status {
			continue
		}
		if clientID != "" && inv.ClientID != clientID {
			continue
		}
		if search != "" && !invoiceMatches(inv, search) {
			continue
		}
		filtered = append(filtered, inv)
	}
	if filtered == nil {
		filtered = []models.Invoice{}
	}
	writeJSON(w, http.StatusOK, filtered)
}

func invoiceMatches(inv models.Invoice, search string) bool {
	if strings.Contains(strings.ToLower(inv.Number), search) ||
		strings.Contains(strings.ToLower(inv.Notes), search) {
		return true
	}
	return inv.Client != nil && strings.Contains(strings.ToLower(inv.Client.Name), search)
}

// GetInvoice retrieves a single invoice by ID
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  Response{data=models.Invoice}
// @Failure      404  {object}  Response{error=string}
// @Router       /invoices/{id} [get]
// @Security     BasicAuth
func GetInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := Ledger.Invoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// NextInvoiceNumber previews the next invoice number
// @Summary      Preview next invoice number
// @Description  Pure read of the number the next invoice would receive; the save itself assigns atomically.
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  Response{data=map[string]string}
// @Router       /invoices/next-number [get]
// @Security     BasicAuth
func NextInvoiceNumber(w http.ResponseWriter, r *http.Request) {
	number, err := Ledger.PeekNumber(r.Context(), store.DocInvoice)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"number": number})
}

// CreateInvoice creates a new invoice
// @Summary      Create invoice
// @Description  Create an invoice. Empty id and number are assigned; totals are recomputed from the line items.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice  body      models.Invoice  true  "Invoice contents"
// @Success      201      {object}  Response{data=models.Invoice}
// @Failure      400      {object}  Response{error=string}
// @Router       /invoices [post]
// @Security     BasicAuth
func CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var inv models.Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := Ledger.SaveInvoice(r.Context(), &inv); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

// UpdateInvoice updates an existing invoice
// @Summary      Update invoice
// @Description  Overwrite an invoice. Line items are replaced wholesale and totals recomputed.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Invoice ID"
// @Param        invoice  body      models.Invoice  true  "Updated invoice contents"
// @Success      200      {object}  Response{data=models.Invoice}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Router       /invoices/{id} [put]
// @Security     BasicAuth
func UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := Ledger.Invoice(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var inv models.Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	inv.ID = id
	if inv.Number == "" {
		inv.Number = existing.Number
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = existing.CreatedAt
	}
	if err := Ledger.SaveInvoice(r.Context(), &inv); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// DeleteInvoice deletes an invoice
// @Summary      Delete invoice
// @Description  Remove an invoice permanently. Its number is never reused.
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /invoices/{id} [delete]
// @Security     BasicAuth
func DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	if err := Ledger.DeleteInvoice(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
