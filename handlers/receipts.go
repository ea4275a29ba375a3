package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nikhilps/docledger/models"
	"github.com/nikhilps/docledger/store"
)

// ListReceipts lists all receipts
// @Summary      List receipts
// @Tags         receipts
// @Produce      json
// @Param        clientId  query     string  false  "Filter by client"
// @Param        search    query     string  false  "Search by number, invoice number, or client name"
// @Success      200       {object}  Response{data=[]models.Receipt}
// @Router       /receipts [get]
// @Security     BasicAuth
func ListReceipts(w http.ResponseWriter, r *http.Request) {
	receipts, err := Ledger.Receipts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	search := strings.ToLower(r.URL.Query().Get("search"))

	filtered := receipts[:0]
	for _, rec := range receipts {
		if clientID != "" && rec.ClientID != clientID {
			continue
		}
		if search != "" {
			match := strings.Contains(strings.ToLower(rec.Number), search) ||
				strings.Contains(strings.ToLower(rec.InvoiceNumber), search) ||
				(rec.Client != nil && strings.Contains(strings.ToLower(rec.Client.Name), search))
			if !match {
				continue
			}
		}
		filtered = append(filtered, rec)
	}
	if filtered == nil {
		filtered = []models.Receipt{}
	}
	writeJSON(w, http.StatusOK, filtered)
}

// GetReceipt retrieves a single receipt by ID
// @Summary      Get receipt
// @Tags         receipts
// @Produce      json
// @Param        id   path      string  true  "Receipt ID"
// @Success      200  {object}  Response{data=models.Receipt}
// @Failure      404  {object}  Response{error=string}
// @Router       /receipts/{id} [get]
// @Security     BasicAuth
func GetReceipt(w http.ResponseWriter, r *http.Request) {
	rec, err := Ledger.Receipt(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// NextReceiptNumber previews the next receipt number
// @Summary      Preview next receipt number
// @Tags         receipts
// @Produce      json
// @Success      200  {object}  Response{data=map[string]string}
// @Router       /receipts/next-number [get]
// @Security     BasicAuth
func NextReceiptNumber(w http.ResponseWriter, r *http.Request) {
	number, err := Ledger.PeekNumber(r.Context(), store.DocReceipt)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"number": number})
}

// CreateReceipt creates a new receipt
// @Summary      Create receipt
// @Description  Create a receipt carrying either its own line items or a reference to a settled invoice. Receipts are created paid.
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        receipt  body      models.Receipt  true  "Receipt contents"
// @Success      201      {object}  Response{data=models.Receipt}
// @Failure      400      {object}  Response{error=string}
// @Router       /receipts [post]
// @Security     BasicAuth
func CreateReceipt(w http.ResponseWriter, r *http.Request) {
	var rec models.Receipt
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := Ledger.SaveReceipt(r.Context(), &rec); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// UpdateReceipt updates an existing receipt
// @Summary      Update receipt
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Receipt ID"
// @Param        receipt  body      models.Receipt  true  "Updated receipt contents"
// @Success      200      {object}  Response{data=models.Receipt}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Router       /receipts/{id} [put]
// @Security     BasicAuth
func UpdateReceipt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := Ledger.Receipt(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var rec models.Receipt
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	rec.ID = id
	if rec.Number == "" {
		rec.Number = existing.Number
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = existing.CreatedAt
	}
	if err := Ledger.SaveReceipt(r.Context(), &rec); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// DeleteReceipt deletes a receipt
// @Summary      Delete receipt
// @Tags         receipts
// @Produce      json
// @Param        id   path      string  true  "Receipt ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /receipts/{id} [delete]
// @Security     BasicAuth
func DeleteReceipt(w http.ResponseWriter, r *http.Request) {
	if err := Ledger.DeleteReceipt(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
