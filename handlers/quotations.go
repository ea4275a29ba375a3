package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nikhilps/docledger/models"
	"github.com/nikhilps/docledger/store"
)

// ListQuotations lists all quotations
// @Summary      List quotations
// @Tags         quotations
// @Produce      json
// @Param        status    query     string  false  "Filter by status"
// @Param        clientId  query     string  false  "Filter by client"
// @Param        search    query     string  false  "Search by number, notes, or client name"
// @Success      200       {object}  Response{data=[]models.Quotation}
// @Router       /quotations [get]
// @Security     BasicAuth
func ListQuotations(w http.ResponseWriter, r *http.Request) {
	quotations, err := Ledger.Quotations(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := r.URL.Query().Get("status")
	clientID := r.URL.Query().Get("clientId")
	search := strings.ToLower(r.URL.Query().Get("search"))

	filtered := quotations[:0]
	for _, q := range quotations {
		if status != "" && q.Status != status {
			continue
		}
		if clientID != "" && q.ClientID != clientID {
			continue
		}
		if search != "" {
			match := strings.Contains(strings.ToLower(q.Number), search) ||
				strings.Contains(strings.ToLower(q.Notes), search) ||
				(q.Client != nil && strings.Contains(strings.ToLower(q.Client.Name), search))
			if !match {
				continue
			}
		}
		filtered = append(filtered, q)
	}
	if filtered == nil {
		filtered = []models.Quotation{}
	}
	writeJSON(w, http.StatusOK, filtered)
}

// GetQuotation retrieves a single quotation by ID
// @Summary      Get quotation
// @Tags         quotations
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  Response{data=models.Quotation}
// @Failure      404  {object}  Response{error=string}
// @Router       /quotations/{id} [get]
// @Security     BasicAuth
func GetQuotation(w http.ResponseWriter, r *http.Request) {
	q, err := Ledger.Quotation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// NextQuotationNumber previews the next quotation number
// @Summary      Preview next quotation number
// @Tags         quotations
// @Produce      json
// @Success      200  {object}  Response{data=map[string]string}
// @Router       /quotations/next-number [get]
// @Security     BasicAuth
func NextQuotationNumber(w http.ResponseWriter, r *http.Request) {
	number, err := Ledger.PeekNumber(r.Context(), store.DocQuotation)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"number": number})
}

// CreateQuotation creates a new quotation
// @Summary      Create quotation
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        quotation  body      models.Quotation  true  "Quotation contents"
// @Success      201        {object}  Response{data=models.Quotation}
// @Failure      400        {object}  Response{error=string}
// @Router       /quotations [post]
// @Security     BasicAuth
func CreateQuotation(w http.ResponseWriter, r *http.Request) {
	var q models.Quotation
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := Ledger.SaveQuotation(r.Context(), &q); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

// UpdateQuotation updates an existing quotation
// @Summary      Update quotation
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id         path      string            true  "Quotation ID"
// @Param        quotation  body      models.Quotation  true  "Updated quotation contents"
// @Success      200        {object}  Response{data=models.Quotation}
// @Failure      400        {object}  Response{error=string}
// @Failure      404        {object}  Response{error=string}
// @Router       /quotations/{id} [put]
// @Security     BasicAuth
func UpdateQuotation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := Ledger.Quotation(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var q models.Quotation
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	q.ID = id
	if q.Number == "" {
		q.Number = existing.Number
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = existing.CreatedAt
	}
	if err := Ledger.SaveQuotation(r.Context(), &q); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// DeleteQuotation deletes a quotation
// @Summary      Delete quotation
// @Tags         quotations
// @Produce      json
// @Param        id   path      string  true  "Quotation ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /quotations/{id} [delete]
// @Security     BasicAuth
func DeleteQuotation(w http.ResponseWriter, r *http.Request) {
	if err := Ledger.DeleteQuotation(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
