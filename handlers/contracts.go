package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nikhilps/docledger/models"
	"github.com/nikhilps/docledger/store"
)

// ListContracts lists all contracts
// @Summary      List contracts
// @Tags         contracts
// @Produce      json
// @Param        status    query     string  false  "Filter by status"
// @Param        clientId  query     string  false  "Filter by client"
// @Param        search    query     string  false  "Search by number, title, or client name"
// @Success      200       {object}  Response{data=[]models.Contract}
// @Router       /contracts [get]
// @Security     BasicAuth
func ListContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := Ledger.Contracts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := r.URL.Query().Get("status")
	clientID := r.URL.Query().Get("clientId")
	search := strings.ToLower(r.URL.Query().Get("search"))

	filtered := contracts[:0]
	for _, c := range contracts {
		if status != "" && c.Status != status {
			continue
		}
		if clientID != "" && c.ClientID != clientID {
			continue
		}
		if search != "" {
			match := strings.Contains(strings.ToLower(c.Number), search) ||
				strings.Contains(strings.ToLower(c.Title), search) ||
				(c.Client != nil && strings.Contains(strings.ToLower(c.Client.Name), search))
			if !match {
				continue
			}
		}
		filtered = append(filtered, c)
	}
	if filtered == nil {
		filtered = []models.Contract{}
	}
	writeJSON(w, http.StatusOK, filtered)
}

// GetContract retrieves a single contract by ID
// @Summary      Get contract
// @Tags         contracts
// @Produce      json
// @Param        id   path      string  true  "Contract ID"
// @Success      200  {object}  Response{data=models.Contract}
// @Failure      404  {object}  Response{error=string}
// @Router       /contracts/{id} [get]
// @Security     BasicAuth
func GetContract(w http.ResponseWriter, r *http.Request) {
	c, err := Ledger.Contract(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// NextContractNumber previews the next contract number
// @Summary      Preview next contract number
// @Tags         contracts
// @Produce      json
// @Success      200  {object}  Response{data=map[string]string}
// @Router       /contracts/next-number [get]
// @Security     BasicAuth
func NextContractNumber(w http.ResponseWriter, r *http.Request) {
	number, err := Ledger.PeekNumber(r.Context(), store.DocContract)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"number": number})
}

// CreateContract creates a new contract
// @Summary      Create contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        contract  body      models.Contract  true  "Contract contents"
// @Success      201       {object}  Response{data=models.Contract}
// @Failure      400       {object}  Response{error=string}
// @Router       /contracts [post]
// @Security     BasicAuth
func CreateContract(w http.ResponseWriter, r *http.Request) {
	var c models.Contract
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := Ledger.SaveContract(r.Context(), &c); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateContract updates an existing contract
// @Summary      Update contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Param        id        path      string           true  "Contract ID"
// @Param        contract  body      models.Contract  true  "Updated contract contents"
// @Success      200       {object}  Response{data=models.Contract}
// @Failure      400       {object}  Response{error=string}
// @Failure      404       {object}  Response{error=string}
// @Router       /contracts/{id} [put]
// @Security     BasicAuth
func UpdateContract(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := Ledger.Contract(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var c models.Contract
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	c.ID = id
	if c.Number == "" {
		c.Number = existing.Number
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = existing.CreatedAt
	}
	if err := Ledger.SaveContract(r.Context(), &c); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteContract deletes a contract
// @Summary      Delete contract
// @Tags         contracts
// @Produce      json
// @Param        id   path      string  true  "Contract ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /contracts/{id} [delete]
// @Security     BasicAuth
func DeleteContract(w http.ResponseWriter, r *http.Request) {
	if err := Ledger.DeleteContract(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
