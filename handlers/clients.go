package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nikhilps/docledger/models"
)

// ListClients lists all clients
// @Summary      List clients
// @Description  Get all clients, newest first.
// @Tags         clients
// @Produce      json
// @Param        search  query     string  false  "Search by name, email, or phone"
// @Success      200     {object}  Response{data=[]models.Client}
// @Router       /clients [get]
// @Security     BasicAuth
func ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := Ledger.Clients(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if search := r.URL.Query().Get("search"); search != "" {
		s := strings.ToLower(search)
		filtered := clients[:0]
		for _, c := range clients {
			if strings.Contains(strings.ToLower(c.Name), s) ||
				strings.Contains(strings.ToLower(c.Email), s) ||
				strings.Contains(strings.ToLower(c.Phone), s) {
				filtered = append(filtered, c)
			}
		}
		clients = filtered
	}
	if clients == nil {
		clients = []models.Client{}
	}
	writeJSON(w, http.StatusOK, clients)
}

// GetClient retrieves a single client by ID
// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  Response{data=models.Client}
// @Failure      404  {object}  Response{error=string}
// @Router       /clients/{id} [get]
// @Security     BasicAuth
func GetClient(w http.ResponseWriter, r *http.Request) {
	c, err := Ledger.Client(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateClient creates a new client
// @Summary      Create client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client  body      models.Client  true  "Client contents"
// @Success      201     {object}  Response{data=models.Client}
// @Failure      400     {object}  Response{error=string}
// @Router       /clients [post]
// @Security     BasicAuth
func CreateClient(w http.ResponseWriter, r *http.Request) {
	var c models.Client
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := Ledger.SaveClient(r.Context(), &c); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateClient updates an existing client
// @Summary      Update client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id      path      string         true  "Client ID"
// @Param        client  body      models.Client  true  "Updated client contents"
// @Success      200     {object}  Response{data=models.Client}
// @Failure      400     {object}  Response{error=string}
// @Failure      404     {object}  Response{error=string}
// @Router       /clients/{id} [put]
// @Security     BasicAuth
func UpdateClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := Ledger.Client(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var c models.Client
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	c.ID = id
	if c.CreatedAt.IsZero() {
		c.CreatedAt = existing.CreatedAt
	}
	if err := Ledger.SaveClient(r.Context(), &c); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteClient deletes a client
// @Summary      Delete client
// @Description  Remove a client. Refused with 409 if invoices still reference it, unless force=true.
// @Tags         clients
// @Produce      json
// @Param        id     path      string  true   "Client ID"
// @Param        force  query     bool    false  "Delete even when referenced by invoices"
// @Success      200    {object}  Response{data=map[string]string}
// @Failure      404    {object}  Response{error=string}
// @Failure      409    {object}  Response{error=string}
// @Router       /clients/{id} [delete]
// @Security     BasicAuth
func DeleteClient(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"
	if err := Ledger.DeleteClient(r.Context(), chi.URLParam(r, "id"), force); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
