package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nikhilps/docledger/models"
)

// ListTimeEntries lists all time entries
// @Summary      List time entries
// @Tags         time-entries
// @Produce      json
// @Param        clientId  query     string  false  "Filter by client"
// @Param        billable  query     bool    false  "Filter by billable flag"
// @Param        invoiced  query     bool    false  "Filter by invoiced flag"
// @Param        search    query     string  false  "Search by project, description, or client name"
// @Success      200       {object}  Response{data=[]models.TimeEntry}
// @Router       /time-entries [get]
// @Security     BasicAuth
func ListTimeEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := Ledger.TimeEntries(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	q := r.URL.Query()
	clientID := q.Get("clientId")
	billable := q.Get("billable")
	invoiced := q.Get("invoiced")
	search := strings.ToLower(q.Get("search"))

	filtered := entries[:0]
	for _, e := range entries {
		if clientID != "" && e.ClientID != clientID {
			continue
		}
		if billable != "" && e.Billable != (billable == "true") {
			continue
		}
		if invoiced != "" && e.Invoiced != (invoiced == "true") {
			continue
		}
		if search != "" {
			match := strings.Contains(strings.ToLower(e.Project), search) ||
				strings.Contains(strings.ToLower(e.Description), search) ||
				strings.Contains(strings.ToLower(e.ClientName), search)
			if !match {
				continue
			}
		}
		filtered = append(filtered, e)
	}
	if filtered == nil {
		filtered = []models.TimeEntry{}
	}
	writeJSON(w, http.StatusOK, filtered)
}

// GetTimeEntry retrieves a single time entry by ID
// @Summary      Get time entry
// @Tags         time-entries
// @Produce      json
// @Param        id   path      string  true  "Time entry ID"
// @Success      200  {object}  Response{data=models.TimeEntry}
// @Failure      404  {object}  Response{error=string}
// @Router       /time-entries/{id} [get]
// @Security     BasicAuth
func GetTimeEntry(w http.ResponseWriter, r *http.Request) {
	e, err := Ledger.TimeEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// CreateTimeEntry creates a new time entry
// @Summary      Create time entry
// @Description  Create a time entry. Duration and amount are derived from the clock times and hourly rate.
// @Tags         time-entries
// @Accept       json
// @Produce      json
// @Param        entry  body      models.TimeEntry  true  "Time entry contents"
// @Success      201    {object}  Response{data=models.TimeEntry}
// @Failure      400    {object}  Response{error=string}
// @Router       /time-entries [post]
// @Security     BasicAuth
func CreateTimeEntry(w http.ResponseWriter, r *http.Request) {
	var e models.TimeEntry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := Ledger.SaveTimeEntry(r.Context(), &e); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

// UpdateTimeEntry updates an existing time entry
// @Summary      Update time entry
// @Tags         time-entries
// @Accept       json
// @Produce      json
// @Param        id     path      string            true  "Time entry ID"
// @Param        entry  body      models.TimeEntry  true  "Updated time entry contents"
// @Success      200    {object}  Response{data=models.TimeEntry}
// @Failure      400    {object}  Response{error=string}
// @Failure      404    {object}  Response{error=string}
// @Router       /time-entries/{id} [put]
// @Security     BasicAuth
func UpdateTimeEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := Ledger.TimeEntry(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var e models.TimeEntry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	e.ID = id
	if e.CreatedAt.IsZero() {
		e.CreatedAt = existing.CreatedAt
	}
	if err := Ledger.SaveTimeEntry(r.Context(), &e); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// DeleteTimeEntry deletes a time entry
// @Summary      Delete time entry
// @Tags         time-entries
// @Produce      json
// @Param        id   path      string  true  "Time entry ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /time-entries/{id} [delete]
// @Security     BasicAuth
func DeleteTimeEntry(w http.ResponseWriter, r *http.Request) {
	if err := Ledger.DeleteTimeEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
