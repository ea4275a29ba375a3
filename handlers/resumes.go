package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nikhilps/docledger/models"
)

// ListResumes lists all resumes
// @Summary      List resumes
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Resume}
// @Router       /resumes [get]
// @Security     BasicAuth
func ListResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := Ledger.Resumes(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if resumes == nil {
		resumes = []models.Resume{}
	}
	writeJSON(w, http.StatusOK, resumes)
}

// GetResume retrieves a single resume by ID
// @Summary      Get resume
// @Tags         resumes
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  Response{data=models.Resume}
// @Failure      404  {object}  Response{error=string}
// @Router       /resumes/{id} [get]
// @Security     BasicAuth
func GetResume(w http.ResponseWriter, r *http.Request) {
	res, err := Ledger.Resume(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// CreateResume creates a new resume
// @Summary      Create resume
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        resume  body      models.Resume  true  "Resume contents"
// @Success      201     {object}  Response{data=models.Resume}
// @Failure      400     {object}  Response{error=string}
// @Router       /resumes [post]
// @Security     BasicAuth
func CreateResume(w http.ResponseWriter, r *http.Request) {
	var res models.Resume
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := Ledger.SaveResume(r.Context(), &res); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// UpdateResume updates an existing resume
// @Summary      Update resume
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        id      path      string         true  "Resume ID"
// @Param        resume  body      models.Resume  true  "Updated resume contents"
// @Success      200     {object}  Response{data=models.Resume}
// @Failure      400     {object}  Response{error=string}
// @Failure      404     {object}  Response{error=string}
// @Router       /resumes/{id} [put]
// @Security     BasicAuth
func UpdateResume(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := Ledger.Resume(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	var res models.Resume
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	res.ID = id
	if res.CreatedAt.IsZero() {
		res.CreatedAt = existing.CreatedAt
	}
	if err := Ledger.SaveResume(r.Context(), &res); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// DeleteResume deletes a resume
// @Summary      Delete resume
// @Tags         resumes
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /resumes/{id} [delete]
// @Security     BasicAuth
func DeleteResume(w http.ResponseWriter, r *http.Request) {
	if err := Ledger.DeleteResume(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
