package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nikhilps/docledger/backup"
)

// ExportBackup exports the whole ledger as a single JSON snapshot
// @Summary      Export ledger
// @Description  Download every collection plus settings as one JSON document. The same shape is accepted by the import endpoint.
// @Tags         backup
// @Produce      json
// @Success      200  {object}  Response{data=backup.Snapshot}
// @Router       /backup/export [get]
// @Security     BasicAuth
func ExportBackup(w http.ResponseWriter, r *http.Request) {
	snap, err := backup.Export(r.Context(), Store)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// ImportBackup restores the ledger from a JSON snapshot
// @Summary      Import ledger
// @Description  Upsert every record of the snapshot, preserving ids, numbers, and timestamps. Existing records with matching ids are overwritten.
// @Tags         backup
// @Accept       json
// @Produce      json
// @Param        snapshot  body      backup.Snapshot  true  "Exported snapshot"
// @Success      200       {object}  Response{data=map[string]string}
// @Failure      400       {object}  Response{error=string}
// @Router       /backup/import [post]
// @Security     BasicAuth
func ImportBackup(w http.ResponseWriter, r *http.Request) {
	var snap backup.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := backup.Import(r.Context(), Store, &snap); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "imported"})
}
