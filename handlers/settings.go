package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/nikhilps/docledger/models"
)

// GetSettings retrieves the settings singleton
// @Summary      Get settings
// @Description  Fetch business settings. Defaults are created on first access.
// @Tags         settings
// @Produce      json
// @Success      200  {object}  Response{data=models.Settings}
// @Router       /settings [get]
// @Security     BasicAuth
func GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := Ledger.Settings(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings replaces the settings singleton
// @Summary      Update settings
// @Description  Overwrite business settings. Number sequences never move backwards; omitted (zero) counters are left unchanged.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        settings  body      models.Settings  true  "Settings contents"
// @Success      200       {object}  Response{data=models.Settings}
// @Failure      400       {object}  Response{error=string}
// @Router       /settings [put]
// @Security     BasicAuth
func UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := Ledger.SaveSettings(r.Context(), &settings); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
